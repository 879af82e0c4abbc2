package game

import (
	"strings"
	"time"
)

// Luck multipliers per zodiac sign, in [1.0, 1.3]. Fire signs run hot.
var zodiacLuck = map[string]float64{
	"leo":         1.3,
	"sagittarius": 1.25,
	"aries":       1.2,
	"gemini":      1.15,
	"libra":       1.1,
	"aquarius":    1.1,
	"scorpio":     1.05,
	"pisces":      1.05,
	"cancer":      1.05,
	"taurus":      1.02,
	"capricorn":   1.02,
	"virgo":       1.0,
}

const defaultZodiacLuck = 1.05

// ZodiacLuckMultiplier returns the fixed luck constant for a sign. Unknown
// signs get the default.
func ZodiacLuckMultiplier(sign string) float64 {
	if m, ok := zodiacLuck[strings.ToLower(strings.TrimSpace(sign))]; ok {
		return m
	}
	return defaultZodiacLuck
}

// ZodiacSign derives the sign from a birth date using tropical boundaries.
func ZodiacSign(birthDate time.Time) string {
	month, day := birthDate.Month(), birthDate.Day()
	switch {
	case month == time.March && day >= 21 || month == time.April && day <= 19:
		return "aries"
	case month == time.April || month == time.May && day <= 20:
		return "taurus"
	case month == time.May || month == time.June && day <= 20:
		return "gemini"
	case month == time.June || month == time.July && day <= 22:
		return "cancer"
	case month == time.July || month == time.August && day <= 22:
		return "leo"
	case month == time.August || month == time.September && day <= 22:
		return "virgo"
	case month == time.September || month == time.October && day <= 22:
		return "libra"
	case month == time.October || month == time.November && day <= 21:
		return "scorpio"
	case month == time.November || month == time.December && day <= 21:
		return "sagittarius"
	case month == time.December || month == time.January && day <= 19:
		return "capricorn"
	case month == time.January || month == time.February && day <= 18:
		return "aquarius"
	case month == time.February || month == time.March:
		return "pisces"
	default:
		return "aries"
	}
}
