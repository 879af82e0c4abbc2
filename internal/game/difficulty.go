package game

import "strings"

type Difficulty string

const (
	DifficultyJunior Difficulty = "junior"
	DifficultyMiddle Difficulty = "middle"
	DifficultySenior Difficulty = "senior"
)

// ParseDifficulty maps an experience level label to a challenge difficulty.
// Unknown labels default to middle.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "junior", "beginner":
		return DifficultyJunior
	case "senior", "expert":
		return DifficultySenior
	default:
		return DifficultyMiddle
	}
}

func (d Difficulty) String() string {
	return string(d)
}
