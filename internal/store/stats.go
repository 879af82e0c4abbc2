package store

import "time"

// ApplyPlay advances stats by one resolved play. PlayedToday is a projection
// of LastPlayedAt, so it resets before the new play is folded in.
func ApplyPlay(s *UserStats, won bool, pointsDelta int64, now time.Time) {
	if s.LastPlayedAt.UTC().Truncate(24 * time.Hour).Before(now.UTC().Truncate(24 * time.Hour)) {
		s.PlayedToday = false
	}

	s.TotalGamesPlayed++
	s.PlayedToday = true
	s.LastPlayedAt = now

	if won {
		s.GamesWon++
		s.CurrentStreak++
		if pointsDelta > 0 {
			s.TotalPointsEarned += pointsDelta
		}
		if s.CurrentStreak > s.BestStreak {
			s.BestStreak = s.CurrentStreak
		}
		return
	}
	s.CurrentStreak = 0
	if pointsDelta < 0 {
		s.TotalPointsLost += -pointsDelta
	}
}
