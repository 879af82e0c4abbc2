package store

import (
	"context"
)

const userStatsColumns = `user_id, total_games_played, games_won, current_streak, best_streak, total_points_earned, total_points_lost, played_today, last_played_at`

// GetUserStats returns the stats row, creating a zeroed one on first access.
// The insert is idempotent under concurrent first access.
func (s *Store) GetUserStats(ctx context.Context, userID int64) (*UserStats, error) {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO user_stats (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return nil, err
	}
	row := s.Pool.QueryRow(ctx, `
		SELECT `+userStatsColumns+`
		FROM user_stats WHERE user_id = $1`, userID)
	var st UserStats
	if err := scanUserStats(row, &st); err != nil {
		return nil, mapNotFound(err)
	}
	return &st, nil
}

func scanUserStats(row rowScanner, st *UserStats) error {
	return row.Scan(&st.UserID, &st.TotalGamesPlayed, &st.GamesWon, &st.CurrentStreak,
		&st.BestStreak, &st.TotalPointsEarned, &st.TotalPointsLost, &st.PlayedToday, &st.LastPlayedAt)
}
