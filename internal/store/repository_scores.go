package store

import (
	"context"
)

func (s *Store) InsertScore(ctx context.Context, sc Score) error {
	if sc.ID == "" {
		sc.ID = NewID()
	}
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO scores (id, user_id, game_type, points)
		VALUES ($1, $2, $3, $4)`,
		sc.ID, sc.UserID, sc.GameType, sc.Points)
	return err
}

// SumPointsByUser is the ledger ground truth for a balance.
func (s *Store) SumPointsByUser(ctx context.Context, userID int64) (int64, error) {
	var total int64
	err := s.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(points), 0) FROM scores WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// LeaderboardTotals groups the ledger by user, ranked by total points.
// Ties keep the grouping's natural order; no secondary key is defined.
func (s *Store) LeaderboardTotals(ctx context.Context, limit int) ([]LeaderboardTotal, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.Pool.Query(ctx, `
		SELECT user_id,
		       COALESCE(SUM(points), 0) AS total_points,
		       COUNT(*) FILTER (WHERE game_type <> 'welcome_bonus') AS games_played,
		       COUNT(*) FILTER (WHERE game_type = 'ai_challenge') AS ai_games,
		       COUNT(*) FILTER (WHERE game_type = 'document_challenge') AS document_games,
		       COUNT(*) FILTER (WHERE game_type = 'casino') AS catalog_games
		FROM scores
		GROUP BY user_id
		ORDER BY total_points DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]LeaderboardTotal, 0, limit)
	for rows.Next() {
		var lt LeaderboardTotal
		if err := rows.Scan(&lt.UserID, &lt.TotalPoints, &lt.GamesPlayed,
			&lt.AIGames, &lt.DocumentGames, &lt.CatalogGames); err != nil {
			return nil, err
		}
		out = append(out, lt)
	}
	return out, rows.Err()
}
