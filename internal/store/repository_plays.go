package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// RecordPlay commits one resolved play: the play record, the score ledger
// entry, and the stats transition land in a single transaction so a failure
// cannot leave a play without its ledger row or vice versa.
func (s *Store) RecordPlay(ctx context.Context, play PlayRecord, score Score) (UserStats, error) {
	if play.ID == "" {
		play.ID = NewID()
	}
	if score.ID == "" {
		score.ID = NewID()
	}
	now := time.Now().UTC()

	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return UserStats{}, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO play_records (id, user_id, challenge_id, user_answer, bet_points, is_correct, points_won)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		play.ID, play.UserID, play.ChallengeID, play.UserAnswer,
		play.BetPoints, play.IsCorrect, play.PointsWon); err != nil {
		return UserStats{}, err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO scores (id, user_id, game_type, points)
		VALUES ($1, $2, $3, $4)`,
		score.ID, score.UserID, score.GameType, score.Points); err != nil {
		return UserStats{}, err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO user_stats (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING`, play.UserID); err != nil {
		return UserStats{}, err
	}

	row := tx.QueryRow(ctx, `
		SELECT `+userStatsColumns+`
		FROM user_stats WHERE user_id = $1
		FOR UPDATE`, play.UserID)
	var st UserStats
	if err := scanUserStats(row, &st); err != nil {
		return UserStats{}, mapNotFound(err)
	}

	ApplyPlay(&st, play.IsCorrect, play.PointsWon, now)

	if _, err := tx.Exec(ctx, `
		UPDATE user_stats
		SET total_games_played = $2, games_won = $3, current_streak = $4, best_streak = $5,
		    total_points_earned = $6, total_points_lost = $7, played_today = $8, last_played_at = $9
		WHERE user_id = $1`,
		st.UserID, st.TotalGamesPlayed, st.GamesWon, st.CurrentStreak, st.BestStreak,
		st.TotalPointsEarned, st.TotalPointsLost, st.PlayedToday, st.LastPlayedAt); err != nil {
		return UserStats{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return UserStats{}, err
	}
	return st, nil
}
