package store

import (
	"context"
	"time"
)

// GetDailyChallenge returns the active pointer for the given UTC date.
func (s *Store) GetDailyChallenge(ctx context.Context, date time.Time) (*DailyChallenge, error) {
	row := s.Pool.QueryRow(ctx, `
		SELECT id, date, challenge_id, bonus_multiplier, is_active
		FROM daily_challenges
		WHERE date = $1 AND is_active`, dateOnly(date))
	var d DailyChallenge
	if err := row.Scan(&d.ID, &d.Date, &d.ChallengeID, &d.BonusMultiplier, &d.IsActive); err != nil {
		return nil, mapNotFound(err)
	}
	return &d, nil
}

// CreateDailyChallenge persists the pointer for the date. The UNIQUE
// constraint on date decides races between concurrent first requests: the
// loser gets inserted=false and should re-read the winner's row.
func (s *Store) CreateDailyChallenge(ctx context.Context, date time.Time, challengeID int64, bonusMultiplier int) (bool, error) {
	tag, err := s.Pool.Exec(ctx, `
		INSERT INTO daily_challenges (date, challenge_id, bonus_multiplier, is_active)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (date) DO NOTHING`,
		dateOnly(date), challengeID, bonusMultiplier)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) IsDailyChallenge(ctx context.Context, date time.Time, challengeID int64) (bool, error) {
	var exists bool
	err := s.Pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM daily_challenges
			WHERE date = $1 AND challenge_id = $2 AND is_active
		)`, dateOnly(date), challengeID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func dateOnly(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
