package casino

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"code-casino/internal/game"
	"code-casino/internal/store"
)

// Play resolves one wager. The play record, ledger row and stats update
// commit in a single transaction; cache refreshes happen after commit and
// are best effort.
func (s *Service) Play(ctx context.Context, in PlayInput) (*PlayOutcome, error) {
	if in.BetPoints <= 0 || (in.Answer != 1 && in.Answer != 2) {
		return nil, ErrInvalidRequest
	}

	user, err := s.store.GetUser(ctx, in.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	ch, err := s.resolveChallenge(ctx, in)
	if err != nil {
		return nil, err
	}

	balance, err := s.Balance(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if balance < in.BetPoints {
		return nil, ErrInsufficientFunds
	}

	stats, err := s.store.GetUserStats(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	daily := ch.Daily
	if !daily && ch.Source == SourceCatalog {
		today := s.now().UTC().Truncate(24 * time.Hour)
		if daily, err = s.store.IsDailyChallenge(ctx, today, ch.CatalogID); err != nil {
			return nil, err
		}
	}

	correct := in.Answer == ch.CorrectAnswer
	delta := game.ComputePayout(game.PayoutInput{
		BetPoints:        in.BetPoints,
		Correct:          correct,
		ZodiacMultiplier: game.ZodiacLuckMultiplier(user.ZodiacSign),
		AIChallenge:      ch.Source == SourceAI,
		DailyChallenge:   daily,
		CurrentStreak:    stats.CurrentStreak,
	})

	updated, err := s.store.RecordPlay(ctx,
		store.PlayRecord{
			ID:          store.NewID(),
			UserID:      in.UserID,
			ChallengeID: ch.WireID(),
			UserAnswer:  in.Answer,
			BetPoints:   in.BetPoints,
			IsCorrect:   correct,
			PointsWon:   delta,
			PlayedAt:    s.now().UTC(),
		},
		store.Score{
			UserID:   in.UserID,
			GameType: ch.GameType(),
			Points:   delta,
		})
	if err != nil {
		return nil, err
	}

	newBalance := balance + delta
	if err := s.cache.SetUserPoints(ctx, in.UserID, newBalance); err != nil {
		log.Warn().Err(err).Int64("user_id", in.UserID).Msg("balance cache refresh failed")
	}
	if _, err := s.cache.IncrStat(ctx, "total_games"); err != nil {
		log.Warn().Err(err).Msg("total_games counter bump failed")
	}
	if correct {
		if _, err := s.cache.IncrStat(ctx, "games_won"); err != nil {
			log.Warn().Err(err).Msg("games_won counter bump failed")
		}
	}

	return &PlayOutcome{
		Correct:       correct,
		PointsDelta:   delta,
		NewBalance:    newBalance,
		CorrectAnswer: ch.CorrectAnswer,
		Explanation:   ch.Explanation,
		CurrentStreak: updated.CurrentStreak,
		DailyBonus:    daily && correct,
	}, nil
}

// resolveChallenge turns the wire id plus optional inline payload back
// into a challenge. AI and document challenges have no row to look up,
// so the client must echo the challenge it was served.
func (s *Service) resolveChallenge(ctx context.Context, in PlayInput) (*Challenge, error) {
	if in.Inline != nil {
		return in.Inline, nil
	}
	if in.ChallengeID <= 0 {
		return nil, ErrChallengeNotFound
	}
	row, err := s.store.GetChallenge(ctx, in.ChallengeID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrChallengeNotFound
	}
	if err != nil {
		return nil, err
	}
	ch := fromCatalogRow(*row)
	return &ch, nil
}
