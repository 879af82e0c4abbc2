package casino

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"code-casino/internal/docstore"
	"code-casino/internal/game"
	"code-casino/internal/store"
)

// Daily challenges are sourced with a fixed request so every user sees
// the same challenge for a given date.
const (
	dailyTechStack  = "JavaScript"
	dailyBonus      = 3
	aiQuotaKeyStamp = "2006-01-02-15"
)

type sourceFunc func(ctx context.Context, techStack, difficulty string) (*Challenge, error)

// GetChallenge tries each source in fixed order: AI generation, the
// document store, then the Postgres catalog. A failed or empty stage is
// logged and skipped; only when every stage comes up empty does the
// caller see ErrNoChallenge.
func (s *Service) GetChallenge(ctx context.Context, techStack string, difficulty game.Difficulty) (*Challenge, error) {
	stages := []struct {
		name string
		fn   sourceFunc
	}{
		{"ai", s.aiChallenge},
		{"document", s.documentChallenge},
		{"catalog", s.catalogChallenge},
	}
	for _, stage := range stages {
		ch, err := stage.fn(ctx, techStack, difficulty.String())
		if err != nil {
			log.Warn().Err(err).Str("source", stage.name).Str("tech_stack", techStack).Msg("challenge source failed")
			continue
		}
		if ch != nil {
			return ch, nil
		}
	}
	return nil, ErrNoChallenge
}

// aiChallenge asks the generator for a fresh challenge, bounded by an
// hourly quota. The counter is bumped before generating, so failed
// generations still consume quota.
func (s *Service) aiChallenge(ctx context.Context, techStack, difficulty string) (*Challenge, error) {
	if s.gen == nil {
		return nil, nil
	}
	quotaKey := "ai_challenge_limit:" + s.now().UTC().Format(aiQuotaKeyStamp)
	n, err := s.cache.IncrStatExpire(ctx, quotaKey, time.Hour)
	if err != nil {
		return nil, fmt.Errorf("ai quota: %w", err)
	}
	if n > s.aiLimit {
		log.Debug().Int64("count", n).Msg("ai generation quota exhausted for this hour")
		return nil, nil
	}
	gen, err := s.gen.Generate(ctx, techStack, difficulty)
	if err != nil {
		return nil, err
	}
	return &Challenge{
		Source:        SourceAI,
		TechStack:     gen.TechStack,
		Title:         gen.Title,
		Description:   gen.Description,
		CodeSnippet1:  gen.CodeA,
		CodeSnippet2:  gen.CodeB,
		CorrectAnswer: gen.CorrectAnswer,
		Explanation:   gen.Explanation,
		Difficulty:    gen.Difficulty,
	}, nil
}

func (s *Service) documentChallenge(ctx context.Context, techStack, difficulty string) (*Challenge, error) {
	if s.docs == nil {
		return nil, nil
	}
	snip, err := s.docs.RandomSnippet(ctx, techStack, difficulty, s.rng)
	if errors.Is(err, docstore.ErrNoSnippet) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &Challenge{
		Source:        SourceDocument,
		TechStack:     snip.TechStack,
		Title:         snip.Title,
		Description:   snip.Description,
		CodeSnippet1:  snip.CodeA,
		CodeSnippet2:  snip.CodeB,
		CorrectAnswer: snip.CorrectAnswer,
		Explanation:   snip.Explanation,
		Difficulty:    snip.Difficulty,
	}, nil
}

// catalogChallenge widens its filter until something matches: exact stack
// and difficulty, then the stack alone, then the whole catalog. The pick
// within the final list is uniform.
func (s *Service) catalogChallenge(ctx context.Context, techStack, difficulty string) (*Challenge, error) {
	rows, err := s.store.ListChallenges(ctx, techStack, difficulty)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		if rows, err = s.store.ListChallengesByStack(ctx, techStack); err != nil {
			return nil, err
		}
	}
	if len(rows) == 0 {
		if rows, err = s.store.ListAllChallenges(ctx); err != nil {
			return nil, err
		}
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[s.rng.Intn(len(rows))]
	ch := fromCatalogRow(row)
	return &ch, nil
}

// GetDailyChallenge returns the shared challenge of the day, creating it
// on first access. Non-catalog sources are persisted into the catalog
// first so the daily pointer always references a real row.
func (s *Service) GetDailyChallenge(ctx context.Context) (*Challenge, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)

	dc, err := s.store.GetDailyChallenge(ctx, today)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if dc == nil {
		ch, err := s.GetChallenge(ctx, dailyTechStack, game.DifficultyMiddle)
		if err != nil {
			return nil, err
		}
		id := ch.CatalogID
		if ch.Source != SourceCatalog {
			if id, err = s.store.InsertChallenge(ctx, toCatalogRow(*ch)); err != nil {
				return nil, err
			}
		}
		inserted, err := s.store.CreateDailyChallenge(ctx, today, id, dailyBonus)
		if err != nil {
			return nil, err
		}
		// Lost the race: another request set today's pointer first.
		if !inserted {
			if dc, err = s.store.GetDailyChallenge(ctx, today); err != nil {
				return nil, err
			}
		} else {
			ch.Source = SourceCatalog
			ch.CatalogID = id
			ch.Daily = true
			return ch, nil
		}
	}

	row, err := s.store.GetChallenge(ctx, dc.ChallengeID)
	if err != nil {
		return nil, err
	}
	ch := fromCatalogRow(*row)
	ch.Daily = true
	return &ch, nil
}

func fromCatalogRow(row store.Challenge) Challenge {
	return Challenge{
		Source:        SourceCatalog,
		CatalogID:     row.ID,
		TechStack:     row.TechStack,
		Title:         row.Title,
		Description:   row.Description,
		CodeSnippet1:  row.CodeSnippet1,
		CodeSnippet2:  row.CodeSnippet2,
		CorrectAnswer: row.CorrectAnswer,
		Explanation:   row.Explanation,
		Difficulty:    row.Difficulty,
	}
}

func toCatalogRow(ch Challenge) store.Challenge {
	return store.Challenge{
		TechStack:     ch.TechStack,
		Title:         ch.Title,
		Description:   ch.Description,
		CodeSnippet1:  ch.CodeSnippet1,
		CodeSnippet2:  ch.CodeSnippet2,
		CorrectAnswer: ch.CorrectAnswer,
		Explanation:   ch.Explanation,
		Difficulty:    ch.Difficulty,
	}
}
