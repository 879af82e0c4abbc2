// Package ledger is the point accounting layer. Every balance change is
// an append-only score row; a balance is always the sum of rows, never a
// stored column.
package ledger

import (
	"context"

	"code-casino/internal/store"
)

const (
	// GameTypeWelcome marks the one-time signup grant.
	GameTypeWelcome = "welcome_bonus"
	// GameTypeCasino marks document and catalog challenge plays.
	GameTypeCasino = "casino"
	// GameTypeAI marks AI-generated challenge plays.
	GameTypeAI = "ai_challenge"
	// GameTypeDocument marks document-sourced challenge plays.
	GameTypeDocument = "document_challenge"
)

type Ledger struct {
	Store *store.Store
}

func New(s *store.Store) *Ledger {
	return &Ledger{Store: s}
}

// WelcomeGrant credits the signup bonus as a ledger entry.
func (l *Ledger) WelcomeGrant(ctx context.Context, userID int64, points int64) error {
	return l.Store.InsertScore(ctx, store.Score{
		UserID:   userID,
		Points:   points,
		GameType: GameTypeWelcome,
	})
}

// Balance sums every score row for the user. A user with no rows has
// balance zero.
func (l *Ledger) Balance(ctx context.Context, userID int64) (int64, error) {
	return l.Store.SumPointsByUser(ctx, userID)
}
