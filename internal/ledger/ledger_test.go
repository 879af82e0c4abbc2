package ledger_test

import (
	"context"
	"testing"

	"code-casino/internal/ledger"
	"code-casino/internal/store"
	"code-casino/internal/testutil"
)

func TestWelcomeGrantAndBalance(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	uid, err := st.CreateUser(ctx, store.User{
		Username: "ana", FirstName: "Ana", TechStack: "Go",
		ExperienceLevel: "middle", ZodiacSign: "virgo",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	led := ledger.New(st)
	balance, err := led.Balance(ctx, uid)
	if err != nil || balance != 0 {
		t.Fatalf("fresh balance = %d err = %v, want 0", balance, err)
	}

	if err := led.WelcomeGrant(ctx, uid, 100); err != nil {
		t.Fatalf("welcome grant: %v", err)
	}
	balance, err = led.Balance(ctx, uid)
	if err != nil || balance != 100 {
		t.Fatalf("balance after grant = %d err = %v, want 100", balance, err)
	}

	// Further ledger rows keep summing; the grant stays one row among many.
	if err := st.InsertScore(ctx, store.Score{UserID: uid, GameType: ledger.GameTypeCasino, Points: -40}); err != nil {
		t.Fatalf("insert score: %v", err)
	}
	balance, err = led.Balance(ctx, uid)
	if err != nil || balance != 60 {
		t.Fatalf("balance = %d err = %v, want 60", balance, err)
	}
}
