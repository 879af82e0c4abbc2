package store

import (
	"errors"
	"testing"
	"time"
)

func TestUsersCreateGet(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	id := mustCreateUser(t, st, ctx, "niko", "leo")

	u, err := st.GetUser(ctx, id)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u.Username != "niko" || u.ZodiacSign != "leo" {
		t.Fatalf("unexpected user %+v", u)
	}

	byName, err := st.GetUserByUsername(ctx, "niko")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if byName.ID != id {
		t.Fatalf("id mismatch: %d vs %d", byName.ID, id)
	}

	if _, err := st.GetUser(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChallengeListWidening(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	jsJunior := mustInsertChallenge(t, st, ctx, "JavaScript", "junior")
	mustInsertChallenge(t, st, ctx, "JavaScript", "senior")
	mustInsertChallenge(t, st, ctx, "Go", "middle")

	exact, err := st.ListChallenges(ctx, "JavaScript", "junior")
	if err != nil {
		t.Fatalf("list exact: %v", err)
	}
	if len(exact) != 1 || exact[0].ID != jsJunior {
		t.Fatalf("exact match = %+v", exact)
	}

	byStack, err := st.ListChallengesByStack(ctx, "JavaScript")
	if err != nil {
		t.Fatalf("list by stack: %v", err)
	}
	if len(byStack) != 2 {
		t.Fatalf("by stack = %d rows, want 2", len(byStack))
	}

	all, err := st.ListAllChallenges(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all = %d rows, want 3", len(all))
	}

	n, err := st.CountChallenges(ctx)
	if err != nil || n != 3 {
		t.Fatalf("count = %d err = %v, want 3", n, err)
	}
}

func TestDailyChallengeUniquePerDate(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	chID := mustInsertChallenge(t, st, ctx, "JavaScript", "middle")
	otherID := mustInsertChallenge(t, st, ctx, "JavaScript", "middle")
	day := time.Date(2025, 3, 1, 15, 4, 5, 0, time.UTC)

	inserted, err := st.CreateDailyChallenge(ctx, day, chID, 3)
	if err != nil || !inserted {
		t.Fatalf("first insert: inserted=%v err=%v", inserted, err)
	}

	// The race loser hits the unique constraint and must re-read.
	inserted, err = st.CreateDailyChallenge(ctx, day, otherID, 3)
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if inserted {
		t.Fatal("second insert should lose to the unique date constraint")
	}

	d, err := st.GetDailyChallenge(ctx, day)
	if err != nil {
		t.Fatalf("get daily: %v", err)
	}
	if d.ChallengeID != chID || d.BonusMultiplier != 3 {
		t.Fatalf("daily = %+v", d)
	}

	is, err := st.IsDailyChallenge(ctx, day, chID)
	if err != nil || !is {
		t.Fatalf("IsDailyChallenge = %v err = %v, want true", is, err)
	}
	is, err = st.IsDailyChallenge(ctx, day, otherID)
	if err != nil || is {
		t.Fatalf("IsDailyChallenge(loser) = %v err = %v, want false", is, err)
	}

	nextDay := day.Add(24 * time.Hour)
	if _, err := st.GetDailyChallenge(ctx, nextDay); !errors.Is(err, ErrNotFound) {
		t.Fatalf("next day should be ErrNotFound, got %v", err)
	}
}

func TestScoresLedgerSum(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	uid := mustCreateUser(t, st, ctx, "ana", "virgo")

	for _, pts := range []int64{100, 40, -25} {
		if err := st.InsertScore(ctx, Score{UserID: uid, GameType: "casino", Points: pts}); err != nil {
			t.Fatalf("insert score: %v", err)
		}
	}

	total, err := st.SumPointsByUser(ctx, uid)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if total != 115 {
		t.Fatalf("total = %d, want 115", total)
	}

	empty, err := st.SumPointsByUser(ctx, uid+1)
	if err != nil || empty != 0 {
		t.Fatalf("empty sum = %d err = %v, want 0", empty, err)
	}
}

func TestLeaderboardTotalsRankingAndSourceCounts(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	first := mustCreateUser(t, st, ctx, "first", "leo")
	second := mustCreateUser(t, st, ctx, "second", "virgo")

	seed := []Score{
		{UserID: first, GameType: "welcome_bonus", Points: 100},
		{UserID: first, GameType: "ai_challenge", Points: 200},
		{UserID: first, GameType: "casino", Points: -50},
		{UserID: second, GameType: "document_challenge", Points: 80},
	}
	for _, sc := range seed {
		if err := st.InsertScore(ctx, sc); err != nil {
			t.Fatalf("insert score: %v", err)
		}
	}

	rows, err := st.LeaderboardTotals(ctx, 10)
	if err != nil {
		t.Fatalf("leaderboard totals: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].UserID != first || rows[0].TotalPoints != 250 {
		t.Fatalf("top row = %+v", rows[0])
	}
	// The welcome grant counts toward points but is not a game.
	if rows[0].GamesPlayed != 2 {
		t.Fatalf("games played = %d, want 2", rows[0].GamesPlayed)
	}
	if rows[0].AIGames != 1 || rows[0].CatalogGames != 1 || rows[0].DocumentGames != 0 {
		t.Fatalf("top row source counts = %+v", rows[0])
	}
	if rows[1].UserID != second || rows[1].DocumentGames != 1 {
		t.Fatalf("second row = %+v", rows[1])
	}
}

func TestGetUserStatsInitIsIdempotent(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	uid := mustCreateUser(t, st, ctx, "gio", "aries")

	a, err := st.GetUserStats(ctx, uid)
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	b, err := st.GetUserStats(ctx, uid)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if a.TotalGamesPlayed != 0 || b.TotalGamesPlayed != 0 {
		t.Fatalf("expected zeroed stats, got %+v / %+v", a, b)
	}
}

func TestRecordPlayCommitsAllOrNothing(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	uid := mustCreateUser(t, st, ctx, "tiko", "gemini")
	chID := mustInsertChallenge(t, st, ctx, "Go", "middle")

	stats, err := st.RecordPlay(ctx,
		PlayRecord{UserID: uid, ChallengeID: chID, UserAnswer: 1, BetPoints: 10, IsCorrect: true, PointsWon: 20},
		Score{UserID: uid, GameType: "casino", Points: 20},
	)
	if err != nil {
		t.Fatalf("record play: %v", err)
	}
	if stats.TotalGamesPlayed != 1 || stats.CurrentStreak != 1 {
		t.Fatalf("stats = %+v", stats)
	}

	total, err := st.SumPointsByUser(ctx, uid)
	if err != nil || total != 20 {
		t.Fatalf("ledger total = %d err = %v, want 20", total, err)
	}

	// A play against a missing user must leave no score row behind.
	_, err = st.RecordPlay(ctx,
		PlayRecord{UserID: uid + 999, ChallengeID: chID, UserAnswer: 1, BetPoints: 10, IsCorrect: true, PointsWon: 20},
		Score{UserID: uid + 999, GameType: "casino", Points: 20},
	)
	if err == nil {
		t.Fatal("expected FK violation for missing user")
	}
	orphan, err := st.SumPointsByUser(ctx, uid+999)
	if err != nil || orphan != 0 {
		t.Fatalf("orphan sum = %d err = %v, want 0", orphan, err)
	}
}
