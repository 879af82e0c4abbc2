package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"code-casino/internal/config"
)

func openCache(t *testing.T) (*Cache, context.Context) {
	t.Helper()
	cfg, err := config.LoadTest()
	if err != nil || cfg.TestRedisAddr == "" {
		t.Skip("skip cache tests: TEST_REDIS_ADDR not set")
	}
	c, err := New(cfg.TestRedisAddr)
	if err != nil {
		t.Skipf("skip cache tests: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, context.Background()
}

func TestSessionRoundTrip(t *testing.T) {
	c, ctx := openCache(t)

	token := "tok-" + time.Now().Format("150405.000000000")
	if err := c.SetSession(ctx, token, 42); err != nil {
		t.Fatalf("set session: %v", err)
	}
	uid, err := c.SessionUserID(ctx, token)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if uid != 42 {
		t.Fatalf("uid = %d, want 42", uid)
	}

	if err := c.DeleteSession(ctx, token); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := c.SessionUserID(ctx, token); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss after delete, got %v", err)
	}
}

func TestUserPointsCache(t *testing.T) {
	c, ctx := openCache(t)

	uid := time.Now().UnixNano()
	if _, err := c.UserPoints(ctx, uid); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss on cold key, got %v", err)
	}
	if err := c.SetUserPoints(ctx, uid, 175); err != nil {
		t.Fatalf("set points: %v", err)
	}
	pts, err := c.UserPoints(ctx, uid)
	if err != nil {
		t.Fatalf("get points: %v", err)
	}
	if pts != 175 {
		t.Fatalf("points = %d, want 175", pts)
	}
}

func TestIncrStatExpireArmsTTLOnce(t *testing.T) {
	c, ctx := openCache(t)

	name := "test_quota_" + time.Now().Format("150405.000000000")
	n, err := c.IncrStatExpire(ctx, name, time.Minute)
	if err != nil || n != 1 {
		t.Fatalf("first incr = %d err = %v, want 1", n, err)
	}
	n, err = c.IncrStatExpire(ctx, name, time.Minute)
	if err != nil || n != 2 {
		t.Fatalf("second incr = %d err = %v, want 2", n, err)
	}
	count, err := c.Stat(ctx, name)
	if err != nil || count != 2 {
		t.Fatalf("stat = %d err = %v, want 2", count, err)
	}
}

func TestStatMissingKeyIsZero(t *testing.T) {
	c, ctx := openCache(t)

	count, err := c.Stat(ctx, "never_written_"+time.Now().Format("150405.000000000"))
	if err != nil || count != 0 {
		t.Fatalf("stat = %d err = %v, want 0", count, err)
	}
}

func TestLeaderboardBlobRoundTrip(t *testing.T) {
	c, ctx := openCache(t)

	type row struct {
		Username string `json:"username"`
		Points   int64  `json:"totalPoints"`
	}
	in := []row{{Username: "ana", Points: 300}, {Username: "gio", Points: 150}}
	if err := c.SetLeaderboard(ctx, in); err != nil {
		t.Fatalf("set leaderboard: %v", err)
	}
	var out []row
	if err := c.GetLeaderboard(ctx, &out); err != nil {
		t.Fatalf("get leaderboard: %v", err)
	}
	if len(out) != 2 || out[0].Username != "ana" || out[1].Points != 150 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestActiveUsers(t *testing.T) {
	c, ctx := openCache(t)

	if err := c.MarkUserActive(ctx, time.Now().UnixNano()); err != nil {
		t.Fatalf("mark active: %v", err)
	}
	n, err := c.ActiveUsersToday(ctx)
	if err != nil {
		t.Fatalf("active count: %v", err)
	}
	if n < 1 {
		t.Fatalf("active users = %d, want >= 1", n)
	}
}
