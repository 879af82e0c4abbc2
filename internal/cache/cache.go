package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when a key is absent. Callers treat it like a cache
// miss, not a failure.
var ErrMiss = errors.New("cache miss")

const (
	SessionTTL     = 7 * 24 * time.Hour
	PointsTTL      = 30 * time.Minute
	LeaderboardTTL = 10 * time.Minute
)

// Cache wraps the Redis connection used for sessions, cached balances, the
// leaderboard blob, quota counters and activity sets. Everything in here is
// reconstructible from the primary stores; an outage only costs latency.
type Cache struct {
	rdb *redis.Client
}

func New(addr string) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Cache{rdb: rdb}, nil
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}

func (c *Cache) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

type sessionData struct {
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Cache) SetSession(ctx context.Context, token string, userID int64) error {
	raw, err := json.Marshal(sessionData{UserID: userID, CreatedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, "session:"+token, raw, SessionTTL).Err()
}

func (c *Cache) SessionUserID(ctx context.Context, token string) (int64, error) {
	raw, err := c.rdb.Get(ctx, "session:"+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return 0, ErrMiss
	}
	if err != nil {
		return 0, err
	}
	var data sessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return 0, err
	}
	return data.UserID, nil
}

func (c *Cache) DeleteSession(ctx context.Context, token string) error {
	return c.rdb.Del(ctx, "session:"+token).Err()
}

func (c *Cache) ExtendSession(ctx context.Context, token string) error {
	return c.rdb.Expire(ctx, "session:"+token, SessionTTL).Err()
}

func (c *Cache) UserPoints(ctx context.Context, userID int64) (int64, error) {
	raw, err := c.rdb.Get(ctx, pointsKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrMiss
	}
	if err != nil {
		return 0, err
	}
	points, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrMiss
	}
	return points, nil
}

func (c *Cache) SetUserPoints(ctx context.Context, userID, points int64) error {
	return c.rdb.Set(ctx, pointsKey(userID), strconv.FormatInt(points, 10), PointsTTL).Err()
}

func (c *Cache) GetLeaderboard(ctx context.Context, dst any) error {
	raw, err := c.rdb.Get(ctx, "casino:leaderboard").Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func (c *Cache) SetLeaderboard(ctx context.Context, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, "casino:leaderboard", raw, LeaderboardTTL).Err()
}

// IncrStat bumps a global counter. INCR is atomic server side, so concurrent
// plays never lose updates.
func (c *Cache) IncrStat(ctx context.Context, name string) (int64, error) {
	return c.rdb.Incr(ctx, "stats:"+name).Result()
}

// IncrStatExpire bumps a counter and arms its TTL on first increment, which
// is how hourly windows like the AI quota expire on their own.
func (c *Cache) IncrStatExpire(ctx context.Context, name string, ttl time.Duration) (int64, error) {
	n, err := c.rdb.Incr(ctx, "stats:"+name).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 && ttl > 0 {
		_ = c.rdb.Expire(ctx, "stats:"+name, ttl).Err()
	}
	return n, nil
}

func (c *Cache) Stat(ctx context.Context, name string) (int64, error) {
	raw, err := c.rdb.Get(ctx, "stats:"+name).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

func (c *Cache) MarkUserActive(ctx context.Context, userID int64) error {
	key := "active:users:" + time.Now().UTC().Format("2006-01-02")
	if err := c.rdb.SAdd(ctx, key, userID).Err(); err != nil {
		return err
	}
	// Yesterday's set is never read again; let it fall out on its own.
	return c.rdb.Expire(ctx, key, 48*time.Hour).Err()
}

func (c *Cache) ActiveUsersToday(ctx context.Context) (int64, error) {
	key := "active:users:" + time.Now().UTC().Format("2006-01-02")
	return c.rdb.SCard(ctx, key).Result()
}

func pointsKey(userID int64) string {
	return "user:points:" + strconv.FormatInt(userID, 10)
}
