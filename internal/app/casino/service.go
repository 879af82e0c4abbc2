// Package casino implements challenge sourcing and wager resolution.
package casino

import (
	"context"
	"math/rand"
	"time"

	"code-casino/internal/aigen"
	"code-casino/internal/docstore"
	"code-casino/internal/store"
)

// Store is the persistence surface the service needs.
type Store interface {
	GetUser(ctx context.Context, id int64) (*store.User, error)
	GetChallenge(ctx context.Context, id int64) (*store.Challenge, error)
	ListChallenges(ctx context.Context, techStack, difficulty string) ([]store.Challenge, error)
	ListChallengesByStack(ctx context.Context, techStack string) ([]store.Challenge, error)
	ListAllChallenges(ctx context.Context) ([]store.Challenge, error)
	InsertChallenge(ctx context.Context, c store.Challenge) (int64, error)
	CountChallenges(ctx context.Context) (int64, error)
	GetDailyChallenge(ctx context.Context, date time.Time) (*store.DailyChallenge, error)
	CreateDailyChallenge(ctx context.Context, date time.Time, challengeID int64, bonusMultiplier int) (bool, error)
	IsDailyChallenge(ctx context.Context, date time.Time, challengeID int64) (bool, error)
	GetUserStats(ctx context.Context, userID int64) (*store.UserStats, error)
	RecordPlay(ctx context.Context, play store.PlayRecord, score store.Score) (store.UserStats, error)
	SumPointsByUser(ctx context.Context, userID int64) (int64, error)
	LeaderboardTotals(ctx context.Context, limit int) ([]store.LeaderboardTotal, error)
}

// Documents serves curated challenge documents. May be nil when the
// document store is not configured.
type Documents interface {
	RandomSnippet(ctx context.Context, techStack, difficulty string, rng *rand.Rand) (docstore.Snippet, error)
}

// Generator produces fresh AI challenges. May be nil when generation is
// disabled.
type Generator interface {
	Generate(ctx context.Context, techStack, difficulty string) (aigen.Challenge, error)
}

// Cache is the Redis-backed hot path: balances, the leaderboard blob,
// quota and global counters.
type Cache interface {
	UserPoints(ctx context.Context, userID int64) (int64, error)
	SetUserPoints(ctx context.Context, userID, points int64) error
	GetLeaderboard(ctx context.Context, dst any) error
	SetLeaderboard(ctx context.Context, v any) error
	IncrStat(ctx context.Context, name string) (int64, error)
	IncrStatExpire(ctx context.Context, name string, ttl time.Duration) (int64, error)
	Stat(ctx context.Context, name string) (int64, error)
	ActiveUsersToday(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

type Service struct {
	store Store
	docs  Documents
	gen   Generator
	cache Cache

	rng     *rand.Rand
	now     func() time.Time
	aiLimit int64
}

// New builds the service. docs and gen may be nil; the matching sourcing
// stages are then skipped.
func New(st Store, docs Documents, gen Generator, cache Cache, rng *rand.Rand, aiLimit int64) *Service {
	return &Service{
		store:   st,
		docs:    docs,
		gen:     gen,
		cache:   cache,
		rng:     rng,
		now:     time.Now,
		aiLimit: aiLimit,
	}
}
