package casino

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog/log"

	"code-casino/internal/cache"
)

const defaultLeaderboardSize = 10

// Balance returns the user's point balance, cache-aside over the ledger
// sum. A stale cached value is acceptable; the ledger is the ground truth.
func (s *Service) Balance(ctx context.Context, userID int64) (int64, error) {
	pts, err := s.cache.UserPoints(ctx, userID)
	if err == nil {
		return pts, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Warn().Err(err).Int64("user_id", userID).Msg("balance cache read failed")
	}
	pts, err = s.store.SumPointsByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := s.cache.SetUserPoints(ctx, userID, pts); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("balance cache write failed")
	}
	return pts, nil
}

// Leaderboard returns the top n players by total points. The computed
// list is cached as one JSON blob; freshness comes from the TTL alone.
func (s *Service) Leaderboard(ctx context.Context, n int) ([]LeaderboardEntry, error) {
	if n <= 0 {
		n = defaultLeaderboardSize
	}

	var cached []LeaderboardEntry
	if err := s.cache.GetLeaderboard(ctx, &cached); err == nil {
		if len(cached) > n {
			cached = cached[:n]
		}
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Warn().Err(err).Msg("leaderboard cache read failed")
	}

	totals, err := s.store.LeaderboardTotals(ctx, n)
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(totals))
	for i, t := range totals {
		entry := LeaderboardEntry{
			Rank:          i + 1,
			UserID:        t.UserID,
			TotalPoints:   t.TotalPoints,
			GamesPlayed:   t.GamesPlayed,
			AIGames:       t.AIGames,
			DocumentGames: t.DocumentGames,
			CatalogGames:  t.CatalogGames,
		}
		user, err := s.store.GetUser(ctx, t.UserID)
		if err != nil {
			return nil, err
		}
		entry.Username = user.Username
		entry.FirstName = user.FirstName
		entry.ZodiacSign = user.ZodiacSign

		stats, err := s.store.GetUserStats(ctx, t.UserID)
		if err != nil {
			return nil, err
		}
		entry.CurrentStreak = stats.CurrentStreak
		entry.BestStreak = stats.BestStreak
		entry.WinRate = winRate(stats.GamesWon, stats.TotalGamesPlayed)

		entries = append(entries, entry)
	}

	if err := s.cache.SetLeaderboard(ctx, entries); err != nil {
		log.Warn().Err(err).Msg("leaderboard cache write failed")
	}
	return entries, nil
}

// Dashboard reports the global play counters and cache health.
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	total, err := s.cache.Stat(ctx, "total_games")
	if err != nil {
		return nil, err
	}
	won, err := s.cache.Stat(ctx, "games_won")
	if err != nil {
		return nil, err
	}
	active, err := s.cache.ActiveUsersToday(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		TotalGames:   total,
		GamesWon:     won,
		ActiveUsers:  active,
		CacheHealthy: s.cache.Ping(ctx) == nil,
	}, nil
}

// winRate is a percentage with one decimal, 0 when no games were played.
func winRate(won, played int) float64 {
	if played == 0 {
		return 0
	}
	return math.Round(float64(won)/float64(played)*1000) / 10
}
