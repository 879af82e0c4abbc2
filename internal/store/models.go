package store

import "time"

type User struct {
	ID              int64
	Username        string
	FirstName       string
	LastName        string
	TechStack       string
	ExperienceLevel string
	ZodiacSign      string
	BirthDate       *time.Time
	CreatedAt       time.Time
}

// Challenge is a persisted catalog row. Its id is always > 0; the values 0
// and -1 are reserved on the wire for AI-generated and document-catalog
// challenges, which never touch this table.
type Challenge struct {
	ID            int64
	TechStack     string
	Title         string
	Description   string
	CodeSnippet1  string
	CodeSnippet2  string
	CorrectAnswer int
	Explanation   string
	Difficulty    string
	CreatedAt     time.Time
}

type DailyChallenge struct {
	ID              int64
	Date            time.Time
	ChallengeID     int64
	BonusMultiplier int
	IsActive        bool
}

type PlayRecord struct {
	ID          string
	UserID      int64
	ChallengeID int64
	UserAnswer  int
	BetPoints   int64
	IsCorrect   bool
	PointsWon   int64
	PlayedAt    time.Time
}

type Score struct {
	ID        string
	UserID    int64
	GameType  string
	Points    int64
	CreatedAt time.Time
}

type UserStats struct {
	UserID            int64
	TotalGamesPlayed  int
	GamesWon          int
	CurrentStreak     int
	BestStreak        int
	TotalPointsEarned int64
	TotalPointsLost   int64
	PlayedToday       bool
	LastPlayedAt      time.Time
}

type LeaderboardTotal struct {
	UserID        int64
	TotalPoints   int64
	GamesPlayed   int
	AIGames       int
	DocumentGames int
	CatalogGames  int
}
