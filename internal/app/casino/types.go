package casino

import "code-casino/internal/ledger"

// Source identifies where a challenge came from. It drives the wire id,
// the ledger game type, and the AI payout bump.
type Source string

const (
	SourceAI       Source = "ai"
	SourceDocument Source = "document"
	SourceCatalog  Source = "catalog"
)

// Challenge is a sourced challenge regardless of origin. CatalogID is set
// only for SourceCatalog; AI and document challenges carry their content
// inline and have no database row.
type Challenge struct {
	Source        Source
	CatalogID     int64
	TechStack     string
	Title         string
	Description   string
	CodeSnippet1  string
	CodeSnippet2  string
	CorrectAnswer int
	Explanation   string
	Difficulty    string
	Daily         bool
}

// WireID is the client-visible challenge id. Catalog rows use their real
// id, AI challenges are 0 and document challenges are -1. Clients echo
// this id back on play.
func (c Challenge) WireID() int64 {
	switch c.Source {
	case SourceAI:
		return 0
	case SourceDocument:
		return -1
	default:
		return c.CatalogID
	}
}

// GameType is the ledger tag recorded for a play of this challenge.
func (c Challenge) GameType() string {
	switch c.Source {
	case SourceAI:
		return ledger.GameTypeAI
	case SourceDocument:
		return ledger.GameTypeDocument
	default:
		return ledger.GameTypeCasino
	}
}

// ChallengeView is the client shape. The correct answer and explanation
// are withheld until the wager resolves.
type ChallengeView struct {
	ID           int64  `json:"id"`
	TechStack    string `json:"tech_stack"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CodeSnippet1 string `json:"code_snippet1"`
	CodeSnippet2 string `json:"code_snippet2"`
	Difficulty   string `json:"difficulty"`
	AIGenerated  bool   `json:"ai_generated"`
	Daily        bool   `json:"daily"`
}

// View renders the challenge for a client.
func (c Challenge) View() ChallengeView {
	return ChallengeView{
		ID:           c.WireID(),
		TechStack:    c.TechStack,
		Title:        c.Title,
		Description:  c.Description,
		CodeSnippet1: c.CodeSnippet1,
		CodeSnippet2: c.CodeSnippet2,
		Difficulty:   c.Difficulty,
		AIGenerated:  c.Source == SourceAI,
		Daily:        c.Daily,
	}
}

// PlayInput is one wager attempt. ChallengeID is the wire id; ids 0 and
// -1 must come with the Inline challenge the client was served.
type PlayInput struct {
	UserID      int64
	ChallengeID int64
	Inline      *Challenge
	Answer      int
	BetPoints   int64
}

// PlayOutcome is the resolved wager.
type PlayOutcome struct {
	Correct       bool   `json:"correct"`
	PointsDelta   int64  `json:"points_delta"`
	NewBalance    int64  `json:"new_balance"`
	CorrectAnswer int    `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	CurrentStreak int    `json:"current_streak"`
	DailyBonus    bool   `json:"daily_bonus"`
}

// LeaderboardEntry is one ranked row, enriched beyond the raw ledger sums.
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	UserID        int64   `json:"user_id"`
	Username      string  `json:"username"`
	FirstName     string  `json:"first_name"`
	ZodiacSign    string  `json:"zodiac_sign"`
	TotalPoints   int64   `json:"total_points"`
	GamesPlayed   int     `json:"games_played"`
	WinRate       float64 `json:"win_rate"`
	CurrentStreak int     `json:"current_streak"`
	BestStreak    int     `json:"best_streak"`
	AIGames       int     `json:"ai_games"`
	DocumentGames int     `json:"document_games"`
	CatalogGames  int     `json:"catalog_games"`
}

// DashboardStats are the global counters for the operator dashboard.
type DashboardStats struct {
	TotalGames   int64 `json:"total_games"`
	GamesWon     int64 `json:"games_won"`
	ActiveUsers  int64 `json:"active_users_today"`
	CacheHealthy bool  `json:"cache_healthy"`
}
