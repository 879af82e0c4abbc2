package main

import (
	"errors"
	"net/http"
	"strconv"

	"code-casino/internal/app/casino"
	"code-casino/internal/game"
)

func challengeHandler(svc *casino.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r.Context())
		ch, err := svc.GetChallenge(r.Context(), user.TechStack, game.ParseDifficulty(user.ExperienceLevel))
		if errors.Is(err, casino.ErrNoChallenge) {
			writeHTTPError(w, http.StatusNotFound, "no_challenge_available")
			return
		}
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		balance, err := svc.Balance(r.Context(), user.ID)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"challenge":   ch.View(),
			"user_points": balance,
		})
	}
}

func dailyChallengeHandler(svc *casino.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ch, err := svc.GetDailyChallenge(r.Context())
		if errors.Is(err, casino.ErrNoChallenge) {
			writeHTTPError(w, http.StatusNotFound, "no_challenge_available")
			return
		}
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"challenge": ch.View()})
	}
}

// challengeData is the inline echo for AI and document plays, which have
// no catalog row to resolve by id.
type challengeData struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	CodeSnippet1  string `json:"code_snippet1"`
	CodeSnippet2  string `json:"code_snippet2"`
	CorrectAnswer int    `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	TechStack     string `json:"tech_stack"`
	Difficulty    string `json:"difficulty"`
}

type playRequest struct {
	ChallengeID   int64          `json:"challenge_id"`
	UserAnswer    int            `json:"user_answer"`
	BetPoints     int64          `json:"bet_points"`
	ChallengeData *challengeData `json:"challenge_data"`
}

func playHandler(svc *casino.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r.Context())
		var req playRequest
		if err := decodeJSON(r, &req); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}

		in := casino.PlayInput{
			UserID:      user.ID,
			ChallengeID: req.ChallengeID,
			Answer:      req.UserAnswer,
			BetPoints:   req.BetPoints,
		}
		if req.ChallengeData != nil {
			source := casino.SourceAI
			if req.ChallengeID == -1 {
				source = casino.SourceDocument
			}
			in.Inline = &casino.Challenge{
				Source:        source,
				TechStack:     req.ChallengeData.TechStack,
				Title:         req.ChallengeData.Title,
				Description:   req.ChallengeData.Description,
				CodeSnippet1:  req.ChallengeData.CodeSnippet1,
				CodeSnippet2:  req.ChallengeData.CodeSnippet2,
				CorrectAnswer: req.ChallengeData.CorrectAnswer,
				Explanation:   req.ChallengeData.Explanation,
				Difficulty:    req.ChallengeData.Difficulty,
			}
		}

		out, err := svc.Play(r.Context(), in)
		switch {
		case errors.Is(err, casino.ErrInvalidRequest):
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
		case errors.Is(err, casino.ErrUserNotFound):
			writeHTTPError(w, http.StatusNotFound, "user_not_found")
		case errors.Is(err, casino.ErrChallengeNotFound):
			writeHTTPError(w, http.StatusNotFound, "challenge_not_found")
		case errors.Is(err, casino.ErrInsufficientFunds):
			writeHTTPError(w, http.StatusBadRequest, "insufficient_funds")
		case err != nil:
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
		default:
			writeJSON(w, http.StatusOK, out)
		}
	}
}

func leaderboardHandler(svc *casino.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				n = parsed
			}
		}
		entries, err := svc.Leaderboard(r.Context(), n)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": entries})
	}
}

func pointsHandler(svc *casino.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r.Context())
		balance, err := svc.Balance(r.Context(), user.ID)
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"user_id": user.ID,
			"points":  balance,
		})
	}
}

func dashboardStatsHandler(svc *casino.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Dashboard(r.Context())
		if err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}
