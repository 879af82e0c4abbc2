package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"code-casino/internal/app/casino"
	"code-casino/internal/app/session"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(db, ca pinger, casinoSvc *casino.Service, sessionSvc *session.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(apiLogMiddleware()).Get("/healthz", healthHandler(db, ca))

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLogMiddleware())
		r.Use(bodyCaptureMiddleware(4096))

		r.Post("/auth/register", registerHandler(sessionSvc))
		r.Post("/auth/login", loginHandler(sessionSvc))

		r.Group(func(r chi.Router) {
			r.Use(userAuthMiddleware(sessionSvc))
			r.Post("/auth/logout", logoutHandler(sessionSvc))
			r.Get("/casino/challenge", challengeHandler(casinoSvc))
			r.Get("/casino/daily", dailyChallengeHandler(casinoSvc))
			r.Post("/casino/play", playHandler(casinoSvc))
			r.Get("/casino/leaderboard", leaderboardHandler(casinoSvc))
			r.Get("/casino/points", pointsHandler(casinoSvc))
			r.Get("/dashboard/stats", dashboardStatsHandler(casinoSvc))
		})
	})

	return r
}

func healthHandler(db, ca pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			writeHTTPError(w, http.StatusServiceUnavailable, "db_unavailable")
			return
		}
		if err := ca.Ping(r.Context()); err != nil {
			writeHTTPError(w, http.StatusServiceUnavailable, "cache_unavailable")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}
