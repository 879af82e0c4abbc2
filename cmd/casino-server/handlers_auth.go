package main

import (
	"errors"
	"net/http"
	"time"

	"code-casino/internal/app/session"
	"code-casino/internal/store"
)

type registerRequest struct {
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	TechStack       string `json:"tech_stack"`
	ExperienceLevel string `json:"experience_level"`
	BirthDate       string `json:"birth_date"`
}

func registerHandler(sessions *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := decodeJSON(r, &req); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		birth, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_birth_date")
			return
		}
		user, token, err := sessions.Register(r.Context(), session.RegisterInput{
			Username:        req.Username,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			TechStack:       req.TechStack,
			ExperienceLevel: req.ExperienceLevel,
			BirthDate:       birth,
		})
		switch {
		case errors.Is(err, session.ErrInvalidRequest):
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
		case errors.Is(err, session.ErrUsernameTaken):
			writeHTTPError(w, http.StatusConflict, "username_taken")
		case err != nil:
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
		default:
			writeJSON(w, http.StatusCreated, map[string]any{
				"token": token,
				"user":  userJSON(user),
			})
		}
	}
}

type loginRequest struct {
	Username string `json:"username"`
}

func loginHandler(sessions *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		user, token, err := sessions.Login(r.Context(), req.Username)
		switch {
		case errors.Is(err, session.ErrInvalidRequest):
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
		case errors.Is(err, session.ErrUserNotFound):
			writeHTTPError(w, http.StatusNotFound, "user_not_found")
		case err != nil:
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
		default:
			writeJSON(w, http.StatusOK, map[string]any{
				"token": token,
				"user":  userJSON(user),
			})
		}
	}
}

func logoutHandler(sessions *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.Logout(r.Context(), bearerToken(r)); err != nil {
			writeHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

func userJSON(u *store.User) map[string]any {
	return map[string]any{
		"id":               u.ID,
		"username":         u.Username,
		"first_name":       u.FirstName,
		"last_name":        u.LastName,
		"tech_stack":       u.TechStack,
		"experience_level": u.ExperienceLevel,
		"zodiac_sign":      u.ZodiacSign,
	}
}
