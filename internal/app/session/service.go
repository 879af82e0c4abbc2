// Package session handles registration, login and token authentication.
// Sessions live only in the cache; losing Redis logs everyone out and
// nothing else.
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"code-casino/internal/cache"
	"code-casino/internal/game"
	"code-casino/internal/store"
)

// Store is the user persistence the service needs.
type Store interface {
	CreateUser(ctx context.Context, u store.User) (int64, error)
	GetUser(ctx context.Context, id int64) (*store.User, error)
	GetUserByUsername(ctx context.Context, username string) (*store.User, error)
}

// Sessions is the cache-backed token surface.
type Sessions interface {
	SetSession(ctx context.Context, token string, userID int64) error
	SessionUserID(ctx context.Context, token string) (int64, error)
	DeleteSession(ctx context.Context, token string) error
	ExtendSession(ctx context.Context, token string) error
	MarkUserActive(ctx context.Context, userID int64) error
}

// Ledger grants the signup bonus.
type Ledger interface {
	WelcomeGrant(ctx context.Context, userID, points int64) error
}

type Service struct {
	store    Store
	sessions Sessions
	ledger   Ledger

	welcomePoints int64
}

func NewService(st Store, sessions Sessions, ledger Ledger, welcomePoints int64) *Service {
	return &Service{store: st, sessions: sessions, ledger: ledger, welcomePoints: welcomePoints}
}

type RegisterInput struct {
	Username        string
	FirstName       string
	LastName        string
	TechStack       string
	ExperienceLevel string
	BirthDate       time.Time
}

// Register creates the user, grants the welcome bonus and opens a
// session. The zodiac sign is derived from the birth date, never taken
// from the client.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*store.User, string, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.FirstName == "" || in.TechStack == "" || in.BirthDate.IsZero() {
		return nil, "", ErrInvalidRequest
	}
	if _, err := s.store.GetUserByUsername(ctx, in.Username); err == nil {
		return nil, "", ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, "", err
	}

	birth := in.BirthDate
	u := store.User{
		Username:        in.Username,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		TechStack:       in.TechStack,
		ExperienceLevel: game.ParseDifficulty(in.ExperienceLevel).String(),
		ZodiacSign:      game.ZodiacSign(birth),
		BirthDate:       &birth,
	}
	id, err := s.store.CreateUser(ctx, u)
	if err != nil {
		return nil, "", err
	}
	u.ID = id

	if err := s.ledger.WelcomeGrant(ctx, id, s.welcomePoints); err != nil {
		return nil, "", err
	}

	token, err := s.openSession(ctx, id)
	if err != nil {
		return nil, "", err
	}
	log.Info().Int64("user_id", id).Str("username", u.Username).Msg("user registered")
	return &u, token, nil
}

// Login opens a new session for an existing username.
func (s *Service) Login(ctx context.Context, username string) (*store.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, "", ErrInvalidRequest
	}
	u, err := s.store.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, "", ErrUserNotFound
	}
	if err != nil {
		return nil, "", err
	}
	token, err := s.openSession(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Logout drops the session. An unknown token is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteSession(ctx, token)
}

// Authenticate resolves a token to its user, slides the session TTL and
// records the user as active today.
func (s *Service) Authenticate(ctx context.Context, token string) (*store.User, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	userID, err := s.sessions.SessionUserID(ctx, token)
	if errors.Is(err, cache.ErrMiss) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	u, err := s.store.GetUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		// Session outlived the user row.
		_ = s.sessions.DeleteSession(ctx, token)
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	if err := s.sessions.ExtendSession(ctx, token); err != nil {
		log.Warn().Err(err).Msg("session extend failed")
	}
	if err := s.sessions.MarkUserActive(ctx, userID); err != nil {
		log.Warn().Err(err).Msg("active user mark failed")
	}
	return u, nil
}

func (s *Service) openSession(ctx context.Context, userID int64) (string, error) {
	token := store.NewID()
	if err := s.sessions.SetSession(ctx, token, userID); err != nil {
		return "", err
	}
	return token, nil
}
