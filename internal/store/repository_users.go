package store

import (
	"context"
)

func (s *Store) CreateUser(ctx context.Context, u User) (int64, error) {
	var id int64
	err := s.Pool.QueryRow(ctx, `
		INSERT INTO users (username, first_name, last_name, tech_stack, experience_level, zodiac_sign, birth_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		u.Username, u.FirstName, u.LastName, u.TechStack, u.ExperienceLevel, u.ZodiacSign, u.BirthDate,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*User, error) {
	row := s.Pool.QueryRow(ctx, `
		SELECT id, username, first_name, last_name, tech_stack, experience_level, zodiac_sign, birth_date, created_at
		FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	row := s.Pool.QueryRow(ctx, `
		SELECT id, username, first_name, last_name, tech_stack, experience_level, zodiac_sign, birth_date, created_at
		FROM users WHERE username = $1`, username)
	return scanUser(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.TechStack,
		&u.ExperienceLevel, &u.ZodiacSign, &u.BirthDate, &u.CreatedAt)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &u, nil
}
