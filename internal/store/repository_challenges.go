package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const challengeColumns = `id, tech_stack, title, description, code_snippet1, code_snippet2, correct_answer, explanation, difficulty, created_at`

func (s *Store) ListChallenges(ctx context.Context, techStack, difficulty string) ([]Challenge, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT `+challengeColumns+`
		FROM challenges
		WHERE tech_stack = $1 AND difficulty = $2
		ORDER BY id`, techStack, difficulty)
	if err != nil {
		return nil, err
	}
	return collectChallenges(rows)
}

func (s *Store) ListChallengesByStack(ctx context.Context, techStack string) ([]Challenge, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT `+challengeColumns+`
		FROM challenges
		WHERE tech_stack = $1
		ORDER BY id`, techStack)
	if err != nil {
		return nil, err
	}
	return collectChallenges(rows)
}

func (s *Store) ListAllChallenges(ctx context.Context) ([]Challenge, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT `+challengeColumns+`
		FROM challenges
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectChallenges(rows)
}

func (s *Store) GetChallenge(ctx context.Context, id int64) (*Challenge, error) {
	row := s.Pool.QueryRow(ctx, `
		SELECT `+challengeColumns+`
		FROM challenges WHERE id = $1`, id)
	var c Challenge
	if err := scanChallenge(row, &c); err != nil {
		return nil, mapNotFound(err)
	}
	return &c, nil
}

func (s *Store) InsertChallenge(ctx context.Context, c Challenge) (int64, error) {
	var id int64
	err := s.Pool.QueryRow(ctx, `
		INSERT INTO challenges (tech_stack, title, description, code_snippet1, code_snippet2, correct_answer, explanation, difficulty)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		c.TechStack, c.Title, c.Description, c.CodeSnippet1, c.CodeSnippet2,
		c.CorrectAnswer, c.Explanation, c.Difficulty,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) CountChallenges(ctx context.Context) (int64, error) {
	var n int64
	if err := s.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM challenges`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanChallenge(row rowScanner, c *Challenge) error {
	return row.Scan(&c.ID, &c.TechStack, &c.Title, &c.Description, &c.CodeSnippet1,
		&c.CodeSnippet2, &c.CorrectAnswer, &c.Explanation, &c.Difficulty, &c.CreatedAt)
}

func collectChallenges(rows pgx.Rows) ([]Challenge, error) {
	defer rows.Close()
	out := make([]Challenge, 0, 16)
	for rows.Next() {
		var c Challenge
		if err := scanChallenge(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
