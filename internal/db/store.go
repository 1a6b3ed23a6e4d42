package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

// Pool returns the underlying pgxpool.Pool
func (s *Store) Pool() *pgxpool.Pool {
	return s.pool
}

func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitSchema creates the four tables if they do not exist yet. Email and
// title uniqueness live in the schema so concurrent inserts cannot race past
// a prior read.
func (s *Store) InitSchema(ctx context.Context) error {
	if s.pool == nil {
		return errors.New("db not initialized")
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
		    id SERIAL PRIMARY KEY,
		    username TEXT NOT NULL,
		    email TEXT NOT NULL UNIQUE,
		    password_hash TEXT NOT NULL,
		    role TEXT NOT NULL DEFAULT 'member'
		);`,
		`CREATE TABLE IF NOT EXISTS blog_posts (
		    id SERIAL PRIMARY KEY,
		    title TEXT NOT NULL UNIQUE,
		    subtitle TEXT NOT NULL,
		    date TEXT NOT NULL,
		    body TEXT NOT NULL,
		    img_url TEXT NOT NULL,
		    account_id INTEGER REFERENCES accounts(id)
		);`,
		`CREATE TABLE IF NOT EXISTS comments (
		    id SERIAL PRIMARY KEY,
		    text TEXT NOT NULL,
		    date DATE NOT NULL DEFAULT CURRENT_DATE,
		    blog_post_id INTEGER NOT NULL REFERENCES blog_posts(id),
		    account_id INTEGER NOT NULL REFERENCES accounts(id)
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
		    token TEXT PRIMARY KEY,
		    account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		    expires TIMESTAMPTZ NOT NULL,
		    created TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// isUniqueViolation reports whether err is a unique-constraint violation
// (PostgreSQL error code 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
