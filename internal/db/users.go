package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mrnikesb96-source/Entry-Blog-project/internal/models"
)

// ErrDuplicateEmail is returned when an insert hits the accounts email
// unique index.
var ErrDuplicateEmail = errors.New("email already registered")

// GetUserByEmail does a case-sensitive exact match and returns nil when no
// account carries the email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.pool == nil {
		return nil, errors.New("db not initialized")
	}
	const query = `
		SELECT id, username, email, password_hash, role
		FROM accounts
		WHERE email = $1
	`
	var user models.User
	err := s.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	if s.pool == nil {
		return nil, errors.New("db not initialized")
	}
	const query = `
		SELECT id, username, email, password_hash, role
		FROM accounts
		WHERE id = $1
	`
	var user models.User
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &user, nil
}

// CreateUser inserts an account. The digest must already be hashed; the
// plaintext password never reaches this layer.
func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash, role string) (*models.User, error) {
	if s.pool == nil {
		return nil, errors.New("db not initialized")
	}
	const query = `
		INSERT INTO accounts (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, password_hash, role
	`
	var created models.User
	err := s.pool.QueryRow(ctx, query, username, email, passwordHash, role).Scan(
		&created.ID,
		&created.Username,
		&created.Email,
		&created.PasswordHash,
		&created.Role,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &created, nil
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	if s.pool == nil {
		return 0, errors.New("db not initialized")
	}
	var total int
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM accounts").Scan(&total); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}
