package db

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mrnikesb96-source/Entry-Blog-project/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

const (
	// SessionDuration bounds how long a login survives without re-auth.
	SessionDuration = 24 * time.Hour
	// tokenLength in bytes; 32 bytes hex-encode to 64 characters.
	tokenLength = 32
)

// CreateSession replaces any existing sessions for the account with a fresh
// opaque token.
func (s *Store) CreateSession(ctx context.Context, accountID int) (*models.Session, error) {
	if s.pool == nil {
		return nil, errors.New("db not initialized")
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	now := time.Now()
	expires := now.Add(SessionDuration)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM sessions WHERE account_id = $1", accountID); err != nil {
		return nil, fmt.Errorf("delete old sessions: %w", err)
	}
	const query = `INSERT INTO sessions (token, account_id, expires, created) VALUES ($1, $2, $3, $4)`
	if _, err := tx.Exec(ctx, query, token, accountID, expires, now); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("create session: commit: %w", err)
	}

	return &models.Session{
		Token:     token,
		AccountID: accountID,
		Expires:   expires,
		Created:   now,
	}, nil
}

// GetUserBySession resolves a token to its account. Expired tokens and
// tokens whose account has gone away both resolve to ErrSessionNotFound, so
// callers fail soft to anonymous.
func (s *Store) GetUserBySession(ctx context.Context, token string) (*models.User, error) {
	if s.pool == nil {
		return nil, errors.New("db not initialized")
	}
	const query = `
		SELECT a.id, a.username, a.email, a.password_hash, a.role
		FROM sessions s
		JOIN accounts a ON a.id = s.account_id
		WHERE s.token = $1 AND s.expires > now()
	`
	var user models.User
	err := s.pool.QueryRow(ctx, query, token).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get user by session: %w", err)
	}
	return &user, nil
}

func (s *Store) DeleteSession(ctx context.Context, token string) error {
	if s.pool == nil {
		return errors.New("db not initialized")
	}
	tag, err := s.pool.Exec(ctx, "DELETE FROM sessions WHERE token = $1", token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// CleanupExpiredSessions purges rows whose expiry has passed.
func (s *Store) CleanupExpiredSessions(ctx context.Context) error {
	if s.pool == nil {
		return errors.New("db not initialized")
	}
	if _, err := s.pool.Exec(ctx, "DELETE FROM sessions WHERE expires < now()"); err != nil {
		return fmt.Errorf("cleanup expired sessions: %w", err)
	}
	return nil
}

func generateToken() (string, error) {
	bytes := make([]byte, tokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
