package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrnikesb96-source/Entry-Blog-project/internal/models"
)

// CreateComment inserts a comment for an existing post and author. The
// creation date defaults to the current date at the store.
func (s *Store) CreateComment(ctx context.Context, postID, authorID int, text string) (*models.Comment, error) {
	if s.pool == nil {
		return nil, errors.New("db not initialized")
	}
	const query = `
		INSERT INTO comments (text, blog_post_id, account_id)
		VALUES ($1, $2, $3)
		RETURNING id, text, date, blog_post_id, account_id
	`
	var created models.Comment
	err := s.pool.QueryRow(ctx, query, text, postID, authorID).Scan(
		&created.ID,
		&created.Text,
		&created.Date,
		&created.BlogPostID,
		&created.AccountID,
	)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return &created, nil
}

// ListCommentsForPost returns a post's comments in insertion order with the
// author's username joined in.
func (s *Store) ListCommentsForPost(ctx context.Context, postID int) ([]models.Comment, error) {
	if s.pool == nil {
		return nil, errors.New("db not initialized")
	}
	const query = `
		SELECT c.id, c.text, c.date, c.blog_post_id, c.account_id, a.username
		FROM comments c
		JOIN accounts a ON a.id = c.account_id
		WHERE c.blog_post_id = $1
		ORDER BY c.id
	`
	rows, err := s.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.Text,
			&comment.Date,
			&comment.BlogPostID,
			&comment.AccountID,
			&comment.Author,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return comments, nil
}
