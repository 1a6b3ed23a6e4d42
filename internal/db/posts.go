package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mrnikesb96-source/Entry-Blog-project/internal/models"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrDuplicateTitle = errors.New("a post with this title already exists")
)

// PublishDateFormat renders dates like "September 01, 2026".
const PublishDateFormat = "January 02, 2006"

// ListPosts returns every post in insertion order. The author username comes
// along via a left join so posts with a deleted author still list.
func (s *Store) ListPosts(ctx context.Context) ([]models.Post, error) {
	if s.pool == nil {
		return nil, errors.New("db not initialized")
	}
	const query = `
		SELECT
			p.id,
			p.title,
			p.subtitle,
			p.date,
			p.body,
			p.img_url,
			p.account_id,
			COALESCE(a.username, '')
		FROM blog_posts p
		LEFT JOIN accounts a ON a.id = p.account_id
		ORDER BY p.id
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Subtitle,
			&post.Date,
			&post.Body,
			&post.ImgURL,
			&post.AccountID,
			&post.Author,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return posts, nil
}

func (s *Store) GetPost(ctx context.Context, id int) (*models.Post, error) {
	if s.pool == nil {
		return nil, errors.New("db not initialized")
	}
	const query = `
		SELECT
			p.id,
			p.title,
			p.subtitle,
			p.date,
			p.body,
			p.img_url,
			p.account_id,
			COALESCE(a.username, '')
		FROM blog_posts p
		LEFT JOIN accounts a ON a.id = p.account_id
		WHERE p.id = $1
	`
	var post models.Post
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Subtitle,
		&post.Date,
		&post.Body,
		&post.ImgURL,
		&post.AccountID,
		&post.Author,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &post, nil
}

// CreatePost inserts a post stamped with today's date.
func (s *Store) CreatePost(ctx context.Context, fields models.PostFields, authorID int) (*models.Post, error) {
	if s.pool == nil {
		return nil, errors.New("db not initialized")
	}
	const query = `
		INSERT INTO blog_posts (title, subtitle, date, body, img_url, account_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, subtitle, date, body, img_url, account_id
	`
	var created models.Post
	err := s.pool.QueryRow(
		ctx,
		query,
		fields.Title,
		fields.Subtitle,
		time.Now().Format(PublishDateFormat),
		fields.Body,
		fields.ImgURL,
		authorID,
	).Scan(
		&created.ID,
		&created.Title,
		&created.Subtitle,
		&created.Date,
		&created.Body,
		&created.ImgURL,
		&created.AccountID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &created, nil
}

// UpdatePost overwrites the editable fields and reassigns the author. The
// publish date keeps its original value.
func (s *Store) UpdatePost(ctx context.Context, id int, fields models.PostFields, authorID int) (*models.Post, error) {
	if s.pool == nil {
		return nil, errors.New("db not initialized")
	}
	const query = `
		UPDATE blog_posts
		SET title = $1, subtitle = $2, body = $3, img_url = $4, account_id = $5
		WHERE id = $6
		RETURNING id, title, subtitle, date, body, img_url, account_id
	`
	var updated models.Post
	err := s.pool.QueryRow(
		ctx,
		query,
		fields.Title,
		fields.Subtitle,
		fields.Body,
		fields.ImgURL,
		authorID,
		id,
	).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Subtitle,
		&updated.Date,
		&updated.Body,
		&updated.ImgURL,
		&updated.AccountID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	return &updated, nil
}

// DeletePost removes the post and every comment referencing it inside one
// transaction, so a failure leaves both tables untouched.
func (s *Store) DeletePost(ctx context.Context, id int) error {
	if s.pool == nil {
		return errors.New("db not initialized")
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("delete post: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM comments WHERE blog_post_id = $1", id); err != nil {
		return fmt.Errorf("delete post comments: %w", err)
	}

	tag, err := tx.Exec(ctx, "DELETE FROM blog_posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPostNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("delete post: commit: %w", err)
	}
	return nil
}
