package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"challengeHub/internal/models"

	"github.com/jmoiron/sqlx"
)

const commentViewSelect = `
	SELECT c.id, c.user_id, c.post_id, c.parent_comment_id, c.content, c.created_at,
		u.id AS "author.id", u.username AS "author.username",
		u.full_name AS "author.full_name", u.avatar AS "author.avatar"
	FROM comments c
	JOIN users u ON u.id = c.user_id
`

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (user_id, post_id, parent_comment_id, content)
		VALUES (:user_id, :post_id, :parent_comment_id, :content)
		RETURNING id, created_at
	`

	rows, err := r.db.NamedQueryContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&comment.ID, &comment.CreatedAt); err != nil {
			return fmt.Errorf("failed to read created comment: %w", err)
		}
	}

	return rows.Err()
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, `SELECT * FROM comments WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: comment %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) GetViewByID(ctx context.Context, id int64) (*models.CommentView, error) {
	var comment models.CommentView
	err := r.db.GetContext(ctx, &comment, commentViewSelect+` WHERE c.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: comment %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) CountByPost(ctx context.Context, postID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID); err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return count, nil
}

func (r *commentRepository) CountTopLevel(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM comments WHERE post_id = $1 AND parent_comment_id IS NULL`, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return count, nil
}

// ListTopLevel returns one page of top-level comments, newest first.
func (r *commentRepository) ListTopLevel(ctx context.Context, postID int64, limit, offset int) ([]models.CommentView, error) {
	query := commentViewSelect + `
		WHERE c.post_id = $1 AND c.parent_comment_id IS NULL
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $2 OFFSET $3
	`

	comments := []models.CommentView{}
	if err := r.db.SelectContext(ctx, &comments, query, postID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

// ListReplies returns the direct replies of the given comments, oldest first.
func (r *commentRepository) ListReplies(ctx context.Context, parentIDs []int64) ([]models.CommentView, error) {
	replies := []models.CommentView{}
	if len(parentIDs) == 0 {
		return replies, nil
	}

	query, args, err := sqlx.In(commentViewSelect+` WHERE c.parent_comment_id IN (?) ORDER BY c.created_at ASC, c.id ASC`, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build replies query: %w", err)
	}

	if err := r.db.SelectContext(ctx, &replies, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}

	return replies, nil
}
