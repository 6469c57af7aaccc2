package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Exists(ctx context.Context, userID, postID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND post_id = $2 AND design_id IS NULL)`,
		userID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	return exists, nil
}

func (r *likeRepository) Create(ctx context.Context, userID, postID int64) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO likes (user_id, post_id) VALUES ($1, $2)`, userID, postID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: like of post %d by user %d", ErrDuplicate, postID, userID)
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	return nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, postID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND post_id = $2 AND design_id IS NULL`, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	return checkAffected(result, fmt.Errorf("%w: like of post %d by user %d", ErrNotFound, postID, userID))
}

func (r *likeRepository) CountByPost(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM likes WHERE post_id = $1 AND design_id IS NULL`, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}
