package repository

import (
	"context"
	"fmt"

	"challengeHub/internal/models"

	"github.com/jmoiron/sqlx"
)

type MediaRepositoryImpl struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) *MediaRepositoryImpl {
	return &MediaRepositoryImpl{db: db}
}

// CreateTx inserts the entries that carry at least one url; the others are skipped.
func (r *MediaRepositoryImpl) CreateTx(ctx context.Context, tx *sqlx.Tx, postID int64, media []models.MediaInput) error {
	query := `INSERT INTO post_data (post_id, image_url, video_url) VALUES ($1, $2, $3)`

	for _, item := range media {
		if !item.HasURL() {
			continue
		}

		if _, err := tx.ExecContext(ctx, query, postID, nonEmpty(item.ImageURL), nonEmpty(item.VideoURL)); err != nil {
			return fmt.Errorf("failed to create post media: %w", err)
		}
	}

	return nil
}

func (r *MediaRepositoryImpl) DeleteByPostIDTx(ctx context.Context, tx *sqlx.Tx, postID int64) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM post_data WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("failed to delete post media: %w", err)
	}

	return nil
}

func (r *MediaRepositoryImpl) GetByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]models.PostData, error) {
	result := make(map[int64][]models.PostData, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM post_data WHERE post_id IN (?) ORDER BY id`, postIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build media query: %w", err)
	}

	var media []models.PostData
	if err := r.db.SelectContext(ctx, &media, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get post media: %w", err)
	}

	for _, item := range media {
		result[item.PostID] = append(result[item.PostID], item)
	}

	return result, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
