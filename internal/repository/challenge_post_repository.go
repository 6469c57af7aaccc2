package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"challengeHub/internal/models"

	"github.com/jmoiron/sqlx"
)

// postViewSelect computes like and comment counts in the same statement as the posts themselves.
const postViewSelect = `
	SELECT cp.post_id, cp.challenge_id, cp.user_id, cp.challenge_name, cp.is_design, cp.is_active,
		cp.created_at, cp.deleted_at,
		p.title, p.description, p.post_type, p.is_public,
		u.id AS "author.id", u.username AS "author.username",
		u.full_name AS "author.full_name", u.avatar AS "author.avatar",
		(SELECT COUNT(*) FROM likes l WHERE l.post_id = cp.post_id AND l.design_id IS NULL) AS total_likes,
		(SELECT COUNT(*) FROM comments c WHERE c.post_id = cp.post_id) AS total_comments
	FROM challenge_posts cp
	JOIN posts p ON p.id = cp.post_id
	JOIN users u ON u.id = cp.user_id
`

type ChallengePostRepositoryImpl struct {
	db    *sqlx.DB
	media MediaRepository
}

func NewChallengePostRepository(db *sqlx.DB, media MediaRepository) *ChallengePostRepositoryImpl {
	return &ChallengePostRepositoryImpl{db: db, media: media}
}

func (r *ChallengePostRepositoryImpl) HasActivePost(ctx context.Context, tx *sqlx.Tx, userID int64) (bool, error) {
	var exists bool
	err := tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM challenge_posts WHERE user_id = $1 AND is_active)`, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check active challenge post: %w", err)
	}

	return exists, nil
}

func (r *ChallengePostRepositoryImpl) CreatePost(ctx context.Context, tx *sqlx.Tx, post *models.Post) error {
	query := `
		INSERT INTO posts (title, description, post_type, user_id, is_public)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := tx.QueryRowxContext(ctx, query, post.Title, post.Description, post.PostType, post.UserID, post.IsPublic).
		Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *ChallengePostRepositoryImpl) CreateChallengePost(ctx context.Context, tx *sqlx.Tx, cp *models.ChallengePost) error {
	query := `
		INSERT INTO challenge_posts (post_id, challenge_id, user_id, challenge_name, is_design, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING created_at
	`

	err := tx.QueryRowxContext(ctx, query, cp.PostID, cp.ChallengeID, cp.UserID, cp.ChallengeName, cp.IsDesign).
		Scan(&cp.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: active challenge post for user %d", ErrDuplicate, cp.UserID)
		}
		return fmt.Errorf("failed to create challenge post: %w", err)
	}
	cp.IsActive = true

	return nil
}

func (r *ChallengePostRepositoryImpl) GetActive(ctx context.Context, postID int64) (*models.ChallengePost, error) {
	var cp models.ChallengePost
	err := r.db.GetContext(ctx, &cp, `SELECT * FROM challenge_posts WHERE post_id = $1 AND is_active`, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: challenge post %d", ErrNotFound, postID)
		}
		return nil, fmt.Errorf("failed to get challenge post: %w", err)
	}

	return &cp, nil
}

// GetActiveTx locks the challenge post row for the rest of tx.
func (r *ChallengePostRepositoryImpl) GetActiveTx(ctx context.Context, tx *sqlx.Tx, postID int64) (*models.ChallengePost, error) {
	var cp models.ChallengePost
	err := tx.GetContext(ctx, &cp, `SELECT * FROM challenge_posts WHERE post_id = $1 AND is_active FOR UPDATE`, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: challenge post %d", ErrNotFound, postID)
		}
		return nil, fmt.Errorf("failed to get challenge post: %w", err)
	}

	return &cp, nil
}

func (r *ChallengePostRepositoryImpl) GetPostTx(ctx context.Context, tx *sqlx.Tx, postID int64) (*models.Post, error) {
	var post models.Post
	err := tx.GetContext(ctx, &post, `SELECT * FROM posts WHERE id = $1`, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: post %d", ErrNotFound, postID)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *ChallengePostRepositoryImpl) UpdatePost(ctx context.Context, tx *sqlx.Tx, post *models.Post) error {
	result, err := tx.ExecContext(ctx,
		`UPDATE posts SET title = $1, description = $2, is_public = $3 WHERE id = $4`,
		post.Title, post.Description, post.IsPublic, post.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	return checkAffected(result, fmt.Errorf("%w: post %d", ErrNotFound, post.ID))
}

func (r *ChallengePostRepositoryImpl) SetDesign(ctx context.Context, tx *sqlx.Tx, postID int64, isDesign bool) error {
	result, err := tx.ExecContext(ctx,
		`UPDATE challenge_posts SET is_design = $1 WHERE post_id = $2 AND is_active`, isDesign, postID)
	if err != nil {
		return fmt.Errorf("failed to update challenge post: %w", err)
	}

	return checkAffected(result, fmt.Errorf("%w: challenge post %d", ErrNotFound, postID))
}

func (r *ChallengePostRepositoryImpl) Deactivate(ctx context.Context, tx *sqlx.Tx, postID int64, at time.Time) error {
	result, err := tx.ExecContext(ctx,
		`UPDATE challenge_posts SET is_active = FALSE, deleted_at = $1 WHERE post_id = $2 AND is_active`, at, postID)
	if err != nil {
		return fmt.Errorf("failed to delete challenge post: %w", err)
	}

	return checkAffected(result, fmt.Errorf("%w: challenge post %d", ErrNotFound, postID))
}

// Find returns active challenge posts matching filter, newest first, with media attached.
func (r *ChallengePostRepositoryImpl) Find(ctx context.Context, filter PostFilter) ([]models.ChallengePostView, error) {
	conditions := []string{"cp.is_active"}
	args := []interface{}{}

	if filter.PostID != nil {
		args = append(args, *filter.PostID)
		conditions = append(conditions, fmt.Sprintf("cp.post_id = $%d", len(args)))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("cp.user_id = $%d", len(args)))
	}
	if filter.ChallengeID != nil {
		args = append(args, *filter.ChallengeID)
		conditions = append(conditions, fmt.Sprintf("cp.challenge_id = $%d", len(args)))
	}
	if filter.PublicOnly {
		conditions = append(conditions, "p.is_public")
	}

	query := postViewSelect + " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY cp.created_at DESC, cp.post_id DESC"

	posts := []models.ChallengePostView{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get challenge posts: %w", err)
	}

	if err := r.attachMedia(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// Leaderboard ranks the active posts of a challenge by likes. Ties go to the earlier submission.
// The second return value counts every active post of the challenge, not only the ranked ones.
func (r *ChallengePostRepositoryImpl) Leaderboard(ctx context.Context, challengeID int64, limit int) ([]models.ChallengePostView, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM challenge_posts WHERE challenge_id = $1 AND is_active`, challengeID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count challenge posts: %w", err)
	}

	query := postViewSelect + `
		WHERE cp.is_active AND cp.challenge_id = $1
		ORDER BY total_likes DESC, cp.created_at ASC, cp.post_id ASC
		LIMIT $2
	`

	posts := []models.ChallengePostView{}
	if err := r.db.SelectContext(ctx, &posts, query, challengeID, limit); err != nil {
		return nil, 0, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	if err := r.attachMedia(ctx, posts); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *ChallengePostRepositoryImpl) attachMedia(ctx context.Context, posts []models.ChallengePostView) error {
	ids := make([]int64, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.PostID)
	}

	media, err := r.media.GetByPostIDs(ctx, ids)
	if err != nil {
		return err
	}

	for i := range posts {
		posts[i].Media = media[posts[i].PostID]
		if posts[i].Media == nil {
			posts[i].Media = []models.PostData{}
		}
	}

	return nil
}
