package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"challengeHub/internal/models"

	"github.com/jmoiron/sqlx"
)

const entryViewSelect = `
	SELECT e.id, e.challenge_id, e.user_id, e.created_at,
		u.id AS "user.id", u.username AS "user.username", u.email AS "user.email",
		u.full_name AS "user.full_name", u.avatar AS "user.avatar"
	FROM challenge_entries e
	JOIN users u ON u.id = e.user_id
`

type entryRepository struct {
	db *sqlx.DB
}

func NewEntryRepository(db *sqlx.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) CreateTx(ctx context.Context, tx *sqlx.Tx, entry *models.ChallengeEntry) error {
	query := `
		INSERT INTO challenge_entries (challenge_id, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := tx.QueryRowxContext(ctx, query, entry.ChallengeID, entry.UserID).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: entry for challenge %d and user %d", ErrDuplicate, entry.ChallengeID, entry.UserID)
		}
		return fmt.Errorf("failed to create challenge entry: %w", err)
	}

	return nil
}

func (r *entryRepository) CountByChallengeTx(ctx context.Context, tx *sqlx.Tx, challengeID int64) (int, error) {
	var count int
	err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM challenge_entries WHERE challenge_id = $1`, challengeID)
	if err != nil {
		return 0, fmt.Errorf("failed to count challenge entries: %w", err)
	}

	return count, nil
}

func (r *entryRepository) ExistsTx(ctx context.Context, tx *sqlx.Tx, challengeID, userID int64) (bool, error) {
	var exists bool
	err := tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM challenge_entries WHERE challenge_id = $1 AND user_id = $2)`,
		challengeID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check challenge entry: %w", err)
	}

	return exists, nil
}

func (r *entryRepository) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id int64) (*models.ChallengeEntry, error) {
	var entry models.ChallengeEntry
	err := tx.GetContext(ctx, &entry, `SELECT * FROM challenge_entries WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: challenge entry %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get challenge entry: %w", err)
	}

	return &entry, nil
}

func (r *entryRepository) UpdateTx(ctx context.Context, tx *sqlx.Tx, entry *models.ChallengeEntry) error {
	result, err := tx.ExecContext(ctx,
		`UPDATE challenge_entries SET challenge_id = $1, user_id = $2 WHERE id = $3`,
		entry.ChallengeID, entry.UserID, entry.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: entry for challenge %d and user %d", ErrDuplicate, entry.ChallengeID, entry.UserID)
		}
		return fmt.Errorf("failed to update challenge entry: %w", err)
	}

	return checkAffected(result, fmt.Errorf("%w: challenge entry %d", ErrNotFound, entry.ID))
}

func (r *entryRepository) List(ctx context.Context) ([]models.ChallengeEntryView, error) {
	entries := []models.ChallengeEntryView{}
	if err := r.db.SelectContext(ctx, &entries, entryViewSelect+` ORDER BY e.id`); err != nil {
		return nil, fmt.Errorf("failed to list challenge entries: %w", err)
	}

	return entries, nil
}

func (r *entryRepository) GetByID(ctx context.Context, id int64) (*models.ChallengeEntryView, error) {
	var entry models.ChallengeEntryView
	err := r.db.GetContext(ctx, &entry, entryViewSelect+` WHERE e.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: challenge entry %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get challenge entry: %w", err)
	}

	return &entry, nil
}

func (r *entryRepository) ListByChallenge(ctx context.Context, challengeID int64) ([]models.ChallengeEntryView, error) {
	entries := []models.ChallengeEntryView{}
	err := r.db.SelectContext(ctx, &entries, entryViewSelect+` WHERE e.challenge_id = $1 ORDER BY e.id`, challengeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenge entries: %w", err)
	}

	return entries, nil
}

func (r *entryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM challenge_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete challenge entry: %w", err)
	}

	return checkAffected(result, fmt.Errorf("%w: challenge entry %d", ErrNotFound, id))
}
