package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"challengeHub/internal/models"

	"github.com/jmoiron/sqlx"
)

type challengeRepository struct {
	db *sqlx.DB
}

func NewChallengeRepository(db *sqlx.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	query := `
		INSERT INTO challenges
		(title, description, start_date, end_date, status, min_participants, max_participants, prize, rules, requirements)
		VALUES
		(:title, :description, :start_date, :end_date, :status, :min_participants, :max_participants, :prize, :rules, :requirements)
		RETURNING id, created_at
	`

	rows, err := r.db.NamedQueryContext(ctx, query, challenge)
	if err != nil {
		return fmt.Errorf("failed to create challenge: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&challenge.ID, &challenge.CreatedAt); err != nil {
			return fmt.Errorf("failed to read created challenge: %w", err)
		}
	}

	return rows.Err()
}

// GetByID returns the challenge unless it was soft-deleted.
func (r *challengeRepository) GetByID(ctx context.Context, id int64) (*models.Challenge, error) {
	query := `SELECT * FROM challenges WHERE id = $1 AND status <> 'unAvailable'`

	var challenge models.Challenge
	err := r.db.GetContext(ctx, &challenge, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: challenge %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	return &challenge, nil
}

// GetByIDTx is GetByID inside tx, optionally locking the row until the tx ends.
func (r *challengeRepository) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id int64, forUpdate bool) (*models.Challenge, error) {
	query := `SELECT * FROM challenges WHERE id = $1 AND status <> 'unAvailable'`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var challenge models.Challenge
	err := tx.GetContext(ctx, &challenge, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: challenge %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	return &challenge, nil
}

func (r *challengeRepository) List(ctx context.Context) ([]models.Challenge, error) {
	query := `SELECT * FROM challenges WHERE status <> 'unAvailable' ORDER BY created_at DESC`

	challenges := []models.Challenge{}
	if err := r.db.SelectContext(ctx, &challenges, query); err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}

	return challenges, nil
}

func (r *challengeRepository) Update(ctx context.Context, challenge *models.Challenge) error {
	query := `
		UPDATE challenges SET
			title = :title,
			description = :description,
			start_date = :start_date,
			end_date = :end_date,
			status = :status,
			min_participants = :min_participants,
			max_participants = :max_participants,
			prize = :prize,
			rules = :rules,
			requirements = :requirements
		WHERE id = :id AND status <> 'unAvailable'
	`

	result, err := r.db.NamedExecContext(ctx, query, challenge)
	if err != nil {
		return fmt.Errorf("failed to update challenge: %w", err)
	}

	return checkAffected(result, fmt.Errorf("%w: challenge %d", ErrNotFound, challenge.ID))
}

func (r *challengeRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE challenges SET status = 'unAvailable' WHERE id = $1 AND status <> 'unAvailable'`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}

	return checkAffected(result, fmt.Errorf("%w: challenge %d", ErrNotFound, id))
}

// AdvanceStatuses moves challenges along notStart -> onGoing -> ended based on their dates.
func (r *challengeRepository) AdvanceStatuses(ctx context.Context, now time.Time) (int64, int64, error) {
	endedResult, err := r.db.ExecContext(ctx, `
		UPDATE challenges SET status = 'ended'
		WHERE status IN ('notStart', 'onGoing') AND end_date <= $1
	`, now)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to end challenges: %w", err)
	}

	startedResult, err := r.db.ExecContext(ctx, `
		UPDATE challenges SET status = 'onGoing'
		WHERE status = 'notStart' AND start_date <= $1 AND end_date > $1
	`, now)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to start challenges: %w", err)
	}

	ended, err := endedResult.RowsAffected()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to check affected rows: %w", err)
	}
	started, err := startedResult.RowsAffected()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to check affected rows: %w", err)
	}

	return started, ended, nil
}
