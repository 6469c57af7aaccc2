package service

import (
	"context"
	"errors"

	"challengeHub/internal/models"
	"challengeHub/internal/repository"

	"github.com/jmoiron/sqlx"
)

type EntryService interface {
	Create(ctx context.Context, challengeID, userID int64) (*models.ChallengeEntry, error)
	List(ctx context.Context) ([]models.ChallengeEntryView, error)
	GetByID(ctx context.Context, id int64) (*models.ChallengeEntryView, error)
	ListByChallenge(ctx context.Context, challengeID int64) ([]models.ChallengeEntryView, error)
	Update(ctx context.Context, id int64, req models.UpdateEntryRequest) (*models.ChallengeEntry, error)
	Delete(ctx context.Context, id int64) error
}

type entryService struct {
	db            repository.Transactor
	entryRepo     repository.EntryRepository
	challengeRepo repository.ChallengeRepository
}

func NewEntryService(db repository.Transactor, entryRepo repository.EntryRepository, challengeRepo repository.ChallengeRepository) EntryService {
	return &entryService{
		db:            db,
		entryRepo:     entryRepo,
		challengeRepo: challengeRepo,
	}
}

const alreadyJoinedMessage = "You have already joined this challenge"

// Create joins a user to a challenge. The challenge row stays locked until commit, so concurrent
// joins are counted one after another.
func (s *entryService) Create(ctx context.Context, challengeID, userID int64) (*models.ChallengeEntry, error) {
	if challengeID <= 0 || userID <= 0 {
		return nil, validationError("challenge_id and user_id are required")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, translate("begin transaction", err, "")
	}
	defer tx.Rollback()

	if err := s.ensureCapacity(ctx, tx, challengeID); err != nil {
		return nil, err
	}

	exists, err := s.entryRepo.ExistsTx(ctx, tx, challengeID, userID)
	if err != nil {
		return nil, translate("create challenge entry", err, "")
	}
	if exists {
		return nil, conflictError(alreadyJoinedMessage)
	}

	entry := &models.ChallengeEntry{ChallengeID: challengeID, UserID: userID}
	if err := s.entryRepo.CreateTx(ctx, tx, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflictError(alreadyJoinedMessage)
		}
		return nil, translate("create challenge entry", err, "")
	}

	if err := tx.Commit(); err != nil {
		return nil, translate("commit challenge entry", err, "")
	}

	return entry, nil
}

func (s *entryService) ensureCapacity(ctx context.Context, tx *sqlx.Tx, challengeID int64) error {
	challenge, err := s.challengeRepo.GetByIDTx(ctx, tx, challengeID, true)
	if err != nil {
		return translate("lock challenge", err, "Challenge not found")
	}

	if challenge.MaxParticipants == nil {
		return nil
	}

	count, err := s.entryRepo.CountByChallengeTx(ctx, tx, challengeID)
	if err != nil {
		return translate("count challenge entries", err, "")
	}
	if count >= *challenge.MaxParticipants {
		return validationError("Challenge is full")
	}

	return nil
}

func (s *entryService) List(ctx context.Context) ([]models.ChallengeEntryView, error) {
	entries, err := s.entryRepo.List(ctx)
	if err != nil {
		return nil, translate("list challenge entries", err, "")
	}

	return entries, nil
}

func (s *entryService) GetByID(ctx context.Context, id int64) (*models.ChallengeEntryView, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate("get challenge entry", err, "Challenge entry not found")
	}

	return entry, nil
}

func (s *entryService) ListByChallenge(ctx context.Context, challengeID int64) ([]models.ChallengeEntryView, error) {
	entries, err := s.entryRepo.ListByChallenge(ctx, challengeID)
	if err != nil {
		return nil, translate("list challenge entries", err, "")
	}

	return entries, nil
}

// Update moves an entry to another challenge and/or user. Capacity of the target challenge and
// pair uniqueness are checked the same way as on create.
func (s *entryService) Update(ctx context.Context, id int64, req models.UpdateEntryRequest) (*models.ChallengeEntry, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, translate("begin transaction", err, "")
	}
	defer tx.Rollback()

	entry, err := s.entryRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		return nil, translate("update challenge entry", err, "Challenge entry not found")
	}

	updated := *entry
	if req.ChallengeID != nil {
		updated.ChallengeID = *req.ChallengeID
	}
	if req.UserID != nil {
		updated.UserID = *req.UserID
	}

	if updated.ChallengeID != entry.ChallengeID {
		if err := s.ensureCapacity(ctx, tx, updated.ChallengeID); err != nil {
			return nil, err
		}
	}

	if updated.ChallengeID != entry.ChallengeID || updated.UserID != entry.UserID {
		exists, err := s.entryRepo.ExistsTx(ctx, tx, updated.ChallengeID, updated.UserID)
		if err != nil {
			return nil, translate("update challenge entry", err, "")
		}
		if exists {
			return nil, conflictError("User has already joined this challenge")
		}
	}

	if err := s.entryRepo.UpdateTx(ctx, tx, &updated); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflictError("User has already joined this challenge")
		}
		return nil, translate("update challenge entry", err, "Challenge entry not found")
	}

	if err := tx.Commit(); err != nil {
		return nil, translate("commit challenge entry", err, "")
	}

	return &updated, nil
}

func (s *entryService) Delete(ctx context.Context, id int64) error {
	if err := s.entryRepo.Delete(ctx, id); err != nil {
		return translate("delete challenge entry", err, "Challenge entry not found")
	}

	return nil
}
