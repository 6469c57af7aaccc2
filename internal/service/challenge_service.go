package service

import (
	"context"
	"strings"
	"time"

	"challengeHub/internal/config"
	"challengeHub/internal/models"
	"challengeHub/internal/repository"
)

type ChallengeService interface {
	Create(ctx context.Context, req models.CreateChallengeRequest) (*models.Challenge, error)
	List(ctx context.Context) ([]models.Challenge, error)
	GetByID(ctx context.Context, id int64) (*models.Challenge, error)
	Update(ctx context.Context, id int64, req models.UpdateChallengeRequest) (*models.Challenge, error)
	Delete(ctx context.Context, id int64) error
}

type challengeService struct {
	challengeRepo repository.ChallengeRepository
	cache         LeaderboardCache
	minLeadTime   time.Duration
	now           func() time.Time
}

func NewChallengeService(challengeRepo repository.ChallengeRepository, cfg *config.Config, cache LeaderboardCache) ChallengeService {
	return &challengeService{
		challengeRepo: challengeRepo,
		cache:         cache,
		minLeadTime:   cfg.Challenge.MinLeadTime,
		now:           time.Now,
	}
}

func (s *challengeService) Create(ctx context.Context, req models.CreateChallengeRequest) (*models.Challenge, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, validationError("Title is required")
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, validationError("start_date and end_date are required")
	}
	if req.StartDate.Before(s.now().Add(s.minLeadTime)) {
		return nil, validationError("Start date too soon")
	}
	if err := checkChallengeBounds(req.StartDate, req.EndDate, req.MinParticipants, req.MaxParticipants); err != nil {
		return nil, err
	}

	challenge := &models.Challenge{
		Title:           title,
		Description:     req.Description,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          models.ChallengeStatusNotStart,
		MinParticipants: req.MinParticipants,
		MaxParticipants: req.MaxParticipants,
		Prize:           req.Prize,
		Rules:           req.Rules,
		Requirements:    req.Requirements,
	}

	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return nil, translate("create challenge", err, "Challenge not found")
	}

	return challenge, nil
}

func (s *challengeService) List(ctx context.Context) ([]models.Challenge, error) {
	challenges, err := s.challengeRepo.List(ctx)
	if err != nil {
		return nil, translate("list challenges", err, "Challenge not found")
	}

	return challenges, nil
}

func (s *challengeService) GetByID(ctx context.Context, id int64) (*models.Challenge, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate("get challenge", err, "Challenge not found")
	}

	return challenge, nil
}

// Update applies the provided fields and re-checks the date and participant invariants on the
// merged result. The lead time is only enforced when the start date actually moves.
func (s *challengeService) Update(ctx context.Context, id int64, req models.UpdateChallengeRequest) (*models.Challenge, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translate("update challenge", err, "Challenge not found")
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, validationError("Title cannot be empty")
		}
		challenge.Title = title
	}
	if req.Description != nil {
		challenge.Description = req.Description
	}
	if req.StartDate != nil && !req.StartDate.Equal(challenge.StartDate) {
		if req.StartDate.Before(s.now().Add(s.minLeadTime)) {
			return nil, validationError("Start date too soon")
		}
		challenge.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		challenge.EndDate = *req.EndDate
	}
	if req.Status != nil {
		switch *req.Status {
		case models.ChallengeStatusNotStart, models.ChallengeStatusOnGoing, models.ChallengeStatusEnded:
			challenge.Status = *req.Status
		default:
			return nil, validationError("Invalid challenge status")
		}
	}
	if req.MinParticipants != nil {
		challenge.MinParticipants = req.MinParticipants
	}
	if req.MaxParticipants != nil {
		challenge.MaxParticipants = req.MaxParticipants
	}
	if req.Prize != nil {
		challenge.Prize = req.Prize
	}
	if req.Rules != nil {
		challenge.Rules = req.Rules
	}
	if req.Requirements != nil {
		challenge.Requirements = req.Requirements
	}

	if err := checkChallengeBounds(challenge.StartDate, challenge.EndDate, challenge.MinParticipants, challenge.MaxParticipants); err != nil {
		return nil, err
	}

	if err := s.challengeRepo.Update(ctx, challenge); err != nil {
		return nil, translate("update challenge", err, "Challenge not found")
	}

	// cached leaderboards carry the title
	invalidateLeaderboard(ctx, s.cache, id)

	return challenge, nil
}

func (s *challengeService) Delete(ctx context.Context, id int64) error {
	if err := s.challengeRepo.SoftDelete(ctx, id); err != nil {
		return translate("delete challenge", err, "Challenge not found")
	}

	invalidateLeaderboard(ctx, s.cache, id)

	return nil
}

func checkChallengeBounds(start, end time.Time, minParticipants, maxParticipants *int) error {
	if !end.After(start) {
		return validationError("End date must be after start date")
	}
	if minParticipants != nil && maxParticipants != nil && *minParticipants > *maxParticipants {
		return validationError("min_participants cannot exceed max_participants")
	}
	return nil
}
