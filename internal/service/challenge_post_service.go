package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"challengeHub/internal/models"
	"challengeHub/internal/repository"
)

type ChallengePostService interface {
	Create(ctx context.Context, userID int64, req models.CreateChallengePostRequest) (*models.ChallengePostView, error)
	GetAll(ctx context.Context) ([]models.ChallengePostView, error)
	GetByUser(ctx context.Context, userID int64) ([]models.ChallengePostView, error)
	GetByChallenge(ctx context.Context, challengeID int64) ([]models.ChallengePostView, error)
	GetByID(ctx context.Context, postID int64) (*models.ChallengePostView, error)
	Update(ctx context.Context, postID int64, caller models.Caller, req models.UpdateChallengePostRequest) (*models.ChallengePostView, error)
	SoftDelete(ctx context.Context, postID int64, caller models.Caller) (*models.DeletedPostSummary, error)
}

type challengePostService struct {
	db            repository.Transactor
	postRepo      repository.ChallengePostRepository
	challengeRepo repository.ChallengeRepository
	mediaRepo     repository.MediaRepository
	cache         LeaderboardCache
	now           func() time.Time
}

func NewChallengePostService(
	db repository.Transactor,
	postRepo repository.ChallengePostRepository,
	challengeRepo repository.ChallengeRepository,
	mediaRepo repository.MediaRepository,
	cache LeaderboardCache,
) ChallengePostService {
	return &challengePostService{
		db:            db,
		postRepo:      postRepo,
		challengeRepo: challengeRepo,
		mediaRepo:     mediaRepo,
		cache:         cache,
		now:           time.Now,
	}
}

const (
	activePostMessage   = "You already have an active challenge post"
	postNotFoundMessage = "Challenge post not found"
)

func (s *challengePostService) Create(ctx context.Context, userID int64, req models.CreateChallengePostRequest) (*models.ChallengePostView, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || req.ChallengeID <= 0 {
		return nil, validationError("title and challenge_id are required")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, translate("begin transaction", err, "")
	}
	defer tx.Rollback()

	hasActive, err := s.postRepo.HasActivePost(ctx, tx, userID)
	if err != nil {
		return nil, translate("create challenge post", err, "")
	}
	if hasActive {
		return nil, conflictError(activePostMessage)
	}

	challenge, err := s.challengeRepo.GetByIDTx(ctx, tx, req.ChallengeID, false)
	if err != nil {
		return nil, translate("create challenge post", err, "Challenge not found")
	}

	post := &models.Post{
		Title:       title,
		Description: req.Description,
		PostType:    models.PostTypeChallenge,
		UserID:      userID,
		IsPublic:    true,
	}
	if req.IsPublic != nil {
		post.IsPublic = *req.IsPublic
	}
	if err := s.postRepo.CreatePost(ctx, tx, post); err != nil {
		return nil, translate("create post", err, "")
	}

	challengePost := &models.ChallengePost{
		PostID:        post.ID,
		ChallengeID:   challenge.ID,
		UserID:        userID,
		ChallengeName: challenge.Title,
	}
	if req.IsDesign != nil {
		challengePost.IsDesign = *req.IsDesign
	}
	if err := s.postRepo.CreateChallengePost(ctx, tx, challengePost); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflictError(activePostMessage)
		}
		return nil, translate("create challenge post", err, "")
	}

	if err := s.mediaRepo.CreateTx(ctx, tx, post.ID, req.Media); err != nil {
		return nil, translate("create post media", err, "")
	}

	if err := tx.Commit(); err != nil {
		return nil, translate("commit challenge post", err, "")
	}

	invalidateLeaderboard(ctx, s.cache, challenge.ID)

	return s.GetByID(ctx, post.ID)
}

func (s *challengePostService) GetAll(ctx context.Context) ([]models.ChallengePostView, error) {
	return s.find(ctx, repository.PostFilter{PublicOnly: true})
}

func (s *challengePostService) GetByUser(ctx context.Context, userID int64) ([]models.ChallengePostView, error) {
	return s.find(ctx, repository.PostFilter{UserID: &userID, PublicOnly: true})
}

func (s *challengePostService) GetByChallenge(ctx context.Context, challengeID int64) ([]models.ChallengePostView, error) {
	return s.find(ctx, repository.PostFilter{ChallengeID: &challengeID, PublicOnly: true})
}

func (s *challengePostService) GetByID(ctx context.Context, postID int64) (*models.ChallengePostView, error) {
	posts, err := s.find(ctx, repository.PostFilter{PostID: &postID})
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, notFoundError(postNotFoundMessage)
	}

	return &posts[0], nil
}

func (s *challengePostService) find(ctx context.Context, filter repository.PostFilter) ([]models.ChallengePostView, error) {
	posts, err := s.postRepo.Find(ctx, filter)
	if err != nil {
		return nil, translate("get challenge posts", err, postNotFoundMessage)
	}

	return posts, nil
}

func (s *challengePostService) Update(ctx context.Context, postID int64, caller models.Caller, req models.UpdateChallengePostRequest) (*models.ChallengePostView, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, validationError("Title cannot be empty")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, translate("begin transaction", err, "")
	}
	defer tx.Rollback()

	challengePost, err := s.postRepo.GetActiveTx(ctx, tx, postID)
	if err != nil {
		return nil, translate("update challenge post", err, postNotFoundMessage)
	}
	if err := authorizeOwner(challengePost, caller); err != nil {
		return nil, err
	}

	if req.IsDesign != nil {
		if err := s.postRepo.SetDesign(ctx, tx, postID, *req.IsDesign); err != nil {
			return nil, translate("update challenge post", err, postNotFoundMessage)
		}
	}

	if req.Title != nil || req.Description != nil || req.IsPublic != nil {
		post, err := s.postRepo.GetPostTx(ctx, tx, postID)
		if err != nil {
			return nil, translate("update post", err, postNotFoundMessage)
		}
		if req.Title != nil {
			post.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			post.Description = req.Description
		}
		if req.IsPublic != nil {
			post.IsPublic = *req.IsPublic
		}
		if err := s.postRepo.UpdatePost(ctx, tx, post); err != nil {
			return nil, translate("update post", err, postNotFoundMessage)
		}
	}

	if req.Media != nil {
		if err := s.mediaRepo.DeleteByPostIDTx(ctx, tx, postID); err != nil {
			return nil, translate("replace post media", err, "")
		}
		if err := s.mediaRepo.CreateTx(ctx, tx, postID, *req.Media); err != nil {
			return nil, translate("replace post media", err, "")
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, translate("commit challenge post", err, "")
	}

	invalidateLeaderboard(ctx, s.cache, challengePost.ChallengeID)

	return s.GetByID(ctx, postID)
}

// SoftDelete deactivates the post. The post row and its media are kept.
func (s *challengePostService) SoftDelete(ctx context.Context, postID int64, caller models.Caller) (*models.DeletedPostSummary, error) {
	view, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, translate("begin transaction", err, "")
	}
	defer tx.Rollback()

	challengePost, err := s.postRepo.GetActiveTx(ctx, tx, postID)
	if err != nil {
		return nil, translate("delete challenge post", err, postNotFoundMessage)
	}
	if err := authorizeOwner(challengePost, caller); err != nil {
		return nil, err
	}

	if err := s.postRepo.Deactivate(ctx, tx, postID, s.now()); err != nil {
		return nil, translate("delete challenge post", err, postNotFoundMessage)
	}

	if err := tx.Commit(); err != nil {
		return nil, translate("commit challenge post", err, "")
	}

	invalidateLeaderboard(ctx, s.cache, challengePost.ChallengeID)

	return &models.DeletedPostSummary{
		PostID: view.PostID,
		Title:  view.Title,
		Author: view.Author,
	}, nil
}

func authorizeOwner(challengePost *models.ChallengePost, caller models.Caller) error {
	if challengePost.UserID != caller.UserID && !caller.IsAdmin() {
		return forbiddenError("You are not allowed to modify this challenge post")
	}
	return nil
}
