package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"challengeHub/internal/models"
	"challengeHub/internal/repository"
)

const (
	LeaderboardSize = 10

	DefaultCommentLimit = 10
	MaxCommentLimit     = 50
)

type EngagementService interface {
	Like(ctx context.Context, postID, userID int64) (int, error)
	Unlike(ctx context.Context, postID, userID int64) (int, error)
	AddComment(ctx context.Context, postID, userID int64, req models.CreateCommentRequest) (*models.CommentView, int, error)
	ListComments(ctx context.Context, postID int64, page, limit int) (*models.CommentPage, error)
	Leaderboard(ctx context.Context, challengeID int64) (*models.Leaderboard, error)
}

type engagementService struct {
	postRepo      repository.ChallengePostRepository
	challengeRepo repository.ChallengeRepository
	likeRepo      repository.LikeRepository
	commentRepo   repository.CommentRepository
	cache         LeaderboardCache
}

func NewEngagementService(
	postRepo repository.ChallengePostRepository,
	challengeRepo repository.ChallengeRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
	cache LeaderboardCache,
) EngagementService {
	return &engagementService{
		postRepo:      postRepo,
		challengeRepo: challengeRepo,
		likeRepo:      likeRepo,
		commentRepo:   commentRepo,
		cache:         cache,
	}
}

const alreadyLikedMessage = "You have already liked this post"

func (s *engagementService) activePost(ctx context.Context, postID int64) (*models.ChallengePost, error) {
	challengePost, err := s.postRepo.GetActive(ctx, postID)
	if err != nil {
		return nil, translate("get challenge post", err, postNotFoundMessage)
	}
	return challengePost, nil
}

// Like returns the like count of the post after the like was recorded.
func (s *engagementService) Like(ctx context.Context, postID, userID int64) (int, error) {
	challengePost, err := s.activePost(ctx, postID)
	if err != nil {
		return 0, err
	}

	liked, err := s.likeRepo.Exists(ctx, userID, postID)
	if err != nil {
		return 0, translate("like post", err, "")
	}
	if liked {
		return 0, conflictError(alreadyLikedMessage)
	}

	if err := s.likeRepo.Create(ctx, userID, postID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, conflictError(alreadyLikedMessage)
		}
		return 0, translate("like post", err, "")
	}

	invalidateLeaderboard(ctx, s.cache, challengePost.ChallengeID)

	return s.countLikes(ctx, postID)
}

func (s *engagementService) Unlike(ctx context.Context, postID, userID int64) (int, error) {
	challengePost, err := s.activePost(ctx, postID)
	if err != nil {
		return 0, err
	}

	liked, err := s.likeRepo.Exists(ctx, userID, postID)
	if err != nil {
		return 0, translate("unlike post", err, "")
	}
	if !liked {
		return 0, validationError("You have not liked this post")
	}

	if err := s.likeRepo.Delete(ctx, userID, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, validationError("You have not liked this post")
		}
		return 0, translate("unlike post", err, "")
	}

	invalidateLeaderboard(ctx, s.cache, challengePost.ChallengeID)

	return s.countLikes(ctx, postID)
}

func (s *engagementService) countLikes(ctx context.Context, postID int64) (int, error) {
	count, err := s.likeRepo.CountByPost(ctx, postID)
	if err != nil {
		return 0, translate("count likes", err, "")
	}
	return count, nil
}

// AddComment stores a comment or a reply to a top-level comment of the same post and returns it
// together with the new comment count of the post.
func (s *engagementService) AddComment(ctx context.Context, postID, userID int64, req models.CreateCommentRequest) (*models.CommentView, int, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, 0, validationError("Comment content cannot be empty")
	}

	challengePost, err := s.activePost(ctx, postID)
	if err != nil {
		return nil, 0, err
	}

	if req.ParentCommentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *req.ParentCommentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, 0, validationError("Parent comment not found")
			}
			return nil, 0, translate("get parent comment", err, "")
		}
		if parent.PostID != postID {
			return nil, 0, validationError("Parent comment does not belong to this post")
		}
		if parent.ParentCommentID != nil {
			return nil, 0, validationError("Cannot reply to a reply")
		}
	}

	comment := &models.Comment{
		UserID:          userID,
		PostID:          postID,
		ParentCommentID: req.ParentCommentID,
		Content:         content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, 0, translate("create comment", err, "")
	}

	view, err := s.commentRepo.GetViewByID(ctx, comment.ID)
	if err != nil {
		return nil, 0, translate("get comment", err, "Comment not found")
	}

	total, err := s.commentRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, 0, translate("count comments", err, "")
	}

	invalidateLeaderboard(ctx, s.cache, challengePost.ChallengeID)

	return view, total, nil
}

// ListComments pages through top-level comments, newest first, each with its direct replies.
func (s *engagementService) ListComments(ctx context.Context, postID int64, page, limit int) (*models.CommentPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultCommentLimit
	}
	if limit > MaxCommentLimit {
		limit = MaxCommentLimit
	}

	if _, err := s.activePost(ctx, postID); err != nil {
		return nil, err
	}

	total, err := s.commentRepo.CountTopLevel(ctx, postID)
	if err != nil {
		return nil, translate("count comments", err, "")
	}

	topLevel, err := s.commentRepo.ListTopLevel(ctx, postID, limit, (page-1)*limit)
	if err != nil {
		return nil, translate("list comments", err, "")
	}

	parentIDs := make([]int64, 0, len(topLevel))
	for _, comment := range topLevel {
		parentIDs = append(parentIDs, comment.ID)
	}

	replies, err := s.commentRepo.ListReplies(ctx, parentIDs)
	if err != nil {
		return nil, translate("list replies", err, "")
	}

	repliesByParent := make(map[int64][]models.CommentView, len(topLevel))
	for _, reply := range replies {
		if reply.ParentCommentID != nil {
			repliesByParent[*reply.ParentCommentID] = append(repliesByParent[*reply.ParentCommentID], reply)
		}
	}

	threads := make([]models.CommentThread, 0, len(topLevel))
	for _, comment := range topLevel {
		thread := models.CommentThread{CommentView: comment, Replies: repliesByParent[comment.ID]}
		if thread.Replies == nil {
			thread.Replies = []models.CommentView{}
		}
		threads = append(threads, thread)
	}

	totalPages := (total + limit - 1) / limit

	return &models.CommentPage{
		Comments: threads,
		Pagination: models.CommentPagination{
			CurrentPage:   page,
			TotalPages:    totalPages,
			TotalComments: total,
			HasNextPage:   page < totalPages,
			HasPrevPage:   page > 1,
		},
	}, nil
}

// Leaderboard ranks the active posts of a challenge by likes and returns the top entries.
func (s *engagementService) Leaderboard(ctx context.Context, challengeID int64) (*models.Leaderboard, error) {
	if challengeID <= 0 {
		return nil, validationError("challenge_id is required")
	}

	// a soft-deleted challenge is a 404 even while its leaderboard is still cached
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, translate("get challenge", err, "Challenge not found")
	}

	cached, ok, err := s.cache.GetLeaderboard(ctx, challengeID)
	if err != nil {
		log.Printf("failed to read cached leaderboard of challenge %d: %v", challengeID, err)
	}
	if ok {
		cached.ChallengeTitle = challenge.Title
		return cached, nil
	}

	posts, total, err := s.postRepo.Leaderboard(ctx, challengeID, LeaderboardSize)
	if err != nil {
		return nil, translate("get leaderboard", err, "")
	}

	entries := make([]models.LeaderboardEntry, 0, len(posts))
	for i, post := range posts {
		entries = append(entries, models.LeaderboardEntry{Rank: i + 1, ChallengePostView: post})
	}

	leaderboard := &models.Leaderboard{
		ChallengeID:    challenge.ID,
		ChallengeTitle: challenge.Title,
		TotalPosts:     total,
		Entries:        entries,
	}

	if err := s.cache.SetLeaderboard(ctx, leaderboard); err != nil {
		log.Printf("failed to cache leaderboard of challenge %d: %v", challengeID, err)
	}

	return leaderboard, nil
}
