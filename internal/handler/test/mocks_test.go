package test

import (
	"context"
	"io"

	"challengeHub/internal/models"
	"challengeHub/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) GenerateAccessToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

type MockChallengeService struct {
	mock.Mock
}

func (m *MockChallengeService) Create(ctx context.Context, req models.CreateChallengeRequest) (*models.Challenge, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Challenge), args.Error(1)
}

func (m *MockChallengeService) List(ctx context.Context) ([]models.Challenge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Challenge), args.Error(1)
}

func (m *MockChallengeService) GetByID(ctx context.Context, id int64) (*models.Challenge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Challenge), args.Error(1)
}

func (m *MockChallengeService) Update(ctx context.Context, id int64, req models.UpdateChallengeRequest) (*models.Challenge, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Challenge), args.Error(1)
}

func (m *MockChallengeService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) Create(ctx context.Context, challengeID, userID int64) (*models.ChallengeEntry, error) {
	args := m.Called(ctx, challengeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChallengeEntry), args.Error(1)
}

func (m *MockEntryService) List(ctx context.Context) ([]models.ChallengeEntryView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChallengeEntryView), args.Error(1)
}

func (m *MockEntryService) GetByID(ctx context.Context, id int64) (*models.ChallengeEntryView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChallengeEntryView), args.Error(1)
}

func (m *MockEntryService) ListByChallenge(ctx context.Context, challengeID int64) ([]models.ChallengeEntryView, error) {
	args := m.Called(ctx, challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChallengeEntryView), args.Error(1)
}

func (m *MockEntryService) Update(ctx context.Context, id int64, req models.UpdateEntryRequest) (*models.ChallengeEntry, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChallengeEntry), args.Error(1)
}

func (m *MockEntryService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockChallengePostService struct {
	mock.Mock
}

func (m *MockChallengePostService) Create(ctx context.Context, userID int64, req models.CreateChallengePostRequest) (*models.ChallengePostView, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChallengePostView), args.Error(1)
}

func (m *MockChallengePostService) GetAll(ctx context.Context) ([]models.ChallengePostView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChallengePostView), args.Error(1)
}

func (m *MockChallengePostService) GetByUser(ctx context.Context, userID int64) ([]models.ChallengePostView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChallengePostView), args.Error(1)
}

func (m *MockChallengePostService) GetByChallenge(ctx context.Context, challengeID int64) ([]models.ChallengePostView, error) {
	args := m.Called(ctx, challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChallengePostView), args.Error(1)
}

func (m *MockChallengePostService) GetByID(ctx context.Context, postID int64) (*models.ChallengePostView, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChallengePostView), args.Error(1)
}

func (m *MockChallengePostService) Update(ctx context.Context, postID int64, caller models.Caller, req models.UpdateChallengePostRequest) (*models.ChallengePostView, error) {
	args := m.Called(ctx, postID, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChallengePostView), args.Error(1)
}

func (m *MockChallengePostService) SoftDelete(ctx context.Context, postID int64, caller models.Caller) (*models.DeletedPostSummary, error) {
	args := m.Called(ctx, postID, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeletedPostSummary), args.Error(1)
}

type MockEngagementService struct {
	mock.Mock
}

func (m *MockEngagementService) Like(ctx context.Context, postID, userID int64) (int, error) {
	args := m.Called(ctx, postID, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockEngagementService) Unlike(ctx context.Context, postID, userID int64) (int, error) {
	args := m.Called(ctx, postID, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockEngagementService) AddComment(ctx context.Context, postID, userID int64, req models.CreateCommentRequest) (*models.CommentView, int, error) {
	args := m.Called(ctx, postID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).(*models.CommentView), args.Int(1), args.Error(2)
}

func (m *MockEngagementService) ListComments(ctx context.Context, postID int64, page, limit int) (*models.CommentPage, error) {
	args := m.Called(ctx, postID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommentPage), args.Error(1)
}

func (m *MockEngagementService) Leaderboard(ctx context.Context, challengeID int64) (*models.Leaderboard, error) {
	args := m.Called(ctx, challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Leaderboard), args.Error(1)
}

type MockShopMemberService struct {
	mock.Mock
}

func (m *MockShopMemberService) Create(ctx context.Context, ownerID, userID int64) (*models.ShopMember, error) {
	args := m.Called(ctx, ownerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShopMember), args.Error(1)
}

func (m *MockShopMemberService) ListMine(ctx context.Context, ownerID int64) ([]models.ShopMemberView, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShopMemberView), args.Error(1)
}

func (m *MockShopMemberService) Delete(ctx context.Context, adminID, userID int64) error {
	args := m.Called(ctx, adminID, userID)
	return args.Error(0)
}

func (m *MockShopMemberService) ActivateSelf(ctx context.Context, userID int64) (*models.ShopMember, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShopMember), args.Error(1)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, userID int64, fileName string, file io.Reader) (*models.MediaUpload, error) {
	args := m.Called(ctx, userID, fileName, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MediaUpload), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) PingContext(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
