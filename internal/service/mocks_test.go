package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"challengeHub/internal/models"
	"challengeHub/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTxDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), sqlMock
}

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockChallengeRepository struct {
	mock.Mock
}

func (m *MockChallengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	args := m.Called(ctx, challenge)
	return args.Error(0)
}

func (m *MockChallengeRepository) GetByID(ctx context.Context, id int64) (*models.Challenge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id int64, forUpdate bool) (*models.Challenge, error) {
	args := m.Called(ctx, tx, id, forUpdate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) List(ctx context.Context) ([]models.Challenge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) Update(ctx context.Context, challenge *models.Challenge) error {
	args := m.Called(ctx, challenge)
	return args.Error(0)
}

func (m *MockChallengeRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChallengeRepository) AdvanceStatuses(ctx context.Context, now time.Time) (int64, int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) CreateTx(ctx context.Context, tx *sqlx.Tx, entry *models.ChallengeEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) CountByChallengeTx(ctx context.Context, tx *sqlx.Tx, challengeID int64) (int, error) {
	args := m.Called(ctx, tx, challengeID)
	return args.Int(0), args.Error(1)
}

func (m *MockEntryRepository) ExistsTx(ctx context.Context, tx *sqlx.Tx, challengeID, userID int64) (bool, error) {
	args := m.Called(ctx, tx, challengeID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntryRepository) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id int64) (*models.ChallengeEntry, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChallengeEntry), args.Error(1)
}

func (m *MockEntryRepository) UpdateTx(ctx context.Context, tx *sqlx.Tx, entry *models.ChallengeEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) List(ctx context.Context) ([]models.ChallengeEntryView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChallengeEntryView), args.Error(1)
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id int64) (*models.ChallengeEntryView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChallengeEntryView), args.Error(1)
}

func (m *MockEntryRepository) ListByChallenge(ctx context.Context, challengeID int64) ([]models.ChallengeEntryView, error) {
	args := m.Called(ctx, challengeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChallengeEntryView), args.Error(1)
}

func (m *MockEntryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockChallengePostRepository struct {
	mock.Mock
}

func (m *MockChallengePostRepository) HasActivePost(ctx context.Context, tx *sqlx.Tx, userID int64) (bool, error) {
	args := m.Called(ctx, tx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockChallengePostRepository) CreatePost(ctx context.Context, tx *sqlx.Tx, post *models.Post) error {
	args := m.Called(ctx, tx, post)
	return args.Error(0)
}

func (m *MockChallengePostRepository) CreateChallengePost(ctx context.Context, tx *sqlx.Tx, cp *models.ChallengePost) error {
	args := m.Called(ctx, tx, cp)
	return args.Error(0)
}

func (m *MockChallengePostRepository) GetActive(ctx context.Context, postID int64) (*models.ChallengePost, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChallengePost), args.Error(1)
}

func (m *MockChallengePostRepository) GetActiveTx(ctx context.Context, tx *sqlx.Tx, postID int64) (*models.ChallengePost, error) {
	args := m.Called(ctx, tx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChallengePost), args.Error(1)
}

func (m *MockChallengePostRepository) GetPostTx(ctx context.Context, tx *sqlx.Tx, postID int64) (*models.Post, error) {
	args := m.Called(ctx, tx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockChallengePostRepository) UpdatePost(ctx context.Context, tx *sqlx.Tx, post *models.Post) error {
	args := m.Called(ctx, tx, post)
	return args.Error(0)
}

func (m *MockChallengePostRepository) SetDesign(ctx context.Context, tx *sqlx.Tx, postID int64, isDesign bool) error {
	args := m.Called(ctx, tx, postID, isDesign)
	return args.Error(0)
}

func (m *MockChallengePostRepository) Deactivate(ctx context.Context, tx *sqlx.Tx, postID int64, at time.Time) error {
	args := m.Called(ctx, tx, postID, at)
	return args.Error(0)
}

func (m *MockChallengePostRepository) Find(ctx context.Context, filter repository.PostFilter) ([]models.ChallengePostView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChallengePostView), args.Error(1)
}

func (m *MockChallengePostRepository) Leaderboard(ctx context.Context, challengeID int64, limit int) ([]models.ChallengePostView, int, error) {
	args := m.Called(ctx, challengeID, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.ChallengePostView), args.Int(1), args.Error(2)
}

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) CreateTx(ctx context.Context, tx *sqlx.Tx, postID int64, media []models.MediaInput) error {
	args := m.Called(ctx, tx, postID, media)
	return args.Error(0)
}

func (m *MockMediaRepository) DeleteByPostIDTx(ctx context.Context, tx *sqlx.Tx, postID int64) error {
	args := m.Called(ctx, tx, postID)
	return args.Error(0)
}

func (m *MockMediaRepository) GetByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]models.PostData, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]models.PostData), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Exists(ctx context.Context, userID, postID int64) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Create(ctx context.Context, userID, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, userID, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockLikeRepository) CountByPost(ctx context.Context, postID int64) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetViewByID(ctx context.Context, id int64) (*models.CommentView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommentView), args.Error(1)
}

func (m *MockCommentRepository) CountByPost(ctx context.Context, postID int64) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

func (m *MockCommentRepository) CountTopLevel(ctx context.Context, postID int64) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

func (m *MockCommentRepository) ListTopLevel(ctx context.Context, postID int64, limit, offset int) ([]models.CommentView, error) {
	args := m.Called(ctx, postID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentView), args.Error(1)
}

func (m *MockCommentRepository) ListReplies(ctx context.Context, parentIDs []int64) ([]models.CommentView, error) {
	args := m.Called(ctx, parentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentView), args.Error(1)
}

type MockShopMemberRepository struct {
	mock.Mock
}

func (m *MockShopMemberRepository) GetShopByOwner(ctx context.Context, ownerID int64) (*models.Shop, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shop), args.Error(1)
}

func (m *MockShopMemberRepository) GetMember(ctx context.Context, shopID, userID int64) (*models.ShopMember, error) {
	args := m.Called(ctx, shopID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShopMember), args.Error(1)
}

func (m *MockShopMemberRepository) GetMembershipByUser(ctx context.Context, userID int64) (*models.ShopMember, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShopMember), args.Error(1)
}

func (m *MockShopMemberRepository) GetAdminMembership(ctx context.Context, userID int64) (*models.ShopMember, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShopMember), args.Error(1)
}

func (m *MockShopMemberRepository) Create(ctx context.Context, member *models.ShopMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockShopMemberRepository) ListByShop(ctx context.Context, shopID int64) ([]models.ShopMemberView, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShopMemberView), args.Error(1)
}

func (m *MockShopMemberRepository) Delete(ctx context.Context, shopID, userID int64) error {
	args := m.Called(ctx, shopID, userID)
	return args.Error(0)
}

func (m *MockShopMemberRepository) Activate(ctx context.Context, memberID int64) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

type MockLeaderboardCache struct {
	mock.Mock
}

func (m *MockLeaderboardCache) GetLeaderboard(ctx context.Context, challengeID int64) (*models.Leaderboard, bool, error) {
	args := m.Called(ctx, challengeID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Leaderboard), args.Bool(1), args.Error(2)
}

func (m *MockLeaderboardCache) SetLeaderboard(ctx context.Context, leaderboard *models.Leaderboard) error {
	args := m.Called(ctx, leaderboard)
	return args.Error(0)
}

func (m *MockLeaderboardCache) InvalidateLeaderboard(ctx context.Context, challengeID int64) error {
	args := m.Called(ctx, challengeID)
	return args.Error(0)
}

// memoryLeaderboardCache is a map-backed LeaderboardCache shared between services in a test.
type memoryLeaderboardCache struct {
	mu           sync.Mutex
	leaderboards map[int64]models.Leaderboard
}

func newMemoryLeaderboardCache() *memoryLeaderboardCache {
	return &memoryLeaderboardCache{leaderboards: map[int64]models.Leaderboard{}}
}

func (c *memoryLeaderboardCache) GetLeaderboard(_ context.Context, challengeID int64) (*models.Leaderboard, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	leaderboard, ok := c.leaderboards[challengeID]
	if !ok {
		return nil, false, nil
	}
	return &leaderboard, true, nil
}

func (c *memoryLeaderboardCache) SetLeaderboard(_ context.Context, leaderboard *models.Leaderboard) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.leaderboards[leaderboard.ChallengeID] = *leaderboard
	return nil
}

func (c *memoryLeaderboardCache) InvalidateLeaderboard(_ context.Context, challengeID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.leaderboards, challengeID)
	return nil
}

func (c *memoryLeaderboardCache) has(challengeID int64) bool {
	_, ok, _ := c.GetLeaderboard(context.Background(), challengeID)
	return ok
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, objectName string, file io.Reader, size int64, contentType string, metadata map[string]string) (string, error) {
	args := m.Called(ctx, objectName, file, size, contentType, metadata)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}
