package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"challengeHub/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")

	ErrInvalidPassword = errors.New("invalid password")
)

// Transactor opens transactions; *sqlx.DB satisfies it.
type Transactor interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *models.Challenge) error
	GetByID(ctx context.Context, id int64) (*models.Challenge, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id int64, forUpdate bool) (*models.Challenge, error)
	List(ctx context.Context) ([]models.Challenge, error)
	Update(ctx context.Context, challenge *models.Challenge) error
	SoftDelete(ctx context.Context, id int64) error
	AdvanceStatuses(ctx context.Context, now time.Time) (started int64, ended int64, err error)
}

type EntryRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, entry *models.ChallengeEntry) error
	CountByChallengeTx(ctx context.Context, tx *sqlx.Tx, challengeID int64) (int, error)
	ExistsTx(ctx context.Context, tx *sqlx.Tx, challengeID, userID int64) (bool, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id int64) (*models.ChallengeEntry, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, entry *models.ChallengeEntry) error
	List(ctx context.Context) ([]models.ChallengeEntryView, error)
	GetByID(ctx context.Context, id int64) (*models.ChallengeEntryView, error)
	ListByChallenge(ctx context.Context, challengeID int64) ([]models.ChallengeEntryView, error)
	Delete(ctx context.Context, id int64) error
}

// PostFilter narrows challenge post reads. Only active posts are ever returned.
type PostFilter struct {
	PostID      *int64
	UserID      *int64
	ChallengeID *int64
	PublicOnly  bool
}

type ChallengePostRepository interface {
	HasActivePost(ctx context.Context, tx *sqlx.Tx, userID int64) (bool, error)
	CreatePost(ctx context.Context, tx *sqlx.Tx, post *models.Post) error
	CreateChallengePost(ctx context.Context, tx *sqlx.Tx, cp *models.ChallengePost) error
	GetActive(ctx context.Context, postID int64) (*models.ChallengePost, error)
	GetActiveTx(ctx context.Context, tx *sqlx.Tx, postID int64) (*models.ChallengePost, error)
	GetPostTx(ctx context.Context, tx *sqlx.Tx, postID int64) (*models.Post, error)
	UpdatePost(ctx context.Context, tx *sqlx.Tx, post *models.Post) error
	SetDesign(ctx context.Context, tx *sqlx.Tx, postID int64, isDesign bool) error
	Deactivate(ctx context.Context, tx *sqlx.Tx, postID int64, at time.Time) error
	Find(ctx context.Context, filter PostFilter) ([]models.ChallengePostView, error)
	Leaderboard(ctx context.Context, challengeID int64, limit int) ([]models.ChallengePostView, int, error)
}

type MediaRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, postID int64, media []models.MediaInput) error
	DeleteByPostIDTx(ctx context.Context, tx *sqlx.Tx, postID int64) error
	GetByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]models.PostData, error)
}

type LikeRepository interface {
	Exists(ctx context.Context, userID, postID int64) (bool, error)
	Create(ctx context.Context, userID, postID int64) error
	Delete(ctx context.Context, userID, postID int64) error
	CountByPost(ctx context.Context, postID int64) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	GetViewByID(ctx context.Context, id int64) (*models.CommentView, error)
	CountByPost(ctx context.Context, postID int64) (int, error)
	CountTopLevel(ctx context.Context, postID int64) (int, error)
	ListTopLevel(ctx context.Context, postID int64, limit, offset int) ([]models.CommentView, error)
	ListReplies(ctx context.Context, parentIDs []int64) ([]models.CommentView, error)
}

type ShopMemberRepository interface {
	GetShopByOwner(ctx context.Context, ownerID int64) (*models.Shop, error)
	GetMember(ctx context.Context, shopID, userID int64) (*models.ShopMember, error)
	GetMembershipByUser(ctx context.Context, userID int64) (*models.ShopMember, error)
	GetAdminMembership(ctx context.Context, userID int64) (*models.ShopMember, error)
	Create(ctx context.Context, member *models.ShopMember) error
	ListByShop(ctx context.Context, shopID int64) ([]models.ShopMemberView, error)
	Delete(ctx context.Context, shopID, userID int64) error
	Activate(ctx context.Context, memberID int64) error
}

type Repository struct {
	User          UserRepository
	Challenge     ChallengeRepository
	Entry         EntryRepository
	ChallengePost ChallengePostRepository
	Media         MediaRepository
	Like          LikeRepository
	Comment       CommentRepository
	ShopMember    ShopMemberRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	media := NewMediaRepository(db)

	return &Repository{
		User:          NewUserRepository(db),
		Challenge:     NewChallengeRepository(db),
		Entry:         NewEntryRepository(db),
		ChallengePost: NewChallengePostRepository(db, media),
		Media:         media,
		Like:          NewLikeRepository(db),
		Comment:       NewCommentRepository(db),
		ShopMember:    NewShopMemberRepository(db),
	}
}

// isUniqueViolation reports whether err is a postgres unique_violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func checkAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
