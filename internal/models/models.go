package models

import (
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	ChallengeStatusNotStart    = "notStart"
	ChallengeStatusOnGoing     = "onGoing"
	ChallengeStatusEnded       = "ended"
	ChallengeStatusUnAvailable = "unAvailable"
)

const PostTypeChallenge = "challenge"

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	FullName     *string   `json:"full_name" db:"full_name"`
	Avatar       *string   `json:"avatar" db:"avatar"`
	Role         string    `json:"role" db:"role"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UserPublic is the subset of user fields exposed next to other entities.
type UserPublic struct {
	ID       int64   `json:"id" db:"id"`
	Username string  `json:"username" db:"username"`
	Email    string  `json:"email,omitempty" db:"email"`
	FullName *string `json:"full_name" db:"full_name"`
	Avatar   *string `json:"avatar" db:"avatar"`
}

type Challenge struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     *string   `json:"description" db:"description"`
	StartDate       time.Time `json:"start_date" db:"start_date"`
	EndDate         time.Time `json:"end_date" db:"end_date"`
	Status          string    `json:"status" db:"status"`
	MinParticipants *int      `json:"min_participants" db:"min_participants"`
	MaxParticipants *int      `json:"max_participants" db:"max_participants"`
	Prize           *string   `json:"prize" db:"prize"`
	Rules           *string   `json:"rules" db:"rules"`
	Requirements    *string   `json:"requirements" db:"requirements"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

type ChallengeEntry struct {
	ID          int64     `json:"id" db:"id"`
	ChallengeID int64     `json:"challenge_id" db:"challenge_id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type ChallengeEntryView struct {
	ChallengeEntry
	User UserPublic `json:"user" db:"user"`
}

type Post struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	PostType    string    `json:"post_type" db:"post_type"`
	UserID      int64     `json:"user_id" db:"user_id"`
	IsPublic    bool      `json:"is_public" db:"is_public"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ChallengePost extends a Post submitted into a challenge. ChallengeName is a snapshot of the
// challenge title at submission time and is not kept in sync afterwards.
type ChallengePost struct {
	PostID        int64      `json:"post_id" db:"post_id"`
	ChallengeID   int64      `json:"challenge_id" db:"challenge_id"`
	UserID        int64      `json:"user_id" db:"user_id"`
	ChallengeName string     `json:"challengeName" db:"challenge_name"`
	IsDesign      bool       `json:"is_design" db:"is_design"`
	IsActive      bool       `json:"is_active" db:"is_active"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

type PostData struct {
	ID       int64   `json:"id" db:"id"`
	PostID   int64   `json:"post_id" db:"post_id"`
	ImageURL *string `json:"image_url" db:"image_url"`
	VideoURL *string `json:"video_url" db:"video_url"`
}

// MediaInput is one media entry of a create/update request.
type MediaInput struct {
	ImageURL *string `json:"image_url"`
	VideoURL *string `json:"video_url"`
}

// HasURL reports whether the entry carries at least one non-empty url.
func (m MediaInput) HasURL() bool {
	return (m.ImageURL != nil && *m.ImageURL != "") || (m.VideoURL != nil && *m.VideoURL != "")
}

// ChallengePostView is the denormalized read model of an active challenge post.
type ChallengePostView struct {
	ChallengePost
	Title         string     `json:"title" db:"title"`
	Description   *string    `json:"description" db:"description"`
	PostType      string     `json:"post_type" db:"post_type"`
	IsPublic      bool       `json:"is_public" db:"is_public"`
	Author        UserPublic `json:"author" db:"author"`
	Media         []PostData `json:"media" db:"-"`
	TotalLikes    int        `json:"total_likes" db:"total_likes"`
	TotalComments int        `json:"total_comments" db:"total_comments"`
}

type DeletedPostSummary struct {
	PostID int64      `json:"post_id"`
	Title  string     `json:"title"`
	Author UserPublic `json:"author"`
}

type Like struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	PostID    *int64    `json:"post_id" db:"post_id"`
	DesignID  *int64    `json:"design_id" db:"design_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Comment struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	PostID          int64     `json:"post_id" db:"post_id"`
	ParentCommentID *int64    `json:"parent_comment_id" db:"parent_comment_id"`
	Content         string    `json:"content" db:"content"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

type CommentView struct {
	Comment
	Author UserPublic `json:"author" db:"author"`
}

// CommentThread is a top-level comment with its direct replies.
type CommentThread struct {
	CommentView
	Replies []CommentView `json:"replies"`
}

type CommentPagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalComments int  `json:"totalComments"`
	HasNextPage   bool `json:"hasNextPage"`
	HasPrevPage   bool `json:"hasPrevPage"`
}

type CommentPage struct {
	Comments   []CommentThread   `json:"comments"`
	Pagination CommentPagination `json:"pagination"`
}

type LeaderboardEntry struct {
	Rank int `json:"rank"`
	ChallengePostView
}

type Leaderboard struct {
	ChallengeID    int64              `json:"challenge_id"`
	ChallengeTitle string             `json:"challenge_title"`
	TotalPosts     int                `json:"total_posts"`
	Entries        []LeaderboardEntry `json:"leaderboard"`
}

type Shop struct {
	ID        int64     `json:"id" db:"id"`
	OwnerID   int64     `json:"owner_id" db:"owner_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type ShopMember struct {
	ID        int64     `json:"id" db:"id"`
	ShopID    int64     `json:"shop_id" db:"shop_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	IsAdmin   bool      `json:"is_admin" db:"is_admin"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type ShopMemberView struct {
	ShopMember
	User UserPublic `json:"user" db:"user"`
}
