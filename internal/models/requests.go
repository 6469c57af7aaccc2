package models

import "time"

// Caller is the authenticated identity a request runs on behalf of.
type Caller struct {
	UserID int64
	Role   string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=64"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateChallengeRequest has no status: new challenges always start as notStart.
type CreateChallengeRequest struct {
	Title           string    `json:"title" validate:"required,max=255"`
	Description     *string   `json:"description"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required"`
	MinParticipants *int      `json:"min_participants" validate:"omitempty,min=0"`
	MaxParticipants *int      `json:"max_participants" validate:"omitempty,min=1"`
	Prize           *string   `json:"prize"`
	Rules           *string   `json:"rules"`
	Requirements    *string   `json:"requirements"`
}

type UpdateChallengeRequest struct {
	Title           *string    `json:"title" validate:"omitempty,max=255"`
	Description     *string    `json:"description"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Status          *string    `json:"status" validate:"omitempty,oneof=notStart onGoing ended"`
	MinParticipants *int       `json:"min_participants" validate:"omitempty,min=0"`
	MaxParticipants *int       `json:"max_participants" validate:"omitempty,min=1"`
	Prize           *string    `json:"prize"`
	Rules           *string    `json:"rules"`
	Requirements    *string    `json:"requirements"`
}

type CreateEntryRequest struct {
	ChallengeID int64 `json:"challenge_id" validate:"required,gt=0"`
	UserID      int64 `json:"user_id" validate:"omitempty,gt=0"`
}

type UpdateEntryRequest struct {
	ChallengeID *int64 `json:"challenge_id" validate:"omitempty,gt=0"`
	UserID      *int64 `json:"user_id" validate:"omitempty,gt=0"`
}

type CreateChallengePostRequest struct {
	Title       string       `json:"title" validate:"max=255"`
	ChallengeID int64        `json:"challenge_id"`
	Description *string      `json:"description"`
	IsDesign    *bool        `json:"is_design"`
	IsPublic    *bool        `json:"is_public"`
	Media       []MediaInput `json:"media" validate:"omitempty,max=20"`
}

// UpdateChallengePostRequest applies only the fields that are present. A present Media,
// even an empty one, replaces all media of the post.
type UpdateChallengePostRequest struct {
	Title       *string       `json:"title" validate:"omitempty,max=255"`
	Description *string       `json:"description"`
	IsDesign    *bool         `json:"is_design"`
	IsPublic    *bool         `json:"is_public"`
	Media       *[]MediaInput `json:"media"`
}

type CreateCommentRequest struct {
	Content         string `json:"content"`
	ParentCommentID *int64 `json:"parent_comment_id"`
}

type CreateShopMemberRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// MediaUpload describes an object stored by the upload endpoint. Exactly one url is set.
type MediaUpload struct {
	ImageURL    *string `json:"image_url,omitempty"`
	VideoURL    *string `json:"video_url,omitempty"`
	ContentType string  `json:"content_type"`
	Size        int64   `json:"size"`
	SizeHuman   string  `json:"size_human"`
}
