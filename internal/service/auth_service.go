package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"challengeHub/internal/config"
	"challengeHub/internal/models"
	"challengeHub/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an access token.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	CurrentUser(ctx context.Context, userID int64) (*models.User, error)
	GenerateAccessToken(user *models.User) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

const emailTakenMessage = "User with this email or username already exists"

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existingUser, err := s.userRepo.GetUserByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, conflictError(emailTakenMessage)
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, translate("register user", err, "")
	}

	user := &models.User{
		Username: strings.TrimSpace(req.Username),
		Email:    email,
		FullName: req.FullName,
		Role:     models.RoleUser,
	}

	if err := s.userRepo.CreateUser(ctx, user, req.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflictError(emailTakenMessage)
		}
		return nil, translate("register user", err, "")
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, strings.ToLower(strings.TrimSpace(email)), password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidPassword) {
			return nil, "", &Error{Kind: ErrUnauthorized, Message: "Invalid email or password"}
		}
		return nil, "", translate("login", err, "")
	}

	accessToken, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, "", translate("login", err, "")
	}

	return user, accessToken, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, translate("get current user", err, "User not found")
	}

	return user, nil
}

func (s *authService) GenerateAccessToken(user *models.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, &Error{Kind: ErrUnauthorized, Message: "Invalid token", Err: err}
	}

	if !token.Valid || claims.UserID <= 0 {
		return nil, &Error{Kind: ErrUnauthorized, Message: "Invalid token"}
	}

	return claims, nil
}
