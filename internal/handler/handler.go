package handlers

import (
	"context"

	"challengeHub/internal/config"
	"challengeHub/internal/service"

	"github.com/go-playground/validator/v10"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handlers struct {
	AuthService          service.AuthService
	ChallengeService     service.ChallengeService
	EntryService         service.EntryService
	ChallengePostService service.ChallengePostService
	EngagementService    service.EngagementService
	ShopMemberService    service.ShopMemberService
	MediaService         service.MediaService
	DB                   Pinger
	Cfg                  *config.Config
	Validate             *validator.Validate
}

func NewHandlers(services *service.Service, db Pinger, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:          services.Auth,
		ChallengeService:     services.Challenge,
		EntryService:         services.Entry,
		ChallengePostService: services.ChallengePost,
		EngagementService:    services.Engagement,
		ShopMemberService:    services.ShopMember,
		MediaService:         services.Media,
		DB:                   db,
		Cfg:                  config,
		Validate:             validator.New(),
	}
}
