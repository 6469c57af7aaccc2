package service

import (
	"challengeHub/internal/config"
	"challengeHub/internal/repository"
	"challengeHub/internal/storage"
)

type Service struct {
	Auth          AuthService
	Challenge     ChallengeService
	Entry         EntryService
	ChallengePost ChallengePostService
	Engagement    EngagementService
	ShopMember    ShopMemberService
	Media         MediaService
}

func NewService(db repository.Transactor, rep *repository.Repository, cfg *config.Config, store storage.Storage, cache LeaderboardCache) *Service {
	return &Service{
		Auth:          NewAuthService(rep.User, cfg),
		Challenge:     NewChallengeService(rep.Challenge, cfg, cache),
		Entry:         NewEntryService(db, rep.Entry, rep.Challenge),
		ChallengePost: NewChallengePostService(db, rep.ChallengePost, rep.Challenge, rep.Media, cache),
		Engagement:    NewEngagementService(rep.ChallengePost, rep.Challenge, rep.Like, rep.Comment, cache),
		ShopMember:    NewShopMemberService(rep.ShopMember, rep.User),
		Media:         NewMediaService(store, cfg),
	}
}
