package service

import (
	"context"
	"log"

	"challengeHub/internal/models"
)

// LeaderboardCache stores computed leaderboards per challenge. A miss is reported with ok=false
// and a nil error. Writes invalidate the key, but a leaderboard computed before a write can still be
// stored after it; such an entry lives at most config.MaxLeaderboardTTL.
type LeaderboardCache interface {
	GetLeaderboard(ctx context.Context, challengeID int64) (leaderboard *models.Leaderboard, ok bool, err error)
	SetLeaderboard(ctx context.Context, leaderboard *models.Leaderboard) error
	InvalidateLeaderboard(ctx context.Context, challengeID int64) error
}

func invalidateLeaderboard(ctx context.Context, cache LeaderboardCache, challengeID int64) {
	if err := cache.InvalidateLeaderboard(ctx, challengeID); err != nil {
		log.Printf("failed to invalidate leaderboard of challenge %d: %v", challengeID, err)
	}
}
