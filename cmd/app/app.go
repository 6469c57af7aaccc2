package app

import (
	"context"
	"log"
	"time"

	"challengeHub/internal/config"
	"challengeHub/internal/database"
	"challengeHub/internal/repository"
	"challengeHub/internal/service"
	"challengeHub/internal/storage"
)

// Application holds the long-lived dependencies main needs to serve and shut down.
type Application struct {
	DB        *database.DB
	Repo      *repository.Repository
	Services  *service.Service
	Scheduler *service.StatusScheduler
	redis     *storage.RedisCache
}

func App(cfg *config.Config) *Application {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("failed to initialize MinIO: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := minioClient.EnsureBucket(ctx); err != nil {
		log.Printf("warning: media bucket is not ready: %v", err)
	}

	application := &Application{DB: db}

	// leaderboard cache is optional
	var cache service.LeaderboardCache = storage.NopCache{}
	if cfg.Redis.Addr != "" {
		redisCache, err := storage.NewRedisCache(cfg)
		if err != nil {
			log.Printf("warning: leaderboard cache disabled: %v", err)
		} else {
			application.redis = redisCache
			cache = redisCache
		}
	}

	// enabling dependencies
	application.Repo = repository.NewRepository(db.DB)
	application.Services = service.NewService(db.DB, application.Repo, cfg, minioClient, cache)

	if cfg.Challenge.StatusCron != "" {
		scheduler := service.NewStatusScheduler(application.Repo.Challenge)
		if err := scheduler.Start(cfg.Challenge.StatusCron); err != nil {
			log.Fatalf("failed to start challenge status scheduler: %v", err)
		}
		application.Scheduler = scheduler
	}

	return application
}

// Close stops the scheduler and releases the cache and database connections.
func (a *Application) Close(ctx context.Context) {
	if a.Scheduler != nil {
		a.Scheduler.Stop(ctx)
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Printf("error closing redis: %v", err)
		}
	}

	if err := a.DB.CloseDB(); err != nil {
		log.Printf("error closing database: %v", err)
	}
}
