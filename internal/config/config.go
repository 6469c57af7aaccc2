package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST         string
	DbPORT         string
	DbUSER         string
	DbPASSWORD     string
	DbNAME         string
	DbSSLMODE      string
	MigrationsPath string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

// MaxLeaderboardTTL caps LeaderboardTTL. A leaderboard computed before a concurrent like can be
// stored after that like invalidated the key, so the TTL bounds how long it stays stale.
const MaxLeaderboardTTL = time.Minute

type Redis struct {
	Addr     string
	Password string
	DB       int
	// LeaderboardTTL is how long a cached leaderboard stays valid.
	LeaderboardTTL time.Duration
}

type Challenge struct {
	// MinLeadTime is the minimum distance between now and a new challenge's start date.
	MinLeadTime time.Duration
	// StatusCron enables the status scheduler when not empty (robfig/cron spec, e.g. "@every 1m").
	StatusCron string
}

type Config struct {
	ServerPort          int
	DB                  DB
	MinIO               MinIO
	Redis               Redis
	Challenge           Challenge
	JWTSecretKey        string
	AccessTokenDuration time.Duration
	MaxUploadSize       int64
	MaxImageDimension   int
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbHOST:         getEnv("DB_HOST", "localhost"),
		DbPORT:         getEnv("DB_PORT", "5432"),
		DbUSER:         getEnv("DB_USER", "postgres"),
		DbPASSWORD:     getEnv("DB_PASSWORD", "password"),
		DbNAME:         getEnv("DB_NAME", "challenges"),
		DbSSLMODE:      getEnv("DB_SSLMODE", "disable"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations/001_create_tables.sql"),
	}
}

func LoadMinIO() MinIO {
	endpoint := getEnv("MINIO_ENDPOINT", "localhost:9000")
	useSSL := getEnvBool("MINIO_USE_SSL", false)

	scheme := "http://"
	if useSSL {
		scheme = "https://"
	}

	return MinIO{
		Endpoint:   endpoint,
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "challenge-media"),
		UseSSL:     useSSL,
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", scheme+endpoint),
	}
}

func LoadRedis() Redis {
	ttl := parseDuration(getEnv("LEADERBOARD_CACHE_TTL", "30s"), 30*time.Second)
	if ttl <= 0 || ttl > MaxLeaderboardTTL {
		ttl = MaxLeaderboardTTL
	}

	return Redis{
		Addr:           getEnv("REDIS_ADDR", ""),
		Password:       getEnv("REDIS_PASSWORD", ""),
		DB:             getEnvAsInt("REDIS_DB", 0),
		LeaderboardTTL: ttl,
	}
}

func LoadChallenge() Challenge {
	return Challenge{
		MinLeadTime: time.Duration(getEnvAsInt("CHALLENGE_MIN_LEAD_DAYS", 7)) * 24 * time.Hour,
		StatusCron:  getEnv("CHALLENGE_STATUS_CRON", ""),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:          getEnvAsInt("SERVER_PORT", 8080),
		DB:                  LoadDB(),
		MinIO:               LoadMinIO(),
		Redis:               LoadRedis(),
		Challenge:           LoadChallenge(),
		JWTSecretKey:        getEnv("JWT_SECRET_KEY", ""),
		AccessTokenDuration: parseDuration(getEnv("ACCESS_TOKEN_DURATION", "2h"), 2*time.Hour),
		MaxUploadSize:       parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "52428800")),
		MaxImageDimension:   getEnvAsInt("MEDIA_MAX_IMAGE_DIMENSION", 2048),
	}
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 50 * 1024 * 1024
	}
	return size
}
