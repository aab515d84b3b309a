// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service. It is built once at
// startup and passed by reference into every component; per-request upload
// overrides operate on derived copies, never on this struct.
type Config struct {
	Port   string
	AppEnv string

	// CORS headers carried on every response
	AllowOrigin  string
	AllowMethods string

	// Object storage (S3-compatible: MinIO locally, AWS S3 in production)
	AWSKey     string
	AWSSecret  string
	AWSRegion  string
	Bucket     string
	S3Endpoint string

	// Upload defaults, overridable per request via extra form fields
	Policy              string
	UploadPath          string
	UseSSL              bool
	SignedURLExpiration int // seconds

	// Access-token gate; empty secret disables token checks entirely
	Secret           string
	SecretExpiration int // seconds

	// Status cache; "memory://" selects the in-process store
	RedisURL string

	// Pusher notifications; disabled unless app id, key and secret are all set
	PusherAppID   string
	PusherKey     string
	PusherSecret  string
	PusherCluster string
	ChannelName   string
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:   getEnv("PORT", "5000"),
		AppEnv: getEnv("APP_ENV", "development"),

		AllowOrigin:  getEnv("ALLOW_ORIGIN", "*"),
		AllowMethods: getEnv("ALLOW_METHODS", "OPTIONS, GET, POST"),

		AWSKey:     getEnv("AWS_KEY", ""),
		AWSSecret:  getEnv("AWS_SECRET", ""),
		AWSRegion:  getEnv("AWS_REGION", "us-east-1"),
		Bucket:     getEnv("AWS_BUCKET", ""),
		S3Endpoint: getEnv("S3_ENDPOINT", "s3.amazonaws.com"),

		Policy:              getEnv("AWS_POLICY", "public-read"),
		UploadPath:          getEnv("UPLOAD_PATH", "uploads"),
		UseSSL:              getEnvBool("USE_SSL", false),
		SignedURLExpiration: getEnvInt("SIGNED_URL_EXPIRATION", 900),

		Secret:           getEnv("SECURITY_SECRET", ""),
		SecretExpiration: getEnvInt("SECURITY_SECRET_EXPIRATION", 600),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		PusherAppID:   getEnv("PUSHER_APP_ID", ""),
		PusherKey:     getEnv("PUSHER_KEY", ""),
		PusherSecret:  getEnv("PUSHER_SECRET", ""),
		PusherCluster: getEnv("PUSHER_CLUSTER", ""),
		ChannelName:   getEnv("PUSHER_CHANNEL_NAME", "cloud-uploader"),
	}
}

// IsDevelopment returns true when the app is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("config: %s=%q is not a number, using %d", key, v, fallback)
	}
	return fallback
}

// getEnvBool mirrors the truthiness rule used for the useSSL form override:
// any value other than "false" enables the flag.
func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		return v != "false"
	}
	return fallback
}
