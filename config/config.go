package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config collects everything the process reads from the environment. It is
// built once in main and handed to the services that need it.
type Config struct {
	Port        string
	DatabaseURL string

	OpenAIAPIKey  string
	OpenAIBaseURL string

	AWSRegion     string
	S3Bucket      string
	CloudFrontURL string
}

// Load reads .env when present, then the environment. A missing .env is
// fine in production where variables come from the platform.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	return &Config{
		Port:          envOr("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		AWSRegion:     envOr("S3_REGION", os.Getenv("AWS_REGION")),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		CloudFrontURL: os.Getenv("CLOUDFRONT_URL"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
