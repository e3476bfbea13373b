package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	Port      string
	JWTSecret string
	BaseURL   string
	UploadDir string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	// A .env file is optional; without one the process environment is used
	// as-is.
	_ = godotenv.Load()

	cfg := Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "clubhub"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		BaseURL:   getEnv("BASE_URL", "http://localhost:8000"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}
	return cfg
}
