package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("CLUBHUB_TEST_KEY", "from-env")
	assert.Equal(t, "from-env", getEnv("CLUBHUB_TEST_KEY", "fallback"))

	os.Unsetenv("CLUBHUB_TEST_KEY")
	assert.Equal(t, "fallback", getEnv("CLUBHUB_TEST_KEY", "fallback"))
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("MONGO_DB", "clubhub_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("BASE_URL", "https://club.example.edu")

	cfg := LoadConfig()
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "clubhub_test", cfg.MongoDB)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "https://club.example.edu", cfg.BaseURL)
}
