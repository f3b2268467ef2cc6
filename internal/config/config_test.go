package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RNR_STALE_DAYS", "")
	t.Setenv("RNR_SWEEP_SPEC", "@every 1h")
	LoadConfig()

	assert.Equal(t, 3, RNRStaleDays)
	assert.Equal(t, "@every 1h", RNRSweepSpec)
	assert.Equal(t, "candidate-documents", MinioBucket)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("RNR_STALE_DAYS", "5")
	t.Setenv("SYSTEM_USER_ID", "42")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")
	LoadConfig()

	assert.Equal(t, 5, RNRStaleDays)
	assert.Equal(t, uint(42), SystemUserID)
	assert.True(t, MinioUseSSL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, CorsOrigins)
}

func TestGetEnvInt_RejectsGarbage(t *testing.T) {
	t.Setenv("RECRUIT_TEST_INT", "three")
	assert.Equal(t, 7, getEnvInt("RECRUIT_TEST_INT", 7))
	t.Setenv("RECRUIT_TEST_INT", "-1")
	assert.Equal(t, 7, getEnvInt("RECRUIT_TEST_INT", 7))
}
