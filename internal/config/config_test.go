package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/recruiter")
	t.Setenv("GMAIL_USER", "hr@acme.io")
	t.Setenv("FROM_EMAIL", "")
	t.Setenv("PORT", "")
	t.Setenv("SCAN_WORKERS", "")
	t.Setenv("SCAN_RATE_LIMIT", "")
	t.Setenv("EMAIL_RATE_LIMIT", "")
	t.Setenv("COMPANY_NAME", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "hr@acme.io", cfg.FromEmail)
	assert.Equal(t, "Our Company", cfg.CompanyName)
	assert.Equal(t, 4, cfg.ScanWorkers)
	assert.Equal(t, RateLimit{Requests: 15, Window: 15 * time.Minute}, cfg.ScanLimit)
	assert.Equal(t, RateLimit{Requests: 50, Window: time.Hour}, cfg.EmailLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadConfigRequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/recruiter")
	t.Setenv("SCAN_WORKERS", "8")
	t.Setenv("SCAN_RATE_LIMIT", "3/1m")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://hr.acme.io")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.ScanWorkers)
	assert.Equal(t, RateLimit{Requests: 3, Window: time.Minute}, cfg.ScanLimit)
	assert.Equal(t, []string{"http://localhost:5173", "https://hr.acme.io"}, cfg.CORSOrigins)
}

func TestParseRateEnvErrors(t *testing.T) {
	for _, v := range []string{"15", "x/1m", "0/1m", "5/soon", "5/-1m"} {
		t.Setenv("TEST_RATE", v)
		_, err := parseRateEnv("TEST_RATE", RateLimit{})
		assert.Error(t, err, v)
	}
}
