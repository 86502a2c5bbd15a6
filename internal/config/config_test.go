package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "STORE_DRIVER", "DYNAMO_TABLE_NOTES", "ALLOWED_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "TRUST_PROXY"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, StoreDynamo, cfg.StoreDriver)
	assert.Equal(t, "notes", cfg.DynamoTables.Notes)
	assert.Equal(t, []string{
		"http://localhost:3000",
		"http://localhost:3001",
		"http://localhost:3002",
	}, cfg.AllowedOrigins)
	assert.Zero(t, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.False(t, cfg.TrustProxy)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("DYNAMO_TABLE_NOTES", "notes_test")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("TRUST_PROXY", "true")

	cfg := Load()
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, "notes_test", cfg.DynamoTables.Notes)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.InDelta(t, 2.5, cfg.RateLimitRPS, 0.0001)
	assert.True(t, cfg.TrustProxy)
}

func TestLoad_EmptyOriginListFallsBackToDefaults(t *testing.T) {
	for _, v := range []string{" , ", ",", "   "} {
		t.Setenv("ALLOWED_ORIGINS", v)

		cfg := Load()
		assert.Equal(t, []string{
			"http://localhost:3000",
			"http://localhost:3001",
			"http://localhost:3002",
		}, cfg.AllowedOrigins, "ALLOWED_ORIGINS=%q", v)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "fast")
	t.Setenv("RATE_LIMIT_BURST", "lots")
	t.Setenv("TRUST_PROXY", "maybe")

	cfg := Load()
	assert.Zero(t, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.False(t, cfg.TrustProxy)
}
