package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDefaults(t *testing.T) {
	options := Parse()

	assert.Equal(t, "localhost:8080", options.Addr)
	assert.Equal(t, "", options.DatabaseDSN)
	assert.Equal(t, "*", options.CORSOrigin)
	assert.Equal(t, 15*time.Second, options.FetchTimeout)
	assert.False(t, options.EnableHTTPS)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("DATABASE_DSN", "postgres://localhost/wordcount")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("CORS_ORIGIN", "https://app.example.com")
	t.Setenv("FETCH_TIMEOUT", "3s")

	options := Parse()

	assert.Equal(t, "0.0.0.0:9090", options.Addr)
	assert.Equal(t, "postgres://localhost/wordcount", options.DatabaseDSN)
	assert.Equal(t, "from-env", options.JWTSecret)
	assert.Equal(t, "https://app.example.com", options.CORSOrigin)
	assert.Equal(t, 3*time.Second, options.FetchTimeout)
}
