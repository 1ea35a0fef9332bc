package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.Addr, ":8080")
	assert.Equal(t, c.DatabaseURI, "mongodb://localhost:27017")
	assert.Equal(t, c.DatabaseName, "streamhub")
	assert.Equal(t, c.TokenValidity, 24*time.Hour)
	assert.Equal(t, c.SecretKey, "", "secret key must have no default")
}

func TestValidate_RequiresSecretKey(t *testing.T) {
	var c Config
	c.LoadDefaults()

	require.ErrorIs(t, c.Validate(), ErrSecretKeyRequired)

	c.SecretKey = "k"
	require.NoError(t, c.Validate())
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("TOKEN_VALIDITY", "1h")

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseEnv(&c))

	assert.Equal(t, c.Addr, ":9090")
	assert.Equal(t, c.SecretKey, "env-secret")
	assert.Equal(t, c.TokenValidity, time.Hour)
	// untouched fields keep their defaults
	assert.Equal(t, c.DatabaseName, "streamhub")
}
