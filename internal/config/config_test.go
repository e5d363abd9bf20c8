package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "test-api-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-api-key", cfg.APIKey)
}

func TestLoadMissingKey(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "")
	os.Unsetenv(APIKeyEnvVar)

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), APIKeyEnvVar)
}

func TestLoadEmptyKey(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
}
