package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloclify/internal/errors"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DefaultAPIURL, cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.Equal(t, "running", cfg.Display.RunningStatus)
	assert.False(t, cfg.Application.Debug)
	assert.Empty(t, cfg.API.Key)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("CLOCKIFY_API_KEY", "secret")
		t.Setenv("CLOCKIFY_WORKSPACE", "Personal")
		t.Setenv("CLOCKIFY_API_URL", "http://localhost:8080/api/v1")
		t.Setenv("CLOCKIFY_API_TIMEOUT", "10s")
		t.Setenv("CLOCKIFY_TIMEOUT", "2m")
		t.Setenv("CLOCKIFY_DEBUG", "true")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())

		assert.Equal(t, "secret", cfg.API.Key)
		assert.Equal(t, "Personal", cfg.API.Workspace)
		assert.Equal(t, "http://localhost:8080/api/v1", cfg.API.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.API.Timeout)
		assert.Equal(t, 2*time.Minute, cfg.Application.Timeout)
		assert.True(t, cfg.Application.Debug)
	})

	t.Run("unset variables keep defaults", func(t *testing.T) {
		t.Setenv("CLOCKIFY_API_KEY", "secret")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())

		assert.Equal(t, DefaultAPIURL, cfg.API.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	})

	t.Run("non-boolean debug value still enables debugging", func(t *testing.T) {
		t.Setenv("CLOCKIFY_API_KEY", "secret")
		t.Setenv("CLOCKIFY_DEBUG", "yes")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())
		assert.True(t, cfg.Application.Debug)
	})

	t.Run("unparseable durations keep defaults", func(t *testing.T) {
		t.Setenv("CLOCKIFY_API_TIMEOUT", "not-a-duration")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())
		assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	})
}

func TestValidate(t *testing.T) {
	t.Run("missing api key names the variable", func(t *testing.T) {
		cfg := NewConfig()
		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConfiguration))
		assert.Contains(t, err.Error(), "CLOCKIFY_API_KEY")
	})

	t.Run("valid config passes", func(t *testing.T) {
		cfg := NewConfig()
		cfg.API.Key = "secret"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("bad timeout fails", func(t *testing.T) {
		cfg := NewConfig()
		cfg.API.Key = "secret"
		cfg.API.Timeout = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConfiguration))
	})
}

func TestLoadThenValidate(t *testing.T) {
	t.Run("fails without an api key", func(t *testing.T) {
		t.Setenv("CLOCKIFY_API_KEY", "")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())
		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConfiguration))
		assert.Contains(t, errors.GetUserMessage(err), "CLOCKIFY_API_KEY")
	})

	t.Run("succeeds with a key", func(t *testing.T) {
		t.Setenv("CLOCKIFY_API_KEY", "secret")

		cfg := NewConfig()
		require.NoError(t, cfg.LoadFromEnvironment())
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "secret", cfg.API.Key)
	})
}
