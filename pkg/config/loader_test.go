package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ebookstore/pkg/config"
)

type testConfig struct {
	Addr    string `env:"TEST_ADDR" envDefault:":8080"`
	Owner   string `env:"TEST_OWNER_EMAIL,required"`
	Retries int    `env:"TEST_RETRIES" envDefault:"3"`
}

func TestLoad(t *testing.T) {
	t.Run("populates struct from environment", func(t *testing.T) {
		t.Setenv("TEST_ADDR", ":9090")
		t.Setenv("TEST_OWNER_EMAIL", "owner@example.com")
		t.Setenv("TEST_RETRIES", "5")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "owner@example.com", cfg.Owner)
		assert.Equal(t, 5, cfg.Retries)
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("TEST_OWNER_EMAIL", "owner@example.com")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 3, cfg.Retries)
	})

	t.Run("required field missing", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on missing required field", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}
