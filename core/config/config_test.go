package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trellisdev/trellis/core/config"
)

// Cached loading makes env mutation order-sensitive, so these tests use
// t.Setenv and must not run in parallel.

type serverConfig struct {
	Addr        string        `env:"TEST_SERVER_ADDR" envDefault:":8080"`
	ReadTimeout time.Duration `env:"TEST_SERVER_READ_TIMEOUT" envDefault:"10s"`
}

type requiredConfig struct {
	Token string `env:"TEST_REQUIRED_TOKEN,required"`
}

func TestLoadParsesAndDefaults(t *testing.T) {
	t.Setenv("TEST_SERVER_ADDR", ":9090")

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("TEST_SERVER_ADDR", ":9090")

	var first serverConfig
	require.NoError(t, config.Load(&first))

	// later env changes are invisible to the same type
	t.Setenv("TEST_SERVER_ADDR", ":7070")
	var second serverConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoadRequiredMissing(t *testing.T) {
	var cfg requiredConfig
	assert.Error(t, config.Load(&cfg))
}

func TestLoadNilTarget(t *testing.T) {
	assert.Error(t, config.Load[serverConfig](nil))
}

func TestMustLoadPanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
