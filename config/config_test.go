package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFallsBackToSpecDefaults(t *testing.T) {
	ResetForTest()
	t.Setenv("BH_G", "")
	t.Setenv("BH_EPSILON", "")
	t.Setenv("BH_THETA", "")
	t.Setenv("BH_LOG_LEVEL", "")
	t.Setenv("BH_METRICS_ADDR", "")

	c := Load()
	assert.Equal(t, 6.674e-11, c.G)
	assert.Equal(t, 3.0e4, c.Epsilon)
	assert.Equal(t, 0.5, c.Theta)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "", c.MetricsAddr)
}

func TestLoadHonorsOverrides(t *testing.T) {
	ResetForTest()
	t.Setenv("BH_G", "1.0")
	t.Setenv("BH_EPSILON", "10")
	t.Setenv("BH_THETA", "0.8")
	t.Setenv("BH_LOG_LEVEL", "debug")
	t.Setenv("BH_METRICS_ADDR", ":9090")

	c := Load()
	assert.Equal(t, 1.0, c.G)
	assert.Equal(t, 10.0, c.Epsilon)
	assert.Equal(t, 0.8, c.Theta)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, ":9090", c.MetricsAddr)
}

func TestLoadIgnoresUnparsableFloatAndKeepsDefault(t *testing.T) {
	ResetForTest()
	t.Setenv("BH_G", "not-a-number")

	c := Load()
	assert.Equal(t, 6.674e-11, c.G)
}

func TestLoadCachesAcrossCalls(t *testing.T) {
	ResetForTest()
	t.Setenv("BH_THETA", "0.9")
	first := Load()

	t.Setenv("BH_THETA", "0.1")
	second := Load()

	assert.Same(t, first, second)
	assert.Equal(t, 0.9, second.Theta, "Load caches on first call; later env changes need ResetForTest")
}
