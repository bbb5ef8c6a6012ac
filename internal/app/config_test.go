package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()
	cfg, err := NewConfig(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, ModeRun, cfg.Mode)
}

func TestNewConfig_Invalid(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown strategy", func(c *Config) { c.Strategy = "sideways" }, `invalid Strategy "sideways"`},
		{"unknown discipline", func(c *Config) { c.Discipline = "random" }, `invalid Discipline "random"`},
		{"bad root label", func(c *Config) { c.Root = "a b" }, `invalid Root "a b"`},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, `invalid LogFormat "xml"`},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, `invalid LogLevel "loud"`},
		{"port out of range", func(c *Config) { c.HealthcheckPort = 70000 }, `invalid HealthcheckPort "70000": must satisfy 'max=65535'`},
		{"empty path", func(c *Config) { c.MazePaths = []string{""} }, `invalid MazePaths[0]`},
		{"steps without two-phase", func(c *Config) { c.Steps = true }, "steps mode requires the two-phase strategy"},
		{"steps with round trip", func(c *Config) { c.Steps, c.Strategy, c.RoundTrip = true, "two-phase", true }, "cannot be combined"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			_, err := NewConfig(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
