package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	full := defaults()
	full.DataDir = "/data"
	full.Storage = "postgres"
	full.DatabaseDSN = "postgres://u:p@localhost/quiz"
	full.LogLevel = "warn"
	full.MetricsFile = "/tmp/quizdesk.prom"
	full.PasswordScheme = "bcrypt"
	full.OpTimeout = 30 * time.Second

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-d", "/data", "-s", "postgres", "-db", "postgres://u:p@localhost/quiz",
				"-l", "warn", "-m", "/tmp/quizdesk.prom", "-p", "bcrypt", "-t", "30s"},
			expected: full,
		},
		{name: "config flag ignored", args: []string{"cmd", "-c", "cfg.json", "-d=/data"}, expected: func() *Config {
			c := defaults()
			c.DataDir = "/data"
			return c
		}()},
		{name: "bad timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := defaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
