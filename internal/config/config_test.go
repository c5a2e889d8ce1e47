package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	want := &Config{
		DataDir:        ".",
		Storage:        StorageFile,
		LogLevel:       "info",
		LogFormat:      "text",
		PasswordScheme: "plain",
		OpTimeout:      10 * time.Second,
	}
	assert.Empty(t, cmp.Diff(want, defaults()))
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"quizdesk"}

	origDotenv := dotenvFile
	t.Cleanup(func() { dotenvFile = origDotenv })
	dotenvFile = ""

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, StorageFile, cfg.Storage)
	assert.Equal(t, 10*time.Second, cfg.OpTimeout)
}

func TestLoadConfig_PanicsOnInvalid(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"quizdesk", "-s", "floppy"}

	origDotenv := dotenvFile
	t.Cleanup(func() { dotenvFile = origDotenv })
	dotenvFile = ""

	require.Panics(t, func() { LoadConfig() })
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"sqlite without dsn", func(c *Config) { c.Storage = StorageSQLite }, false},
		{"postgres without dsn", func(c *Config) { c.Storage = StoragePostgres }, true},
		{"postgres with dsn", func(c *Config) { c.Storage = StoragePostgres; c.DatabaseDSN = "postgres://x" }, false},
		{"s3 without bucket", func(c *Config) { c.Storage = StorageS3 }, true},
		{"s3 with bucket", func(c *Config) { c.Storage = StorageS3; c.S3Bucket = "b" }, false},
		{"unknown storage", func(c *Config) { c.Storage = "tape" }, true},
		{"bcrypt", func(c *Config) { c.PasswordScheme = "bcrypt" }, false},
		{"argon2id", func(c *Config) { c.PasswordScheme = "argon2id" }, false},
		{"unknown scheme", func(c *Config) { c.PasswordScheme = "rot13" }, true},
		{"unknown log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"zero timeout", func(c *Config) { c.OpTimeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			if tt.wantErr {
				require.Error(t, c.Validate())
			} else {
				require.NoError(t, c.Validate())
			}
		})
	}
}
