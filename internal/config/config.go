package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/quizdesk/internal/credential"
)

// Storage backends.
const (
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageS3       = "s3"
)

// Config holds runtime settings for the QuizDesk console.
type Config struct {
	DataDir     string
	Storage     string
	DatabaseDSN string

	S3Bucket    string
	S3Prefix    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	LogLevel       string
	LogFormat      string
	MetricsFile    string
	PasswordScheme string
	OpTimeout      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.Storage = StorageFile
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.PasswordScheme = credential.PlainName
	c.OpTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, dotenvFile)
	parseJson(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if !slices.Contains([]string{StorageFile, StorageSQLite, StoragePostgres, StorageS3}, c.Storage) {
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.Storage == StoragePostgres && c.DatabaseDSN == "" {
		return fmt.Errorf("storage %q needs a database DSN", c.Storage)
	}
	if c.Storage == StorageS3 && c.S3Bucket == "" {
		return fmt.Errorf("storage %q needs a bucket", c.Storage)
	}
	if _, err := credential.ByName(c.PasswordScheme); err != nil {
		return err
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.OpTimeout <= 0 {
		return fmt.Errorf("op timeout must be positive, got %s", c.OpTimeout)
	}
	return nil
}
