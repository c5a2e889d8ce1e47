package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "QUIZDESK_"

// dotenvFile is read relative to the working directory.
var dotenvFile = ".env"

// parseEnv overlays Config with QUIZDESK_* variables from the dotenv file at
// path and from the process environment. A missing dotenv file is ignored.
// Panics on an unreadable file or an unparsable duration.
func parseEnv(cfg *Config, path string) {
	vars := map[string]string{}

	if path != "" {
		fileVars, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		for k, v := range fileVars {
			if strings.HasPrefix(k, envPrefix) {
				vars[k] = v
			}
		}
	}

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, envPrefix) {
			vars[k] = v
		}
	}

	set := func(key string, dst *string) {
		if v, ok := vars[envPrefix+key]; ok && v != "" {
			*dst = v
		}
	}

	set("DATA_DIR", &cfg.DataDir)
	set("STORAGE", &cfg.Storage)
	set("DATABASE_DSN", &cfg.DatabaseDSN)
	set("S3_BUCKET", &cfg.S3Bucket)
	set("S3_PREFIX", &cfg.S3Prefix)
	set("S3_REGION", &cfg.S3Region)
	set("S3_ENDPOINT", &cfg.S3Endpoint)
	set("S3_ACCESS_KEY", &cfg.S3AccessKey)
	set("S3_SECRET_KEY", &cfg.S3SecretKey)
	set("LOG_LEVEL", &cfg.LogLevel)
	set("LOG_FORMAT", &cfg.LogFormat)
	set("METRICS_FILE", &cfg.MetricsFile)
	set("PASSWORD_SCHEME", &cfg.PasswordScheme)

	if v := vars[envPrefix+"OP_TIMEOUT"]; v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.OpTimeout = d
	}
}
