package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/quizdesk/internal/flagx"
	"github.com/dmitrijs2005/quizdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the corresponding Config value untouched.
type JsonConfig struct {
	DataDir        string         `json:"data_dir"`
	Storage        string         `json:"storage"`
	DatabaseDSN    string         `json:"database_dsn"`
	S3Bucket       string         `json:"s3_bucket"`
	S3Prefix       string         `json:"s3_prefix"`
	S3Region       string         `json:"s3_region"`
	S3Endpoint     string         `json:"s3_endpoint"`
	S3AccessKey    string         `json:"s3_access_key"`
	S3SecretKey    string         `json:"s3_secret_key"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
	MetricsFile    string         `json:"metrics_file"`
	PasswordScheme string         `json:"password_scheme"`
	OpTimeout      timex.Duration `json:"op_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag nothing is loaded. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	overlay(&cfg.DataDir, jc.DataDir)
	overlay(&cfg.Storage, jc.Storage)
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.S3Bucket, jc.S3Bucket)
	overlay(&cfg.S3Prefix, jc.S3Prefix)
	overlay(&cfg.S3Region, jc.S3Region)
	overlay(&cfg.S3Endpoint, jc.S3Endpoint)
	overlay(&cfg.S3AccessKey, jc.S3AccessKey)
	overlay(&cfg.S3SecretKey, jc.S3SecretKey)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
	overlay(&cfg.MetricsFile, jc.MetricsFile)
	overlay(&cfg.PasswordScheme, jc.PasswordScheme)

	if jc.OpTimeout.Duration != 0 {
		cfg.OpTimeout = jc.OpTimeout.Duration
	}
}
