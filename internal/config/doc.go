// Package config loads runtime configuration for the QuizDesk console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory and the process environment,
//     QUIZDESK_* variables only (see parseEnv). Process variables win over
//     the file.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string     directory holding users.json and courses.json
//	-s string     storage backend: file, sqlite, postgres or s3
//	-db string    database DSN for sqlite or postgres
//	-bucket string S3 bucket name
//	-l string     log level: debug, info, warn, error
//	-m string     path of the prometheus textfile written at exit
//	-p string     password scheme: plain, bcrypt or argon2id
//	-t duration   timeout applied to each record store operation
//
// # JSON schema
//
// The JSON loader uses timex.Duration, so op_timeout may be a string like
// "5s" or integer nanoseconds:
//
//	{
//	  "data_dir": "/var/lib/quizdesk",
//	  "storage": "sqlite",
//	  "database_dsn": "/var/lib/quizdesk/quizdesk.db",
//	  "log_level": "debug",
//	  "op_timeout": "5s"
//	}
//
// Invalid values panic during loading.
package config
