package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/quizdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// os.Args is filtered with flagx.FilterArgs first, so -c/-config and any
// unknown arguments never reach this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-db", "-bucket", "-l", "-m", "-p", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory holding the record files")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend: file, sqlite, postgres, s3")
	fs.StringVar(&cfg.DatabaseDSN, "db", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.S3Bucket, "bucket", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.MetricsFile, "m", cfg.MetricsFile, "prometheus textfile written at exit")
	fs.StringVar(&cfg.PasswordScheme, "p", cfg.PasswordScheme, "password scheme: plain, bcrypt, argon2id")
	fs.DurationVar(&cfg.OpTimeout, "t", cfg.OpTimeout, "timeout for each record store operation")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
