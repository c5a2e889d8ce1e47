package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/quizdesk/internal/accounts"
	"github.com/dmitrijs2005/quizdesk/internal/config"
	"github.com/dmitrijs2005/quizdesk/internal/credential"
	"github.com/dmitrijs2005/quizdesk/internal/enrollment"
	"github.com/dmitrijs2005/quizdesk/internal/filex"
	"github.com/dmitrijs2005/quizdesk/internal/logging"
	"github.com/dmitrijs2005/quizdesk/internal/metrics"
	"github.com/dmitrijs2005/quizdesk/internal/models"
	"github.com/dmitrijs2005/quizdesk/internal/quiz"
	"github.com/dmitrijs2005/quizdesk/internal/storage"
	"github.com/dmitrijs2005/quizdesk/internal/storage/jsonfile"
	"github.com/dmitrijs2005/quizdesk/internal/storage/s3blob"
	"github.com/dmitrijs2005/quizdesk/internal/storage/sqldb"
	"github.com/google/uuid"
)

const sqliteFile = "quizdesk.db"

type accountService interface {
	Create(ctx context.Context, s accounts.Signup) error
	CheckUsername(ctx context.Context, username string) error
	CheckEmail(ctx context.Context, username, email string) error
	CheckPassword(ctx context.Context, username, password string) error
	CheckAge(ctx context.Context, username string, birthYear int) error
	Lookup(ctx context.Context, username string) (models.User, error)
}

type authenticator interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

type recoverer interface {
	Known(ctx context.Context, username string) error
	Recover(ctx context.Context, req accounts.RecoveryRequest) (string, error)
}

type enroller interface {
	Enroll(ctx context.Context, username, course string) (enrollment.Receipt, error)
	Reconcile(ctx context.Context) (enrollment.Report, error)
}

type quizTaker interface {
	Submit(ctx context.Context, username string, answers []int) (int, error)
}

type App struct {
	accounts   accountService
	verifier   authenticator
	recovery   recoverer
	enrollment enroller
	quiz       quizTaker

	metrics     *metrics.Metrics
	metricsFile string
	log         logging.Logger
	opTimeout   time.Duration
	closeFn     func() error

	session string
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the configured record store and wires every service on top
// of it. The returned App reads from stdin and writes prompts to stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	base, err := logging.New(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	log := base.With("session", uuid.NewString())

	scheme, err := credential.ByName(c.PasswordScheme)
	if err != nil {
		return nil, err
	}

	backend, closeFn, err := openBackend(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening record store", "storage", c.Storage, "error", err)
		return nil, err
	}
	log.Info(ctx, "record store opened", "storage", c.Storage)

	a := newApp(backend, scheme, log, bufio.NewReader(os.Stdin), os.Stdout)
	a.metricsFile = c.MetricsFile
	a.opTimeout = c.OpTimeout
	a.closeFn = closeFn
	return a, nil
}

func newApp(b storage.Backend, scheme credential.Scheme, log logging.Logger, r *bufio.Reader, w io.Writer) *App {
	return &App{
		accounts:   accounts.NewRegistry(b, scheme, log),
		verifier:   accounts.NewVerifier(b, scheme, log),
		recovery:   accounts.NewRecovery(b, scheme, log),
		enrollment: enrollment.NewCoordinator(b, log),
		quiz:       quiz.NewService(b, log),
		metrics:    metrics.New(),
		log:        log,
		opTimeout:  10 * time.Second,
		reader:     r,
		out:        w,
	}
}

func openBackend(ctx context.Context, c *config.Config) (storage.Backend, func() error, error) {
	noop := func() error { return nil }

	switch c.Storage {
	case config.StorageFile:
		b, err := jsonfile.New(c.DataDir)
		return b, noop, err

	case config.StorageSQLite:
		dsn := c.DatabaseDSN
		if dsn == "" {
			dir, err := filex.EnsureDir(c.DataDir)
			if err != nil {
				return nil, nil, err
			}
			dsn = filepath.Join(dir, sqliteFile)
		}
		b, err := sqldb.Open(ctx, sqldb.SQLite, dsn)
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil

	case config.StoragePostgres:
		b, err := sqldb.Open(ctx, sqldb.Postgres, c.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil

	case config.StorageS3:
		b, err := s3blob.NewFromConfig(ctx, s3blob.Options{
			Bucket:    c.S3Bucket,
			Prefix:    c.S3Prefix,
			Region:    c.S3Region,
			Endpoint:  c.S3Endpoint,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
		})
		return b, noop, err

	default:
		return nil, nil, fmt.Errorf("unknown storage %q", c.Storage)
	}
}

// Run drives the menus until the operator exits or input ends, then writes
// the metrics textfile (if configured) and closes the record store.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to QuizDesk")
	a.log.Info(ctx, "session started")

	runMainMenu(ctx, a, a.reader, a.out)

	a.log.Info(ctx, "session ended")

	var errs []error
	if a.metricsFile != "" {
		if err := a.metrics.WriteFile(a.metricsFile); err != nil {
			errs = append(errs, fmt.Errorf("write metrics: %w", err))
		}
	}
	if a.closeFn != nil {
		if err := a.closeFn(); err != nil {
			errs = append(errs, fmt.Errorf("close store: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.session != ""
}

// opContext bounds a single record store call.
func (a *App) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.opTimeout)
}
