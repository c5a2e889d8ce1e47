// Package sqldb keeps record collections as rows of a single collections
// table, one JSON document per collection. SQLite (modernc.org/sqlite) and
// PostgreSQL (pgx stdlib driver) are supported.
//
// Unlike the file and object-store backends, sqldb implements
// storage.Batcher: a multi-collection commit is one transaction.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/quizdesk/internal/dbx"
	"github.com/dmitrijs2005/quizdesk/internal/storage"
	"github.com/dmitrijs2005/quizdesk/internal/storage/sqldb/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

type dialectInfo struct {
	driver      string
	goose       string
	migrations  string
	selectQuery string
	upsertQuery string
}

var dialects = map[Dialect]dialectInfo{
	SQLite: {
		driver:      "sqlite",
		goose:       "sqlite3",
		migrations:  "sqlite",
		selectQuery: `SELECT data FROM collections WHERE name = ?`,
		upsertQuery: `INSERT INTO collections (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
	},
	Postgres: {
		driver:      "pgx",
		goose:       "postgres",
		migrations:  "postgres",
		selectQuery: `SELECT data FROM collections WHERE name = $1`,
		upsertQuery: `INSERT INTO collections (name, data, updated_at) VALUES ($1, $2, now())
			ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
	},
}

// gooseUp is a seam for tests.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

type Backend struct {
	db *sql.DB
	d  dialectInfo
}

// New wraps an already opened database. It does not run migrations.
func New(db *sql.DB, dialect Dialect) (*Backend, error) {
	d, ok := dialects[dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	return &Backend{db: db, d: d}, nil
}

// Open opens dsn with the dialect's driver and brings the schema up to date.
func Open(ctx context.Context, dialect Dialect, dsn string) (*Backend, error) {
	d, ok := dialects[dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}

	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	b := &Backend{db: db, d: d}
	if err := b.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return b, nil
}

// RunMigrations applies the embedded goose migrations for the dialect.
func (b *Backend) RunMigrations(ctx context.Context) error {
	dir, err := fs.Sub(migrations.Migrations, b.d.migrations)
	if err != nil {
		return err
	}
	goose.SetBaseFS(dir)
	defer goose.SetBaseFS(nil)

	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(b.d.goose); err != nil {
		return err
	}
	return gooseUp(ctx, b.db, ".")
}

func (b *Backend) Close() error {
	return b.db.Close()
}

func (b *Backend) Read(ctx context.Context, name string) ([]byte, error) {
	var data string
	err := b.db.QueryRowContext(ctx, b.d.selectQuery, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return []byte(data), nil
}

func (b *Backend) Write(ctx context.Context, name string, data []byte) error {
	return b.upsert(ctx, b.db, name, data)
}

// WriteBatch replaces all entries inside one transaction.
func (b *Backend) WriteBatch(ctx context.Context, entries []storage.Entry) error {
	return dbx.WithTx(ctx, b.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, e := range entries {
			if err := b.upsert(ctx, tx, e.Name, e.Data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *Backend) upsert(ctx context.Context, db dbx.DBTX, name string, data []byte) error {
	if _, err := db.ExecContext(ctx, b.d.upsertQuery, name, string(data)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
