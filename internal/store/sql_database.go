package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mattn/go-sqlite3"

	"github.com/dsmirnov/cryptodiary/internal/logger"
)

// DB wraps the server database connection together with the dialect-specific
// pieces the repositories need: the squirrel placeholder format and a
// driver-error classifier.
//
// Postgres is the primary backend; any DSN without a postgres scheme is
// treated as a SQLite file path, which keeps single-binary deployments and
// local development free of an external database.
type DB struct {
	*sql.DB

	driver      string
	placeholder sq.PlaceholderFormat
	errs        errorClassifier
	logger      *logger.Logger
}

// NewConnect opens and pings the server database identified by dsn. The
// driver is selected from the DSN scheme: postgres:// or postgresql:// uses
// pgx, anything else the sqlite3 driver.
func NewConnect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	driver := "sqlite3"
	placeholder := sq.PlaceholderFormat(sq.Question)
	var errs errorClassifier = sqliteErrorClassifier{}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		driver = "pgx"
		placeholder = sq.Dollar
		errs = postgresErrorClassifier{}
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info().Str("driver", driver).Msg("connected to database")

	return &DB{
		DB:          conn,
		driver:      driver,
		placeholder: placeholder,
		errs:        errs,
		logger:      log,
	}, nil
}

// Dialect returns the goose dialect name for the active driver.
func (db *DB) Dialect() string {
	return db.driver
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// errorClassifier maps driver-specific errors onto backend-neutral
// categories so repositories can return the same sentinels for Postgres
// and SQLite.
type errorClassifier interface {
	isUniqueViolation(err error) bool
}

type postgresErrorClassifier struct{}

func (postgresErrorClassifier) isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

type sqliteErrorClassifier struct{}

func (sqliteErrorClassifier) isUniqueViolation(err error) bool {
	var sqErr sqlite3.Error
	return errors.As(err, &sqErr) && sqErr.Code == sqlite3.ErrConstraint
}
