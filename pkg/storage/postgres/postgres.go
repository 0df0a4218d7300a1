package postgres

import (
	"bus2ride/pkg/logger"
	"bus2ride/pkg/storage"
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

// ApplicationName is reported to postgres so site connections stand out in
// pg_stat_activity.
const ApplicationName = "bus2ride"

// Options configures the connection pool. Zero limits keep pgx defaults.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is a libpq sslmode value such as "disable" or "require".
	SslMode string

	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	// MaxIdleConnections is kept warm as the pool's minimum size.
	MaxIdleConnections int
}

// DB is the part of database/sql shared by *sql.DB and *sql.Tx, so the same
// queries run inside and outside transactions.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is implemented by both goqu database and transaction handles.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
}

// PgSQL stores poll votes, reviews, leads and River jobs in postgres.
type PgSQL struct {
	// DB is a *sql.DB, or a *sql.Tx on handles returned by Begin.
	DB DB
	// Builder builds queries bound to DB.
	Builder Builder
	// Pool backs DB and is handed to the River worker. It is nil on tx handles.
	Pool *pgxpool.Pool
}

var _ storage.Storage = (*PgSQL)(nil)

// Ping checks the pool can reach postgres. It is a no-op on tx handles.
func (p *PgSQL) Ping(ctx context.Context) error {
	if p.Pool == nil {
		return nil
	}
	if err := p.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("could not ping pg: %w", err)
	}

	return nil
}

func (p *PgSQL) Close() error {
	if db, ok := p.DB.(*sql.DB); ok {
		if err := db.Close(); err != nil {
			return fmt.Errorf("could not close sql db: %w", err)
		}
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return nil
}

func (p *PgSQL) Commit() error {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

func (p *PgSQL) Rollback() error {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin returns a handle bound to a new transaction. Nested transactions are
// not supported.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx("postgres", tx),
	}, nil
}

// WithTx runs cb in a transaction and commits when it returns nil. The
// transaction is rolled back when cb fails or panics, and cb's error is
// returned unchanged.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) (err error) {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Warn(ctx, "could not rollback tx", zap.Error(rbErr))
		}
	}()

	if err = cb(tx); err != nil {
		return err
	}

	committed = true
	if err = tx.Commit(); err != nil {
		return err
	}

	return nil
}

// New opens a pgx pool and wraps it in database/sql for goqu, goose and the
// River insert client. The pool itself is kept for the River worker.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(options.Username, options.Password),
		Host:   net.JoinHostPort(options.Host, strconv.Itoa(options.Port)),
		Path:   "/" + options.Database,
		RawQuery: url.Values{
			"sslmode":          {options.SslMode},
			"application_name": {ApplicationName},
		}.Encode(),
	}
	cfg, err := pgxpool.ParseConfig(dsn.String())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}

	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(min(options.MaxIdleConnections, int(cfg.MaxConns))) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}
	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect("postgres").DB(sqlDB),
		Pool:    pool,
	}, nil
}
