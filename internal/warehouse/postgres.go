// Package warehouse loads extracted payroll and HR data into the Postgres
// analytical schema. Loads are set-based: rows are staged with COPY and
// merged by natural key (CPF for people, competency for payroll facts).
package warehouse

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/arqpeople/fopag-flow/internal/service"
)

// DB is the subset of the pgx pool the store uses. pgxmock implements it.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Close()
}

// Store implements service.Warehouse over a Postgres connection pool.
type Store struct {
	db     DB
	schema string
	logger *slog.Logger
}

var _ service.Warehouse = (*Store)(nil)

// New connects to Postgres and returns a store bound to the given schema.
func New(ctx context.Context, dsn, schema string, logger *slog.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to warehouse: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging warehouse: %w", err)
	}
	return NewWithDB(pool, schema, logger), nil
}

// NewWithDB wraps an existing connection, mainly for tests.
func NewWithDB(db DB, schema string, logger *slog.Logger) *Store {
	return &Store{db: db, schema: schema, logger: logger}
}

// Close releases the underlying pool.
func (s *Store) Close() {
	s.db.Close()
}

// qualify quotes the store's schema around a table name.
func (s *Store) qualify(table string) string {
	return fmt.Sprintf(`"%s".%s`, s.schema, table)
}

// Nullable-to-driver-value helpers. COPY needs untyped nils, not typed nil
// pointers.

func nullableStr(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableBool(v *bool) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

// nullableDec renders decimals as text; the staging columns are TEXT and the
// merge statements cast them, so malformed values surface in SQL, not here.
func nullableDec(v *decimal.Decimal) any {
	if v == nil {
		return nil
	}
	return v.String()
}
