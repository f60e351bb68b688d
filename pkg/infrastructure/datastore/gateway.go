package datastore

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"go.uber.org/zap"
)

// Gateway issues parameterized statements against the store. It holds the single
// pool shared by every request. Errors from the driver are returned unmodified.
type Gateway struct {
	drv     dialect.Driver
	conn    dialect.ExecQuerier
	dialect string
	onClose func()
}

// Option configures a Gateway
type Option func(*Gateway)

// WithLogger logs every statement and its arguments at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(g *Gateway) {
		g.drv = dialect.DebugWithContext(g.drv, func(ctx context.Context, i ...any) {
			l.Debug("sql", zap.String("statement", fmt.Sprint(i...)))
		})
	}
}

// NewGateway wraps an open *sql.DB. onClose, when set, runs after the pool is closed.
func NewGateway(name string, db *sql.DB, onClose func(), opts ...Option) *Gateway {
	g := &Gateway{
		drv:     entsql.OpenDB(name, db),
		dialect: name,
		onClose: onClose,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.conn = g.drv
	return g
}

// Dialect returns the ent dialect name of the store (postgres, mysql or sqlite3).
func (g *Gateway) Dialect() string {
	return g.dialect
}

// Driver exposes the underlying ent driver for schema migration.
func (g *Gateway) Driver() dialect.Driver {
	return g.drv
}

// Query runs query and calls scan once per returned row.
func (g *Gateway) Query(
	ctx context.Context,
	query string,
	args []any,
	scan func(entsql.ColumnScanner) error,
) error {
	rows := &entsql.Rows{}
	if err := g.conn.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Exec runs a statement that returns no rows.
func (g *Gateway) Exec(ctx context.Context, query string, args []any) (sql.Result, error) {
	var res sql.Result
	if err := g.conn.Exec(ctx, query, args, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Close closes the pool.
func (g *Gateway) Close() error {
	err := g.drv.Close()
	if g.onClose != nil {
		g.onClose()
	}
	return err
}

// Tx is a transaction started by BeginTx.
type Tx struct {
	tx      dialect.Tx
	gateway *Gateway
}

// BeginTx starts a transaction. Statements issued through Tx.Gateway run inside it.
func (g *Gateway) BeginTx(ctx context.Context) (*Tx, error) {
	tx, err := g.drv.Tx(ctx)
	if err != nil {
		return nil, err
	}
	return &Tx{
		tx: tx,
		gateway: &Gateway{
			drv:     g.drv,
			conn:    tx,
			dialect: g.dialect,
		},
	}, nil
}

// Gateway returns a Gateway bound to the transaction. It must not be closed.
func (t *Tx) Gateway() *Gateway {
	return t.gateway
}

// Commit commits the transaction.
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction.
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
