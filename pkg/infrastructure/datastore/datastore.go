package datastore

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"todo-backend/config"

	"entgo.io/ent/dialect"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported values of config.C.Database.Driver
const (
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// NewDSN builds the connection string for the configured driver.
func NewDSN() string {
	db := config.C.Database
	switch db.Driver {
	case DriverMySQL:
		c := mysql.NewConfig()
		c.User = db.User
		c.Passwd = db.Password
		c.Net = "tcp"
		c.Addr = net.JoinHostPort(db.Addr, db.Port)
		c.DBName = db.DBName
		c.ParseTime = db.Params.ParseTime
		c.AllowNativePasswords = true
		if db.Params.Loc != "" {
			if loc, err := time.LoadLocation(db.Params.Loc); err == nil {
				c.Loc = loc
			}
		}
		if db.Params.Charset != "" {
			c.Params = map[string]string{"charset": db.Params.Charset}
		}
		return c.FormatDSN()
	case DriverSQLite:
		return "file:" + db.DBName + ".db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	default:
		sslMode := db.Params.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return "postgres://" + db.User + ":" + db.Password + "@" + db.Addr + ":" + db.Port + "/" + db.DBName + "?sslmode=" + sslMode
	}
}

// NewMemoryDSN returns a shared-cache in-memory SQLite connection string.
// Connections opened with the same name see the same database.
func NewMemoryDSN(name string) string {
	return "file:" + name + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
}

// NewClient creates a query gateway from the configured driver and DSN.
func NewClient(opts ...Option) (*Gateway, error) {
	return NewClientWithDSN(config.C.Database.Driver, NewDSN(), opts...)
}

// NewClientWithDSN opens a connection pool for driver and wraps it in a Gateway.
func NewClientWithDSN(driver, dsn string, opts ...Option) (*Gateway, error) {
	switch driver {
	case DriverPgx, "":
		return newPgxClient(dsn, opts...)
	case DriverPostgres:
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres db: %w", err)
		}
		return NewGateway(dialect.Postgres, db, nil, opts...), nil
	case DriverMySQL:
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open mysql db: %w", err)
		}
		return NewGateway(dialect.MySQL, db, nil, opts...), nil
	case DriverSQLite:
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite db: %w", err)
		}
		return NewGateway(dialect.SQLite, db, nil, opts...), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func newPgxClient(dsn string, opts ...Option) (*Gateway, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool config: %w", err)
	}
	poolConfig.MaxConns = 20
	if config.C.Database.MaxConns > 0 {
		poolConfig.MaxConns = config.C.Database.MaxConns
	}
	poolConfig.MinConns = 0
	poolConfig.MaxConnLifetime = time.Minute * 2
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	// Use stdlib to wrap pgxpool in database/sql compatibility
	sqlDB := stdlib.OpenDBFromPool(pool)

	return NewGateway(dialect.Postgres, sqlDB, pool.Close, opts...), nil
}
