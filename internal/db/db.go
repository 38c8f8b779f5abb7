// Copyright (c) 2026 ToeiRei
// connprompt - database server connection prompt
// This source code is licensed under the MIT license found in the LICENSE file.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/toeirei/connprompt/internal/logging"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"
)

// sqlOpenFunc is swapped in tests.
var sqlOpenFunc = sql.Open

// Types lists the supported database types.
func Types() []string {
	return []string{"sqlite", "postgres", "mysql"}
}

// NewStoreFromDSN opens the database, creates the schema if needed and
// returns a Store backed by a long-lived *bun.DB.
func NewStoreFromDSN(dbType, dsn string) (Store, error) {
	var driverName string
	switch dbType {
	case "sqlite":
		driverName = "sqlite"
		if err := ensureSqliteDir(dsn); err != nil {
			return nil, err
		}
	case "postgres":
		// The pgx stdlib registers driver name "pgx".
		driverName = "pgx"
	case "mysql":
		driverName = "mysql"
	default:
		return nil, fmt.Errorf("unsupported database type: '%s'", dbType)
	}

	start := time.Now()
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	configurePool(sqlDB, dbType, dsn)
	logging.Debugf("db: opened %s driver in %s", driverName, time.Since(start))

	bunDB := createBunDB(sqlDB, dbType)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := createSchema(ctx, bunDB); err != nil {
		_ = bunDB.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &BunStore{bun: bunDB}, nil
}

// configurePool applies pool limits, overridable through CONNPROMPT_DB_*
// environment variables.
func configurePool(sqlDB *sql.DB, dbType, dsn string) {
	const (
		defaultMaxOpenConns    = 4
		defaultMaxIdleConns    = 4
		defaultConnMaxLifetime = 5 * time.Minute
	)

	maxOpen := envInt("CONNPROMPT_DB_MAX_OPEN_CONNS", defaultMaxOpenConns)
	maxIdle := envInt("CONNPROMPT_DB_MAX_IDLE_CONNS", defaultMaxIdleConns)

	// every connection to ":memory:" gets its own empty database
	if dbType == "sqlite" && dsn == ":memory:" {
		maxOpen = 1
		maxIdle = 1
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(defaultConnMaxLifetime)
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

// ensureSqliteDir creates the parent directory of a file backed SQLite DSN.
func ensureSqliteDir(dsn string) error {
	if dsn == "" || dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("could not create database directory %s: %w", dir, err)
	}
	return nil
}

// createBunDB constructs a *bun.DB for the provided *sql.DB and dbType.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

func createSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*serverModel)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}
