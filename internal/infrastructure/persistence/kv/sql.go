package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// PoolConfig bounds the connection pool of a SQL backend.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// SQLStorage implements Storage on any database/sql driver described by a Dialect.
type SQLStorage struct {
	db      *sql.DB
	dialect Dialect
}

// OpenSQL connects, pings and makes sure the kv_store table exists.
func OpenSQL(ctx context.Context, dialect Dialect, dsn string, pool PoolConfig) (*SQLStorage, error) {
	conn, err := sql.Open(dialect.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s connection failed: %w", dialect.Name, err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%s database ping failed: %w", dialect.Name, err)
	}

	if pool.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	s := &SQLStorage{db: conn, dialect: dialect}
	if err := s.CreateSchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// OpenSQLite opens (creating if needed) a local SQLite file.
func OpenSQLite(ctx context.Context, path string, pool PoolConfig) (*SQLStorage, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	dsn := path + "?_busy_timeout=5000&_journal_mode=WAL"
	return OpenSQL(ctx, SQLiteDialect, dsn, pool)
}

// OpenTurso opens a remote libSQL database.
func OpenTurso(ctx context.Context, url, token string, pool PoolConfig) (*SQLStorage, error) {
	return OpenSQL(ctx, LibSQLDialect, url+"?authToken="+token, pool)
}

// CreateSchema is idempotent.
func (s *SQLStorage) CreateSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.CreateTable); err != nil {
		return fmt.Errorf("failed to create table for query [%s]: %w", s.dialect.CreateTable, err)
	}
	return nil
}

func (s *SQLStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.dialect.SelectValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *SQLStorage) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.Upsert, key, string(value), time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *SQLStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.DeleteKey, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *SQLStorage) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.ListKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *SQLStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ConnectionInfo describes the backend for startup logs.
func (s *SQLStorage) ConnectionInfo() string {
	return fmt.Sprintf("%s (kv_store)", s.dialect.Name)
}
