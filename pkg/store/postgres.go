package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/lib/pq"
)

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS wordfix_kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	selectSQL = `SELECT value FROM wordfix_kv WHERE key = $1`
	upsertSQL = `INSERT INTO wordfix_kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

// Postgres is a KV backed by a single table.
type Postgres struct {
	db *sql.DB
}

// OpenPostgres connects with dsn and makes sure the table exists.
func OpenPostgres(dsn string) (*Postgres, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres store: empty dsn")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}
	log.Debug("postgres store ready")
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(key string) (string, bool, error) {
	var value string
	err := p.db.QueryRow(selectSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("postgres get %s: %w", key, err)
	}
	return value, true, nil
}

func (p *Postgres) Set(key, value string) error {
	if _, err := p.db.Exec(upsertSQL, key, value); err != nil {
		return fmt.Errorf("postgres set %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
