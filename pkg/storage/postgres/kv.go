package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resumeboard/pkg/storage"
)

// KV is a storage.KV over a single jsonb table.
type KV struct {
	pool *pgxpool.Pool
}

// NewKV creates the table if needed. The pool is owned by the KV afterwards.
func NewKV(ctx context.Context, pool *pgxpool.Pool) (*KV, error) {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS board_kv (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return nil, fmt.Errorf("create board_kv: %w", err)
	}
	return &KV{pool: pool}, nil
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := k.pool.QueryRow(ctx, `SELECT value::text FROM board_kv WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return v, nil
}

// Set stores value; it must be valid JSON.
func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	_, err := k.pool.Exec(ctx, `
		INSERT INTO board_kv (key, value) VALUES ($1, $2::jsonb)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, key, string(value))
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (k *KV) Ping(ctx context.Context) error { return k.pool.Ping(ctx) }

func (k *KV) Close() error {
	k.pool.Close()
	return nil
}

// Pool exposes the pool for the readiness checker.
func (k *KV) Pool() *pgxpool.Pool { return k.pool }
