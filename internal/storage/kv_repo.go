package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// KVRepo is a flat key-value store in the kv table. A positive quota caps
// the size of any single value in bytes.
type KVRepo struct {
	db    *sql.DB
	quota int
}

func NewKVRepo(db *sql.DB, quota int) *KVRepo {
	return &KVRepo{db: db, quota: quota}
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getValue(ctx context.Context, q queryRower, key string) ([]byte, error) {
	row := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("kv get: %w", err)
	}
	return []byte(v), nil
}

func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	return getValue(ctx, r.db, key)
}

// Put writes value under key, replacing any previous value.
func (r *KVRepo) Put(ctx context.Context, key string, value []byte) error {
	return r.Update(ctx, key, func([]byte) ([]byte, error) { return value, nil })
}

// Update reads key, hands the value to fn and writes the result in one
// transaction. Nothing is written if fn fails or the quota is exceeded.
func (r *KVRepo) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		cur, err := getValue(ctx, tx, key)
		if err != nil {
			return err
		}
		next, err := fn(cur)
		if err != nil {
			return err
		}
		if r.quota > 0 && len(next) > r.quota {
			return quotaError(len(next), r.quota)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`, key, string(next), time.Now().UTC())
		if err != nil {
			return fmt.Errorf("kv put: %w", err)
		}
		return nil
	})
}

// Delete removes key. A missing key is not an error.
func (r *KVRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kv delete: %w", err)
	}
	return nil
}
