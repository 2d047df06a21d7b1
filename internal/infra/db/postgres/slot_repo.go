package postgres

import (
	"context"
	"database/sql"
	"errors"
)

// SlotRepository is the Postgres twin of the MySQL slot repository.
type SlotRepository struct {
	db *sql.DB
}

func NewSlotRepository(db *sql.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// EnsureSchema creates the slot table when it does not exist yet.
func (r *SlotRepository) EnsureSchema(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS kv_slots (
  slot_key   VARCHAR(128) PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`
	_, err := r.db.ExecContext(ctx, q)
	return err
}

func (r *SlotRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	const q = `SELECT value FROM kv_slots WHERE slot_key=$1 LIMIT 1;`
	var value []byte
	err := r.db.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (r *SlotRepository) Save(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO kv_slots (slot_key, value, updated_at)
VALUES ($1,$2,now())
ON CONFLICT (slot_key) DO UPDATE SET
  value = EXCLUDED.value,
  updated_at = EXCLUDED.updated_at;`
	_, err := r.db.ExecContext(ctx, q, key, value)
	return err
}

func (r *SlotRepository) Clear(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_slots WHERE slot_key=$1;`
	_, err := r.db.ExecContext(ctx, q, key)
	return err
}
