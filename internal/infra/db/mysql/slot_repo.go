package mysql

import (
	"context"
	"database/sql"
	"errors"
)

// SlotRepository persists named blobs in a single keyed table. The history
// slot is the only writer-owned slot today.
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
  value      LONGTEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
);`
	_, err := r.db.ExecContext(ctx, q)
	return err
}

func (r *SlotRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	const q = `SELECT value FROM kv_slots WHERE slot_key=? LIMIT 1;`
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

// Save upserts, so the slot is replaced in one statement.
func (r *SlotRepository) Save(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO kv_slots (slot_key, value)
VALUES (?,?)
ON DUPLICATE KEY UPDATE value=VALUES(value);`
	_, err := r.db.ExecContext(ctx, q, key, value)
	return err
}

// Clear deletes the row; an absent row is the valid empty state.
func (r *SlotRepository) Clear(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_slots WHERE slot_key=?;`
	_, err := r.db.ExecContext(ctx, q, key)
	return err
}
