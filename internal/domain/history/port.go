package history

import "context"

// SlotStore persists a single named blob per key. Absence of the slot is
// a valid empty state, not an error. Clear removes the slot entirely so
// that the store is indistinguishable from a fresh install.
type SlotStore interface {
	Load(ctx context.Context, key string) (value []byte, found bool, err error)
	Save(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}
