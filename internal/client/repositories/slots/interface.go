// Package slots persists named documents in a local SQLite database.
//
// Each slot holds one whole JSON-serialized collection (categories, users,
// activity log, session state). There are no partial writes: Set replaces
// the stored document wholesale.
package slots

import "context"

type Repository interface {
	// Get returns the stored document, or nil when the slot has never been
	// written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the slot's document wholesale.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the slot.
	Delete(ctx context.Context, key string) error
}
