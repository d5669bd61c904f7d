// Package store is the local fallback store: the sole persistence for
// categories, the activity log and session state, and a resilience cache
// for user accounts.
//
// Each entity class lives in its own named slot as a whole JSON document.
// Loads seed deterministic defaults on first access (persisting the seed
// before returning it) and degrade to those defaults when a slot is
// unreadable or corrupt: the fallback store is never a source of fatal
// error on the read path.
package store

import (
	"context"
	"encoding/json"

	"github.com/nattavat/prdir/internal/client/models"
	"github.com/nattavat/prdir/internal/client/repositories/slots"
	"github.com/nattavat/prdir/internal/common"
	"github.com/nattavat/prdir/internal/logging"
)

// Slot keys. One slot per entity class.
const (
	slotCategories    = "categories"
	slotUsers         = "users"
	slotActivityLog   = "activity_log"
	slotSessionToken  = "session_token"
	slotSessionSecret = "session_secret"
)

type Store struct {
	slots slots.Repository
	log   logging.Logger
}

func New(repo slots.Repository, log logging.Logger) *Store {
	return &Store{slots: repo, log: log}
}

// loadSlot returns the collection stored under key, seeding and persisting
// the default collection when the slot is missing, unreadable or corrupt.
func loadSlot[T any](ctx context.Context, s *Store, key string, seed func() []T) []T {
	raw, err := s.slots.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "slot unreadable, falling back to defaults", "slot", key, "error", err)
	} else if raw != nil {
		var out []T
		if err := json.Unmarshal(raw, &out); err == nil {
			return out
		}
		s.log.Warn(ctx, "slot corrupt, reseeding defaults", "slot", key)
	}

	defaults := seed()
	if err := saveSlot(ctx, s, key, defaults); err != nil {
		s.log.Warn(ctx, "failed to persist seeded defaults", "slot", key, "error", err)
	}
	return defaults
}

// saveSlot replaces the collection stored under key wholesale.
func saveSlot[T any](ctx context.Context, s *Store, key string, collection []T) error {
	if collection == nil {
		collection = []T{}
	}
	raw, err := json.Marshal(collection)
	if err != nil {
		return err
	}
	return s.slots.Set(ctx, key, raw)
}

// Categories returns the persisted categories, seeding the fixed default
// list on first access.
func (s *Store) Categories(ctx context.Context) []models.Category {
	return loadSlot(ctx, s, slotCategories, models.DefaultCategories)
}

func (s *Store) SaveCategories(ctx context.Context, categories []models.Category) error {
	return saveSlot(ctx, s, slotCategories, categories)
}

// Users returns the cached accounts, seeding the reserved administrator
// on first access so authentication stays possible fully disconnected.
func (s *Store) Users(ctx context.Context) []models.User {
	return loadSlot(ctx, s, slotUsers, func() []models.User {
		return []models.User{models.ReservedAdmin()}
	})
}

func (s *Store) SaveUsers(ctx context.Context, users []models.User) error {
	return saveSlot(ctx, s, slotUsers, users)
}

// ActivityLog returns the persisted activity log, newest first. The log
// seeds empty.
func (s *Store) ActivityLog(ctx context.Context) []models.ActivityLogEntry {
	return loadSlot(ctx, s, slotActivityLog, func() []models.ActivityLogEntry {
		return []models.ActivityLogEntry{}
	})
}

func (s *Store) SaveActivityLog(ctx context.Context, entries []models.ActivityLogEntry) error {
	return saveSlot(ctx, s, slotActivityLog, entries)
}

// SessionToken returns the persisted session token, or "" when no session
// is stored.
func (s *Store) SessionToken(ctx context.Context) string {
	raw, err := s.slots.Get(ctx, slotSessionToken)
	if err != nil || raw == nil {
		return ""
	}
	return string(raw)
}

func (s *Store) SaveSessionToken(ctx context.Context, token string) error {
	return s.slots.Set(ctx, slotSessionToken, []byte(token))
}

func (s *Store) ClearSessionToken(ctx context.Context) error {
	return s.slots.Delete(ctx, slotSessionToken)
}

// SessionSecret returns the per-install secret used to sign session tokens,
// generating and persisting it on first access.
func (s *Store) SessionSecret(ctx context.Context) ([]byte, error) {
	raw, err := s.slots.Get(ctx, slotSessionSecret)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		return raw, nil
	}
	secret := common.GenerateRandByteArray(32)
	if err := s.slots.Set(ctx, slotSessionSecret, secret); err != nil {
		return nil, err
	}
	return secret, nil
}
