// Package services contains the application services of the PR Directory
// client: the directory synchronizer, the bounded audit log and persistent
// session handling.
package services

import (
	"context"

	"github.com/nattavat/prdir/internal/client/models"
	"github.com/nattavat/prdir/internal/client/store"
	"github.com/nattavat/prdir/internal/logging"
)

// AuditService keeps the append-only, size-bounded activity log.
//
// It performs no authorization of its own: callers append only after their
// own access check succeeded, and the log records whatever the caller
// reports. Appends with no actor (unauthenticated context) are dropped.
type AuditService struct {
	store *store.Store
	log   logging.Logger
}

func NewAuditService(st *store.Store, log logging.Logger) *AuditService {
	return &AuditService{store: st, log: log}
}

// Append prepends a new actor-attributed entry and truncates the log to
// models.MaxActivityLogEntries. No-op when actor is nil.
func (a *AuditService) Append(ctx context.Context, actor *models.User, action, details string) error {
	if actor == nil {
		return nil
	}

	entries := a.store.ActivityLog(ctx)
	entries = append([]models.ActivityLogEntry{models.NewActivityLogEntry(*actor, action, details)}, entries...)
	if len(entries) > models.MaxActivityLogEntries {
		entries = entries[:models.MaxActivityLogEntries]
	}

	if err := a.store.SaveActivityLog(ctx, entries); err != nil {
		a.log.Error(ctx, "failed to persist activity log", "action", action, "error", err)
		return err
	}
	return nil
}

// List returns the log entries newest first.
func (a *AuditService) List(ctx context.Context) []models.ActivityLogEntry {
	return a.store.ActivityLog(ctx)
}

// Clear empties the persisted log unconditionally.
func (a *AuditService) Clear(ctx context.Context) error {
	return a.store.SaveActivityLog(ctx, nil)
}
