package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/nattavat/prdir/internal/client/models"
	"github.com/nattavat/prdir/internal/client/repositories/slots"
	"github.com/nattavat/prdir/internal/client/store"
	"github.com/nattavat/prdir/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE slots (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	return store.New(slots.NewSQLiteRepository(db), discardLogger())
}

func TestAppend_NilActorIsNoOp(t *testing.T) {
	audit := NewAuditService(setupStore(t), discardLogger())
	ctx := context.Background()

	require.NoError(t, audit.Append(ctx, nil, "Login", "whoever"))
	assert.Empty(t, audit.List(ctx))
}

func TestAppend_PrependsNewestFirst(t *testing.T) {
	audit := NewAuditService(setupStore(t), discardLogger())
	ctx := context.Background()
	actor := models.ReservedAdmin()

	require.NoError(t, audit.Append(ctx, &actor, "Login", "first"))
	require.NoError(t, audit.Append(ctx, &actor, "Create Contact", "second"))

	entries := audit.List(ctx)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Details)
	assert.Equal(t, "first", entries[1].Details)
	assert.Equal(t, actor.ID, entries[0].UserID)
	assert.Equal(t, string(actor.Role), entries[0].UserRole)
}

func TestAppend_TruncatesAtCap(t *testing.T) {
	audit := NewAuditService(setupStore(t), discardLogger())
	ctx := context.Background()
	actor := models.ReservedAdmin()

	for i := 1; i <= models.MaxActivityLogEntries+1; i++ {
		require.NoError(t, audit.Append(ctx, &actor, "Create Contact", fmt.Sprintf("entry %d", i)))
	}

	entries := audit.List(ctx)
	require.Len(t, entries, models.MaxActivityLogEntries)
	assert.Equal(t, "entry 501", entries[0].Details, "newest entry kept")
	assert.Equal(t, "entry 2", entries[len(entries)-1].Details, "oldest entry evicted")
}

func TestAppend_ActorSnapshotIsFrozen(t *testing.T) {
	audit := NewAuditService(setupStore(t), discardLogger())
	ctx := context.Background()

	actor := models.User{ID: "7", Name: "สมศรี", Role: models.RoleEditor}
	require.NoError(t, audit.Append(ctx, &actor, "Update Contact", "x"))

	// A later role change must not rewrite history.
	actor.Role = models.RoleAdmin
	entries := audit.List(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, "editor", entries[0].UserRole)
}

func TestClear(t *testing.T) {
	audit := NewAuditService(setupStore(t), discardLogger())
	ctx := context.Background()
	actor := models.ReservedAdmin()

	require.NoError(t, audit.Append(ctx, &actor, "Login", ""))
	require.NoError(t, audit.Clear(ctx))
	assert.Empty(t, audit.List(ctx))
}
