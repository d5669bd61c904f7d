package services

import (
	"context"
	"testing"
	"time"

	"github.com/nattavat/prdir/internal/client/models"
	"github.com/nattavat/prdir/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_SaveAndRestore(t *testing.T) {
	st := setupStore(t)
	svc := NewSessionService(st, discardLogger())
	ctx := context.Background()

	user := models.User{ID: "9", Username: "somsri", Name: "สมศรี", Role: models.RoleEditor}
	require.NoError(t, svc.Save(ctx, user))

	got, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Name, got.Name)
	assert.Equal(t, models.RoleEditor, got.Role)
	assert.Empty(t, got.Password, "the snapshot never carries credentials")
}

func TestSession_RestoreWithoutSession(t *testing.T) {
	svc := NewSessionService(setupStore(t), discardLogger())

	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestSession_TamperedTokenRejected(t *testing.T) {
	st := setupStore(t)
	svc := NewSessionService(st, discardLogger())
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, models.ReservedAdmin()))
	require.NoError(t, st.SaveSessionToken(ctx, st.SessionToken(ctx)+"x"))

	_, err := svc.Restore(ctx)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	// The broken token is discarded so the next restore fails cleanly too.
	_, err = svc.Restore(ctx)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestSession_ExpiredTokenRejected(t *testing.T) {
	st := setupStore(t)
	svc := NewSessionService(st, discardLogger())
	ctx := context.Background()

	svc.now = func() time.Time { return time.Now().Add(-sessionValidity - time.Hour) }
	require.NoError(t, svc.Save(ctx, models.ReservedAdmin()))

	svc.now = time.Now
	_, err := svc.Restore(ctx)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestSession_Clear(t *testing.T) {
	st := setupStore(t)
	svc := NewSessionService(st, discardLogger())
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, models.ReservedAdmin()))
	require.NoError(t, svc.Clear(ctx))

	_, err := svc.Restore(ctx)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
