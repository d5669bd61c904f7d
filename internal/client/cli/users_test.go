package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nattavat/prdir/internal/client/models"
)

func stubPassword(t *testing.T, pw []byte) {
	t.Helper()
	old := readPassword
	readPassword = func(int) ([]byte, error) { return pw, nil }
	t.Cleanup(func() { readPassword = old })
}

func TestEditUser_KeepsIDAndPassword(t *testing.T) {
	quietOutput(t)
	stubPassword(t, nil) // plain Enter keeps the current password

	fd := &fakeDirectory{users: []models.User{
		{ID: "9", Username: "somsri", Password: "pw", Name: "สมศรี", Role: models.RoleViewer},
	}}
	// Keep the username, change the display name, mistype the role once.
	a := testApp(fd, "\nสมศรี ใจดี\nEditor\neditor\n")

	require.NoError(t, a.EditUser(context.Background(), []string{"1"}))

	require.Len(t, fd.savedUsers, 1)
	saved := fd.savedUsers[0]
	assert.Equal(t, "9", saved.ID, "existing identifier carried through, so the save is an update")
	assert.Equal(t, "somsri", saved.Username)
	assert.Equal(t, "สมศรี ใจดี", saved.Name)
	assert.Equal(t, models.RoleEditor, saved.Role)
	assert.Equal(t, "pw", saved.Password)
}

func TestEditUser_UsageOnBadIndex(t *testing.T) {
	quietOutput(t)
	fd := &fakeDirectory{users: []models.User{{ID: "9", Username: "somsri"}}}
	a := testApp(fd, "")

	require.NoError(t, a.EditUser(context.Background(), []string{"2"}))
	require.NoError(t, a.EditUser(context.Background(), nil))
	assert.Empty(t, fd.savedUsers)
}

func TestSaveUser_RepromptsUnknownRole(t *testing.T) {
	quietOutput(t)
	stubPassword(t, []byte("secret1"))

	fd := &fakeDirectory{}
	a := testApp(fd, "mana\nมานะ\nAdmin\nsuperuser\nadmin\n")

	require.NoError(t, a.SaveUser(context.Background()))

	require.Len(t, fd.savedUsers, 1)
	saved := fd.savedUsers[0]
	assert.Equal(t, models.RoleAdmin, saved.Role, "only an exact role spelling is accepted")
	assert.Equal(t, "secret1", saved.Password)
	assert.Empty(t, saved.ID, "new accounts carry no identifier yet")
}

func TestSaveUser_RequiresAdmin(t *testing.T) {
	quietOutput(t)
	fd := &fakeDirectory{}
	a := testApp(fd, "")
	a.actor = &models.User{Role: models.RoleEditor}

	require.NoError(t, a.SaveUser(context.Background()))
	require.NoError(t, a.EditUser(context.Background(), []string{"1"}))
	assert.Empty(t, fd.savedUsers)
}
