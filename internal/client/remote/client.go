// Package remote talks to the spreadsheet-style endpoint that holds the
// authoritative copy of contacts and user accounts.
//
// Reads are plain GETs selecting an entity class; the endpoint answers with
// either a bare JSON array or an object carrying the array under "data",
// and both shapes must be accepted. Writes are one-way POST notifications:
// the endpoint gives no reliable response, so the body is never consulted
// and a write counts as dispatched once the request left without a
// transport error.
package remote

import (
	"context"

	"github.com/nattavat/prdir/internal/client/models"
)

// Client is the remote store surface used by the directory services.
type Client interface {
	// GetContacts reads all contact rows, newest last (sheet order).
	GetContacts(ctx context.Context) ([]models.Contact, error)

	// GetUsers reads all account rows.
	GetUsers(ctx context.Context) ([]models.User, error)

	// CreateContact dispatches a one-way create for a contact that has no
	// server-assigned identifier yet.
	CreateContact(ctx context.Context, c models.Contact) error

	// UpdateContact dispatches a one-way update keyed by the contact's
	// server-assigned row id.
	UpdateContact(ctx context.Context, c models.Contact) error

	// DeleteContact dispatches a one-way delete keyed by row id.
	DeleteContact(ctx context.Context, id string) error

	// SaveUser dispatches a one-way account upsert.
	SaveUser(ctx context.Context, u models.User) error

	// DeleteUser dispatches a one-way account delete.
	DeleteUser(ctx context.Context, id string) error
}
