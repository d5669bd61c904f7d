// Package models defines the directory entities: contacts, categories,
// user accounts, roles and activity-log entries.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Address holds the structured address part of a contact. Every field is
// optional free text.
type Address struct {
	No          string `json:"no"`
	Soi         string `json:"soi"`
	Moo         string `json:"moo"`
	Road        string `json:"road"`
	Subdistrict string `json:"subdistrict"`
	District    string `json:"district"`
	Province    string `json:"province"`
	Zipcode     string `json:"zipcode"`
}

// Contact is a single directory record.
//
// ID is either a locally generated UUID (before the record has been accepted
// by the remote store) or the decimal row index assigned by the remote store.
// CreatedAt is informational only; the remote store owns ordering.
type Contact struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Position     string  `json:"position"`
	Organization string  `json:"organization"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Address      Address `json:"address"`
	Link         string  `json:"link"`
	CreatedAt    int64   `json:"createdAt"`
}

// NewContact returns a Contact with a fresh locally generated identifier
// and the current timestamp.
func NewContact() Contact {
	return Contact{ID: uuid.NewString(), Type: "Uncategorized", CreatedAt: time.Now().UnixMilli()}
}

// Persisted reports whether the contact already exists in the remote store,
// i.e. carries a server-assigned identifier.
func (c Contact) Persisted() bool {
	return ServerAssignedID(c.ID)
}
