package models

import (
	"time"

	"github.com/rs/xid"
)

// MaxActivityLogEntries bounds the activity log. Appending beyond the cap
// evicts the oldest entries.
const MaxActivityLogEntries = 500

// ActivityLogEntry records one actor-attributed action. The actor fields are
// a snapshot taken at write time; later role changes do not rewrite history.
type ActivityLogEntry struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserRole  string `json:"userRole"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	Timestamp int64  `json:"timestamp"`
}

// NewActivityLogEntry snapshots the actor and stamps the entry with a fresh
// time-sortable identifier.
func NewActivityLogEntry(actor User, action, details string) ActivityLogEntry {
	return ActivityLogEntry{
		ID:        xid.New().String(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		UserRole:  string(actor.Role),
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UnixMilli(),
	}
}
