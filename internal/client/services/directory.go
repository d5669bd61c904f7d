package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nattavat/prdir/internal/client/models"
	"github.com/nattavat/prdir/internal/client/remote"
	"github.com/nattavat/prdir/internal/client/store"
	"github.com/nattavat/prdir/internal/common"
	"github.com/nattavat/prdir/internal/logging"
	"github.com/sethvargo/go-retry"
)

// DirectoryService is the single integration point between the UI layer and
// the two data sources: the remote store and the local fallback store.
//
// Every mutation checks the actor's role once, here, before any side effect.
// A denied mutation is a silent no-op: it returns nil, dispatches nothing
// and appends nothing to the audit log. The UI is expected to hide the
// affected controls, so denial is not an error condition.
//
// Writes are optimistic: a save counts as succeeded once dispatched, and the
// caller schedules a delayed re-fetch to converge the visible list with the
// remote truth. The service itself never waits for the remote store.
type DirectoryService interface {
	// FetchContacts reads the directory, newest remote entry first. On any
	// failure it returns an empty slice: callers must treat that as
	// "unknown", not as "the directory is empty".
	FetchContacts(ctx context.Context) []models.Contact

	// FetchUsers reads the accounts, always including the reserved
	// administrator, falling back to the local cache when the remote store
	// is unreachable.
	FetchUsers(ctx context.Context) []models.User

	// Authenticate matches the credentials against the fetched accounts.
	// It reports common.ErrUnauthorized without revealing which field was
	// wrong.
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	// SaveContact creates or updates a contact, chosen by its identifier
	// class. Transport failures are swallowed: the optimistic contract
	// tolerates eventual convergence.
	SaveContact(ctx context.Context, c models.Contact, actor *models.User) error

	// DeleteContact dispatches a remote delete. Unlike saves, a transport
	// failure is returned: silently losing a delete intent is worse than
	// silent staleness.
	DeleteContact(ctx context.Context, id, displayName string, actor *models.User) error

	// SaveUser upserts an account after a local duplicate-username check.
	SaveUser(ctx context.Context, u models.User, actor *models.User) error

	// DeleteUser removes an account. The reserved administrator is
	// rejected with common.ErrReservedAccount.
	DeleteUser(ctx context.Context, id string, actor *models.User) error

	// SyncCategoriesFromContacts creates a local category for every contact
	// type label with no case-sensitive match. Idempotent.
	SyncCategoriesFromContacts(ctx context.Context, contacts []models.Contact) error

	// Categories returns the local categories.
	Categories(ctx context.Context) []models.Category

	AddCategory(ctx context.Context, name string, actor *models.User) (models.Category, error)
	DeleteCategory(ctx context.Context, id string, actor *models.User) error
}

type directoryService struct {
	client remote.Client
	store  *store.Store
	audit  *AuditService
	log    logging.Logger

	// lastUsers is the most recently fetched account collection, used for
	// the fail-fast duplicate-username check. The host is single-threaded
	// cooperative at the call site, so no locking.
	lastUsers []models.User
}

func NewDirectoryService(client remote.Client, st *store.Store, audit *AuditService, log logging.Logger) DirectoryService {
	return &directoryService{client: client, store: st, audit: audit, log: log}
}

// fetchContacts is the fallible read; FetchContacts collapses the failure
// into an empty result for the public contract.
func (s *directoryService) fetchContacts(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.client.GetContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching contacts: %w", err)
	}

	// The sheet appends, so reversing shows the most recently added entry
	// first.
	for i, j := 0, len(contacts)-1; i < j; i, j = i+1, j-1 {
		contacts[i], contacts[j] = contacts[j], contacts[i]
	}
	return contacts, nil
}

func (s *directoryService) FetchContacts(ctx context.Context) []models.Contact {
	contacts, err := s.fetchContacts(ctx)
	if err != nil {
		s.log.Warn(ctx, "contact fetch degraded to empty result", "error", err)
		return []models.Contact{}
	}
	return contacts
}

// normalizeUsername trims and case-folds for comparison.
func normalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// mergeReservedAdmin puts the reserved administrator first and drops any
// remote account that would collide with it by id or username. The reserved
// account's own record always wins.
func mergeReservedAdmin(users []models.User) []models.User {
	reserved := models.ReservedAdmin()
	merged := make([]models.User, 0, len(users)+1)
	merged = append(merged, reserved)
	for _, u := range users {
		if u.ID == reserved.ID || normalizeUsername(u.Username) == normalizeUsername(reserved.Username) {
			continue
		}
		merged = append(merged, u)
	}
	return merged
}

func (s *directoryService) FetchUsers(ctx context.Context) []models.User {
	users, err := s.client.GetUsers(ctx)
	if err != nil {
		s.log.Warn(ctx, "user fetch falling back to local cache", "error", err)
		// The cache seeds the reserved account, so login stays possible
		// fully disconnected.
		s.lastUsers = mergeReservedAdmin(s.store.Users(ctx))
		return s.lastUsers
	}

	merged := mergeReservedAdmin(users)
	if err := s.store.SaveUsers(ctx, merged); err != nil {
		s.log.Warn(ctx, "failed to refresh local user cache", "error", err)
	}
	s.lastUsers = merged
	return merged
}

func (s *directoryService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	wantUser := normalizeUsername(username)
	wantPass := strings.TrimSpace(password)

	for _, u := range s.FetchUsers(ctx) {
		if normalizeUsername(u.Username) != wantUser {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(u.Password)), []byte(wantPass)) == 1 {
			return u, nil
		}
	}
	return models.User{}, common.ErrUnauthorized
}

// dispatch sends a one-way write with a single best-effort retry. The remote
// channel offers no acknowledgment beyond the transport, so this is the only
// write queueing the client provides.
func (s *directoryService) dispatch(ctx context.Context, send func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(1, retry.NewConstant(250*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := send(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

func (s *directoryService) SaveContact(ctx context.Context, c models.Contact, actor *models.User) error {
	if actor == nil || !actor.Role.CanMutateRecords() {
		return nil
	}

	action, send := "Create Contact", s.client.CreateContact
	if c.Persisted() {
		action, send = "Update Contact", s.client.UpdateContact
	}

	if err := s.dispatch(ctx, func(ctx context.Context) error { return send(ctx, c) }); err != nil {
		// Optimistic contract: the delayed re-fetch will reveal whether the
		// write landed. Staleness is tolerated, so the failure is swallowed.
		s.log.Warn(ctx, "contact save dispatch failed", "action", action, "error", err)
	}

	return s.audit.Append(ctx, actor, action, fmt.Sprintf("%s (%s)", c.Name, c.Type))
}

func (s *directoryService) DeleteContact(ctx context.Context, id, displayName string, actor *models.User) error {
	if actor == nil || !actor.Role.CanMutateRecords() {
		return nil
	}

	if err := s.client.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("deleting contact %s: %w", id, err)
	}
	return s.audit.Append(ctx, actor, "Delete Contact", displayName)
}

func (s *directoryService) SaveUser(ctx context.Context, u models.User, actor *models.User) error {
	if actor == nil || !actor.Role.CanManageSystem() {
		return nil
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	known := s.lastUsers
	if len(known) == 0 {
		known = s.FetchUsers(ctx)
	}
	for _, existing := range known {
		if existing.ID != u.ID && normalizeUsername(existing.Username) == normalizeUsername(u.Username) {
			return common.ErrDuplicateUsername
		}
	}

	// Update the cache first so the account is usable for login immediately,
	// before the remote store converges.
	cached := s.store.Users(ctx)
	replaced := false
	for i, existing := range cached {
		if existing.ID == u.ID {
			cached[i] = u
			replaced = true
			break
		}
	}
	if !replaced {
		cached = append(cached, u)
	}
	if err := s.store.SaveUsers(ctx, cached); err != nil {
		return fmt.Errorf("caching user: %w", err)
	}
	s.lastUsers = mergeReservedAdmin(cached)

	if err := s.dispatch(ctx, func(ctx context.Context) error { return s.client.SaveUser(ctx, u) }); err != nil {
		s.log.Warn(ctx, "user save dispatch failed", "username", u.Username, "error", err)
	}

	return s.audit.Append(ctx, actor, "Save User", fmt.Sprintf("%s (%s)", u.Username, u.Role))
}

func (s *directoryService) DeleteUser(ctx context.Context, id string, actor *models.User) error {
	if actor == nil || !actor.Role.CanManageSystem() {
		return nil
	}
	if id == models.ReservedAdminID {
		return common.ErrReservedAccount
	}

	cached := s.store.Users(ctx)
	remaining := make([]models.User, 0, len(cached))
	var removed models.User
	for _, u := range cached {
		if u.ID == id {
			removed = u
			continue
		}
		remaining = append(remaining, u)
	}

	// The account may never have been cached locally; keep the audit entry
	// meaningful anyway.
	detail := removed.Username
	if detail == "" {
		for _, u := range s.lastUsers {
			if u.ID == id {
				detail = u.Username
				break
			}
		}
	}
	if detail == "" {
		detail = id
	}

	if err := s.store.SaveUsers(ctx, remaining); err != nil {
		return fmt.Errorf("removing cached user: %w", err)
	}
	s.lastUsers = mergeReservedAdmin(remaining)

	if err := s.dispatch(ctx, func(ctx context.Context) error { return s.client.DeleteUser(ctx, id) }); err != nil {
		s.log.Warn(ctx, "user delete dispatch failed", "id", id, "error", err)
	}

	return s.audit.Append(ctx, actor, "Delete User", detail)
}

func (s *directoryService) SyncCategoriesFromContacts(ctx context.Context, contacts []models.Contact) error {
	categories := s.store.Categories(ctx)
	existing := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		existing[c.Name] = struct{}{}
	}

	added := false
	for _, contact := range contacts {
		if contact.Type == "" {
			continue
		}
		if _, ok := existing[contact.Type]; ok {
			continue
		}
		categories = append(categories, models.NewCategory(contact.Type))
		existing[contact.Type] = struct{}{}
		added = true
	}

	if !added {
		return nil
	}
	return s.store.SaveCategories(ctx, categories)
}

func (s *directoryService) Categories(ctx context.Context) []models.Category {
	return s.store.Categories(ctx)
}

func (s *directoryService) AddCategory(ctx context.Context, name string, actor *models.User) (models.Category, error) {
	if actor == nil || !actor.Role.CanManageSystem() {
		return models.Category{}, nil
	}

	category := models.NewCategory(name)
	categories := append(s.store.Categories(ctx), category)
	if err := s.store.SaveCategories(ctx, categories); err != nil {
		return models.Category{}, fmt.Errorf("saving category: %w", err)
	}

	return category, s.audit.Append(ctx, actor, "Add Category", name)
}

func (s *directoryService) DeleteCategory(ctx context.Context, id string, actor *models.User) error {
	if actor == nil || !actor.Role.CanManageSystem() {
		return nil
	}

	categories := s.store.Categories(ctx)
	remaining := make([]models.Category, 0, len(categories))
	var removed models.Category
	for _, c := range categories {
		if c.ID == id {
			removed = c
			continue
		}
		remaining = append(remaining, c)
	}
	if err := s.store.SaveCategories(ctx, remaining); err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	return s.audit.Append(ctx, actor, "Delete Category", removed.Name)
}
