// Package cli is the interactive terminal front end of the PR Directory
// client. It owns no business rules: every operation is delegated to the
// directory services, and the REPL only renders results and schedules the
// delayed reconciliation fetch after optimistic writes.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"sync"
	"time"

	"github.com/nattavat/prdir/internal/client/config"
	"github.com/nattavat/prdir/internal/client/models"
	"github.com/nattavat/prdir/internal/client/remote"
	"github.com/nattavat/prdir/internal/client/repositories/slots"
	"github.com/nattavat/prdir/internal/client/services"
	"github.com/nattavat/prdir/internal/client/store"
	"github.com/nattavat/prdir/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	db        *sql.DB
	directory services.DirectoryService
	audit     *services.AuditService
	session   *services.SessionService
	reader    *bufio.Reader

	// actor is the authenticated user for this session, nil before login.
	actor *models.User

	// mu guards the cached directory view: the delayed re-fetch runs on a
	// timer goroutine while the REPL keeps reading commands.
	mu       sync.Mutex
	contacts []models.Contact
	view     []models.Contact

	// ops serializes local-store writes between the REPL goroutine and the
	// timer-driven refresh. The slots are whole-document read-modify-write,
	// so two unserialized writers would lose one of the updates.
	ops sync.Mutex
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := store.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}

	st := store.New(slots.NewSQLiteRepository(db), log)
	audit := services.NewAuditService(st, log)
	session := services.NewSessionService(st, log)
	client := remote.NewHTTPClient(cfg.EndpointURL, cfg.RequestTimeout)
	directory := services.NewDirectoryService(client, st, audit, log)

	app := &App{
		config:    cfg,
		log:       log,
		db:        db,
		directory: directory,
		audit:     audit,
		session:   session,
		reader:    bufio.NewReader(os.Stdin),
	}

	// Restore a persisted login, if any survives verification.
	if user, err := session.Restore(ctx); err == nil {
		app.actor = &user
	}

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("PR Directory CLI (type 'help' for commands)")
	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	}
	if a.isLoggedIn() {
		_ = a.Refresh(ctx)
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.actor != nil
}

func (a *App) status() string {
	if a.actor == nil {
		return ""
	}
	return a.actor.Username + " " + string(a.actor.Role)
}

func (a *App) setContacts(contacts []models.Contact) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.contacts = contacts
	a.view = contacts
}

func (a *App) getContacts() []models.Contact {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.contacts
}

// Refresh pulls the directory and grows local categories from the fetched
// labels. An empty result means "unknown", so the category sync is skipped
// rather than run against nothing.
func (a *App) Refresh(ctx context.Context) error {
	a.ops.Lock()
	defer a.ops.Unlock()
	return a.refresh(ctx)
}

// refresh is Refresh without the ops lock, for callers already holding it.
func (a *App) refresh(ctx context.Context) error {
	contacts := a.directory.FetchContacts(ctx)
	a.setContacts(contacts)
	if len(contacts) > 0 {
		if err := a.directory.SyncCategoriesFromContacts(ctx, contacts); err != nil {
			a.log.Warn(ctx, "category sync failed", "error", err)
		}
	}
	return nil
}

// scheduleRefetch converges the visible list with the remote truth after an
// optimistic write. The remote store acknowledges nothing, so a delayed
// re-fetch substitutes for the missing acknowledgment channel.
func (a *App) scheduleRefetch() {
	time.AfterFunc(a.config.RefetchDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.config.RequestTimeout)
		defer cancel()
		_ = a.Refresh(ctx)
	})
}
