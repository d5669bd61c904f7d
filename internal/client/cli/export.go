package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nattavat/prdir/internal/client/export"
)

// utf8BOM makes Excel open the file as UTF-8 so Thai headers render
// correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func (a *App) Export(ctx context.Context) error {
	contacts := a.getContacts()
	if len(contacts) == 0 {
		printlnFn("Nothing to export")
		return nil
	}

	name := export.Filename(time.Now())
	data := append(append([]byte{}, utf8BOM...), []byte(export.ContactsCSV(contacts))...)
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	a.ops.Lock()
	err := a.audit.Append(ctx, a.actor, "Export CSV", fmt.Sprintf("%d contacts to %s", len(contacts), name))
	a.ops.Unlock()
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Exported %d contacts to %s", len(contacts), name))
	return nil
}
