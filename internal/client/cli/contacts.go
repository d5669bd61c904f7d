package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nattavat/prdir/internal/client/models"
)

// filterContacts returns the contacts matching a free-text search term
// (name, organization, position or province, case-insensitive) and a
// category label ("all" disables the category filter).
func filterContacts(contacts []models.Contact, term, category string) []models.Contact {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if category != "" && category != "all" && c.Type != category {
			continue
		}
		if term != "" {
			haystack := strings.ToLower(c.Name + " " + c.Organization + " " + c.Position + " " + c.Address.Province)
			if !strings.Contains(haystack, term) {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func (a *App) setView(view []models.Contact) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view = view
}

// viewContact resolves a 1-based list position from the last listing.
func (a *App) viewContact(args []string) (models.Contact, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(args) == 0 {
		return models.Contact{}, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.view) {
		return models.Contact{}, false
	}
	return a.view[n-1], true
}

func (a *App) List(ctx context.Context, args []string) error {
	term := strings.Join(args, " ")
	view := filterContacts(a.getContacts(), term, "all")
	a.setView(view)

	if len(view) == 0 {
		printlnFn("No contacts to show (empty result may mean the remote store is unreachable)")
		return nil
	}
	for i, c := range view {
		printlnFn(fmt.Sprintf("%3d. %-30s %-20s %s", i+1, c.Name, c.Type, c.Organization))
	}
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	c, ok := a.viewContact(args)
	if !ok {
		printlnFn("Usage: show <n> (run 'list' first)")
		return nil
	}

	printlnFn("Name:        ", c.Name)
	printlnFn("Category:    ", c.Type)
	printlnFn("Position:    ", c.Position)
	printlnFn("Organization:", c.Organization)
	printlnFn("Phone:       ", c.Phone)
	printlnFn("Email:       ", c.Email)
	addr := c.Address
	printlnFn("Address:     ", strings.TrimSpace(fmt.Sprintf("%s %s %s %s %s %s %s %s",
		addr.No, addr.Soi, addr.Moo, addr.Road, addr.Subdistrict, addr.District, addr.Province, addr.Zipcode)))
	printlnFn("Link:        ", c.Link)
	return nil
}

// promptContact fills in contact fields interactively, keeping current
// values on empty input.
func (a *App) promptContact(c *models.Contact) error {
	fields := []struct {
		label string
		value *string
	}{
		{"Name", &c.Name},
		{"Category", &c.Type},
		{"Position", &c.Position},
		{"Organization", &c.Organization},
		{"Phone", &c.Phone},
		{"Email", &c.Email},
		{"Address no.", &c.Address.No},
		{"Soi", &c.Address.Soi},
		{"Moo", &c.Address.Moo},
		{"Road", &c.Address.Road},
		{"Subdistrict", &c.Address.Subdistrict},
		{"District", &c.Address.District},
		{"Province", &c.Address.Province},
		{"Zipcode", &c.Address.Zipcode},
		{"Link", &c.Link},
	}
	for _, f := range fields {
		v, err := GetTextOrKeep(a.reader, f.label, *f.value, os.Stdout)
		if err != nil {
			return err
		}
		*f.value = v
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	if !a.canMutate() {
		printlnFn("Viewers cannot change the directory")
		return nil
	}

	c := models.NewContact()
	if err := a.promptContact(&c); err != nil {
		return err
	}

	a.ops.Lock()
	err := a.directory.SaveContact(ctx, c, a.actor)
	a.ops.Unlock()
	if err != nil {
		return err
	}
	printlnFn("Saved. The list will refresh shortly.")
	a.scheduleRefetch()
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	if !a.canMutate() {
		printlnFn("Viewers cannot change the directory")
		return nil
	}

	c, ok := a.viewContact(args)
	if !ok {
		printlnFn("Usage: edit <n> (run 'list' first)")
		return nil
	}
	if err := a.promptContact(&c); err != nil {
		return err
	}

	a.ops.Lock()
	err := a.directory.SaveContact(ctx, c, a.actor)
	a.ops.Unlock()
	if err != nil {
		return err
	}
	printlnFn("Saved. The list will refresh shortly.")
	a.scheduleRefetch()
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if !a.canMutate() {
		printlnFn("Viewers cannot change the directory")
		return nil
	}

	c, ok := a.viewContact(args)
	if !ok {
		printlnFn("Usage: delete <n> (run 'list' first)")
		return nil
	}

	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete %q? This hits the remote store directly (y/N)", c.Name), os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		printlnFn("Cancelled")
		return nil
	}

	a.ops.Lock()
	err = a.directory.DeleteContact(ctx, c.ID, c.Name, a.actor)
	a.ops.Unlock()
	if err != nil {
		// Unlike saves, a failed delete surfaces: the intent was lost.
		return err
	}
	printlnFn("Deleted. The list will refresh shortly.")
	a.scheduleRefetch()
	return nil
}

func (a *App) canMutate() bool {
	return a.actor != nil && a.actor.Role.CanMutateRecords()
}

func (a *App) canManage() bool {
	return a.actor != nil && a.actor.Role.CanManageSystem()
}
