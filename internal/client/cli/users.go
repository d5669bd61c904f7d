package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/nattavat/prdir/internal/client/models"
	"github.com/nattavat/prdir/internal/common"
)

func (a *App) Users(ctx context.Context) error {
	if !a.canManage() {
		printlnFn("Managing accounts requires the admin role")
		return nil
	}

	for i, u := range a.directory.FetchUsers(ctx) {
		printlnFn(fmt.Sprintf("%3d. %-20s %-20s %s", i+1, u.Username, u.Name, u.Role))
	}
	return nil
}

// promptRole keeps asking until one of the known roles is entered. An
// unknown role string would silently behave as viewer, so free text is not
// accepted. An empty answer keeps current.
func (a *App) promptRole(current string) (models.Role, error) {
	for {
		answer, err := GetTextOrKeep(a.reader, "Role (viewer/editor/admin)", current, os.Stdout)
		if err != nil {
			return "", err
		}
		switch r := models.Role(answer); r {
		case models.RoleViewer, models.RoleEditor, models.RoleAdmin:
			return r, nil
		}
		printlnFn("Unknown role; choose viewer, editor or admin")
	}
}

func (a *App) SaveUser(ctx context.Context) error {
	if !a.canManage() {
		printlnFn("Managing accounts requires the admin role")
		return nil
	}

	username, err := GetSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Display name", os.Stdout)
	if err != nil {
		return err
	}
	role, err := a.promptRole("")
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user := models.User{
		Username: username,
		Password: string(password),
		Name:     name,
		Role:     role,
	}
	a.ops.Lock()
	err = a.directory.SaveUser(ctx, user, a.actor)
	a.ops.Unlock()
	if err != nil {
		// Validation errors (duplicate username) surface verbatim.
		return err
	}
	printlnFn("Saved account", username)
	return nil
}

// EditUser updates an existing account in place, keeping its identifier so
// the save is an upsert rather than a rejected re-add.
func (a *App) EditUser(ctx context.Context, args []string) error {
	if !a.canManage() {
		printlnFn("Managing accounts requires the admin role")
		return nil
	}

	users := a.directory.FetchUsers(ctx)
	if len(args) == 0 {
		printlnFn("Usage: edituser <n> (run 'users' first)")
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(users) {
		printlnFn("Usage: edituser <n> (run 'users' first)")
		return nil
	}
	target := users[n-1]

	username, err := GetTextOrKeep(a.reader, "Username", target.Username, os.Stdout)
	if err != nil {
		return err
	}
	name, err := GetTextOrKeep(a.reader, "Display name", target.Name, os.Stdout)
	if err != nil {
		return err
	}
	role, err := a.promptRole(string(target.Role))
	if err != nil {
		return err
	}
	printlnFn("Press Enter to keep the current password")
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	updated := target
	updated.Username = username
	updated.Name = name
	updated.Role = role
	if len(password) > 0 {
		updated.Password = string(password)
	}

	a.ops.Lock()
	err = a.directory.SaveUser(ctx, updated, a.actor)
	a.ops.Unlock()
	if err != nil {
		return err
	}
	printlnFn("Saved account", username)
	return nil
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	if !a.canManage() {
		printlnFn("Managing accounts requires the admin role")
		return nil
	}

	users := a.directory.FetchUsers(ctx)
	if len(args) == 0 {
		printlnFn("Usage: deluser <n> (run 'users' first)")
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(users) {
		printlnFn("Usage: deluser <n> (run 'users' first)")
		return nil
	}

	target := users[n-1]
	a.ops.Lock()
	err = a.directory.DeleteUser(ctx, target.ID, a.actor)
	a.ops.Unlock()
	if err != nil {
		return err
	}
	printlnFn("Deleted account", target.Username)
	return nil
}
