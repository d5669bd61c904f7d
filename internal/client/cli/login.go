package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/nattavat/prdir/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.ops.Lock()
	user, err := a.directory.Authenticate(ctx, username, string(password))
	if err != nil {
		a.ops.Unlock()
		// Deliberately the same message for a wrong username and a wrong
		// password.
		printlnFn("Login unsuccessful:", err.Error())
		return nil
	}

	a.actor = &user
	if err := a.session.Save(ctx, user); err != nil {
		a.log.Warn(ctx, "could not persist session", "error", err)
	}
	_ = a.audit.Append(ctx, a.actor, "Login", user.Username)
	a.ops.Unlock()

	printlnFn(fmt.Sprintf("Logged in as %s (%s)", user.Name, user.Role))
	return a.Refresh(ctx)
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return nil
	}
	a.ops.Lock()
	_ = a.audit.Append(ctx, a.actor, "Logout", a.actor.Username)
	if err := a.session.Clear(ctx); err != nil {
		a.log.Warn(ctx, "could not clear session", "error", err)
	}
	a.ops.Unlock()
	a.actor = nil
	a.setContacts(nil)
	printlnFn("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> role=%s", a.actor.Name, a.actor.Username, a.actor.Role))
	return nil
}
