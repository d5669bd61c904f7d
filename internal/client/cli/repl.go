package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Categories(ctx context.Context) error
	AddCategory(ctx context.Context) error
	DeleteCategory(ctx context.Context, args []string) error
	Users(ctx context.Context) error
	SaveUser(ctx context.Context) error
	EditUser(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context, args []string) error
	Logs(ctx context.Context) error
	ClearLogs(ctx context.Context) error
	Export(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the PR Directory CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - refresh        — re-fetch the directory from the remote store
//	  - list [term]    — list contacts, optionally filtered
//	  - show <n>       — show one contact by list position
//	  - add / edit <n> / delete <n>
//	  - cats | addcat | delcat <n>
//	  - users | adduser | edituser <n> | deluser <n>
//	  - logs | clearlogs
//	  - export         — write the CSV export file
//	  - whoami, logout, exit
//
// Any errors returned by command handlers are printed here; handlers decide
// what counts as an error versus normal output. This keeps the REPL loop
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("prdir (%s)> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: refresh, (l)ist [term], show <n>, add, edit <n>, delete <n>,")
				printlnFn("  cats, addcat, delcat <n>, users, adduser, edituser <n>, deluser <n>,")
				printlnFn("  logs, clearlogs, export, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "refresh":
			err = a.Refresh(ctx)

		case "l", "list":
			err = a.List(ctx, args)

		case "show":
			err = a.Show(ctx, args)

		case "add":
			err = a.Add(ctx)

		case "edit":
			err = a.Edit(ctx, args)

		case "delete":
			err = a.Delete(ctx, args)

		case "cats":
			err = a.Categories(ctx)

		case "addcat":
			err = a.AddCategory(ctx)

		case "delcat":
			err = a.DeleteCategory(ctx, args)

		case "users":
			err = a.Users(ctx)

		case "adduser":
			err = a.SaveUser(ctx)

		case "edituser":
			err = a.EditUser(ctx, args)

		case "deluser":
			err = a.DeleteUser(ctx, args)

		case "logs":
			err = a.Logs(ctx)

		case "clearlogs":
			err = a.ClearLogs(ctx)

		case "export":
			err = a.Export(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("error:", err.Error())
		}
	}
}
