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
	oidcEnabled() bool
	emailEnabled() bool

	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	LoginWithOidc(ctx context.Context) error
	RequestMagicLink(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	List(ctx context.Context) error
	Show(ctx context.Context) error
	Edit(ctx context.Context) error
	Create(ctx context.Context) error
	Delete(ctx context.Context) error
	CopySecret(ctx context.Context) error
	Reveal(ctx context.Context) error

	Audit(ctx context.Context) error
	AuditPage(ctx context.Context, arg string) error
	AuditMore(ctx context.Context) error
	AuditMetrics(ctx context.Context) error

	Keys(ctx context.Context) error
	AddKey(ctx context.Context) error
	EditKey(ctx context.Context) error
	DeleteKey(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the VaultHub CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate with email and password
//	  - signup         — create an account
//	  - oidc           — sign in through the configured identity provider
//	  - magic          — request a single-use email sign-in link
//	  - resetpw        — request or complete a password reset
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - (l)ist         — list vaults
//	  - show           — show a single vault (interactive ID prompt)
//	  - edit           — edit a vault's secret value
//	  - new            — create a vault
//	  - delete         — delete a vault
//	  - copy           — copy a vault's value to the clipboard
//	  - reveal         — decrypt a vault fetched over the API-key surface
//	  - audit          — show the audit log (paginated)
//	  - page <n>       — jump to an audit page
//	  - more           — load the next audit page into the running feed
//	  - metrics        — show audit metrics
//	  - keys           — list API keys
//	  - addkey         — create an API key
//	  - editkey        — rename or enable/disable an API key
//	  - delkey         — delete an API key
//	  - whoami         — show the current user
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Commands in the logged-in set require an authenticated session; when the
// user is logged out they print a reminder instead of dispatching, so no
// unauthenticated request ever leaves the client. "reveal" is the exception:
// it authenticates with the configured API key, not the session.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vh %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if requiresLogin(cmd) && !a.isLoggedIn() {
			printlnFn("Please 'login' first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, show, edit, new, delete, copy, reveal, audit, page, more, metrics, keys, addkey, editkey, delkey, whoami, logout, exit")
			} else {
				cmds := []string{"login", "signup"}
				if a.oidcEnabled() {
					cmds = append(cmds, "oidc")
				}
				if a.emailEnabled() {
					cmds = append(cmds, "magic", "resetpw")
				}
				cmds = append(cmds, "exit")
				printlnFn("Available commands: " + strings.Join(cmds, ", "))
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "oidc":
			_ = a.LoginWithOidc(ctx)

		case "magic":
			_ = a.RequestMagicLink(ctx)

		case "resetpw":
			_ = a.ResetPassword(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "new":
			_ = a.Create(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "copy":
			_ = a.CopySecret(ctx)

		case "reveal":
			_ = a.Reveal(ctx)

		case "audit":
			_ = a.Audit(ctx)

		case "page":
			if len(args) == 0 {
				printlnFn("Usage: page <n>")
				continue
			}
			_ = a.AuditPage(ctx, args[0])

		case "more":
			_ = a.AuditMore(ctx)

		case "metrics":
			_ = a.AuditMetrics(ctx)

		case "keys":
			_ = a.Keys(ctx)

		case "addkey":
			_ = a.AddKey(ctx)

		case "editkey":
			_ = a.EditKey(ctx)

		case "delkey":
			_ = a.DeleteKey(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// requiresLogin reports whether cmd operates on the authenticated session.
func requiresLogin(cmd string) bool {
	switch cmd {
	case "l", "list", "show", "edit", "new", "delete", "copy",
		"audit", "page", "more", "metrics",
		"keys", "addkey", "editkey", "delkey",
		"whoami", "logout":
		return true
	}
	return false
}
