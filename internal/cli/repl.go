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
	Inbox(ctx context.Context) error
	Show(ctx context.Context) error
	Reply(ctx context.Context) error
	MarkRead(ctx context.Context) error
	Counts(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the admin console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands while logged out: help, login, exit. Commands while logged in:
// help, inbox, show, reply, markread, counts, logout, exit. The inbox
// commands are gated on an established session, mirroring the admin area of
// the site.
//
// Any errors returned by command handlers are reported and swallowed; the
// loop itself never aborts on a command failure.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("admin (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: inbox, show, reply, markread, counts, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "inbox":
			err = requireLogin(a, func() error { return a.Inbox(ctx) })
		case "show":
			err = requireLogin(a, func() error { return a.Show(ctx) })
		case "reply":
			err = requireLogin(a, func() error { return a.Reply(ctx) })
		case "markread":
			err = requireLogin(a, func() error { return a.MarkRead(ctx) })
		case "counts":
			err = requireLogin(a, func() error { return a.Counts(ctx) })
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn(fmt.Sprintf("Unknown command: %s", cmd))
		}

		if err != nil {
			printlnFn(fmt.Sprintf("error: %v", err))
		}
	}
}

func requireLogin(a execIface, fn func() error) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return nil
	}
	return fn()
}
