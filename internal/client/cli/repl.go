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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Restore(ctx context.Context) error
	Refresh(ctx context.Context) error
	LinkToken(ctx context.Context) error
	Link(ctx context.Context, args []string) error
	TGLogin(ctx context.Context, args []string) error
	Unlink(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The first token is the command, the rest are its arguments. The loop exits
// on EOF or when the user types "exit" or "quit".
//
//	Always:
//	  - help                 show available commands
//	  - register             create an account
//	  - login                sign in with login and password
//	  - restore              set a new password
//	  - link <token> [tgid]  bind (or clear) a telegram id using a link token
//	  - tglogin <tgid>       sign in by telegram id
//	  - unlink <tgid>        remove a telegram binding
//	  - exit | quit          leave the program
//
//	Signed in:
//	  - auth                 refresh the session token
//	  - linktoken            print a link token for this account
//	  - logout               forget the session token
//
// Command errors are printed and the loop continues. The reader is shared
// with the interactive prompts of the commands.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ak> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: auth, linktoken, link, tglogin, unlink, restore, logout, exit")
			} else {
				printlnFn("Available commands: register, login, restore, link, tglogin, unlink, exit")
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "restore":
			report(a.Restore(ctx))

		case "auth":
			report(a.Refresh(ctx))

		case "linktoken":
			report(a.LinkToken(ctx))

		case "link":
			report(a.Link(ctx, args))

		case "tglogin":
			report(a.TGLogin(ctx, args))

		case "unlink":
			report(a.Unlink(ctx, args))

		case "logout":
			report(a.Logout(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}
