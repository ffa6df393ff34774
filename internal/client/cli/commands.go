package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errUsage = errors.New("wrong number of arguments")

// Register prompts for login, display name and password and creates
// an account. On success the client holds the new session token.
func (a *App) Register(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Enter login", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	userName, err := a.api.Register(ctx, login, name, string(password))
	if err != nil {
		return err
	}
	return a.signedIn(userName)
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Enter login", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	userName, err := a.api.Login(ctx, login, string(password))
	if err != nil {
		return err
	}
	return a.signedIn(userName)
}

// Restore sets a new password for a login and signs in with it.
func (a *App) Restore(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Enter login", a.out)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "New password.")
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	userName, err := a.api.RestorePassword(ctx, login, string(password))
	if err != nil {
		return err
	}
	return a.signedIn(userName)
}

// Refresh re-authenticates with the current session token and stores
// the fresh one.
func (a *App) Refresh(ctx context.Context) error {
	userName, err := a.api.Refresh(ctx)
	if err != nil {
		return err
	}
	a.userName = userName
	fmt.Fprintln(a.out, "Session refreshed.")
	return nil
}

// LinkToken prints a link token for the signed-in account.
func (a *App) LinkToken(ctx context.Context) error {
	token, err := a.api.GenerateLinkToken(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Link token:")
	fmt.Fprintln(a.out, token)
	return nil
}

// Link binds a Telegram id to the account the token belongs to.
// With no id argument the existing binding is cleared.
//
//	link <token> [tgid]
func (a *App) Link(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: usage: link <token> [tgid]", errUsage)
	}

	var tgID *int64
	if len(args) == 2 {
		id, err := parseTelegramID(args[1])
		if err != nil {
			return err
		}
		tgID = &id
	}

	userName, err := a.api.LinkTelegram(ctx, args[0], tgID)
	if err != nil {
		return err
	}
	return a.signedIn(userName)
}

// TGLogin signs in as the account linked to a Telegram id.
//
//	tglogin <tgid>
func (a *App) TGLogin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: tglogin <tgid>", errUsage)
	}
	id, err := parseTelegramID(args[0])
	if err != nil {
		return err
	}

	userName, err := a.api.TelegramLogin(ctx, id)
	if err != nil {
		return err
	}
	return a.signedIn(userName)
}

// Unlink removes the binding of a Telegram id.
//
//	unlink <tgid>
func (a *App) Unlink(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: unlink <tgid>", errUsage)
	}
	id, err := parseTelegramID(args[0])
	if err != nil {
		return err
	}

	ok, err := a.api.TelegramSignOut(ctx, id)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(a.out, "Telegram id unlinked.")
	} else {
		fmt.Fprintln(a.out, "No account is linked to this telegram id.")
	}
	return nil
}

// Logout forgets the session token.
func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) signedIn(userName string) error {
	a.userName = userName
	fmt.Fprintf(a.out, "Signed in as %s.\n", userName)
	return nil
}
