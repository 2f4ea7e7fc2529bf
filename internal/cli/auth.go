package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/drishya/internal/common"
	"github.com/dmitrijs2005/drishya/internal/kvstore"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, name and password and creates a new account.
// A successful sign-up also signs the user in, matching the web flow.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	u, err := a.users.SignUp(ctx, email, name, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateEmail):
			fmt.Fprintln(a.out, "An account with this email already exists")
		case errors.Is(err, common.ErrInvalidEmail):
			fmt.Fprintln(a.out, "That does not look like a valid email address")
		case errors.Is(err, common.ErrWeakPassword):
			fmt.Fprintln(a.out, "Password must be at least 6 characters")
		default:
			fmt.Fprintf(a.out, "Sign-up failed: %s\n", err.Error())
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", u.Name)
	return nil
}

// Login prompts for credentials and signs the user in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	u, err := a.users.SignIn(ctx, email, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUserNotFound):
			fmt.Fprintln(a.out, "No account found for this email")
		case errors.Is(err, common.ErrMissingPassword):
			fmt.Fprintln(a.out, "Password is required")
		default:
			fmt.Fprintf(a.out, "Sign-in failed: %s\n", err.Error())
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Name)
	return nil
}

// Logout signs the user out and removes the persisted session token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.users.SignOut(ctx); err != nil {
		fmt.Fprintf(a.out, "Sign-out failed: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// Status prints the current account and draft state.
func (a *App) Status(ctx context.Context) error {
	if u := a.session.Current(); u != nil {
		fmt.Fprintf(a.out, "Signed in as %s <%s>\n", u.Name, u.Email)
	} else {
		fmt.Fprintln(a.out, "Not signed in")
	}

	raw, err := a.store.Get(ctx, kvstore.KeyDraft)
	if err != nil {
		return err
	}
	if raw != nil {
		fmt.Fprintln(a.out, "A saved order draft exists - 'order' resumes it, 'discard' removes it")
	}
	fmt.Fprintf(a.out, "Language: %s\n", a.i18n.CurrentInfo().NativeName)
	return nil
}
