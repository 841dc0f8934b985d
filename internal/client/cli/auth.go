package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/client/client"
	"github.com/dmitrijs2005/credkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// promptCredentials asks for a username and a password. The caller must wipe
// the returned password.
func (a *App) promptCredentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}
	if userName == "" {
		return "", nil, errors.New("username must not be empty")
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}

// Register prompts for a username and password and creates the account.
// On success it prints "Success!". A taken username is reported to the user
// and returned as client.ErrDuplicateAccount.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.promptCredentials()
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Register(ctx, userName, string(password)); err != nil {
		if errors.Is(err, client.ErrDuplicateAccount) {
			fmt.Fprintf(a.out, "Username %q is already taken\n", userName)
		} else {
			fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for credentials and, on success, remembers the user name and
// session token for the rest of the session.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.promptCredentials()
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	token, err := a.client.Login(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, client.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Login unsuccessful: invalid credentials")
		} else {
			fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		}
		return err
	}

	a.userName = userName
	a.token = token
	fmt.Fprintln(a.out, "Login successful")
	fmt.Fprintf(a.out, "Session token: %s\n", token)
	return nil
}

// Logout forgets the local session.
func (a *App) Logout(ctx context.Context) error {
	a.userName = ""
	a.token = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// DeleteAccount prompts for a username and removes that account. Deleting
// the logged-in user also ends the local session.
func (a *App) DeleteAccount(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username to delete", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if userName == "" {
		err := errors.New("username must not be empty")
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.DeleteAccount(ctx, userName); err != nil {
		fmt.Fprintf(a.out, "Delete failed: %v\n", err)
		return err
	}

	if userName == a.userName {
		a.userName = ""
		a.token = ""
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

// Ping reports whether the server is reachable.
func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		fmt.Fprintf(a.out, "Server unavailable: %v\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Server OK")
	return nil
}
