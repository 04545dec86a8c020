package cli

import (
	"context"
	"fmt"
	"strings"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register asks for a username and creates the account. The password is
// requested only if the name is free. The outcome message is printed; storage
// or input faults are returned.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	return a.register(ctx, userName)
}

func (a *App) register(ctx context.Context, userName string) error {
	outcome, err := a.authService.Register(ctx, userName, a.passwordPrompt)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, outcome.Message())
	return nil
}

// Login asks for credentials and, on success, makes the user current.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	return a.login(ctx, userName)
}

func (a *App) login(ctx context.Context, userName string) error {
	outcome, err := a.authService.Login(ctx, userName, a.passwordPrompt)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, outcome.Message())

	if outcome.Success() {
		a.userName = strings.TrimSpace(userName)
	}
	return nil
}

// Logout forgets the current user.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	a.logger.Debug(ctx, "logout", "username", a.userName)
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
