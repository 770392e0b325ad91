package cli

import (
	"context"
	"errors"
	"fmt"
)

// Register prompts for credentials and creates an account. No session is
// established; the user is offered to log in right away.
func (a *App) Register(ctx context.Context) error {
	username, password, err := a.askCredentials()
	if err != nil {
		return err
	}

	msg, err := a.sessions.Register(ctx, username, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	if msg == "" {
		msg = "Registered."
	}
	printlnFn(msg)

	if confirm(a.reader, "Log in now?", a.out) {
		return a.Login(ctx)
	}
	return nil
}

// Login prompts for credentials, opens a session and loads the diary.
func (a *App) Login(ctx context.Context) error {
	username, password, err := a.askCredentials()
	if err != nil {
		return err
	}

	if _, err := a.sessions.Login(ctx, username, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := a.controller.Activate(ctx); err != nil {
		return err
	}
	a.printSummary()
	return nil
}

// Logout ends the session. The controller reports the navigation.
func (a *App) Logout(ctx context.Context) error {
	return a.controller.Logout(ctx)
}

// Whoami prints the logged-in user name.
func (a *App) Whoami(_ context.Context) error {
	v := a.controller.View()
	if v.Username == "" {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(v.Username)
	return nil
}

func (a *App) askCredentials() (string, string, error) {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", "", err
	}
	if username == "" {
		return "", "", errors.New("username must not be empty")
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}
