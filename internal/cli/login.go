package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/quizdesk/internal/accounts"
	"github.com/dmitrijs2005/quizdesk/internal/common"
)

// Login asks for credentials. On a mismatch the operator may fall through to
// password recovery, and a successful recovery logs the user in.
func (a *App) Login(ctx context.Context) error {
	authErr := a.authenticate(ctx)
	if !errors.Is(authErr, common.ErrInvalidCredentials) {
		return authErr
	}

	choice, err := getSimpleText(a.reader, "Forgot password? (y/n):", a.out)
	if err != nil {
		return err
	}
	if choice != "y" {
		return authErr
	}
	return a.recoverPassword(ctx)
}

func (a *App) authenticate(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { a.finish(ctx, "login", start, err) }()

	username, err := getLine(a.reader, "Enter username:", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password:", a.out)
	if err != nil {
		return err
	}

	var who string
	err = a.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		who, err = a.verifier.Authenticate(ctx, username, password)
		return err
	})
	if err != nil {
		return err
	}

	a.startSession(ctx, who)
	printlnFn(a.out, "Login successful.")
	return nil
}

// recoverPassword resets a forgotten password. The user is asked for the account
// first and the questions are only shown for a known account.
func (a *App) recoverPassword(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { a.finish(ctx, "recover", start, err) }()

	var req accounts.RecoveryRequest

	if req.Username, err = getLine(a.reader, "Enter username:", a.out); err != nil {
		return err
	}
	if err = a.withTimeout(ctx, func(ctx context.Context) error { return a.recovery.Known(ctx, req.Username) }); err != nil {
		return err
	}

	if req.Answer1, err = getLine(a.reader, "Answer to security question 1 - "+accounts.SecurityQuestion1, a.out); err != nil {
		return err
	}
	if req.Answer2, err = getLine(a.reader, "Answer to security question 2 - "+accounts.SecurityQuestion2, a.out); err != nil {
		return err
	}
	if req.NewPassword, err = getPassword(a.reader, "Enter new password:", a.out); err != nil {
		return err
	}

	var who string
	err = a.withTimeout(ctx, func(ctx context.Context) error {
		var err error
		who, err = a.recovery.Recover(ctx, req)
		return err
	})
	if err != nil {
		return err
	}

	a.startSession(ctx, who)
	printlnFn(a.out, "Password updated successfully. You are now logged in.")
	return nil
}

// Logout ends the session; the main menu takes over again.
func (a *App) Logout(ctx context.Context) error {
	a.log.Info(ctx, "logged out", "username", a.session)
	a.session = ""
	printlnFn(a.out, "Logged out.")
	return nil
}

func (a *App) startSession(ctx context.Context, username string) {
	a.session = username
	a.log.Debug(ctx, "session user set", "username", username)
}
