package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/quizdesk/internal/accounts"
)

// SignUp walks the operator through the registration form. Each answer is
// checked as soon as it is given, so a taken username is reported before the
// email is asked for. Registry.Create repeats every check before writing.
func (a *App) SignUp(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { a.finish(ctx, "signup", start, err) }()

	var s accounts.Signup

	if s.Username, err = getLine(a.reader, "Enter username:", a.out); err != nil {
		return err
	}
	if err = a.withTimeout(ctx, func(ctx context.Context) error { return a.accounts.CheckUsername(ctx, s.Username) }); err != nil {
		return err
	}

	if s.Email, err = getLine(a.reader, "Enter email:", a.out); err != nil {
		return err
	}
	if err = a.withTimeout(ctx, func(ctx context.Context) error { return a.accounts.CheckEmail(ctx, s.Username, s.Email) }); err != nil {
		return err
	}

	if s.Password, err = getPassword(a.reader, "Enter password:", a.out); err != nil {
		return err
	}
	if err = a.accounts.CheckPassword(ctx, s.Username, s.Password); err != nil {
		return err
	}

	if s.BirthYear, err = getNumber(a.reader, "Enter birth year:", a.out); err != nil {
		return err
	}
	if err = a.accounts.CheckAge(ctx, s.Username, s.BirthYear); err != nil {
		return err
	}

	if s.SecQ1, err = getLine(a.reader, "Security Question 1 - "+accounts.SecurityQuestion1, a.out); err != nil {
		return err
	}
	if s.SecQ2, err = getLine(a.reader, "Security Question 2 - "+accounts.SecurityQuestion2, a.out); err != nil {
		return err
	}

	if err = a.withTimeout(ctx, func(ctx context.Context) error { return a.accounts.Create(ctx, s) }); err != nil {
		return err
	}

	printlnFn(a.out, "Sign up successful.")
	return nil
}

// withTimeout runs fn under the per-operation timeout.
func (a *App) withTimeout(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := a.opContext(ctx)
	defer cancel()
	return fn(ctx)
}
