package cli

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/dmitrijs2005/quizdesk/internal/common"
)

var userMessages = []struct {
	err error
	msg string
}{
	{common.ErrUsernameTaken, "Username already exists."},
	{common.ErrEmailTaken, "Email already registered."},
	{common.ErrWeakPassword, "Password must be at least 6 characters long and contain both letters and numbers."},
	{common.ErrIneligibleAge, "Age not in valid range. Please contact support."},
	{common.ErrInvalidCredentials, "Incorrect credentials."},
	{common.ErrUserNotFound, "User not found."},
	{common.ErrWrongAnswers, "Incorrect answers."},
	{common.ErrInvalidNewPassword, "Invalid new password."},
	{common.ErrUnknownCourse, "Invalid course number."},
	{errNotNumber, "Please enter a number."},
}

func userMessage(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	if common.IsStorage(err) || errors.Is(err, context.DeadlineExceeded) {
		return "Storage is unavailable, please try again later."
	}
	return "Error: " + err.Error()
}

// report tells the operator what went wrong. Unexpected failures are also
// logged; rejections are already logged by the services.
func (a *App) report(ctx context.Context, op string, err error) {
	printlnFn(a.out, userMessage(err))

	if !isExpected(err) {
		a.log.Error(ctx, "operation failed", "op", op, "error", err)
	}
}

func isExpected(err error) bool {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return true
		}
	}
	return false
}

// finish reports and counts a completed menu operation. Input ending
// mid-form is neither.
func (a *App) finish(ctx context.Context, op string, start time.Time, err error) {
	if errors.Is(err, io.EOF) {
		return
	}
	if err != nil {
		a.report(ctx, op, err)
	}
	a.metrics.Observe(op, start, err)
}
