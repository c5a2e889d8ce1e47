package accounts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/quizdesk/internal/common"
	"github.com/dmitrijs2005/quizdesk/internal/credential"
	"github.com/dmitrijs2005/quizdesk/internal/logging"
	"github.com/dmitrijs2005/quizdesk/internal/models"
	"github.com/dmitrijs2005/quizdesk/internal/storage"
)

// Security questions asked at signup and recovery.
const (
	SecurityQuestion1 = "What was your first teacher's name?"
	SecurityQuestion2 = "What was your first phone model?"
)

type RecoveryRequest struct {
	Username    string
	Answer1     string
	Answer2     string
	NewPassword string
}

// Recovery resets a password after both security answers match.
type Recovery struct {
	users  *storage.Collection[models.User]
	scheme credential.Scheme
	log    logging.Logger
}

func NewRecovery(b storage.Backend, scheme credential.Scheme, log logging.Logger) *Recovery {
	return &Recovery{
		users:  storage.NewCollection[models.User](b, storage.Users),
		scheme: scheme,
		log:    log,
	}
}

// Known returns common.ErrUserNotFound when username has no record, so the
// console can stop before asking the questions.
func (r *Recovery) Known(ctx context.Context, username string) error {
	users, err := r.users.Load(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	if models.FindUser(users, username) < 0 {
		return common.ErrUserNotFound
	}
	return nil
}

// Recover replaces the password and returns the username as a freshly
// authenticated identity. Any failure returns an empty username and leaves
// the stored password untouched.
func (r *Recovery) Recover(ctx context.Context, req RecoveryRequest) (string, error) {
	users, err := r.users.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load users: %w", err)
	}

	i := models.FindUser(users, req.Username)
	if i < 0 {
		r.log.Warn(ctx, "recovery rejected", "username", req.Username, "reason", "not found")
		return "", common.ErrUserNotFound
	}

	u := &users[i]
	if u.SecQ1 != req.Answer1 || u.SecQ2 != req.Answer2 {
		r.log.Warn(ctx, "recovery rejected", "username", req.Username, "reason", "wrong answers")
		return "", common.ErrWrongAnswers
	}

	if !ValidPassword(req.NewPassword) {
		r.log.Warn(ctx, "recovery rejected", "username", req.Username, "reason", "invalid new password")
		return "", common.ErrInvalidNewPassword
	}

	sealed, err := r.scheme.Seal(req.NewPassword)
	if err != nil {
		return "", err
	}
	u.Password = sealed

	if err := r.users.Save(ctx, users); err != nil {
		return "", fmt.Errorf("save users: %w", err)
	}

	r.log.Info(ctx, "password recovered", "username", req.Username)
	return req.Username, nil
}
