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

// Verifier checks username/password pairs. It never writes.
type Verifier struct {
	users  *storage.Collection[models.User]
	scheme credential.Scheme
	log    logging.Logger
}

func NewVerifier(b storage.Backend, scheme credential.Scheme, log logging.Logger) *Verifier {
	return &Verifier{
		users:  storage.NewCollection[models.User](b, storage.Users),
		scheme: scheme,
		log:    log,
	}
}

// Authenticate returns the username when a record matches both username and
// password exactly. Unknown usernames and wrong passwords both yield
// common.ErrInvalidCredentials.
func (v *Verifier) Authenticate(ctx context.Context, username, password string) (string, error) {
	users, err := v.users.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load users: %w", err)
	}

	for i := range users {
		if users[i].Username == username && v.scheme.Match(users[i].Password, password) {
			v.log.Info(ctx, "login succeeded", "username", username)
			return username, nil
		}
	}

	v.log.Warn(ctx, "login failed", "username", username)
	return "", common.ErrInvalidCredentials
}
