package accounts

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/quizdesk/internal/common"
	"github.com/dmitrijs2005/quizdesk/internal/credential"
	"github.com/dmitrijs2005/quizdesk/internal/logging"
	"github.com/dmitrijs2005/quizdesk/internal/models"
	"github.com/dmitrijs2005/quizdesk/internal/storage"
)

// Signup is the input of Registry.Create.
type Signup struct {
	Username  string
	Email     string
	Password  string
	BirthYear int
	SecQ1     string
	SecQ2     string
}

type Registry struct {
	users  *storage.Collection[models.User]
	scheme credential.Scheme
	log    logging.Logger
	now    func() time.Time
}

func NewRegistry(b storage.Backend, scheme credential.Scheme, log logging.Logger) *Registry {
	return &Registry{
		users:  storage.NewCollection[models.User](b, storage.Users),
		scheme: scheme,
		log:    log,
		now:    time.Now,
	}
}

// Create validates s against the current collection and appends a new user.
//
// Checks run in order and the first failure is returned: ErrUsernameTaken,
// ErrEmailTaken, ErrWeakPassword, ErrIneligibleAge. Nothing is written
// unless all of them pass.
func (r *Registry) Create(ctx context.Context, s Signup) error {
	users, err := r.users.Load(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	if err := r.validate(users, s); err != nil {
		return r.reject(ctx, s.Username, err)
	}

	sealed, err := r.scheme.Seal(s.Password)
	if err != nil {
		return err
	}

	users = append(users, models.User{
		Username:  s.Username,
		Email:     s.Email,
		Password:  sealed,
		BirthYear: s.BirthYear,
		SecQ1:     s.SecQ1,
		SecQ2:     s.SecQ2,
		Courses:   []string{},
	})

	if err := r.users.Save(ctx, users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}

	r.log.Info(ctx, "user signed up", "username", s.Username)
	return nil
}

func (r *Registry) validate(users []models.User, s Signup) error {
	if usernameTaken(users, s.Username) {
		return common.ErrUsernameTaken
	}
	if emailTaken(users, s.Email) {
		return common.ErrEmailTaken
	}
	if !ValidPassword(s.Password) {
		return common.ErrWeakPassword
	}
	if !EligibleAge(s.BirthYear, r.now().Year()) {
		return common.ErrIneligibleAge
	}
	return nil
}

// CheckUsername lets the console reject a taken username before asking for
// the rest of the form. Create repeats the check.
func (r *Registry) CheckUsername(ctx context.Context, username string) error {
	users, err := r.users.Load(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	if usernameTaken(users, username) {
		return r.reject(ctx, username, common.ErrUsernameTaken)
	}
	return nil
}

// CheckEmail is the email counterpart of CheckUsername. username is only
// used for logging.
func (r *Registry) CheckEmail(ctx context.Context, username, email string) error {
	users, err := r.users.Load(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	if emailTaken(users, email) {
		return r.reject(ctx, username, common.ErrEmailTaken)
	}
	return nil
}

// CheckPassword applies the password policy for the console's early check.
func (r *Registry) CheckPassword(ctx context.Context, username, password string) error {
	if !ValidPassword(password) {
		return r.reject(ctx, username, common.ErrWeakPassword)
	}
	return nil
}

// CheckAge applies the age range against the registry clock.
func (r *Registry) CheckAge(ctx context.Context, username string, birthYear int) error {
	if !EligibleAge(birthYear, r.CurrentYear()) {
		return r.reject(ctx, username, common.ErrIneligibleAge)
	}
	return nil
}

func (r *Registry) reject(ctx context.Context, username string, err error) error {
	r.log.Warn(ctx, "signup rejected", "username", username, "reason", err.Error())
	return err
}

// CurrentYear is the year age eligibility is measured against.
func (r *Registry) CurrentYear() int {
	return r.now().Year()
}

// Lookup returns a copy of the user's record.
func (r *Registry) Lookup(ctx context.Context, username string) (models.User, error) {
	users, err := r.users.Load(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("load users: %w", err)
	}
	i := models.FindUser(users, username)
	if i < 0 {
		return models.User{}, common.ErrUserNotFound
	}
	return users[i], nil
}

func usernameTaken(users []models.User, username string) bool {
	return models.FindUser(users, username) >= 0
}

func emailTaken(users []models.User, email string) bool {
	for i := range users {
		if users[i].Email == email {
			return true
		}
	}
	return false
}
