package accounts

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/quizdesk/internal/common"
	"github.com/dmitrijs2005/quizdesk/internal/credential"
	"github.com/dmitrijs2005/quizdesk/internal/logging"
	"github.com/dmitrijs2005/quizdesk/internal/models"
	"github.com/dmitrijs2005/quizdesk/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testYear = 2025

// countingBackend records writes and can fail them.
type countingBackend struct {
	*storage.Memory
	writes   int
	writeErr error
	readErr  error
}

func newBackend() *countingBackend {
	return &countingBackend{Memory: storage.NewMemory()}
}

func (c *countingBackend) Read(ctx context.Context, name string) ([]byte, error) {
	if c.readErr != nil {
		return nil, c.readErr
	}
	return c.Memory.Read(ctx, name)
}

func (c *countingBackend) Write(ctx context.Context, name string, data []byte) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.writes++
	return c.Memory.Write(ctx, name, data)
}

func newRegistry(b storage.Backend) *Registry {
	r := NewRegistry(b, credential.Plain{}, logging.Discard())
	r.now = func() time.Time { return time.Date(testYear, time.June, 1, 0, 0, 0, 0, time.UTC) }
	return r
}

func alice() Signup {
	return Signup{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "abc123",
		BirthYear: 1995,
		SecQ1:     "Smith",
		SecQ2:     "Nokia",
	}
}

func loadUsers(t *testing.T, b storage.Backend) []models.User {
	t.Helper()
	users, err := storage.NewCollection[models.User](b, storage.Users).Load(context.Background())
	require.NoError(t, err)
	return users
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		pw   string
		want bool
	}{
		{"abc123", true},
		{"a1b2c3d4", true},
		{"пароль1", true},
		{"abc12", false},
		{"abcdef", false},
		{"123456", false},
		{"!!!!!!", false},
		{"", false},
		{"ab 1  ", true},
		{"abcde٣", true},
		{"abcde²", false},
		{"abcde①", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPassword(tt.pw), "password %q", tt.pw)
	}
}

func TestEligibleAge_Boundaries(t *testing.T) {
	assert.True(t, EligibleAge(testYear-18, testYear))
	assert.True(t, EligibleAge(testYear-50, testYear))
	assert.False(t, EligibleAge(testYear-17, testYear))
	assert.False(t, EligibleAge(testYear-51, testYear))
}

func TestCreate_Success(t *testing.T) {
	b := newBackend()
	r := newRegistry(b)

	require.NoError(t, r.Create(context.Background(), alice()))

	users := loadUsers(t, b)
	require.Len(t, users, 1)
	u := users[0]
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "abc123", u.Password)
	assert.Equal(t, 1995, u.BirthYear)
	assert.Equal(t, []string{}, u.Courses)
	assert.Nil(t, u.QuizScore)
	assert.Equal(t, 1, b.writes)
}

func TestCreate_RepeatUsernameRejectedRegardlessOfOtherFields(t *testing.T) {
	b := newBackend()
	r := newRegistry(b)
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, alice()))

	again := Signup{Username: "alice", Email: "other@example.com", Password: "x", BirthYear: 1800}
	err := r.Create(ctx, again)
	require.ErrorIs(t, err, common.ErrUsernameTaken)
	assert.Len(t, loadUsers(t, b), 1)
	assert.Equal(t, 1, b.writes)
}

func TestCreate_CheckOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Signup)
		want   error
	}{
		{"email taken beats weak password", func(s *Signup) { s.Email = "alice@example.com"; s.Password = "x" }, common.ErrEmailTaken},
		{"weak password beats bad age", func(s *Signup) { s.Password = "abcdef"; s.BirthYear = 1900 }, common.ErrWeakPassword},
		{"too young", func(s *Signup) { s.BirthYear = testYear - 17 }, common.ErrIneligibleAge},
		{"too old", func(s *Signup) { s.BirthYear = testYear - 51 }, common.ErrIneligibleAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBackend()
			r := newRegistry(b)
			require.NoError(t, r.Create(ctx, alice()))
			writes := b.writes

			s := Signup{Username: "bob", Email: "bob@example.com", Password: "xyz789", BirthYear: 1990}
			tt.mutate(&s)

			err := r.Create(ctx, s)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, common.ErrValidation)
			assert.Equal(t, writes, b.writes, "rejection must not write")
		})
	}
}

func TestCreate_AgeBoundariesAccepted(t *testing.T) {
	ctx := context.Background()
	b := newBackend()
	r := newRegistry(b)

	require.NoError(t, r.Create(ctx, Signup{Username: "young", Email: "y@x", Password: "abc123", BirthYear: testYear - 18}))
	require.NoError(t, r.Create(ctx, Signup{Username: "old", Email: "o@x", Password: "abc123", BirthYear: testYear - 50}))
	assert.Len(t, loadUsers(t, b), 2)
}

func TestCreate_StorageErrorsAreDistinct(t *testing.T) {
	ctx := context.Background()

	b := newBackend()
	b.readErr = errors.New("io")
	err := newRegistry(b).Create(ctx, alice())
	require.True(t, common.IsStorage(err))
	assert.NotErrorIs(t, err, common.ErrValidation)

	b = newBackend()
	b.writeErr = errors.New("disk full")
	err = newRegistry(b).Create(ctx, alice())
	require.True(t, common.IsStorage(err))
}

func TestCheckUsernameAndEmail(t *testing.T) {
	ctx := context.Background()
	r := newRegistry(newBackend())
	require.NoError(t, r.Create(ctx, alice()))

	require.ErrorIs(t, r.CheckUsername(ctx, "alice"), common.ErrUsernameTaken)
	require.NoError(t, r.CheckUsername(ctx, "Alice"))
	require.ErrorIs(t, r.CheckEmail(ctx, "bob", "alice@example.com"), common.ErrEmailTaken)
	require.NoError(t, r.CheckEmail(ctx, "bob", "bob@example.com"))
	assert.Equal(t, testYear, r.CurrentYear())
}

func TestSignupPreChecks_LogRejections(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log, err := logging.New(&buf, "warn", "text")
	require.NoError(t, err)

	b := newBackend()
	r := NewRegistry(b, credential.Plain{}, log)
	r.now = func() time.Time { return time.Date(testYear, time.June, 1, 0, 0, 0, 0, time.UTC) }
	require.NoError(t, r.Create(ctx, alice()))
	require.Empty(t, buf.String())

	require.NoError(t, r.CheckPassword(ctx, "bob", "abc123"))
	require.NoError(t, r.CheckAge(ctx, "bob", testYear-30))
	require.Empty(t, buf.String())

	tests := []struct {
		name  string
		check func() error
		want  error
	}{
		{"username", func() error { return r.CheckUsername(ctx, "alice") }, common.ErrUsernameTaken},
		{"email", func() error { return r.CheckEmail(ctx, "bob", "alice@example.com") }, common.ErrEmailTaken},
		{"password", func() error { return r.CheckPassword(ctx, "bob", "abcdef") }, common.ErrWeakPassword},
		{"age", func() error { return r.CheckAge(ctx, "bob", testYear-17) }, common.ErrIneligibleAge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			require.ErrorIs(t, tt.check(), tt.want)
			assert.Contains(t, buf.String(), "level=WARN")
			assert.Contains(t, buf.String(), "signup rejected")
			assert.Contains(t, buf.String(), tt.want.Error())
		})
	}
	assert.Equal(t, 1, b.writes)
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	r := newRegistry(newBackend())
	require.NoError(t, r.Create(ctx, alice()))

	u, err := r.Lookup(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)

	_, err = r.Lookup(ctx, "nobody")
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	b := newBackend()
	require.NoError(t, newRegistry(b).Create(ctx, alice()))
	v := NewVerifier(b, credential.Plain{}, logging.Discard())

	got, err := v.Authenticate(ctx, "alice", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "alice", got)

	_, errWrongPw := v.Authenticate(ctx, "alice", "ABC123")
	_, errNoUser := v.Authenticate(ctx, "mallory", "abc123")
	require.ErrorIs(t, errWrongPw, common.ErrInvalidCredentials)
	require.ErrorIs(t, errNoUser, common.ErrInvalidCredentials)
	assert.Equal(t, errWrongPw, errNoUser, "no username enumeration")
}

func TestAuthenticate_IdempotentAndReadOnly(t *testing.T) {
	ctx := context.Background()
	b := newBackend()
	require.NoError(t, newRegistry(b).Create(ctx, alice()))
	writes := b.writes
	before := loadUsers(t, b)

	v := NewVerifier(b, credential.Plain{}, logging.Discard())
	for _, pw := range []string{"wrong1", "wrong1", "abc123", "abc123"} {
		_, _ = v.Authenticate(ctx, "alice", pw)
	}

	_, err1 := v.Authenticate(ctx, "alice", "wrong1")
	_, err2 := v.Authenticate(ctx, "alice", "wrong1")
	assert.Equal(t, err1, err2)
	assert.Equal(t, writes, b.writes)
	assert.Equal(t, before, loadUsers(t, b))
}

func TestAuthenticate_StorageError(t *testing.T) {
	b := newBackend()
	b.readErr = errors.New("io")

	_, err := NewVerifier(b, credential.Plain{}, logging.Discard()).Authenticate(context.Background(), "a", "b")
	require.True(t, common.IsStorage(err))
	assert.NotErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRecover_Success(t *testing.T) {
	ctx := context.Background()
	b := newBackend()
	require.NoError(t, newRegistry(b).Create(ctx, alice()))
	rec := NewRecovery(b, credential.Plain{}, logging.Discard())

	got, err := rec.Recover(ctx, RecoveryRequest{Username: "alice", Answer1: "Smith", Answer2: "Nokia", NewPassword: "newpass9"})
	require.NoError(t, err)
	assert.Equal(t, "alice", got)

	v := NewVerifier(b, credential.Plain{}, logging.Discard())
	_, err = v.Authenticate(ctx, "alice", "newpass9")
	require.NoError(t, err)
	_, err = v.Authenticate(ctx, "alice", "abc123")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRecover_Rejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		req  RecoveryRequest
		want error
	}{
		{"unknown user", RecoveryRequest{Username: "bob", Answer1: "Smith", Answer2: "Nokia", NewPassword: "newpass9"}, common.ErrUserNotFound},
		{"wrong first answer", RecoveryRequest{Username: "alice", Answer1: "smith", Answer2: "Nokia", NewPassword: "newpass9"}, common.ErrWrongAnswers},
		{"wrong second answer", RecoveryRequest{Username: "alice", Answer1: "Smith", Answer2: "Motorola", NewPassword: "newpass9"}, common.ErrWrongAnswers},
		{"weak new password", RecoveryRequest{Username: "alice", Answer1: "Smith", Answer2: "Nokia", NewPassword: "short"}, common.ErrInvalidNewPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBackend()
			require.NoError(t, newRegistry(b).Create(ctx, alice()))
			writes := b.writes

			got, err := NewRecovery(b, credential.Plain{}, logging.Discard()).Recover(ctx, tt.req)
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, got, "a failed recovery must not yield an identity")
			assert.Equal(t, writes, b.writes)
			assert.Equal(t, "abc123", loadUsers(t, b)[0].Password)
		})
	}
}

func TestRecovery_Known(t *testing.T) {
	ctx := context.Background()
	b := newBackend()
	require.NoError(t, newRegistry(b).Create(ctx, alice()))
	rec := NewRecovery(b, credential.Plain{}, logging.Discard())

	require.NoError(t, rec.Known(ctx, "alice"))
	require.ErrorIs(t, rec.Known(ctx, "bob"), common.ErrUserNotFound)
}

func TestBcryptScheme_EndToEnd(t *testing.T) {
	ctx := context.Background()
	b := newBackend()
	scheme := credential.Bcrypt{Cost: bcrypt.MinCost}

	r := NewRegistry(b, scheme, logging.Discard())
	r.now = func() time.Time { return time.Date(testYear, 1, 1, 0, 0, 0, 0, time.UTC) }
	require.NoError(t, r.Create(ctx, alice()))
	assert.NotEqual(t, "abc123", loadUsers(t, b)[0].Password)

	v := NewVerifier(b, scheme, logging.Discard())
	_, err := v.Authenticate(ctx, "alice", "abc123")
	require.NoError(t, err)

	_, err = NewRecovery(b, scheme, logging.Discard()).Recover(ctx, RecoveryRequest{Username: "alice", Answer1: "Smith", Answer2: "Nokia", NewPassword: "zzz999"})
	require.NoError(t, err)
	_, err = v.Authenticate(ctx, "alice", "zzz999")
	require.NoError(t, err)
}
