// Package credential isolates how passwords are stored and compared.
//
// Plain keeps the historical plaintext format so existing users.json files
// keep working. That is a known weakness; switching to Bcrypt or Argon2 is a
// config change but makes previously written plaintext passwords unusable.
package credential

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Scheme turns a plaintext password into its stored form and checks
// candidates against a stored value.
type Scheme interface {
	Seal(plain string) (string, error)
	Match(stored, candidate string) bool
}

const (
	PlainName  = "plain"
	BcryptName = "bcrypt"
	Argon2Name = "argon2id"
)

// ByName returns the scheme registered under name.
func ByName(name string) (Scheme, error) {
	switch name {
	case PlainName, "":
		return Plain{}, nil
	case BcryptName:
		return Bcrypt{Cost: bcrypt.DefaultCost}, nil
	case Argon2Name:
		return Argon2{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", name)
	}
}

// Plain stores the password as is.
type Plain struct{}

func (Plain) Seal(plain string) (string, error) { return plain, nil }

func (Plain) Match(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Seal(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

func (Bcrypt) Match(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
