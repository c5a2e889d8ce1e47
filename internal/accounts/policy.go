package accounts

import (
	"unicode"
	"unicode/utf8"
)

const (
	MinPasswordLength = 6
	MinAge            = 18
	MaxAge            = 50
)

// ValidPassword reports whether pw is at least MinPasswordLength characters
// long and contains at least one letter and one digit. Only decimal digits
// (Unicode Nd) count, so superscripts and circled numbers do not.
func ValidPassword(pw string) bool {
	if utf8.RuneCountInString(pw) < MinPasswordLength {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// EligibleAge reports whether currentYear-birthYear lies in [MinAge, MaxAge].
func EligibleAge(birthYear, currentYear int) bool {
	age := currentYear - birthYear
	return age >= MinAge && age <= MaxAge
}
