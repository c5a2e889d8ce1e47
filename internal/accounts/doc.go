// Package accounts owns the user collection: signup (Registry), credential
// checks (Verifier) and security-question password recovery (Recovery).
//
// Every call loads the users collection fresh, works on it in memory and,
// for mutating calls, saves the whole collection back. Rejected calls never
// write. Passwords pass through a credential.Scheme and are never logged.
package accounts
