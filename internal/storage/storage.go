package storage

import (
	"context"
	"errors"
)

// Collection names.
const (
	Users   = "users"
	Courses = "courses"
)

// ErrNotExist is returned by Backend.Read when a collection has never been written.
var ErrNotExist = errors.New("collection does not exist")

// Backend reads and replaces whole collections as opaque bytes.
type Backend interface {
	// Read returns the stored document or ErrNotExist.
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}

// Batcher is implemented by backends that can replace several collections atomically.
type Batcher interface {
	WriteBatch(ctx context.Context, entries []Entry) error
}

// Entry is an encoded collection ready to be committed.
type Entry struct {
	Name string
	Data []byte
}
