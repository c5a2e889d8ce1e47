package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/dmitrijs2005/quizdesk/internal/common"
)

// Collection is a typed view over one named collection of a Backend.
type Collection[T any] struct {
	name    string
	backend Backend
}

func NewCollection[T any](b Backend, name string) *Collection[T] {
	return &Collection[T]{name: name, backend: b}
}

func (c *Collection[T]) Name() string { return c.name }

// Load returns every record of the collection. A collection that was never
// written loads as an empty, non-nil slice.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	data, err := c.backend.Read(ctx, c.name)
	if errors.Is(err, ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, &common.StorageError{Op: "read", Collection: c.name, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &common.StorageError{Op: "decode", Collection: c.name, Err: err}
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save replaces the whole collection with records.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	e, err := c.Stage(records)
	if err != nil {
		return err
	}
	if err := c.backend.Write(ctx, c.name, e.Data); err != nil {
		return &common.StorageError{Op: "write", Collection: c.name, Err: err}
	}
	return nil
}

// Stage encodes records for a later Commit.
func (c *Collection[T]) Stage(records []T) (Entry, error) {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return Entry{}, &common.StorageError{Op: "encode", Collection: c.name, Err: err}
	}
	return Entry{Name: c.name, Data: data}, nil
}

// Commit writes the staged entries. With a Batcher backend this is a single
// transaction. Otherwise entries are written one by one in the given order
// and the first failure stops the sequence; earlier writes are not undone.
func Commit(ctx context.Context, b Backend, entries ...Entry) error {
	if batcher, ok := b.(Batcher); ok {
		if err := batcher.WriteBatch(ctx, entries); err != nil {
			return &common.StorageError{Op: "commit", Collection: entryNames(entries), Err: err}
		}
		return nil
	}

	for _, e := range entries {
		if err := b.Write(ctx, e.Name, e.Data); err != nil {
			return &common.StorageError{Op: "write", Collection: e.Name, Err: err}
		}
	}
	return nil
}

func entryNames(entries []Entry) string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return strings.Join(names, ",")
}
