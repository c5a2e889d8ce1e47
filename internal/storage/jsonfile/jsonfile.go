// Package jsonfile stores each collection as <dir>/<name>.json, the layout
// used by earlier versions of the program.
package jsonfile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/quizdesk/internal/filex"
	"github.com/dmitrijs2005/quizdesk/internal/storage"
)

const filePerm = 0o600

type Backend struct {
	dir string
}

// New returns a backend rooted at dir, creating the directory if needed.
func New(dir string) (*Backend, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &Backend{dir: abs}, nil
}

func (b *Backend) Dir() string { return b.dir }

func (b *Backend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

func (b *Backend) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, storage.ErrNotExist
	}
	return data, err
}

// Write replaces the collection file. The file is swapped in by rename, so
// a crash leaves either the previous or the new content.
func (b *Backend) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return filex.WriteFileAtomic(b.path(name), data, filePerm)
}
