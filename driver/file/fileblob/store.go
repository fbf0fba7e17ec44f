// Package fileblob provides an implementation of [blob.Store] that stores each
// blob as a file.
package fileblob

import (
	"context"
	"errors"
	"io/fs"
	"path"

	"github.com/dogmatiq/setkit/blob"
	"github.com/dogmatiq/setkit/internal/errorx"
	"github.com/spf13/afero"
)

// Store is an implementation of [blob.Store] that stores each blob as a file.
//
// Blob names are slash-separated paths relative to Dir. Any intermediate
// directories are created as needed. A blob is replaced by writing a temporary
// file in the same directory and renaming it over the existing file.
type Store struct {
	// FS is the filesystem that contains the files. If it is nil, the
	// operating system's filesystem is used.
	FS afero.Fs

	// Dir is the directory that contains the files. Blob names can not refer
	// to files outside of this directory. If it is empty, names are relative
	// to the current working directory of the process, and are not confined.
	Dir string
}

// Load returns the content of the named blob.
func (s *Store) Load(ctx context.Context, name string) (_ []byte, err error) {
	defer errorx.Wrap(&err, "unable to load blob %q", name)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs(), name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, blob.NotFoundError{Name: name}
	}

	return data, err
}

// Save replaces the content of the named blob.
func (s *Store) Save(ctx context.Context, name string, data []byte) (err error) {
	defer errorx.Wrap(&err, "unable to save blob %q", name)

	if err := ctx.Err(); err != nil {
		return err
	}

	fsys := s.fs()
	dir, file := path.Split(name)

	if dir == "" {
		dir = "."
	}

	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := afero.TempFile(fsys, dir, "."+file+".*.tmp")
	if err != nil {
		return err
	}
	defer fsys.Remove(tmp.Name()) // nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return fsys.Rename(tmp.Name(), name)
}

func (s *Store) fs() afero.Fs {
	fsys := s.FS
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	if s.Dir != "" {
		fsys = afero.NewBasePathFs(fsys, s.Dir)
	}

	return fsys
}
