package filestore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
)

var (
	ErrInvalidName = errors.New("invalid file name")
	ErrEmptyData   = errors.New("empty file data")
)

// Store keeps uploaded images under flat names such as "12.jpg".
type Store interface {
	Save(ctx context.Context, name string, data []byte) error
	Open(name string) (*os.File, error)
	Remove(ctx context.Context, name string) error
	Path(name string) (string, error)
}

// LocalStore is a Store backed by one directory on local disk.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		return nil, errors.New("store dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func MustNewLocalStore(dir string) *LocalStore {
	s, err := NewLocalStore(dir)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidName
	}
	return filepath.Join(s.dir, name), nil
}

// Save writes through a temp file and renames it, so readers never see a
// partially written image.
func (s *LocalStore) Save(ctx context.Context, name string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyData
	}
	path, err := s.Path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}

	logx.WithContext(ctx).Infow("file saved", logx.Field("name", name), logx.Field("bytes", len(data)))
	return nil
}

func (s *LocalStore) Open(name string) (*os.File, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Remove deletes the file; a file that is already gone is not an error.
func (s *LocalStore) Remove(ctx context.Context, name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	logx.WithContext(ctx).Infow("file removed", logx.Field("name", name))
	return nil
}

// ReadAll is a convenience for callers that need the whole image in memory.
func ReadAll(s Store, name string) ([]byte, error) {
	f, err := s.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
