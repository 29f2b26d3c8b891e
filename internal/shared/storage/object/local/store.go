package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"resume-scorer/internal/shared/storage/object"
)

// Store keeps uploaded documents on the local filesystem under baseDir.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Save(ctx context.Context, owner string, fileName string, r io.Reader) (object.Stored, error) {
	if err := ctx.Err(); err != nil {
		return object.Stored{}, err
	}
	key, err := object.NewKey(owner, fileName)
	if err != nil {
		return object.Stored{}, err
	}
	contentType, body, err := object.Sniff(r)
	if err != nil {
		return object.Stored{}, err
	}
	size, err := s.write(key, body)
	if err != nil {
		return object.Stored{}, err
	}
	return object.Stored{Key: key, Size: size, ContentType: contentType}, nil
}

func (s *Store) SaveWithKey(ctx context.Context, key string, _ string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	clean, err := object.CleanKey(key)
	if err != nil {
		return 0, err
	}
	return s.write(clean, r)
}

func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean, err := object.CleanKey(key)
	if err != nil {
		return nil, err
	}
	return os.Open(filepath.Join(s.baseDir, filepath.FromSlash(clean)))
}

func (s *Store) write(key string, r io.Reader) (int64, error) {
	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return 0, fmt.Errorf("mkdir: %w", err)
	}
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	written, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", key, err)
	}
	return written, nil
}

var _ object.ObjectStore = (*Store)(nil)
