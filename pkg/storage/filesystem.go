package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Attachment kinds map to subdirectories under the upload root.
const (
	KindAudio    = "audio"
	KindDocument = "documents"
)

// LocalStorage persists uploaded attachments on disk under a base directory.
// Files are addressed by a relative key like "audio/<name>" so the stored path
// stays portable across deployments.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage ensures the upload root exists and returns a handle.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// GenerateFilename builds a collision-resistant storage name from a random
// token and a timestamp, preserving the original extension.
func GenerateFilename(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%s-%d%s", uuid.NewString(), time.Now().UnixMilli(), ext)
}

// Key joins a kind subdirectory and filename with forward slashes for URL
// compatibility.
func Key(kind, filename string) string {
	return path.Join(kind, filename)
}

// SaveStream copies from reader into the target file, creating the kind
// subdirectory lazily.
func (s *LocalStorage) SaveStream(key string, r io.Reader) (int64, error) {
	target := s.resolve(key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return 0, fmt.Errorf("prepare upload directory: %w", err)
	}
	file, err := os.Create(target)
	if err != nil {
		return 0, fmt.Errorf("create upload file: %w", err)
	}
	defer file.Close() //nolint:errcheck
	written, err := io.Copy(file, r)
	if err != nil {
		return 0, fmt.Errorf("write upload stream: %w", err)
	}
	return written, nil
}

// Open returns a read-only handle for the stored file.
func (s *LocalStorage) Open(key string) (*os.File, error) {
	file, err := os.Open(s.resolve(key))
	if err != nil {
		return nil, fmt.Errorf("open upload file: %w", err)
	}
	return file, nil
}

// Delete removes a stored file if present. A missing file is not an error:
// the database row is the source of truth, the file is best-effort.
func (s *LocalStorage) Delete(key string) error {
	if err := os.Remove(s.resolve(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload file: %w", err)
	}
	return nil
}

// BaseDir exposes the upload root for static file serving.
func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}

// Path exposes the underlying absolute path (useful for debugging).
func (s *LocalStorage) Path(key string) string {
	return s.resolve(key)
}

func (s *LocalStorage) resolve(key string) string {
	if filepath.IsAbs(key) {
		return key
	}
	return filepath.Join(s.baseDir, filepath.FromSlash(key))
}
