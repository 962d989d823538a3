package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType is returned for statement files that are not JSON.
var ErrUnsupportedType = errors.New("unsupported statement file type")

// LocalStorage keeps uploaded bank statement files on disk under
// uuid-generated names.
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// SaveStatement writes the upload and returns its stored name.
func (s *LocalStorage) SaveStatement(filename string, reader io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".json" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}

	newFilename := uuid.New().String() + ext
	fullPath := filepath.Join(s.baseDir, newFilename)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return newFilename, nil
}

// Open returns a reader for a previously stored statement.
func (s *LocalStorage) Open(filename string) (io.ReadCloser, error) {
	return os.Open(s.GetPath(filename))
}

func (s *LocalStorage) GetPath(filename string) string {
	return filepath.Join(s.baseDir, filepath.Base(filename))
}

func (s *LocalStorage) Delete(filename string) error {
	return os.Remove(s.GetPath(filename))
}
