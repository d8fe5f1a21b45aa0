package filestorage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/alumnihub/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath, creating it if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Debug().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// ReadFile returns the content of name.
func (ls *LocalStorage) ReadFile(name string) ([]byte, error) {
	path, err := ls.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file %s: %w", name, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}
	return data, nil
}

// WriteFile writes data to a temporary file and renames it over name.
func (ls *LocalStorage) WriteFile(name string, data []byte) error {
	path, err := ls.resolve(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create subdirectory: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		logger.Error().Err(err).Str("path", tmp).Msg("Failed to write temporary file")
		return fmt.Errorf("failed to save file content: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		logger.Error().Err(err).Str("path", path).Msg("Failed to replace file")
		return fmt.Errorf("failed to replace file: %w", err)
	}

	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("File saved successfully")
	return nil
}

func (ls *LocalStorage) resolve(name string) (string, error) {
	clean := filepath.Clean("/" + name)
	if clean == "/" || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid file path: %s", name)
	}
	return filepath.Join(ls.basePath, clean), nil
}
