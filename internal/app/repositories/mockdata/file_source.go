package mockdata

import (
	"context"
	"errors"
	"io/fs"

	"github.com/yigit/alumnihub/internal/pkg/apperrors"
	"github.com/yigit/alumnihub/internal/pkg/filestorage"
)

// FileSource stores each collection as <collection>.json through a file storage.
type FileSource struct {
	files filestorage.FileStorage
}

// NewFileSource creates a source over files.
func NewFileSource(files filestorage.FileStorage) *FileSource {
	return &FileSource{files: files}
}

// Load implements Source.
func (f *FileSource) Load(_ context.Context, collection string) ([]byte, error) {
	data, err := f.files.ReadFile(collection + ".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.ErrCollectionAbsent
		}
		return nil, err
	}
	return data, nil
}

// Save implements Source.
func (f *FileSource) Save(_ context.Context, collection string, data []byte) error {
	return f.files.WriteFile(collection+".json", data)
}
