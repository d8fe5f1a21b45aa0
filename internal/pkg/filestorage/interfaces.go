package filestorage

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// ReadFile returns the content of a stored file; a missing file reports an error wrapping fs.ErrNotExist
	ReadFile(name string) ([]byte, error)

	// WriteFile atomically replaces the content of a stored file
	WriteFile(name string, data []byte) error
}
