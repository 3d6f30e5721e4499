package store

import (
	"os"
	"path/filepath"
)

// FileStore keeps each slot in its own JSON file under a directory.
// Selected with `storage: file` in the configuration.
type FileStore struct {
	dir string
}

// NewFileStore returns a file-backed store rooted at dir. The directory
// is created on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) Read(slot string) ([]byte, error) {
	data, err := os.ReadFile(f.path(slot))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (f *FileStore) Write(slot string, data []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	// Write-then-rename so a crash mid-write never corrupts the slot.
	tmp := f.path(slot) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(slot))
}

func (f *FileStore) Delete(slot string) error {
	err := os.Remove(f.path(slot))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (f *FileStore) path(slot string) string {
	return filepath.Join(f.dir, slot+".json")
}
