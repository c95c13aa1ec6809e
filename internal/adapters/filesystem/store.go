package filesystem

import (
	"github.com/spf13/afero"

	"github.com/renato0307/newfolder/internal/logging"
)

// folderPerm is the mode requested for new folders, before umask
const folderPerm = 0o755

// Store implements ports.FolderStore on top of an afero filesystem
type Store struct {
	fs afero.Fs
}

// NewStore creates a Store backed by fs
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOSStore creates a Store backed by the operating system filesystem
func NewOSStore() *Store {
	return NewStore(afero.NewOsFs())
}

// Exists reports whether path exists, following symlinks
func (s *Store) Exists(path string) (bool, error) {
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		logging.Logger.Debug("Existence check failed", "path", path, "error", err)
		return false, err
	}
	return exists, nil
}

// Mkdir creates path as a single directory
func (s *Store) Mkdir(path string) error {
	logging.Logger.Debug("Creating directory", "path", path)
	return s.fs.Mkdir(path, folderPerm)
}
