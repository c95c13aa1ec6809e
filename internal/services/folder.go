package services

import (
	"fmt"
	"path/filepath"

	"github.com/renato0307/newfolder/internal/domain"
	"github.com/renato0307/newfolder/internal/logging"
	"github.com/renato0307/newfolder/internal/ports"
)

// FolderService resolves free folder names and creates folders
type FolderService struct {
	baseName string
	store    ports.FolderStore
}

// NewFolderService creates a new FolderService suggesting names derived from baseName
func NewFolderService(store ports.FolderStore, baseName string) *FolderService {
	return &FolderService{
		baseName: baseName,
		store:    store,
	}
}

// BaseName returns the name suggested when nothing collides
func (s *FolderService) BaseName() string {
	return s.baseName
}

// ResolveName returns a folder name that does not currently exist under parent.
// It tries the base name first, then "<base> (2)", "<base> (3)" and so on.
// Nothing is created. A probe that cannot tell whether a name exists stops
// the search with an error wrapping domain.ErrNameProbe.
func (s *FolderService) ResolveName(parent string) (string, error) {
	name := s.baseName
	for n := 2; ; n++ {
		exists, err := s.store.Exists(filepath.Join(parent, name))
		if err != nil {
			logging.Logger.Warn("Name probe failed", "parent", parent, "name", name, "error", err)
			return "", fmt.Errorf("%w '%s': %w", domain.ErrNameProbe, filepath.Join(parent, name), err)
		}
		if !exists {
			logging.Logger.Debug("Resolved folder name", "parent", parent, "name", name)
			return name, nil
		}
		name = fmt.Sprintf("%s (%d)", s.baseName, n)
	}
}

// CreateFolder creates parent/name with a single non-recursive mkdir.
// The returned error names the attempted path and wraps the OS error.
func (s *FolderService) CreateFolder(parent, name string) error {
	dir := filepath.Join(parent, name)
	logging.Logger.Info("Creating folder", "path", dir)

	if err := s.store.Mkdir(dir); err != nil {
		logging.Logger.Error("failed to create folder", "path", dir, "error", err)
		return fmt.Errorf("failed to create '%s': %w", dir, err)
	}

	logging.Logger.Info("Folder created", "path", dir)
	return nil
}
