package ports

// FolderStore is the filesystem surface used to probe and create folders
type FolderStore interface {
	// Exists reports whether path exists.
	// An error is returned only when existence cannot be determined.
	Exists(path string) (bool, error)

	// Mkdir creates a single directory; missing parents are not created
	Mkdir(path string) error
}
