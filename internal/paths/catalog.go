package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Catalog path validation errors.
var (
	ErrPathNotFound   = errors.New("path does not exist")
	ErrBadFileName    = errors.New("bad file name")
	ErrCatalogExists  = errors.New("catalog file already exists")
	ErrCatalogMissing = errors.New("catalog file does not exist")
)

// invalidFileChars may not appear in a catalog file name.
const invalidFileChars = `\/:*?<>| `

// ValidateDir checks that dir exists and is a directory.
func ValidateDir(dir string) error {
	if dir == "" {
		return ErrPathNotFound
	}
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", dir, ErrPathNotFound)
		}
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory: %w", dir, ErrPathNotFound)
	}
	return nil
}

// ValidateFileName rejects empty names and names containing a path separator,
// a drive colon, a wildcard, a redirect, a pipe, or a space.
func ValidateFileName(name string) error {
	if name == "" {
		return ErrBadFileName
	}
	if i := strings.IndexAny(name, invalidFileChars); i >= 0 {
		return fmt.Errorf("%q contains %q: %w", name, name[i], ErrBadFileName)
	}
	return nil
}

// NewCatalogPath validates dir and name for a catalog that is about to be
// created and returns the joined path. The file must not exist yet.
func NewCatalogPath(dir, name string) (string, error) {
	path, err := joinCatalogPath(dir, name)
	if err != nil {
		return "", err
	}
	info, err := statPath(path)
	if err != nil {
		return "", err
	}
	if info != nil {
		return "", fmt.Errorf("%s: %w", path, ErrCatalogExists)
	}
	return path, nil
}

// LoadCatalogPath validates dir and name for an existing catalog and returns
// the joined path. The file must exist.
func LoadCatalogPath(dir, name string) (string, error) {
	path, err := joinCatalogPath(dir, name)
	if err != nil {
		return "", err
	}
	info, err := statPath(path)
	if err != nil {
		return "", err
	}
	if info == nil || info.IsDir() {
		return "", fmt.Errorf("%s: %w", path, ErrCatalogMissing)
	}
	return path, nil
}

// SplitCatalogPath splits a full catalog path into the directory and file
// name that NewCatalogPath and LoadCatalogPath take.
func SplitCatalogPath(path string) (dir, name string) {
	dir, name = filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return dir, name
}

func joinCatalogPath(dir, name string) (string, error) {
	if err := ValidateDir(dir); err != nil {
		return "", err
	}
	if err := ValidateFileName(name); err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// statPath returns nil info and no error when path does not exist.
func statPath(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info, nil
	}
	if os.IsNotExist(err) {
		return nil, nil
	}
	return nil, fmt.Errorf("stat %s: %w", path, err)
}
