package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/webstrap-cli/webstrap/internal/defs"
)

// EnsureDir creates a directory and all missing ancestors. A
// pre-existing directory is not an error.
func EnsureDir(path string) error {
	if err := os.MkdirAll(filepath.Clean(path), defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}

// WriteFile writes content to path, creating parent directories and
// overwriting any existing file. Generated source templates always use
// overwrite semantics; the env file goes through WriteFileIfAbsent
// instead.
func WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteFileIfAbsent writes content to path only when no file exists
// there. It reports whether the file was written. Used for .env so a
// re-run never destroys user secrets.
func WriteFileIfAbsent(path string, content []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := WriteFile(path, content); err != nil {
		return false, err
	}
	return true, nil
}
