package ioutils

import (
	"errors"
	"io/fs"
	"os"
)

// FileMode is the permission given to catalog and config files.
const FileMode = 0644

// DirMode is the permission used for directories created by this package.
const DirMode = 0755

// Exists reports whether a file or directory exists at path.
//
// Errors other than "not exist" (for example permission problems) are
// returned so callers do not mistake an unreadable file for a missing one.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/home/user/.local/share/gamecat")
func EnsureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, DirMode)
}
