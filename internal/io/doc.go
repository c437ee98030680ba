// Package ioutils provides file system utilities for the game-manager.
//
// This package contains functions for:
//   - Directory creation
//   - Existence checks
//
// Whole-file replacement of the catalog and the config goes through
// github.com/kjk/common/atomicfile in the packages that write them.
//
// # Directories
//
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Existence
//
//	ok, err := ioutils.Exists("games.xml")
package ioutils
