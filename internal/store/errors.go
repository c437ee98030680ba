package store

import (
	"errors"
	"fmt"
)

// Sentinel errors for the outcomes a caller is expected to handle.
var (
	// ErrInvalidInput indicates that user supplied text could not be used,
	// for example a price that is not a number.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that no game has the requested name.
	ErrNotFound = errors.New("game not found")

	// ErrEmptyCatalog indicates a price query against a catalog with no games.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrStorage indicates that the catalog file could not be read, decoded
	// or written.
	ErrStorage = errors.New("storage failure")
)

// PriceError reports price text that is not a valid number.
type PriceError struct {
	Text string
	Err  error
}

// Error implements the error interface
func (e *PriceError) Error() string {
	return fmt.Sprintf("invalid price %q: %v", e.Text, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *PriceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *PriceError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NotFoundError reports a name that matched no game.
type NotFoundError struct {
	Name string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("game %q not found", e.Name)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StorageError reports a failure to load or save the catalog file.
type StorageError struct {
	Op   string // "init", "load" or "save"
	Path string
	Err  error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("%s catalog %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
