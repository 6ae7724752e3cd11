package persistence

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("persistence: not found")
	// ErrCorrupt is returned when a store file contains a row that cannot
	// be decoded. The wrapping error names the file, row, and field.
	ErrCorrupt = errors.New("persistence: store corrupt")
	// ErrIO is returned when reading or writing a store file fails.
	ErrIO = errors.New("persistence: io failure")
)
