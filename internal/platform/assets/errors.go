package assets

import "errors"

var (
	// ErrEmptyImage is returned when asked to save zero bytes.
	ErrEmptyImage = errors.New("image data is empty")

	// ErrFixtureNotFound is returned when a fixture file does not exist.
	ErrFixtureNotFound = errors.New("fixture not found")

	// ErrInvalidName is returned for fixture names that escape the data directory.
	ErrInvalidName = errors.New("invalid asset name")
)
