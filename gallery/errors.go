package gallery

import "errors"

var (
	// ErrNotFound is returned when a locator's source does not exist.
	ErrNotFound = errors.New("source not found")
	// ErrDecodeFailure is returned when source bytes exist but cannot be
	// turned into a resource.
	ErrDecodeFailure = errors.New("decode failed")
	// ErrOutOfRange is returned for catalog indexes outside [0, Count()).
	ErrOutOfRange = errors.New("index out of range")
	// ErrEmpty is returned when an operation needs at least one entry.
	ErrEmpty = errors.New("no images")
)
