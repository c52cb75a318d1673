package dataset

import "errors"

var (
	// ErrFileAccess reports a source file that is absent, unreadable or empty.
	ErrFileAccess = errors.New("file access")
	// ErrSchema reports a source file whose header or row layout cannot be
	// mapped onto the expected columns.
	ErrSchema = errors.New("unexpected file format")
)
