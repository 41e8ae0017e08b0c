package types

import "errors"

// Domain errors for content reading
var (
	// ErrNotUTF8 is returned when a file's bytes are not valid UTF-8 text.
	ErrNotUTF8 = errors.New("content is not valid UTF-8")
)
