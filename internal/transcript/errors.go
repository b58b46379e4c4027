package transcript

import "errors"

var (
	// ErrInvalidFilename marks paths whose final element is not a usable
	// file name.
	ErrInvalidFilename = errors.New("invalid filename")

	// ErrMalformedTimestamp marks subtitle timecode lines that are present
	// but do not parse. Plain text and markdown input never produce it.
	ErrMalformedTimestamp = errors.New("malformed timestamp")
)
