package signal

import "errors"

// Errors returned by Signal operations. Invalid logical indices are
// treated as caller bugs and panic instead; see At.
var (
	ErrLengthMismatch = errors.New("signal: length mismatch")
	ErrShortLength    = errors.New("signal: diff requires length >= 2")
	ErrEmptyInput     = errors.New("signal: empty input")
	ErrResultTooLarge = errors.New("signal: padded length exceeds index range")
)
