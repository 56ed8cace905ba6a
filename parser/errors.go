package parser

import "errors"

var (
	// ErrInvalidInput reports input that is not text.
	ErrInvalidInput = errors.New("invalid input: not valid UTF-8 text")

	// ErrMalformedTokenStream reports a token array violating a structural
	// invariant, such as a list token without items. The scanners never
	// produce such a stream; it can only come from direct API misuse.
	ErrMalformedTokenStream = errors.New("malformed token stream")
)
