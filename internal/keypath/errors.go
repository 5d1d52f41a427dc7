package keypath

import "errors"

var (
	// ErrUnclosedBracket indicates a '[' with no matching ']'.
	ErrUnclosedBracket = errors.New("keypath: unclosed bracket")

	// ErrInvalidIndex indicates bracket content that is not a valid
	// sequence index.
	ErrInvalidIndex = errors.New("keypath: invalid index")

	// ErrKeyNotFound indicates a map lookup for an absent key.
	ErrKeyNotFound = errors.New("keypath: key not found")

	// ErrIndexOutOfRange indicates a sequence index outside [0, len).
	ErrIndexOutOfRange = errors.New("keypath: index out of range")

	// ErrTypeMismatch indicates a segment applied to the wrong container
	// kind, e.g. an index into a map.
	ErrTypeMismatch = errors.New("keypath: type mismatch")
)
