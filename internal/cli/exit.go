package cli

import (
	"errors"

	"github.com/jacoelho/vq/internal/cassette"
	"github.com/jacoelho/vq/internal/keypath"
	"github.com/jacoelho/vq/internal/preview"
)

// Exit codes distinguish malformed paths from lookups that failed against
// well-formed input, so scripts can tell user error from data shape.
const (
	exitOK      = 0
	exitError   = 1
	exitBadPath = 2
	exitLookup  = 3
	exitInput   = 4
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, keypath.ErrUnclosedBracket),
		errors.Is(err, keypath.ErrInvalidIndex):
		return exitBadPath
	case errors.Is(err, keypath.ErrKeyNotFound),
		errors.Is(err, keypath.ErrIndexOutOfRange),
		errors.Is(err, keypath.ErrTypeMismatch),
		errors.Is(err, preview.ErrNoRule):
		return exitLookup
	case errors.Is(err, cassette.ErrNotFound),
		errors.Is(err, cassette.ErrInvalidYAML),
		errors.Is(err, preview.ErrUnknownChannel):
		return exitInput
	default:
		return exitError
	}
}
