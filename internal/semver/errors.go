package semver

import "errors"

var (
	// ErrUnknownLevel indicates a bump token outside the accepted vocabulary.
	ErrUnknownLevel = errors.New("unknown bump level")
	// ErrMalformedVersion indicates text that is not a MAJOR.MINOR.PATCH tuple.
	ErrMalformedVersion = errors.New("malformed version")
)
