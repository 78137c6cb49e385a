package guard

import "errors"

var (
	// ErrMissingCoverage indicates a touched catalog has no valid semver
	// declaration in the commit message.
	ErrMissingCoverage = errors.New("missing semver mapping for touched catalog")
	// ErrExtraneousCatalog indicates the message declares a catalog that is
	// not part of the staged change set.
	ErrExtraneousCatalog = errors.New("message declares untouched catalog")
)

// CoverageError blocks a commit. Guidance is the deterministic multi-line
// block the user can copy-paste a corrected message from.
type CoverageError struct {
	Guidance string
	Err      error
}

func (e *CoverageError) Error() string { return e.Err.Error() }

func (e *CoverageError) Unwrap() error { return e.Err }
