// Package semver implements the three-component version tuple that catver
// records inside each catalog's metadata file, along with the bump level
// vocabulary accepted in commit messages.
package semver

import (
	"fmt"
	"strconv"
	"strings"

	modsemver "golang.org/x/mod/semver"
)

// Level is a canonical bump level.
type Level string

const (
	// LevelMajor increments the major component and zeroes the rest.
	LevelMajor Level = "major"
	// LevelMinor increments the minor component and zeroes patch.
	LevelMinor Level = "minor"
	// LevelPatch increments the patch component.
	LevelPatch Level = "patch"
	// LevelNone satisfies coverage without changing the version.
	// Only the segment grammar accepts it.
	LevelNone Level = "na"
)

// aliases maps every accepted message token to its canonical level.
var aliases = map[string]Level{
	"major": LevelMajor,
	"minor": LevelMinor,
	"patch": LevelPatch,
	"feat":  LevelMinor,
	"fix":   LevelPatch,
	"na":    LevelNone,
}

// ParseLevel resolves a message token to a canonical level, case-insensitively.
// When allowNone is false the "na" token is rejected along with unknown tokens.
func ParseLevel(token string, allowNone bool) (Level, error) {
	lvl, ok := aliases[strings.ToLower(strings.TrimSpace(token))]
	if !ok || (lvl == LevelNone && !allowNone) {
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, token)
	}
	return lvl, nil
}

// Version is a value type; all components are non-negative.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Initial is the version a catalog starts at when its metadata file has no
// version literal yet.
var Initial = Version{Major: 0, Minor: 1, Patch: 0}

// Parse reads a bare "MAJOR.MINOR.PATCH" string.
func Parse(s string) (Version, error) {
	if !modsemver.IsValid("v" + strings.TrimSpace(s)) {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}
	parts := strings.SplitN(strings.TrimSpace(s), ".", 3)
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String renders the version as "MAJOR.MINOR.PATCH".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Bump returns the version after applying level. A major bump zeroes minor
// and patch; a minor bump zeroes patch; LevelNone returns v unchanged.
func (v Version) Bump(level Level) (Version, error) {
	switch level {
	case LevelMajor:
		return Version{Major: v.Major + 1}, nil
	case LevelMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case LevelPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	case LevelNone:
		return v, nil
	default:
		return Version{}, fmt.Errorf("%w: %q", ErrUnknownLevel, string(level))
	}
}

// Compare orders two versions semver-style: -1 if v < w, 0 if equal, +1 if v > w.
func (v Version) Compare(w Version) int {
	return modsemver.Compare("v"+v.String(), "v"+w.String())
}
