package guard

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/tbickford/catver/internal/catalog"
	"github.com/tbickford/catver/internal/semver"
)

// versionLineRe matches the one line of a metadata file that carries the
// catalog version, e.g. `__version__ = "1.2.3"`. Single or double quotes.
var versionLineRe = regexp.MustCompile(`(?m)^__version__\s*=\s*["'](\d+)\.(\d+)\.(\d+)["']\s*$`)

// Store reads and rewrites the version literal embedded in catalog metadata
// files. Missing files and missing literals self-heal to the initial version
// rather than erroring.
type Store struct {
	dir string // repository root the metadata paths are relative to
}

// NewStore builds a Store resolving metadata paths against dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) resolve(c catalog.Catalog) string {
	return filepath.Join(s.dir, filepath.FromSlash(c.MetadataPath))
}

// Read returns the catalog's current version without touching the file.
// ok is false when the file or the version literal is absent.
func (s *Store) Read(c catalog.Catalog) (v semver.Version, ok bool, err error) {
	data, err := os.ReadFile(s.resolve(c))
	if err != nil {
		if os.IsNotExist(err) {
			return semver.Version{}, false, nil
		}
		return semver.Version{}, false, fmt.Errorf("reading %s: %w", c.MetadataPath, err)
	}
	m := versionLineRe.FindSubmatch(data)
	if m == nil {
		return semver.Version{}, false, nil
	}
	return parseGroups(m), true, nil
}

// Ensure guarantees the catalog's metadata file exists and carries a version
// literal, creating or extending the file with the initial version when it
// does not. Returns the current version and the full file text.
func (s *Store) Ensure(c catalog.Catalog) (semver.Version, string, error) {
	path := s.resolve(c)
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return semver.Version{}, "", fmt.Errorf("reading %s: %w", c.MetadataPath, err)
	}

	text := string(data)
	if len(text) == 0 {
		text = versionLine(semver.Initial) + "\n"
		if err := s.writeFile(path, text); err != nil {
			return semver.Version{}, "", err
		}
		return semver.Initial, text, nil
	}

	m := versionLineRe.FindStringSubmatch(text)
	if m == nil {
		text = trimTrailingNewlines(text) + "\n" + versionLine(semver.Initial) + "\n"
		if err := s.writeFile(path, text); err != nil {
			return semver.Version{}, "", err
		}
		return semver.Initial, text, nil
	}

	var nums [3]int
	for i := 0; i < 3; i++ {
		nums[i], _ = strconv.Atoi(m[i+1])
	}
	return semver.Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, text, nil
}

// Write replaces the version literal inside text (or appends one) and writes
// the result to the catalog's metadata file. The caller restages the file.
func (s *Store) Write(c catalog.Catalog, text string, v semver.Version) error {
	if versionLineRe.MatchString(text) {
		text = versionLineRe.ReplaceAllString(text, versionLine(v))
	} else {
		text = trimTrailingNewlines(text) + "\n" + versionLine(v) + "\n"
	}
	return s.writeFile(s.resolve(c), text)
}

func (s *Store) writeFile(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func versionLine(v semver.Version) string {
	return fmt.Sprintf("__version__ = %q", v.String())
}

func parseGroups(m [][]byte) semver.Version {
	var nums [3]int
	for i := 0; i < 3; i++ {
		nums[i], _ = strconv.Atoi(string(m[i+1]))
	}
	return semver.Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}
}

func trimTrailingNewlines(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
