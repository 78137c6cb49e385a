// Package message parses the two commit-message grammars catver accepts and
// manages the audit trailers it appends.
package message

import (
	"regexp"

	"github.com/tbickford/catver/internal/semver"
)

// Shorthand is the parsed form of the quoted-catalog grammar:
//
//	Global : minor
//	"catalog_alpha" : major
//
// Later duplicate catalog keys overwrite earlier ones.
type Shorthand struct {
	// Global is the fallback level, valid only when HasGlobal is set.
	Global    semver.Level
	HasGlobal bool
	// PerCatalog maps catalog short names to their declared level.
	PerCatalog map[string]semver.Level
}

var (
	globalRe     = regexp.MustCompile(`(?im)^\s*global\s*:\s*(major|minor|patch|feat|fix)\s*$`)
	perCatalogRe = regexp.MustCompile(`(?i)"([^"]+)"\s*:\s*(major|minor|patch|feat|fix)`)
)

// ParseShorthand extracts the shorthand declarations from a commit message.
// Lines that match neither form are ignored; the grammar never errors because
// the level alternation only admits recognized tokens.
func ParseShorthand(msg string) Shorthand {
	sh := Shorthand{PerCatalog: make(map[string]semver.Level)}

	if m := globalRe.FindStringSubmatch(msg); m != nil {
		if lvl, err := semver.ParseLevel(m[1], false); err == nil {
			sh.Global = lvl
			sh.HasGlobal = true
		}
	}

	for _, m := range perCatalogRe.FindAllStringSubmatch(msg, -1) {
		if lvl, err := semver.ParseLevel(m[2], false); err == nil {
			sh.PerCatalog[m[1]] = lvl
		}
	}
	return sh
}
