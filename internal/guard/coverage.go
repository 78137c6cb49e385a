package guard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tbickford/catver/internal/catalog"
	"github.com/tbickford/catver/internal/message"
	"github.com/tbickford/catver/internal/semver"
)

const levelChoices = "<major|minor|patch|feat|fix>"

// ResolveShorthand applies the shorthand coverage policy to the touched
// catalogs. A single touched catalog may use either its per-catalog entry or
// the Global fallback (the per-catalog entry wins); multiple touched catalogs
// require a per-catalog entry each — Global never satisfies a multi-catalog
// commit — and entries for untouched catalogs are rejected.
func ResolveShorthand(sh message.Shorthand, groups []catalog.ChangeGroup) (map[string]semver.Level, error) {
	touched := catalog.Names(groups)

	if len(touched) == 1 {
		only := touched[0]
		if lvl, ok := sh.PerCatalog[only]; ok {
			return map[string]semver.Level{only: lvl}, nil
		}
		if sh.HasGlobal {
			return map[string]semver.Level{only: sh.Global}, nil
		}
		var b strings.Builder
		b.WriteString("Missing semver mapping for the changed catalog.\n")
		b.WriteString("Use one of:\n")
		fmt.Fprintf(&b, "  Global : %s\n", levelChoices)
		fmt.Fprintf(&b, "  %q : %s\n", only, levelChoices)
		return nil, &CoverageError{Guidance: b.String(), Err: ErrMissingCoverage}
	}

	touchedSet := make(map[string]bool, len(touched))
	for _, name := range touched {
		touchedSet[name] = true
	}

	var missing, extraneous []string
	for _, name := range touched {
		if _, ok := sh.PerCatalog[name]; !ok {
			missing = append(missing, name)
		}
	}
	for name := range sh.PerCatalog {
		if !touchedSet[name] {
			extraneous = append(extraneous, name)
		}
	}
	sort.Strings(missing)
	sort.Strings(extraneous)

	if len(missing) > 0 {
		var b strings.Builder
		b.WriteString("Multiple catalogs changed. Provide a per-catalog mapping for ALL touched catalogs.\n")
		b.WriteString("Expected entries like:\n  ")
		entries := make([]string, len(touched))
		for i, name := range touched {
			entries[i] = fmt.Sprintf("%q : %s", name, levelChoices)
		}
		sort.Strings(entries)
		b.WriteString(strings.Join(entries, " ; "))
		b.WriteString("\nMissing mappings for: " + strings.Join(missing, ", ") + "\n")
		return nil, &CoverageError{Guidance: b.String(), Err: ErrMissingCoverage}
	}
	if len(extraneous) > 0 {
		return nil, &CoverageError{
			Guidance: "Per-catalog mappings include unknown catalogs: " + strings.Join(extraneous, ", ") + "\n",
			Err:      ErrExtraneousCatalog,
		}
	}

	levels := make(map[string]semver.Level, len(touched))
	for _, name := range touched {
		levels[name] = sh.PerCatalog[name]
	}
	return levels, nil
}

// ValidateSegments applies the file-listing coverage policy: every touched
// catalog needs at least one segment naming it, the union of that catalog's
// segment file lists must cover every touched basename, and every level token
// anywhere in the message must be recognized (an unknown token fails the
// whole message). The message is never mutated.
func ValidateSegments(msg string, groups []catalog.ChangeGroup) error {
	if len(groups) == 0 {
		return nil
	}

	segments := message.ParseSegments(msg)
	if len(segments) == 0 {
		return &CoverageError{Guidance: segmentGuidance(groups), Err: ErrMissingCoverage}
	}

	for _, seg := range segments {
		if _, err := semver.ParseLevel(seg.Level, true); err != nil {
			return &CoverageError{Guidance: segmentGuidance(groups), Err: ErrMissingCoverage}
		}
	}

	listed := message.FilesByCatalog(segments)
	for _, g := range groups {
		files, ok := listed[g.Catalog.Name]
		if !ok {
			return &CoverageError{Guidance: segmentGuidance(groups), Err: ErrMissingCoverage}
		}
		for _, base := range g.Basenames() {
			if !files[base] {
				return &CoverageError{Guidance: segmentGuidance(groups), Err: ErrMissingCoverage}
			}
		}
	}
	return nil
}

// segmentGuidance renders the expected segment for every touched catalog with
// its live basename list, ready to paste into the message.
func segmentGuidance(groups []catalog.ChangeGroup) string {
	var b strings.Builder
	b.WriteString("Missing semver mapping for the changed catalog.\n")
	b.WriteString("Use one of:\n")
	sorted := make([]catalog.ChangeGroup, len(groups))
	copy(sorted, groups)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Catalog.Name < sorted[j].Catalog.Name })
	for _, g := range sorted {
		fmt.Fprintf(&b, "  %s %s : %s;\n", levelChoices, g.Catalog.Name, strings.Join(g.Basenames(), ", "))
	}
	return b.String()
}
