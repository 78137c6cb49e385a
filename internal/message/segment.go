package message

import (
	"regexp"
	"strings"
)

// Segment is one parsed unit of the file-listing grammar:
//
//	<level> <catalog> : file.py, other.py;
//
// Level carries the raw lower-cased token; membership in the accepted
// vocabulary is the coverage validator's decision, so an unknown token can
// fail the whole message instead of silently dropping the segment.
type Segment struct {
	Level   string
	Catalog string
	Files   []string // lower-cased basenames
}

// segmentRe matches a single ;-delimited segment. The level token is any
// bare word; the catalog token admits alphanumerics, dot, underscore, hyphen.
var segmentRe = regexp.MustCompile(`^\s*([A-Za-z]+)\s+([A-Za-z0-9._-]+)\s*:\s*(.+?)\s*;?\s*$`)

// ParseSegments normalizes the message (lines joined with single spaces,
// blanks dropped), splits on ';', and parses each piece. Segments that do not
// match the grammar shape are dropped.
func ParseSegments(msg string) []Segment {
	var kept []string
	for _, line := range strings.Split(msg, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			kept = append(kept, s)
		}
	}
	compact := strings.Join(kept, " ")

	var segments []Segment
	for _, raw := range strings.Split(compact, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		m := segmentRe.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		var files []string
		for _, f := range strings.Split(m[3], ",") {
			if f = strings.TrimSpace(f); f != "" {
				files = append(files, strings.ToLower(f))
			}
		}
		if len(files) == 0 {
			continue
		}
		segments = append(segments, Segment{
			Level:   strings.ToLower(m[1]),
			Catalog: m[2],
			Files:   files,
		})
	}
	return segments
}

// FilesByCatalog unions the file lists of all segments per catalog token.
// Duplicate segments for the same catalog accumulate rather than overwrite.
func FilesByCatalog(segments []Segment) map[string]map[string]bool {
	byCatalog := make(map[string]map[string]bool)
	for _, seg := range segments {
		set := byCatalog[seg.Catalog]
		if set == nil {
			set = make(map[string]bool)
			byCatalog[seg.Catalog] = set
		}
		for _, f := range seg.Files {
			set[f] = true
		}
	}
	return byCatalog
}
