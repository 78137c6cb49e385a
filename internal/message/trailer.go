package message

import "strings"

// Trailer is one `Key: value` audit line appended to a commit message.
type Trailer struct {
	Key   string
	Value string
}

// Trailer keys catver writes.
const (
	TrailerPrecommitRun = "Precommit-Run"
	TrailerSemverBump   = "Semver-Bump"
	// TrailerSemverLevelPrefix prefixes the per-catalog level trailers,
	// e.g. "Semver-Level-catalog_alpha".
	TrailerSemverLevelPrefix = "Semver-Level-"
)

// HasTrailer reports whether the message already carries a trailer line with
// the given key.
func HasTrailer(msg, key string) bool {
	prefix := key + ":"
	for _, line := range strings.Split(msg, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			return true
		}
	}
	return false
}

// AppendTrailers adds each trailer as a trailing `Key: value` line, skipping
// keys the message already carries. Running it twice is a no-op.
func AppendTrailers(msg string, trailers []Trailer) string {
	if msg != "" && !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	for _, tr := range trailers {
		if HasTrailer(msg, tr.Key) {
			continue
		}
		msg += tr.Key + ": " + tr.Value + "\n"
	}
	return msg
}
