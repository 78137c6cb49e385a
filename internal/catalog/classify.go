package catalog

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// ChangeGroup is the set of staged source files touching one catalog.
type ChangeGroup struct {
	Catalog Catalog
	// Paths are the full repository-relative staged paths, in staging order.
	Paths []string
}

// Basenames returns the sorted, de-duplicated, lower-cased file basenames of
// the group, the form commit-message segments list files in.
func (g ChangeGroup) Basenames() []string {
	seen := make(map[string]bool, len(g.Paths))
	for _, p := range g.Paths {
		seen[strings.ToLower(path.Base(p))] = true
	}
	out := make([]string, 0, len(seen))
	for b := range seen {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}

// Classifier groups staged paths by the catalog they belong to.
type Classifier struct {
	registry *Registry
	ext      string // source extension filter, e.g. ".py"
}

// NewClassifier builds a classifier over the given registry. Files are only
// counted when their extension equals ext.
func NewClassifier(registry *Registry, ext string) *Classifier {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Classifier{registry: registry, ext: ext}
}

// Classify maps staged paths onto catalogs. A path belongs to a catalog when
// it sits under the catalog's directory (true path-segment prefix) and carries
// the source extension. Groups come back in registry order; catalogs with no
// touched files are omitted.
func (c *Classifier) Classify(staged []string) []ChangeGroup {
	var groups []ChangeGroup
	for _, cat := range c.registry.Catalogs() {
		prefix := cat.Dir + "/"
		var paths []string
		for _, p := range staged {
			p = filepath.ToSlash(p)
			if !strings.HasPrefix(p, prefix) {
				continue
			}
			if c.ext != "" && path.Ext(p) != c.ext {
				continue
			}
			paths = append(paths, p)
		}
		if len(paths) > 0 {
			groups = append(groups, ChangeGroup{Catalog: cat, Paths: paths})
		}
	}
	return groups
}

// Names returns the catalog names of the groups, preserving group order.
func Names(groups []ChangeGroup) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Catalog.Name
	}
	return out
}
