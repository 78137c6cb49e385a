// Package catalog knows which directories of the repository are versioned
// catalogs and which staged files belong to each of them.
package catalog

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultInitName is the metadata file every catalog carries its version in.
const DefaultInitName = "__init__.py"

// Catalog is one versioned source grouping.
type Catalog struct {
	// Name is the short identifier used in commit messages.
	Name string
	// Dir is the slash-separated repository-relative directory of the catalog.
	Dir string
	// MetadataPath is the file holding the catalog's version literal.
	MetadataPath string
}

// Registry holds the known catalogs in a deterministic order: manifest order
// for static registries, lexical directory order for discovered ones.
type Registry struct {
	catalogs []Catalog
	byName   map[string]int
}

// NewRegistry builds a registry from an explicit catalog list, preserving order.
func NewRegistry(catalogs []Catalog) *Registry {
	r := &Registry{byName: make(map[string]int, len(catalogs))}
	for _, c := range catalogs {
		if _, ok := r.byName[c.Name]; ok {
			continue // first declaration wins
		}
		r.byName[c.Name] = len(r.catalogs)
		r.catalogs = append(r.catalogs, c)
	}
	return r
}

// manifest mirrors the catalogs.toml document shape.
type manifest struct {
	Catalog []manifestEntry `toml:"catalog"`
}

type manifestEntry struct {
	Name string `toml:"name"`
	Dir  string `toml:"dir"`
	Init string `toml:"init"`
}

// LoadManifest reads a catalogs.toml manifest. Each [[catalog]] entry needs a
// dir; name defaults to the directory basename and init to <dir>/<initName>.
func LoadManifest(manifestPath, initName string) (*Registry, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoManifest
		}
		return nil, fmt.Errorf("reading %s: %w", manifestPath, err)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", manifestPath, err)
	}
	if len(m.Catalog) == 0 {
		return nil, fmt.Errorf("%w: %s declares no catalogs", ErrEmptyRegistry, manifestPath)
	}

	catalogs := make([]Catalog, 0, len(m.Catalog))
	for i, e := range m.Catalog {
		if e.Dir == "" {
			return nil, fmt.Errorf("%w: catalog entry %d has no dir", ErrEmptyRegistry, i)
		}
		dir := filepath.ToSlash(e.Dir)
		name := e.Name
		if name == "" {
			name = path.Base(dir)
		}
		init := filepath.ToSlash(e.Init)
		if init == "" {
			init = path.Join(dir, initName)
		}
		catalogs = append(catalogs, Catalog{Name: name, Dir: dir, MetadataPath: init})
	}
	return NewRegistry(catalogs), nil
}

// Discover treats every first-level directory under root as a catalog whose
// metadata file is <root>/<name>/<initName>. Hidden directories are skipped.
func Discover(root, initName string) (*Registry, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("discovering catalogs under %s: %w", root, err)
	}

	var catalogs []Catalog
	for _, e := range entries {
		if !e.IsDir() || e.Name()[0] == '.' {
			continue
		}
		dir := path.Join(filepath.ToSlash(root), e.Name())
		catalogs = append(catalogs, Catalog{
			Name:         e.Name(),
			Dir:          dir,
			MetadataPath: path.Join(dir, initName),
		})
	}
	sort.Slice(catalogs, func(i, j int) bool { return catalogs[i].Name < catalogs[j].Name })
	if len(catalogs) == 0 {
		return nil, fmt.Errorf("%w: no directories under %s", ErrEmptyRegistry, root)
	}
	return NewRegistry(catalogs), nil
}

// Catalogs returns the registered catalogs in registry order.
func (r *Registry) Catalogs() []Catalog {
	out := make([]Catalog, len(r.catalogs))
	copy(out, r.catalogs)
	return out
}

// Lookup finds a catalog by short name.
func (r *Registry) Lookup(name string) (Catalog, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Catalog{}, false
	}
	return r.catalogs[i], true
}

// IsMetadataPath reports whether p is the metadata file of any catalog.
func (r *Registry) IsMetadataPath(p string) bool {
	p = filepath.ToSlash(p)
	for _, c := range r.catalogs {
		if c.MetadataPath == p {
			return true
		}
	}
	return false
}
