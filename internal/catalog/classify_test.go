package catalog

import (
	"reflect"
	"testing"
)

func testRegistry() *Registry {
	return NewRegistry([]Catalog{
		{Name: "catalog_alpha", Dir: "catalogs/catalog_alpha", MetadataPath: "catalogs/catalog_alpha/__init__.py"},
		{Name: "catalog_beta", Dir: "catalogs/catalog_beta", MetadataPath: "catalogs/catalog_beta/__init__.py"},
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		staged []string
		want   map[string][]string
	}{
		{
			name: "groups by catalog and filters extension",
			staged: []string{
				"catalogs/catalog_alpha/core.py",
				"catalogs/catalog_alpha/data.csv",
				"catalogs/catalog_beta/api.py",
				"README.md",
			},
			want: map[string][]string{
				"catalog_alpha": {"catalogs/catalog_alpha/core.py"},
				"catalog_beta":  {"catalogs/catalog_beta/api.py"},
			},
		},
		{
			name: "segment prefix, not string prefix",
			staged: []string{
				"catalogs/catalog_alpha_legacy/core.py",
				"catalogs/catalog_alpha/core.py",
			},
			want: map[string][]string{
				"catalog_alpha": {"catalogs/catalog_alpha/core.py"},
			},
		},
		{
			name:   "nested files belong to their catalog",
			staged: []string{"catalogs/catalog_beta/sub/deep.py"},
			want: map[string][]string{
				"catalog_beta": {"catalogs/catalog_beta/sub/deep.py"},
			},
		},
		{
			name:   "nothing relevant",
			staged: []string{"docs/guide.md", "catalogs/catalog_alpha/notes.txt"},
			want:   map[string][]string{},
		},
	}

	c := NewClassifier(testRegistry(), ".py")

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			groups := c.Classify(tt.staged)
			got := make(map[string][]string, len(groups))
			for _, g := range groups {
				got[g.Catalog.Name] = g.Paths
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("registry order", func(t *testing.T) {
		t.Parallel()
		groups := c.Classify([]string{
			"catalogs/catalog_beta/b.py",
			"catalogs/catalog_alpha/a.py",
		})
		if names := Names(groups); !reflect.DeepEqual(names, []string{"catalog_alpha", "catalog_beta"}) {
			t.Errorf("group order = %v, want registry order", names)
		}
	})
}

func TestBasenames(t *testing.T) {
	t.Parallel()

	g := ChangeGroup{Paths: []string{
		"catalogs/catalog_alpha/Core.py",
		"catalogs/catalog_alpha/sub/core.py",
		"catalogs/catalog_alpha/util.py",
	}}

	got := g.Basenames()
	want := []string{"core.py", "util.py"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Basenames() = %v, want %v", got, want)
	}
}

func TestClassifierExtensionNormalization(t *testing.T) {
	t.Parallel()

	c := NewClassifier(testRegistry(), "py")
	groups := c.Classify([]string{"catalogs/catalog_alpha/core.py"})
	if len(groups) != 1 {
		t.Fatalf("bare extension should be normalized; got %d groups", len(groups))
	}
}
