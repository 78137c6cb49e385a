package semver

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    Version
		wantErr bool
	}{
		{"simple", "1.2.3", Version{1, 2, 3}, false},
		{"zeros", "0.0.0", Version{0, 0, 0}, false},
		{"initial", "0.1.0", Version{0, 1, 0}, false},
		{"surrounding whitespace", "  2.0.1 ", Version{2, 0, 1}, false},
		{"two components", "1.2", Version{}, true},
		{"four components", "1.2.3.4", Version{}, true},
		{"non-numeric", "1.x.3", Version{}, true},
		{"negative", "1.-2.3", Version{}, true},
		{"empty", "", Version{}, true},
		{"v prefix rejected", "v1.2.3", Version{}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedVersion) {
					t.Fatalf("Parse(%q) err = %v, want ErrMalformedVersion", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBump(t *testing.T) {
	t.Parallel()

	v := Version{Major: 1, Minor: 2, Patch: 3}

	tests := []struct {
		level Level
		want  Version
	}{
		{LevelMajor, Version{2, 0, 0}},
		{LevelMinor, Version{1, 3, 0}},
		{LevelPatch, Version{1, 2, 4}},
		{LevelNone, Version{1, 2, 3}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.level), func(t *testing.T) {
			t.Parallel()
			got, err := v.Bump(tt.level)
			if err != nil {
				t.Fatalf("Bump(%s): %v", tt.level, err)
			}
			if got != tt.want {
				t.Errorf("Bump(%s) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}

	t.Run("unknown level", func(t *testing.T) {
		t.Parallel()
		if _, err := v.Bump(Level("huge")); !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("Bump(huge) err = %v, want ErrUnknownLevel", err)
		}
	})

	t.Run("major bump zeroes lower components", func(t *testing.T) {
		t.Parallel()
		for _, start := range []Version{{0, 9, 9}, {3, 0, 7}, {5, 12, 0}} {
			got, err := start.Bump(LevelMajor)
			if err != nil {
				t.Fatalf("Bump(major): %v", err)
			}
			want := Version{Major: start.Major + 1}
			if got != want {
				t.Errorf("%v.Bump(major) = %v, want %v", start, got, want)
			}
		}
	})
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []Version{{0, 0, 0}, {0, 1, 0}, {1, 2, 3}, {10, 20, 30}} {
		got, err := Parse(v.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", v.String(), err)
		}
		if got != v {
			t.Errorf("round trip %v = %v", v, got)
		}
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		token     string
		allowNone bool
		want      Level
		wantErr   bool
	}{
		{"major", "major", false, LevelMajor, false},
		{"minor", "minor", false, LevelMinor, false},
		{"patch", "patch", false, LevelPatch, false},
		{"feat aliases minor", "feat", false, LevelMinor, false},
		{"fix aliases patch", "fix", false, LevelPatch, false},
		{"case insensitive", "MAJOR", false, LevelMajor, false},
		{"padded", " fix ", false, LevelPatch, false},
		{"na allowed", "na", true, LevelNone, false},
		{"na rejected in bump grammar", "na", false, "", true},
		{"unknown", "huge", true, "", true},
		{"empty", "", true, "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.token, tt.allowNone)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownLevel) {
					t.Fatalf("ParseLevel(%q) err = %v, want ErrUnknownLevel", tt.token, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q): %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b Version
		want int
	}{
		{Version{1, 0, 0}, Version{1, 0, 0}, 0},
		{Version{0, 9, 9}, Version{1, 0, 0}, -1},
		{Version{1, 2, 3}, Version{1, 2, 2}, 1},
	}

	for _, tt := range tests {
		tt := tt
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
