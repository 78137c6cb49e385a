package guard

import (
	"strings"
	"testing"

	"github.com/tbickford/catver/internal/semver"
)

func TestPrompterYesNo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"explicit yes", "y\n", false, true},
		{"explicit no", "n\n", true, false},
		{"full word", "yes\n", false, true},
		{"empty uses default", "\n", true, true},
		{"garbage uses default", "maybe\n", false, false},
		{"eof uses default", "", true, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out strings.Builder
			p := newPrompterWithIO(strings.NewReader(tt.input), &out, semver.LevelPatch)
			if got := p.YesNo("apply same bump to all?", tt.def); got != tt.want {
				t.Errorf("YesNo = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "apply same bump to all?") {
				t.Errorf("prompt text missing: %q", out.String())
			}
		})
	}
}

func TestPrompterLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  semver.Level
	}{
		{"major", "major\n", semver.LevelMajor},
		{"feat aliases minor", "feat\n", semver.LevelMinor},
		{"fix aliases patch", "fix\n", semver.LevelPatch},
		{"uppercase", "MINOR\n", semver.LevelMinor},
		{"empty falls back to default", "\n", semver.LevelPatch},
		{"na rejected, falls back", "na\n", semver.LevelPatch},
		{"garbage falls back", "enormous\n", semver.LevelPatch},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out strings.Builder
			p := newPrompterWithIO(strings.NewReader(tt.input), &out, semver.LevelPatch)
			if got := p.Level("select bump"); got != tt.want {
				t.Errorf("Level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrompterIsTTY(t *testing.T) {
	t.Parallel()

	p := newPrompterWithIO(strings.NewReader(""), &strings.Builder{}, semver.LevelPatch)
	if p.IsTTY() {
		t.Error("a strings.Reader is not a terminal")
	}

	tty := true
	p.forceTTY = &tty
	if !p.IsTTY() {
		t.Error("forceTTY override should win")
	}
}
