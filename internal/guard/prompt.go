package guard

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tbickford/catver/internal/semver"
)

// Prompter collects bump decisions from the terminal. Prompts go to stderr so
// stdout stays clean for git; answers are read line by line from stdin.
type Prompter struct {
	in           *bufio.Scanner
	raw          io.Reader
	out          io.Writer
	defaultLevel semver.Level
	forceTTY     *bool // override TTY detection for testing; nil = auto-detect
}

// NewPrompter creates a Prompter over stdin/stderr. defaultLevel is the
// answer used for empty or unrecognized input.
func NewPrompter(defaultLevel semver.Level) *Prompter {
	return newPrompterWithIO(os.Stdin, os.Stderr, defaultLevel)
}

func newPrompterWithIO(in io.Reader, out io.Writer, defaultLevel semver.Level) *Prompter {
	return &Prompter{
		in:           bufio.NewScanner(in),
		raw:          in,
		out:          out,
		defaultLevel: defaultLevel,
	}
}

// IsTTY reports whether the prompter's input is connected to a terminal.
func (p *Prompter) IsTTY() bool {
	if p.forceTTY != nil {
		return *p.forceTTY
	}
	f, ok := p.raw.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// read returns the next input line, or "" on EOF/error so callers fall back
// to their defaults.
func (p *Prompter) read() string {
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(strings.ToLower(p.in.Text()))
}

// YesNo asks a y/n question, returning def on empty or unrecognized input.
func (p *Prompter) YesNo(question string, def bool) bool {
	defTok := "n"
	if def {
		defTok = "y"
	}
	fmt.Fprintf(p.out, "%s [y/n] (default: %s): ", question, defTok)
	switch p.read() {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}

// Level asks which bump level to apply, accepting the full token vocabulary
// of the bump grammar (major, minor, feat, patch, fix). Empty or invalid
// input falls back to the prompter's default level.
func (p *Prompter) Level(question string) semver.Level {
	fmt.Fprintf(p.out, "%s [major/minor/feat/patch/fix] (default: %s): ", question, p.defaultLevel)
	lvl, err := semver.ParseLevel(p.read(), false)
	if err != nil {
		return p.defaultLevel
	}
	return lvl
}
