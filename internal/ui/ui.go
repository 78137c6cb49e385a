// Package ui prints the hook's human-facing output to stderr, keeping stdout
// clean for git.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/tbickford/catver/internal/semver"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

type Printer struct {
	out io.Writer
}

func New() *Printer {
	return &Printer{out: os.Stderr}
}

// NewWithWriter builds a Printer with injectable output for tests.
func NewWithWriter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Touched(catalogs []string) {
	fmt.Fprintln(p.out, bold+"catalog changes detected in:"+reset)
	for _, c := range catalogs {
		fmt.Fprintf(p.out, "  - %s\n", c)
	}
}

func (p *Printer) VersionPreview(name string, v semver.Version) {
	fmt.Fprintf(p.out, "\n%s%s%s current: %s\n", bold+cyan, name, reset, v)
	fmt.Fprintf(p.out, dim+"  major -> %d.0.0"+reset+"\n", v.Major+1)
	fmt.Fprintf(p.out, dim+"  minor -> %d.%d.0"+reset+"\n", v.Major, v.Minor+1)
	fmt.Fprintf(p.out, dim+"  patch -> %d.%d.%d"+reset+"\n", v.Major, v.Minor, v.Patch+1)
}

func (p *Printer) Bumped(metadataPath string, level semver.Level, old, next semver.Version) {
	fmt.Fprintf(p.out, green+"✓ %s"+reset+dim+" %s -> %s (%s)"+reset+"\n", metadataPath, old, next, level)
}

func (p *Printer) Skipped(reason string) {
	fmt.Fprintf(p.out, dim+"%s"+reset+"\n", reason)
}

// Guidance prints a blocking-failure guidance block verbatim.
func (p *Printer) Guidance(block string) {
	fmt.Fprintln(p.out, red+bold+"✗ commit blocked"+reset)
	fmt.Fprintln(p.out, block)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.out, yellow+"⚠ "+reset+"%s\n", msg)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.out, red+bold+"error: "+reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.out, dim+"%s"+reset+"\n", msg)
}

// CatalogVersion renders one line of `catver status` output.
func (p *Printer) CatalogVersion(name string, v semver.Version, healthy bool) {
	if healthy {
		fmt.Fprintf(p.out, cyan+"◆ %-24s"+reset+" %s\n", name, v)
		return
	}
	fmt.Fprintf(p.out, yellow+"◆ %-24s"+reset+" no version literal (would default to %s)\n", name, semver.Initial)
}
