// Package guard hosts the commit-time policy engine: version storage,
// coverage validation, and the orchestration of the hook's operating modes.
package guard

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tbickford/catver/internal/catalog"
	"github.com/tbickford/catver/internal/gitx"
	"github.com/tbickford/catver/internal/message"
	"github.com/tbickford/catver/internal/semver"
	"github.com/tbickford/catver/internal/ui"
)

// Mode selects the commit-msg stage behavior.
type Mode string

const (
	// ModeBump enforces the shorthand grammar and applies version bumps.
	ModeBump Mode = "bump"
	// ModeValidate enforces the segment grammar without mutating versions.
	ModeValidate Mode = "validate"
	// ModeAnnotate only appends audit trailers when metadata files are staged.
	ModeAnnotate Mode = "annotate"
)

// ParseMode validates a configured mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeBump:
		return ModeBump, nil
	case ModeValidate:
		return ModeValidate, nil
	case ModeAnnotate:
		return ModeAnnotate, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want bump, validate, or annotate)", s)
	}
}

// Deps carries the orchestrator's collaborators.
type Deps struct {
	Registry   *catalog.Registry
	Classifier *catalog.Classifier
	Git        gitx.Client
	Store      *Store
	Printer    *ui.Printer
	Prompter   *Prompter
}

// Orchestrator drives one hook invocation.
type Orchestrator struct {
	mode Mode
	deps Deps
}

// New builds an Orchestrator for the given commit-msg mode.
func New(mode Mode, deps Deps) *Orchestrator {
	return &Orchestrator{mode: mode, deps: deps}
}

// PreCommit is the interactive pre-check. It never blocks a commit: when
// nothing relevant is staged, when only metadata files are staged (a fixup of
// a previous bump), or when no terminal is attached, it simply returns nil.
func (o *Orchestrator) PreCommit(ctx context.Context) error {
	groups, err := o.touched(ctx)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		return nil
	}
	if o.metadataOnly(groups) {
		o.deps.Printer.Skipped("only catalog metadata files staged; nothing to bump")
		return nil
	}
	if !o.deps.Prompter.IsTTY() {
		o.deps.Printer.Skipped("no interactive terminal; enforcement happens at the commit-msg stage")
		return nil
	}

	o.deps.Printer.Touched(catalog.Names(groups))
	same := o.deps.Prompter.YesNo("apply same bump to all?", true)

	var chosen semver.Level
	for _, g := range groups {
		cur, text, err := o.deps.Store.Ensure(g.Catalog)
		if err != nil {
			return err
		}
		o.deps.Printer.VersionPreview(g.Catalog.Name, cur)

		var level semver.Level
		if same {
			if chosen == "" {
				chosen = o.deps.Prompter.Level("select bump")
			}
			level = chosen
		} else {
			level = o.deps.Prompter.Level("select bump")
		}

		if err := o.apply(ctx, g.Catalog, cur, text, level); err != nil {
			return err
		}
	}
	return nil
}

// CommitMsg is the commit-msg stage entry. msgPath is the file git hands the
// hook; depending on mode it is validated, rewritten with trailers, or both.
func (o *Orchestrator) CommitMsg(ctx context.Context, msgPath string) error {
	groups, err := o.touched(ctx)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(msgPath)
	if err != nil {
		return fmt.Errorf("reading commit message %s: %w", msgPath, err)
	}
	msg := string(data)

	switch o.mode {
	case ModeValidate:
		if err := ValidateSegments(msg, groups); err != nil {
			return o.block(err)
		}
		return nil
	case ModeAnnotate:
		return o.annotate(ctx, msgPath, msg)
	default:
		return o.enforce(ctx, msgPath, msg, groups)
	}
}

// enforce implements the message-driven bump mode.
func (o *Orchestrator) enforce(ctx context.Context, msgPath, msg string, groups []catalog.ChangeGroup) error {
	if len(groups) == 0 {
		return nil
	}

	levels, err := ResolveShorthand(message.ParseShorthand(msg), groups)
	if err != nil {
		return o.block(err)
	}

	for _, g := range groups {
		cur, text, err := o.deps.Store.Ensure(g.Catalog)
		if err != nil {
			return err
		}
		if err := o.apply(ctx, g.Catalog, cur, text, levels[g.Catalog.Name]); err != nil {
			return err
		}
	}

	names := catalog.Names(groups)
	sort.Strings(names)
	trailers := []message.Trailer{
		{Key: message.TrailerPrecommitRun, Value: "true"},
		{Key: message.TrailerSemverBump, Value: strings.Join(names, ",")},
	}
	for _, name := range names {
		trailers = append(trailers, message.Trailer{
			Key:   message.TrailerSemverLevelPrefix + name,
			Value: string(levels[name]),
		})
	}
	return writeMessage(msgPath, message.AppendTrailers(msg, trailers))
}

// annotate appends audit trailers when catalog metadata files are among the
// staged paths. It never gates the commit.
func (o *Orchestrator) annotate(ctx context.Context, msgPath, msg string) error {
	staged, err := o.deps.Git.StagedPaths(ctx)
	if err != nil {
		return err
	}

	var names []string
	for _, c := range o.deps.Registry.Catalogs() {
		for _, p := range staged {
			if p == c.MetadataPath {
				names = append(names, c.Name)
				break
			}
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)

	return writeMessage(msgPath, message.AppendTrailers(msg, []message.Trailer{
		{Key: message.TrailerPrecommitRun, Value: "true"},
		{Key: message.TrailerSemverBump, Value: strings.Join(names, ",")},
	}))
}

// apply bumps one catalog's version, writes the metadata file, and restages it.
func (o *Orchestrator) apply(ctx context.Context, c catalog.Catalog, cur semver.Version, text string, level semver.Level) error {
	next, err := cur.Bump(level)
	if err != nil {
		return err
	}
	if err := o.deps.Store.Write(c, text, next); err != nil {
		return err
	}
	if err := o.deps.Git.Add(ctx, c.MetadataPath); err != nil {
		return err
	}
	o.deps.Printer.Bumped(c.MetadataPath, level, cur, next)
	return nil
}

// touched classifies the staged change set.
func (o *Orchestrator) touched(ctx context.Context) ([]catalog.ChangeGroup, error) {
	staged, err := o.deps.Git.StagedPaths(ctx)
	if err != nil {
		return nil, err
	}
	return o.deps.Classifier.Classify(staged), nil
}

// metadataOnly reports whether every touched file is a catalog metadata file.
func (o *Orchestrator) metadataOnly(groups []catalog.ChangeGroup) bool {
	for _, g := range groups {
		for _, p := range g.Paths {
			if !o.deps.Registry.IsMetadataPath(p) {
				return false
			}
		}
	}
	return true
}

// block prints the guidance for a coverage failure and passes the error up so
// the process exits non-zero.
func (o *Orchestrator) block(err error) error {
	if cov, ok := err.(*CoverageError); ok {
		o.deps.Printer.Guidance(cov.Guidance)
	}
	return err
}

func writeMessage(msgPath, msg string) error {
	if err := os.WriteFile(msgPath, []byte(msg), 0o644); err != nil {
		return fmt.Errorf("writing commit message %s: %w", msgPath, err)
	}
	return nil
}
