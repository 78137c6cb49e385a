// Package gitx wraps the git CLI operations the hook needs: listing the
// staged change set and restaging rewritten metadata files.
package gitx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Client is the version-control collaborator.
type Client interface {
	// StagedPaths lists the paths staged for commit, filtered to
	// added/copied/modified/renamed/type-changed entries.
	StagedPaths(ctx context.Context) ([]string, error)
	// Add stages the file at path.
	Add(ctx context.Context, path string) error
}

// cli implements Client over the git binary.
type cli struct {
	dir string // working directory for git commands; empty = process cwd
}

// NewCLI returns a Client running git in dir. It fails when git is not on
// PATH or dir is not inside a repository.
func NewCLI(ctx context.Context, dir string) (Client, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, fmt.Errorf("git not found: %w", err)
	}
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "rev-parse", "--git-dir")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s is not a git repository: %w", dir, err)
	}
	return &cli{dir: dir}, nil
}

// StagedPaths runs `git diff --cached --name-only --diff-filter=ACMRT`.
func (c *cli) StagedPaths(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", c.dir,
		"diff", "--cached", "--name-only", "--diff-filter=ACMRT")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("git diff --cached: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return splitPaths(stdout.String()), nil
}

// Add runs `git add <path>`.
func (c *cli) Add(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, "git", "-C", c.dir, "add", "--", path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git add %s: %w: %s", path, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// splitPaths turns git's newline-separated path listing into a clean slice.
func splitPaths(out string) []string {
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
