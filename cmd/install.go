package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var installForce bool

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install catver as the pre-commit and commit-msg hooks",
	RunE: func(cmd *cobra.Command, args []string) error {
		hooksDir, err := hooksPath(cmd)
		if err != nil {
			return err
		}

		hooks := map[string]string{
			"pre-commit": "#!/bin/sh\nexec catver\n",
			"commit-msg": "#!/bin/sh\nexec catver \"$1\"\n",
		}
		for name, script := range hooks {
			path := filepath.Join(hooksDir, name)
			if _, err := os.Stat(path); err == nil && !installForce {
				return fmt.Errorf("hook %s already exists (use --force to overwrite)", path)
			}
			if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "installed %s\n", path)
		}
		return nil
	},
}

func init() {
	installCmd.Flags().BoolVar(&installForce, "force", false, "overwrite existing hooks")
	rootCmd.AddCommand(installCmd)
}

// hooksPath resolves the repository's hooks directory through git so
// worktrees and GIT_DIR overrides are honored.
func hooksPath(cmd *cobra.Command) (string, error) {
	git := exec.CommandContext(cmd.Context(), "git", "rev-parse", "--git-dir")
	var stdout, stderr bytes.Buffer
	git.Stdout = &stdout
	git.Stderr = &stderr
	if err := git.Run(); err != nil {
		return "", fmt.Errorf("not a git repository: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return filepath.Join(strings.TrimSpace(stdout.String()), "hooks"), nil
}
