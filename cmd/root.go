// Package cmd wires catver's cobra commands. The root command is the hook
// entry point: git invokes it with no arguments at the pre-commit stage and
// with the commit message file path at the commit-msg stage.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tbickford/catver/internal/catalog"
	"github.com/tbickford/catver/internal/config"
	"github.com/tbickford/catver/internal/gitx"
	"github.com/tbickford/catver/internal/guard"
	"github.com/tbickford/catver/internal/semver"
	"github.com/tbickford/catver/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "catver [commit-msg-file]",
	Short: "Commit-time semver guard for catalog packages",
	Long: "Catver inspects the staged change set for files belonging to versioned\n" +
		"catalog packages and either bumps each touched catalog's version or\n" +
		"enforces that the commit message declares a bump per touched catalog.\n" +
		"With no arguments it runs the interactive pre-commit stage; with a\n" +
		"commit message file it runs the commit-msg stage.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runHook,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .catver.yaml)")
	rootCmd.PersistentFlags().String("mode", "", "commit-msg policy: bump, validate, or annotate")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	_ = viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".catver")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("CATVER")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

func runHook(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	printer := ui.New()

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}
	if reg == nil {
		// No catalogs in this repository; nothing to guard.
		return nil
	}

	mode, err := guard.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	defaultLevel, err := semver.ParseLevel(cfg.DefaultLevel, false)
	if err != nil {
		return fmt.Errorf("default_level: %w", err)
	}

	ctx := cmd.Context()
	git, err := gitx.NewCLI(ctx, ".")
	if err != nil {
		return err
	}

	o := guard.New(mode, guard.Deps{
		Registry:   reg,
		Classifier: catalog.NewClassifier(reg, cfg.SourceExt),
		Git:        git,
		Store:      guard.NewStore("."),
		Printer:    printer,
		Prompter:   guard.NewPrompter(defaultLevel),
	})

	if len(args) == 1 {
		msgPath := args[0]
		if _, err := os.Stat(msgPath); err != nil {
			return fmt.Errorf("commit message file not found: %s", msgPath)
		}
		return o.CommitMsg(ctx, msgPath)
	}
	return o.PreCommit(ctx)
}

// buildRegistry loads the static manifest when present, otherwise discovers
// catalogs under the configured root. A repository with neither is not an
// error: the hook has nothing to guard there.
func buildRegistry(cfg config.Config) (*catalog.Registry, error) {
	reg, err := catalog.LoadManifest(cfg.Manifest, cfg.InitFile)
	if err == nil {
		return reg, nil
	}
	if !errors.Is(err, catalog.ErrNoManifest) {
		return nil, err
	}

	reg, err = catalog.Discover(cfg.CatalogRoot, cfg.InitFile)
	if err != nil {
		if errors.Is(err, catalog.ErrEmptyRegistry) || errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return reg, nil
}
