package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tbickford/catver/internal/config"
	"github.com/tbickford/catver/internal/guard"
	"github.com/tbickford/catver/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List catalogs and their current versions",
	RunE: func(cmd *cobra.Command, args []string) error {
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
			printer.Info("no catalogs found")
			return nil
		}

		store := guard.NewStore(".")
		for _, c := range reg.Catalogs() {
			v, ok, err := store.Read(c)
			if err != nil {
				return err
			}
			printer.CatalogVersion(c.Name, v, ok)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
