package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/PGP-Health-System/pgp/internal/catalog"
)

var modulesCmd = &cobra.Command{
	Use:   "modules [filter]",
	Short: "List the launchable modules, optionally filtered by label",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		items := catalog.Filter(catalog.All(), query)
		if len(items) == 0 {
			cmd.Println("  (none)")
			return nil
		}
		for _, d := range items {
			cmd.Printf("  %s  %-14s %-14s %s\n", d.Icon, d.ID, d.Label, strings.ToLower(string(d.Category)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modulesCmd)
}
