package main

import (
	"github.com/spf13/cobra"

	"logofetch/pkg/teams"
	"logofetch/pkg/ui"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the teams whose logos are downloaded",
	Long: `List the effective team table in download order. Ids that appear more
than once in the built-in list are reported below the table; the last name
listed for such an id is the one used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		console := ui.NewConsole(cmd.OutOrStdout(), cfg.Output.Color, "")
		console.PrintTeams(teams.Default(), teams.DefaultDuplicates())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(teamsCmd)
}
