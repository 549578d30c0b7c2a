package cmd

import (
	"berquerant/excel-launcher-go/version"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		version.Write(cmd.OutOrStdout())
	},
}
