package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the hours-guardian version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hours-guardian version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
