package cmd

import (
	"fmt"

	"pulse-cli/version"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Pulse",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Pulse CLI Version:", version.Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
