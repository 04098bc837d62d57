package cmd

import (
	"pulse-cli/auth"
	"pulse-cli/term"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new Pulse account",
	Args:  cobra.NoArgs,
	Run:   register,
}

func init() {
	RootCmd.AddCommand(registerCmd)
}

func register(cmd *cobra.Command, args []string) {
	store := auth.RequireAnonymous()

	err := auth.PromptRegister(store)
	if err != nil {
		term.OutputErrorAndExit("Error registering: %v", err)
	}
}
