package cmd

import (
	"pulse-cli/auth"
	"pulse-cli/term"

	"github.com/spf13/cobra"
)

var signInCmd = &cobra.Command{
	Use:   "sign-in",
	Short: "Sign in to a Pulse account",
	Args:  cobra.NoArgs,
	Run:   signIn,
}

func init() {
	RootCmd.AddCommand(signInCmd)
}

func signIn(cmd *cobra.Command, args []string) {
	store := auth.RequireAnonymous()

	err := auth.PromptSignIn(store)
	if err != nil {
		term.OutputErrorAndExit("Error signing in: %v", err)
	}
}
