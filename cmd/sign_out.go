package cmd

import (
	"context"
	"fmt"

	"pulse-cli/auth"
	"pulse-cli/term"

	"github.com/spf13/cobra"
)

var signOutCmd = &cobra.Command{
	Use:   "sign-out",
	Short: "Sign out of the current Pulse account",
	Args:  cobra.NoArgs,
	Run:   signOut,
}

func init() {
	RootCmd.AddCommand(signOutCmd)
}

func signOut(cmd *cobra.Command, args []string) {
	store := auth.MustResolveSession()
	username := store.Current().Username

	term.StartSpinner("")
	apiErr := store.SignOut(context.Background())
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error signing out: %v", apiErr.Msg)
	}

	fmt.Printf("👋 Signed out of %s\n", username)
}
