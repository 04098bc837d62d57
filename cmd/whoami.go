package cmd

import (
	"fmt"

	"pulse-cli/auth"
	"pulse-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Args:  cobra.NoArgs,
	Run:   whoami,
}

func init() {
	RootCmd.AddCommand(whoamiCmd)
}

func whoami(cmd *cobra.Command, args []string) {
	store := auth.MustResolveSession()
	user := store.Current()

	color.New(color.Bold, term.ColorHiGreen).Printf("%s", user.DisplayName())
	fmt.Printf(" @%s · %s\n", user.Username, user.Email)
}
