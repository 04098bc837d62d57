package cmd

import (
	"fmt"
	"strconv"

	"pulse-cli/api"
	"pulse-cli/auth"
	"pulse-cli/lib"
	"pulse-cli/term"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:     "profile [user-id]",
	Aliases: []string{"pr"},
	Short:   "Show a user profile with their posts",
	Args:    cobra.MaximumNArgs(1),
	Run:     profile,
}

func init() {
	RootCmd.AddCommand(profileCmd)
}

func profile(cmd *cobra.Command, args []string) {
	store := auth.MustResolveSession()

	userId := store.Current().Id
	if len(args) > 0 {
		var err error
		userId, err = strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			term.OutputErrorAndExit("Invalid user id: %s", args[0])
		}
	}

	controller := lib.NewProfileController(api.Client, store)
	defer controller.Close()

	term.StartSpinner("")
	loaded, apiErr := controller.Load(userId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
		term.OutputErrorAndExit("Error loading profile: %v", apiErr.Msg)
	}

	fmt.Print(lib.FormatProfile(loaded, store.Current().Id))
	fmt.Println()

	if len(loaded.Posts) == 0 {
		fmt.Println("No posts yet")
		return
	}

	fmt.Print(lib.FormatPostsTable(loaded.Posts, store.Current().Id))
}
