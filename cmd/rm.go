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

var rmCmd = &cobra.Command{
	Use:   "rm [post-id]",
	Short: "Delete one of your posts",
	Args:  cobra.ExactArgs(1),
	Run:   rm,
}

func init() {
	RootCmd.AddCommand(rmCmd)
}

func rm(cmd *cobra.Command, args []string) {
	store := auth.MustResolveSession()

	postId, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		term.OutputErrorAndExit("Invalid post id: %s", args[0])
	}

	term.StartSpinner("")
	post, apiErr := api.Client.GetPost(cmd.Context(), postId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
		term.OutputErrorAndExit("Error loading post: %v", apiErr.Msg)
	}

	// the server enforces ownership; checking here just saves a round trip
	if post.Author.Id != store.Current().Id {
		term.OutputErrorAndExit("Post %d isn't yours to delete", postId)
	}

	confirmed, err := term.ConfirmYesNo("Delete post %d?", postId)
	if err != nil {
		term.OutputErrorAndExit("Error getting confirmation: %v", err)
	}
	if !confirmed {
		fmt.Println("Post not deleted")
		return
	}

	controller := lib.NewPostController(api.Client, post, nil, nil)
	defer controller.Close()

	term.StartSpinner("")
	apiErr = controller.Delete()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
		term.OutputErrorAndExit("Error deleting post: %v", apiErr.Msg)
	}

	fmt.Printf("🗑️  Deleted post %d\n", postId)
}
