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

var likeCmd = &cobra.Command{
	Use:   "like [post-id]",
	Short: "Like or unlike a post",
	Args:  cobra.ExactArgs(1),
	Run:   like,
}

func init() {
	RootCmd.AddCommand(likeCmd)
}

func like(cmd *cobra.Command, args []string) {
	auth.MustResolveSession()

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

	controller := lib.NewPostController(api.Client, post, nil, nil)
	defer controller.Close()

	term.StartSpinner("")
	apiErr = controller.ToggleLike()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
		term.OutputErrorAndExit("Error toggling like: %v", apiErr.Msg)
	}

	updated := controller.Post()
	if updated.IsLiked {
		fmt.Printf("♥ Liked post %d (%d likes)\n", updated.Id, updated.LikesCount)
	} else {
		fmt.Printf("♡ Unliked post %d (%d likes)\n", updated.Id, updated.LikesCount)
	}
}
