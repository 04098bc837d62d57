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

var commentsCmd = &cobra.Command{
	Use:     "comments [post-id]",
	Aliases: []string{"cms"},
	Short:   "List comments on a post",
	Args:    cobra.ExactArgs(1),
	Run:     comments,
}

func init() {
	RootCmd.AddCommand(commentsCmd)
}

func comments(cmd *cobra.Command, args []string) {
	auth.MustResolveSession()

	postId, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		term.OutputErrorAndExit("Invalid post id: %s", args[0])
	}

	controller := lib.NewCommentController(api.Client, postId, nil, nil)
	defer controller.Close()

	term.StartSpinner("")
	apiErr := controller.Load()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
		term.OutputErrorAndExit("Error loading comments: %v", apiErr.Msg)
	}

	fmt.Print(lib.FormatComments(controller.Comments()))
}
