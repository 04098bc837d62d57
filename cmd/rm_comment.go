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

var rmCommentCmd = &cobra.Command{
	Use:   "rm-comment [comment-id]",
	Short: "Delete one of your comments",
	Args:  cobra.ExactArgs(1),
	Run:   rmComment,
}

func init() {
	RootCmd.AddCommand(rmCommentCmd)
}

func rmComment(cmd *cobra.Command, args []string) {
	auth.MustResolveSession()

	commentId, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		term.OutputErrorAndExit("Invalid comment id: %s", args[0])
	}

	confirmed, err := term.ConfirmYesNo("Delete comment %d?", commentId)
	if err != nil {
		term.OutputErrorAndExit("Error getting confirmation: %v", err)
	}
	if !confirmed {
		fmt.Println("Comment not deleted")
		return
	}

	controller := lib.NewCommentController(api.Client, 0, nil, nil)
	defer controller.Close()

	term.StartSpinner("")
	apiErr := controller.Delete(commentId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
		term.OutputErrorAndExit("Error deleting comment: %v", apiErr.Msg)
	}

	fmt.Printf("🗑️  Deleted comment %d\n", commentId)
}
