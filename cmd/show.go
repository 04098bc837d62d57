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

var showCmd = &cobra.Command{
	Use:   "show [post-id]",
	Short: "Show a single post with its comments",
	Args:  cobra.ExactArgs(1),
	Run:   show,
}

func init() {
	RootCmd.AddCommand(showCmd)
}

func show(cmd *cobra.Command, args []string) {
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

	controller := lib.NewPostController(api.Client, post, nil, nil)
	defer controller.Close()

	term.StartSpinner("")
	comments, apiErr := controller.Comments()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
		term.OutputErrorAndExit("Error loading comments: %v", apiErr.Msg)
	}

	fmt.Print(lib.FormatPost(controller.Post(), store.Current().Id))
	fmt.Println()
	fmt.Print(lib.FormatComments(comments))
}
