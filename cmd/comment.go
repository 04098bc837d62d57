package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"pulse-cli/api"
	"pulse-cli/auth"
	"pulse-cli/lib"
	"pulse-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:     "comment [post-id] [content]",
	Aliases: []string{"cm"},
	Short:   "Comment on a post",
	Args:    cobra.MinimumNArgs(1),
	Run:     comment,
}

func init() {
	RootCmd.AddCommand(commentCmd)
}

func comment(cmd *cobra.Command, args []string) {
	auth.MustResolveSession()

	postId, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		term.OutputErrorAndExit("Invalid post id: %s", args[0])
	}

	content := strings.Join(args[1:], " ")
	if strings.TrimSpace(content) == "" {
		content, err = term.GetUserStringInput("Your comment:")
		if err != nil {
			term.OutputErrorAndExit("Error getting comment content: %v", err)
		}
	}

	term.StartSpinner("")
	post, apiErr := api.Client.GetPost(cmd.Context(), postId)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
		term.OutputErrorAndExit("Error loading post: %v", apiErr.Msg)
	}

	postController := lib.NewPostController(api.Client, post, nil, nil)
	defer postController.Close()

	controller := lib.NewCommentController(api.Client, postId, postController.HandleCommentCreated, postController.HandleCommentDeleted)
	defer controller.Close()

	term.StartSpinner("")
	created, apiErr := controller.Create(content)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
		term.OutputErrorAndExit("Error creating comment: %v", apiErr.Msg)
	}

	if created == nil {
		fmt.Println("🤷‍♂️ Nothing to say")
		return
	}

	color.New(color.Bold, term.ColorHiGreen).Printf("✅ Commented on post %d", postId)
	fmt.Printf(" (%d comments)\n", postController.Post().CommentsCount)
}
