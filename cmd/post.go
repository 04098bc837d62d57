package cmd

import (
	"fmt"
	"strings"

	"pulse-cli/api"
	"pulse-cli/auth"
	"pulse-cli/lib"
	"pulse-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:     "post [content]",
	Aliases: []string{"p"},
	Short:   "Publish a new post",
	Run:     post,
}

func init() {
	RootCmd.AddCommand(postCmd)
}

func post(cmd *cobra.Command, args []string) {
	auth.MustResolveSession()

	content := strings.Join(args, " ")

	if strings.TrimSpace(content) == "" {
		var err error
		content, err = term.GetUserStringInput("What's new?")
		if err != nil {
			term.OutputErrorAndExit("Error getting post content: %v", err)
		}
	}

	controller := lib.NewFeedController(api.Client)
	defer controller.Close()

	term.StartSpinner("")
	created, apiErr := controller.CreatePost(content)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
		term.OutputErrorAndExit("Error creating post: %v", apiErr.Msg)
	}

	if created == nil {
		fmt.Println("🤷‍♂️ Nothing to publish")
		return
	}

	color.New(color.Bold, term.ColorHiGreen).Printf("✅ Published post %d\n", created.Id)
}
