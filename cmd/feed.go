package cmd

import (
	"fmt"

	"pulse-cli/api"
	"pulse-cli/auth"
	"pulse-cli/lib"
	"pulse-cli/term"

	"github.com/spf13/cobra"
)

var feedPage int
var feedAll bool

var feedCmd = &cobra.Command{
	Use:     "feed",
	Aliases: []string{"f"},
	Short:   "Browse the latest posts",
	Args:    cobra.NoArgs,
	Run:     feed,
}

func init() {
	RootCmd.AddCommand(feedCmd)

	feedCmd.Flags().IntVar(&feedPage, "page", 1, "Page to load")
	feedCmd.Flags().BoolVar(&feedAll, "all", false, "Keep loading pages until the feed is exhausted")
}

func feed(cmd *cobra.Command, args []string) {
	store := auth.MustResolveSession()

	controller := lib.NewFeedController(api.Client)
	defer controller.Close()

	term.StartSpinner("")
	apiErr := controller.LoadPage(feedPage, false)

	if apiErr == nil && feedAll {
		for controller.HasNext() {
			apiErr = controller.LoadMore()
			if apiErr != nil {
				break
			}
		}
	}
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
		term.OutputErrorAndExit("Error loading feed: %v", apiErr.Msg)
	}

	posts := controller.Posts()
	if len(posts) == 0 {
		fmt.Println("🤷‍♂️ No posts yet")
		fmt.Println()
		term.PrintCmds("", "post")
		return
	}

	fmt.Print(lib.FormatPostsTable(posts, store.Current().Id))

	if controller.HasNext() {
		fmt.Println()
		fmt.Printf("More posts available → pulse feed --page %d\n", controller.Page()+1)
	}
}
