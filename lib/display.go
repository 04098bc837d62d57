package lib

import (
	"fmt"
	"strconv"
	"strings"

	"pulse-cli/format"
	shared "pulse-cli/shared"
	"pulse-cli/term"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

func FormatPostsTable(posts []*shared.Post, currentUserId int64) string {
	builder := &strings.Builder{}

	table := tablewriter.NewWriter(builder)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Author", "Post", "Likes", "Comments", "Posted"})

	for _, post := range posts {
		author := post.Author.DisplayName()
		if post.Author.Id == currentUserId {
			author = color.New(color.Bold, term.ColorHiGreen).Sprint(author + " (you)")
		}

		likes := strconv.Itoa(post.LikesCount)
		if post.IsLiked {
			likes = color.New(term.ColorHiRed).Sprint("♥ " + likes)
		}

		row := []string{
			strconv.FormatInt(post.Id, 10),
			author,
			shared.Truncate(strings.ReplaceAll(post.Content, "\n", " "), 60),
			likes,
			strconv.Itoa(post.CommentsCount),
			format.Time(post.CreatedAt),
		}
		table.Append(row)
	}

	table.Render()

	return builder.String()
}

func FormatPost(post *shared.Post, currentUserId int64) string {
	builder := &strings.Builder{}

	author := post.Author.DisplayName()
	if post.Author.Id == currentUserId {
		author += " (you)"
	}

	color.New(color.Bold, term.ColorHiCyan).Fprintf(builder, "%s", author)
	fmt.Fprintf(builder, " @%s · %s\n", post.Author.Username, format.Time(post.CreatedAt))
	fmt.Fprintln(builder)
	fmt.Fprintln(builder, term.GetPlain(post.Content))
	fmt.Fprintln(builder)

	likeLabel := fmt.Sprintf("♡ %d", post.LikesCount)
	if post.IsLiked {
		likeLabel = color.New(term.ColorHiRed).Sprintf("♥ %d", post.LikesCount)
	}
	fmt.Fprintf(builder, "%s   💬 %d\n", likeLabel, post.CommentsCount)

	return builder.String()
}

func FormatComments(comments []*shared.Comment) string {
	if len(comments) == 0 {
		return "No comments yet\n"
	}

	builder := &strings.Builder{}

	table := tablewriter.NewWriter(builder)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Author", "Comment", "Posted"})

	for _, comment := range comments {
		row := []string{
			strconv.FormatInt(comment.Id, 10),
			comment.Author.DisplayName(),
			shared.Truncate(strings.ReplaceAll(comment.Content, "\n", " "), 60),
			format.Time(comment.CreatedAt),
		}
		table.Append(row)
	}

	table.Render()

	return builder.String()
}

func FormatProfile(profile *shared.Profile, currentUserId int64) string {
	builder := &strings.Builder{}

	name := profile.DisplayName()
	if profile.Id == currentUserId {
		name += " (you)"
	}

	// initials stand in for the avatar image a terminal can't show
	color.New(color.Bold, term.ColorHiCyan).Fprintf(builder, "(%s) ", profile.Initials())
	color.New(color.Bold, term.ColorHiMagenta).Fprintf(builder, "%s", name)
	fmt.Fprintf(builder, " @%s\n", profile.Username)
	fmt.Fprintf(builder, "Joined %s\n", format.Time(profile.CreatedAt))

	if profile.Bio != "" {
		fmt.Fprintln(builder)
		fmt.Fprintln(builder, term.GetPlain(profile.Bio))
	}

	if profile.AvatarUrl != "" {
		fmt.Fprintf(builder, "\nAvatar: %s\n", profile.AvatarUrl)
	}

	return builder.String()
}
