package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var CmdDesc = map[string][2]string{
	"feed":         {"f", "browse the latest posts"},
	"post":         {"p", "publish a new post"},
	"show":         {"", "show a single post with its comments"},
	"like":         {"", "like or unlike a post"},
	"comment":      {"cm", "comment on a post"},
	"comments":     {"cms", "list comments on a post"},
	"rm":           {"", "delete one of your posts"},
	"rm-comment":   {"", "delete one of your comments"},
	"profile":      {"pr", "show a user profile with their posts"},
	"edit-profile": {"ep", "edit your profile"},
	"whoami":       {"", "show who you're signed in as"},
	"sign-in":      {"", "sign in to an existing account"},
	"sign-out":     {"", "sign out of the current account"},
	"register":     {"", "create a new account"},
}

func PrintCmds(prefix string, cmds ...string) {
	printCmds(os.Stderr, prefix, []color.Attribute{color.Bold, color.FgHiWhite, color.BgCyan}, cmds...)
}

func printCmds(w io.Writer, prefix string, colors []color.Attribute, cmds ...string) {
	for _, cmd := range cmds {
		config, ok := CmdDesc[cmd]
		if !ok {
			continue
		}

		alias := config[0]
		desc := config[1]
		if alias != "" {
			containsFull := strings.Contains(cmd, alias)

			if containsFull {
				cmd = strings.Replace(cmd, alias, fmt.Sprintf("(%s)", alias), 1)
			} else {
				cmd = fmt.Sprintf("%s (%s)", cmd, alias)
			}
		}
		styled := color.New(colors...).Sprintf(" pulse %s ", cmd)

		fmt.Fprintf(w, "%s%s 👉 %s\n", prefix, styled, desc)
	}
}
