package cmd

import (
	"fmt"

	"pulse-cli/api"
	"pulse-cli/auth"
	"pulse-cli/lib"
	shared "pulse-cli/shared"
	"pulse-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var editFirstName string
var editLastName string
var editBio string
var editAvatarUrl string

var editProfileCmd = &cobra.Command{
	Use:     "edit-profile",
	Aliases: []string{"ep"},
	Short:   "Edit your profile",
	Args:    cobra.NoArgs,
	Run:     editProfile,
}

func init() {
	RootCmd.AddCommand(editProfileCmd)

	editProfileCmd.Flags().StringVar(&editFirstName, "first-name", "", "New first name")
	editProfileCmd.Flags().StringVar(&editLastName, "last-name", "", "New last name")
	editProfileCmd.Flags().StringVar(&editBio, "bio", "", "New bio (up to 500 characters)")
	editProfileCmd.Flags().StringVar(&editAvatarUrl, "avatar-url", "", "New avatar URL (http or https)")
}

func editProfile(cmd *cobra.Command, args []string) {
	store := auth.MustResolveSession()
	user := store.Current()

	req := shared.UpdateProfileRequest{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Bio:       user.Bio,
		AvatarUrl: user.AvatarUrl,
	}

	// flags override; anything not flagged is prompted with the current
	// value as the default
	interactive := !cmd.Flags().Changed("first-name") &&
		!cmd.Flags().Changed("last-name") &&
		!cmd.Flags().Changed("bio") &&
		!cmd.Flags().Changed("avatar-url")

	if interactive {
		var err error
		req.FirstName, err = term.GetUserStringInputWithDefault("First name:", user.FirstName)
		if err != nil {
			term.OutputErrorAndExit("Error getting first name: %v", err)
		}
		req.LastName, err = term.GetUserStringInputWithDefault("Last name:", user.LastName)
		if err != nil {
			term.OutputErrorAndExit("Error getting last name: %v", err)
		}
		req.Bio, err = term.GetUserStringInputWithDefault("Bio:", user.Bio)
		if err != nil {
			term.OutputErrorAndExit("Error getting bio: %v", err)
		}
		req.AvatarUrl, err = term.GetUserStringInputWithDefault("Avatar URL:", user.AvatarUrl)
		if err != nil {
			term.OutputErrorAndExit("Error getting avatar URL: %v", err)
		}
	} else {
		if cmd.Flags().Changed("first-name") {
			req.FirstName = editFirstName
		}
		if cmd.Flags().Changed("last-name") {
			req.LastName = editLastName
		}
		if cmd.Flags().Changed("bio") {
			req.Bio = editBio
		}
		if cmd.Flags().Changed("avatar-url") {
			req.AvatarUrl = editAvatarUrl
		}
	}

	controller := lib.NewProfileController(api.Client, store)
	defer controller.Close()

	term.StartSpinner("")
	updated, fieldErrors, apiErr := controller.UpdateProfile(req)
	term.StopSpinner()

	if len(fieldErrors) > 0 {
		term.OutputSimpleError("Profile not updated")
		term.OutputFieldErrors(fieldErrors)
		return
	}

	if apiErr != nil {
		term.HandleApiError(apiErr)
		term.OutputErrorAndExit("Error updating profile: %v", apiErr.Msg)
	}

	color.New(color.Bold, term.ColorHiGreen).Println("✅ Profile updated")
	fmt.Printf("%s @%s\n", updated.DisplayName(), updated.Username)
}
