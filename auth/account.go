package auth

import (
	"context"
	"fmt"

	shared "pulse-cli/shared"
	"pulse-cli/term"

	"github.com/fatih/color"
)

func PromptSignIn(store *SessionStore) error {
	email, err := term.GetRequiredUserStringInput("Your email:")
	if err != nil {
		return fmt.Errorf("error prompting email: %v", err)
	}

	password, err := term.GetUserPasswordInput("Your password:")
	if err != nil {
		return fmt.Errorf("error prompting password: %v", err)
	}

	term.StartSpinner("")
	user, apiErr := store.SignIn(context.Background(), shared.SignInRequest{
		Email:    email,
		Password: password,
	})
	term.StopSpinner()

	if apiErr != nil {
		if len(apiErr.Fields) > 0 {
			term.OutputSimpleError("Sign in failed")
			term.OutputFieldErrors(apiErr.Fields)
			return fmt.Errorf("sign in failed")
		}
		return fmt.Errorf("error signing in: %v", apiErr.Msg)
	}

	fmt.Println()
	color.New(color.Bold, term.ColorHiGreen).Printf("✅ Signed in as %s\n", user.Username)

	return nil
}

func PromptRegister(store *SessionStore) error {
	email, err := term.GetRequiredUserStringInput("Your email:")
	if err != nil {
		return fmt.Errorf("error prompting email: %v", err)
	}

	username, err := term.GetRequiredUserStringInput("Pick a username:")
	if err != nil {
		return fmt.Errorf("error prompting username: %v", err)
	}

	firstName, err := term.GetUserStringInput("First name:")
	if err != nil {
		return fmt.Errorf("error prompting first name: %v", err)
	}

	lastName, err := term.GetUserStringInput("Last name:")
	if err != nil {
		return fmt.Errorf("error prompting last name: %v", err)
	}

	password, err := term.GetUserPasswordInput("Pick a password:")
	if err != nil {
		return fmt.Errorf("error prompting password: %v", err)
	}

	// server requires 8+ chars; catching it here saves a round trip
	if len(password) < 8 {
		term.OutputFieldErrors(map[string]string{
			"password": "must be at least 8 characters",
		})
		return fmt.Errorf("registration failed")
	}

	term.StartSpinner("")
	user, apiErr := store.Register(context.Background(), shared.SignUpRequest{
		Email:     email,
		Username:  username,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	term.StopSpinner()

	if apiErr != nil {
		if len(apiErr.Fields) > 0 {
			term.OutputSimpleError("Registration failed")
			term.OutputFieldErrors(apiErr.Fields)
			return fmt.Errorf("registration failed")
		}
		return fmt.Errorf("error registering: %v", apiErr.Msg)
	}

	fmt.Println()
	color.New(color.Bold, term.ColorHiGreen).Printf("🎉 Welcome to Pulse, %s! You're signed in.\n", user.DisplayName())

	return nil
}
