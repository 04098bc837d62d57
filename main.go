package main

import (
	"log"
	"os"

	"pulse-cli/api"
	"pulse-cli/auth"
	"pulse-cli/cmd"
	"pulse-cli/fs"
	"pulse-cli/term"
)

func init() {
	// inter-package dependency injections to avoid circular imports
	auth.SetApiClient(api.Client)

	store, err := auth.NewPersistentSessionStore(api.Client, fs.HomeAuthPath)
	if err != nil {
		term.OutputErrorAndExit("Error loading session: %v", err)
	}
	auth.SetActive(store)

	// set up a file logger
	file, err := os.OpenFile(fs.HomeLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		term.OutputErrorAndExit("Error opening log file: %v", err)
	}

	// Set the output of the logger to the file
	log.SetOutput(file)
}

func main() {
	cmd.Execute()
}
