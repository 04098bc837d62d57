package fs

import (
	"os"
	"path/filepath"

	"pulse-cli/term"
)

var HomeDir string
var HomePulseDir string
var HomeAuthPath string
var HomeLogPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		term.OutputErrorAndExit("Couldn't find home dir: %v", err.Error())
	}
	HomeDir = home

	if os.Getenv("PULSE_ENV") == "development" {
		HomePulseDir = filepath.Join(home, ".pulse-home-dev")
	} else {
		HomePulseDir = filepath.Join(home, ".pulse-home")
	}

	err = os.MkdirAll(HomePulseDir, os.ModePerm)
	if err != nil {
		term.OutputErrorAndExit(err.Error())
	}

	HomeAuthPath = filepath.Join(HomePulseDir, "auth.json")
	HomeLogPath = filepath.Join(HomePulseDir, "pulse.log")
}
