package term

import (
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

func ClearCurrentLine() {
	fmt.Print("\033[2K")
}

func MoveUpLines(numLines int) {
	fmt.Printf("\033[%dA", numLines)
}

func GetDivisionLine() string {
	terminalWidth, err := getTerminalWidth()
	if err != nil {
		log.Println("Error fetching terminal size:", err)
		terminalWidth = 50 // default width if unable to fetch width
	}
	return strings.Repeat("─", terminalWidth)
}

func getTerminalWidth() (int, error) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, err
	}
	return width, nil
}
