package term

import (
	"fmt"
	"os"
	"sort"
	"strings"

	shared "pulse-cli/shared"

	"github.com/fatih/color"
)

func OutputSimpleError(msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
}

func OutputErrorAndExit(msg string, args ...interface{}) {
	StopSpinner()

	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
	os.Exit(1)
}

// OutputFieldErrors prints a field → message map in a stable order. Local
// validation errors and server-reported field errors share this shape.
func OutputFieldErrors(fieldErrors map[string]string) {
	StopSpinner()

	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		label := color.New(color.Bold, ColorHiYellow).Sprint(strings.ReplaceAll(field, "_", " "))
		fmt.Fprintf(os.Stderr, "  %s → %s\n", label, fieldErrors[field])
	}
}

func HandleApiError(apiError *shared.ApiError) {
	if apiError.Type == shared.ApiErrorTypeInvalidSession {
		StopSpinner()
		OutputSimpleError("Your session has expired")
		fmt.Println()
		PrintCmds("", "sign-in")
		os.Exit(1)
	}

	if apiError.Type == shared.ApiErrorTypeForbidden {
		OutputErrorAndExit("Not allowed: %s", apiError.Msg)
	}

	if apiError.Type == shared.ApiErrorTypeValidation && len(apiError.Fields) > 0 {
		OutputSimpleError("Invalid request")
		OutputFieldErrors(apiError.Fields)
		os.Exit(1)
	}
}
