package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shiftbridge/swapboard/pkg/clients/apiclient"
	"github.com/shiftbridge/swapboard/pkg/core/services"
	"github.com/shiftbridge/swapboard/pkg/session"
)

// parseWhen accepts a bare date or a date with time, in local time
func parseWhen(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse %q, use YYYY-MM-DD or \"YYYY-MM-DD HH:MM\"", value)
}

// parseOptionalWhen is parseWhen for flags that may be empty
func parseOptionalWhen(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	return parseWhen(value)
}

// promptLine prints a label and reads one line from stdin
func promptLine(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// userMessage maps the error taxonomy onto the text shown to the user.
// Commands print this and still return the original error so the exit
// code reflects the failure.
func userMessage(err error) string {
	if errors.Is(err, session.ErrNotSignedIn) {
		return "You are not signed in - run 'swapboard login <email>' first."
	}
	if errors.Is(err, apiclient.ErrSessionExpired) {
		return "Your session has expired - please sign in again."
	}

	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.BestMessage()
	}

	var connErr *apiclient.ConnectivityError
	if errors.As(err, &connErr) {
		return "Request failed due to a network error - please try again."
	}

	return err.Error()
}

// fail prints the user-facing message and returns the error for the exit code
func fail(err error) error {
	fmt.Printf("✗ %s\n", userMessage(err))
	return err
}
