package cli

import (
	"os"
)

// IsStdinPipe returns true if stdin is a pipe or redirect (not a terminal).
// Used to detect when the message body is being piped into the send command
// instead of passed as a flag.
func IsStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
