package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/amotivv/protonmail-mcp/internal/config"
	"github.com/amotivv/protonmail-mcp/internal/smtp"
)

// checkTimeout bounds the connectivity probe.
const checkTimeout = 30 * time.Second

// CheckOptions configures the check command behavior.
type CheckOptions struct {
	// Verifier mocks the transport (nil = real client from env config).
	Verifier smtp.Verifier
	// Target names the server in the success output when Verifier is set.
	Target string
}

// Check implements the protonmail-mcp check command: it verifies that the
// configured SMTP server is reachable and the credentials are accepted.
// Returns the process exit code.
func Check(stdout, stderr io.Writer, opts CheckOptions) int {
	verifier := opts.Verifier
	target := opts.Target
	if verifier == nil {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		verifier = smtp.New(cfg)
		target = cfg.Addr()
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	if err := verifier.Verify(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "smtp connection ok (%s)\n", target)
	return 0
}
