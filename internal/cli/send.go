// Package cli implements the one-shot commands of the protonmail-mcp
// binary: sending a single email and checking SMTP connectivity without
// going through an MCP host.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amotivv/protonmail-mcp/internal/config"
	"github.com/amotivv/protonmail-mcp/internal/smtp"
)

// sendTimeout bounds a one-shot CLI send.
const sendTimeout = 60 * time.Second

// SendOptions configures the send command behavior.
// Sender and StdinIsPipe exist so tests can mock the transport and the
// terminal detection.
type SendOptions struct {
	To      string // comma-separated recipients (required)
	Subject string // subject line (required)
	Body    string // body; falls back to piped stdin when empty
	CC      string // optional comma-separated cc recipients
	BCC     string // optional comma-separated bcc recipients
	HTML    bool   // send body as text/html

	Sender      smtp.Sender // mock transport (nil = real client from env)
	StdinIsPipe bool        // mock pipe detection (used when Sender is set)
}

// Send implements the protonmail-mcp send command. The body may be passed
// via the --body flag or piped through stdin. Returns the process exit code.
func Send(stdin io.Reader, stdout, stderr io.Writer, opts SendOptions) int {
	if opts.To == "" {
		fmt.Fprintln(stderr, "error: missing required flag: --to")
		return 1
	}
	if opts.Subject == "" {
		fmt.Fprintln(stderr, "error: missing required flag: --subject")
		return 1
	}

	isPipe := opts.StdinIsPipe
	if opts.Sender == nil {
		isPipe = IsStdinPipe()
	}

	body := opts.Body
	if body == "" && isPipe && stdin != nil {
		content, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "error: failed to read stdin: %v\n", err)
			return 1
		}
		// Trim the trailing newline only; internal newlines belong to the body.
		body = strings.TrimSuffix(string(content), "\n")
	}
	if body == "" {
		fmt.Fprintln(stderr, "error: no body provided (use --body or pipe via stdin)")
		return 1
	}

	sender := opts.Sender
	if sender == nil {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		sender = smtp.New(cfg)
	}

	msg := &smtp.Message{
		To:      smtp.SplitAddresses(opts.To),
		CC:      smtp.SplitAddresses(opts.CC),
		BCC:     smtp.SplitAddresses(opts.BCC),
		Subject: opts.Subject,
		Body:    body,
		HTML:    opts.HTML,
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := sender.Send(ctx, msg); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Email sent to %s\n", strings.Join(msg.To, ", "))
	return 0
}
