package smtp

import (
	"context"
	"strings"
)

// Message is a single outbound mail envelope. It is constructed from one
// tool call or CLI invocation and discarded once the send resolves.
type Message struct {
	// To holds the primary recipients. Must be non-empty.
	To []string
	// CC and BCC are optional carbon-copy recipient lists.
	CC  []string
	BCC []string
	// Subject is the message subject line.
	Subject string
	// Body is the message content, plain text or HTML per the HTML flag.
	Body string
	// HTML selects the text/html content type instead of text/plain.
	HTML bool
}

// Sender delivers one outbound message. The transport client implements it;
// handlers and CLI commands accept it so tests can substitute a fake.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// Verifier confirms the configured SMTP server is reachable and accepts
// the configured credentials.
type Verifier interface {
	Verify(ctx context.Context) error
}

// SplitAddresses splits a comma-separated address list into individual
// addresses, trimming whitespace and dropping empty entries.
func SplitAddresses(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
