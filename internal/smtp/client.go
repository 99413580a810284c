// Package smtp wraps an authenticated SMTP connection to the ProtonMail
// bridge behind two operations: a startup reachability check and a
// single-message send. Connection pooling, TLS negotiation and the wire
// protocol itself are delegated to gomail.
package smtp

import (
	"context"
	"fmt"
	"time"

	"github.com/amotivv/protonmail-mcp/internal/config"
	"gopkg.in/gomail.v2"
)

// defaultTimeout bounds a single SMTP transaction when the caller's context
// carries no sooner deadline.
const defaultTimeout = 30 * time.Second

// Client owns the outbound connection profile for the process lifetime.
// It is safe for concurrent use: every operation dials a fresh session.
type Client struct {
	cfg config.Config
}

// New creates a transport client from the loaded configuration.
func New(cfg config.Config) *Client {
	return &Client{cfg: cfg}
}

var (
	_ Sender   = (*Client)(nil)
	_ Verifier = (*Client)(nil)
)

func (c *Client) dialer() *gomail.Dialer {
	d := gomail.NewDialer(c.cfg.Host, c.cfg.Port, c.cfg.Username, c.cfg.Password)
	// Secure selects implicit TLS. Otherwise gomail upgrades via STARTTLS
	// whenever the server offers it.
	d.SSL = c.cfg.Secure
	return d
}

// Verify dials the configured server and authenticates, then closes the
// session. Intended to run once at startup; a failure means the process
// has no business accepting tool calls.
func (c *Client) Verify(ctx context.Context) error {
	err := c.run(ctx, func() error {
		sc, err := c.dialer().Dial()
		if err != nil {
			return err
		}
		return sc.Close()
	})
	if err != nil {
		return fmt.Errorf("smtp connection verification failed for %s: %w", c.cfg.Addr(), err)
	}
	return nil
}

// Send builds the provider envelope for msg and performs the send.
// Authentication failures, rejected recipients, network errors and
// timeouts all surface uniformly as a single wrapped error.
func (c *Client) Send(ctx context.Context, msg *Message) error {
	m, err := c.build(msg)
	if err != nil {
		return err
	}
	if err := c.run(ctx, func() error { return c.dialer().DialAndSend(m) }); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// build assembles the gomail message. From is always the authenticated
// account; cc/bcc headers are set only when recipients are present.
func (c *Client) build(msg *Message) (*gomail.Message, error) {
	if len(msg.To) == 0 {
		return nil, fmt.Errorf("no recipients")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.cfg.Username)
	m.SetHeader("To", msg.To...)
	if len(msg.CC) > 0 {
		m.SetHeader("Cc", msg.CC...)
	}
	if len(msg.BCC) > 0 {
		m.SetHeader("Bcc", msg.BCC...)
	}
	m.SetHeader("Subject", msg.Subject)

	contentType := "text/plain"
	if msg.HTML {
		contentType = "text/html"
	}
	m.SetBody(contentType, msg.Body)

	return m, nil
}

// run executes fn bounded by the context deadline, falling back to
// defaultTimeout. gomail has no context support of its own, so the dial
// runs in a goroutine and is abandoned on timeout.
func (c *Client) run(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- fn() }()

	wait := defaultTimeout
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 && d < wait {
			wait = d
		}
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return context.DeadlineExceeded
	}
}
