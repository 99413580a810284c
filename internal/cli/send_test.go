package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/amotivv/protonmail-mcp/internal/smtp"
)

// fakeSender records sent messages and returns a configurable error.
type fakeSender struct {
	calls []*smtp.Message
	err   error
}

func (f *fakeSender) Send(ctx context.Context, msg *smtp.Message) error {
	f.calls = append(f.calls, msg)
	return f.err
}

func TestSendCommand_MissingTo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	sender := &fakeSender{}

	exitCode := Send(nil, &stdout, &stderr, SendOptions{
		Subject: "Hi",
		Body:    "Hello",
		Sender:  sender,
	})

	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
	if !strings.Contains(stderr.String(), "--to") {
		t.Errorf("stderr should name the missing flag, got %q", stderr.String())
	}
	if len(sender.calls) != 0 {
		t.Error("transport should not be invoked")
	}
}

func TestSendCommand_MissingSubject(t *testing.T) {
	var stdout, stderr bytes.Buffer
	sender := &fakeSender{}

	exitCode := Send(nil, &stdout, &stderr, SendOptions{
		To:     "a@example.com",
		Body:   "Hello",
		Sender: sender,
	})

	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
	if !strings.Contains(stderr.String(), "--subject") {
		t.Errorf("stderr should name the missing flag, got %q", stderr.String())
	}
}

func TestSendCommand_NoBody(t *testing.T) {
	var stdout, stderr bytes.Buffer
	sender := &fakeSender{}

	exitCode := Send(nil, &stdout, &stderr, SendOptions{
		To:      "a@example.com",
		Subject: "Hi",
		Sender:  sender,
	})

	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
	if !strings.Contains(stderr.String(), "body") {
		t.Errorf("stderr should mention the missing body, got %q", stderr.String())
	}
}

func TestSendCommand_BodyFromFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	sender := &fakeSender{}

	exitCode := Send(nil, &stdout, &stderr, SendOptions{
		To:      "a@example.com, b@example.com",
		Subject: "Hi",
		Body:    "Hello",
		CC:      "c@example.com",
		HTML:    true,
		Sender:  sender,
	})

	if exitCode != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %q)", exitCode, stderr.String())
	}
	if len(sender.calls) != 1 {
		t.Fatalf("transport invoked %d times, want 1", len(sender.calls))
	}

	msg := sender.calls[0]
	if len(msg.To) != 2 {
		t.Errorf("To = %v, want 2 recipients", msg.To)
	}
	if len(msg.CC) != 1 || msg.CC[0] != "c@example.com" {
		t.Errorf("CC = %v", msg.CC)
	}
	if !msg.HTML {
		t.Error("HTML flag not propagated")
	}
	if !strings.Contains(stdout.String(), "a@example.com") {
		t.Errorf("stdout should name recipients, got %q", stdout.String())
	}
}

func TestSendCommand_BodyFromStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	sender := &fakeSender{}

	exitCode := Send(strings.NewReader("Hello from stdin\n"), &stdout, &stderr, SendOptions{
		To:          "a@example.com",
		Subject:     "Hi",
		Sender:      sender,
		StdinIsPipe: true,
	})

	if exitCode != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %q)", exitCode, stderr.String())
	}
	if len(sender.calls) != 1 {
		t.Fatalf("transport invoked %d times, want 1", len(sender.calls))
	}
	if got := sender.calls[0].Body; got != "Hello from stdin" {
		t.Errorf("Body = %q, want trailing newline trimmed", got)
	}
}

func TestSendCommand_FlagBodyWinsOverStdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	sender := &fakeSender{}

	exitCode := Send(strings.NewReader("piped\n"), &stdout, &stderr, SendOptions{
		To:          "a@example.com",
		Subject:     "Hi",
		Body:        "from flag",
		Sender:      sender,
		StdinIsPipe: true,
	})

	if exitCode != 0 {
		t.Fatalf("exit code = %d, want 0", exitCode)
	}
	if got := sender.calls[0].Body; got != "from flag" {
		t.Errorf("Body = %q, want flag value", got)
	}
}

func TestSendCommand_TransportError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	sender := &fakeSender{err: errors.New("connection refused")}

	exitCode := Send(nil, &stdout, &stderr, SendOptions{
		To:      "a@example.com",
		Subject: "Hi",
		Body:    "Hello",
		Sender:  sender,
	})

	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
	if !strings.Contains(stderr.String(), "connection refused") {
		t.Errorf("stderr should carry the transport error, got %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty on failure, got %q", stdout.String())
	}
}
