package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeVerifier returns a configurable error from Verify.
type fakeVerifier struct {
	err    error
	called bool
}

func (f *fakeVerifier) Verify(ctx context.Context) error {
	f.called = true
	return f.err
}

func TestCheckCommand_Success(t *testing.T) {
	var stdout, stderr bytes.Buffer
	verifier := &fakeVerifier{}

	exitCode := Check(&stdout, &stderr, CheckOptions{
		Verifier: verifier,
		Target:   "smtp.protonmail.ch:587",
	})

	if exitCode != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %q)", exitCode, stderr.String())
	}
	if !verifier.called {
		t.Error("Verify was not called")
	}
	out := stdout.String()
	if !strings.Contains(out, "smtp connection ok") {
		t.Errorf("stdout = %q, want success message", out)
	}
	if !strings.Contains(out, "smtp.protonmail.ch:587") {
		t.Errorf("stdout should name the target, got %q", out)
	}
}

func TestCheckCommand_Failure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	verifier := &fakeVerifier{err: errors.New("535 authentication failed")}

	exitCode := Check(&stdout, &stderr, CheckOptions{Verifier: verifier})

	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
	if !strings.Contains(stderr.String(), "535 authentication failed") {
		t.Errorf("stderr should carry the verification error, got %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty on failure, got %q", stdout.String())
	}
}
