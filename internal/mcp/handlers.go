package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/amotivv/protonmail-mcp/internal/smtp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// toolResult shapes a text payload as an MCP tool result.
func toolResult(text string, isErr bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: isErr,
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// handleSendEmail is the MCP handler for the send_email tool.
// Validation runs before any network activity; a send failure is logged
// unconditionally and surfaced as a uniform internal error. Per-call errors
// always resolve to an IsError result, never to a Go error, so one bad call
// cannot take the server down.
func (s *Server) handleSendEmail(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	msg, err := parseSendEmailArgs(rawArguments(req))
	if err != nil {
		s.debugLog.Printf("send_email rejected: %v", err)
		return toolResult(fmt.Sprintf("invalid parameters: %v", err), true), nil
	}

	s.debugLog.Printf("sending email to %s (subject %q, html=%v)",
		strings.Join(msg.To, ", "), msg.Subject, msg.HTML)

	if err := s.sender.Send(ctx, msg); err != nil {
		// Always logged, independent of the DEBUG setting.
		s.errLog.Printf("error: send_email: %v", err)
		return toolResult(fmt.Sprintf("internal error: %v", err), true), nil
	}

	return toolResult(confirmation(msg), false), nil
}

// rawArguments extracts the raw argument bag from a tool call request.
func rawArguments(req *mcp.CallToolRequest) json.RawMessage {
	if req == nil || req.Params == nil {
		return nil
	}
	return req.Params.Arguments
}

// parseSendEmailArgs validates the loosely-typed argument bag and builds the
// outbound envelope. to, subject and body must be present, string-typed and
// non-empty; the first violation aborts. isHtml counts only when it is the
// JSON boolean true. cc/bcc are taken only when string-typed and are
// silently dropped otherwise.
func parseSendEmailArgs(args json.RawMessage) (*smtp.Message, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("arguments must be an object")
	}

	var bag map[string]any
	if err := json.Unmarshal(args, &bag); err != nil || bag == nil {
		return nil, fmt.Errorf("arguments must be an object")
	}

	to, err := requireString(bag, "to")
	if err != nil {
		return nil, err
	}
	subject, err := requireString(bag, "subject")
	if err != nil {
		return nil, err
	}
	body, err := requireString(bag, "body")
	if err != nil {
		return nil, err
	}

	msg := &smtp.Message{
		To:      smtp.SplitAddresses(to),
		Subject: subject,
		Body:    body,
	}

	if v, ok := bag["isHtml"].(bool); ok {
		msg.HTML = v
	}
	if cc, ok := bag["cc"].(string); ok && cc != "" {
		msg.CC = smtp.SplitAddresses(cc)
	}
	if bcc, ok := bag["bcc"].(string); ok && bcc != "" {
		msg.BCC = smtp.SplitAddresses(bcc)
	}

	return msg, nil
}

// requireString fetches a mandatory string field from the argument bag.
func requireString(bag map[string]any, field string) (string, error) {
	v, ok := bag[field]
	if !ok {
		return "", fmt.Errorf("missing required field %q", field)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string", field)
	}
	if s == "" {
		return "", fmt.Errorf("field %q must not be empty", field)
	}
	return s, nil
}

// confirmation builds the human-readable success text, naming the primary
// recipients and any cc/bcc recipients.
func confirmation(msg *smtp.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Email sent successfully to %s", strings.Join(msg.To, ", "))
	if len(msg.CC) > 0 {
		fmt.Fprintf(&b, ", cc: %s", strings.Join(msg.CC, ", "))
	}
	if len(msg.BCC) > 0 {
		fmt.Fprintf(&b, ", bcc: %s", strings.Join(msg.BCC, ", "))
	}
	return b.String()
}
