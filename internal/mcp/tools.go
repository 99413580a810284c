package mcp

import (
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolSendEmail is the single tool exposed by this server.
const ToolSendEmail = "send_email"

// sendEmailToolSchema returns the JSON schema for the send_email tool input.
// Defined manually so the descriptions match the documented tool surface.
func sendEmailToolSchema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"to": {
				"type": "string",
				"description": "Recipient email address(es), comma-separated for multiple"
			},
			"subject": {
				"type": "string",
				"description": "Email subject line"
			},
			"body": {
				"type": "string",
				"description": "Email body content (plain text or HTML)"
			},
			"isHtml": {
				"type": "boolean",
				"description": "Whether the body is HTML (default: false)"
			},
			"cc": {
				"type": "string",
				"description": "CC recipient(s), comma-separated for multiple"
			},
			"bcc": {
				"type": "string",
				"description": "BCC recipient(s), comma-separated for multiple"
			}
		},
		"required": ["to", "subject", "body"]
	}`)
}

// RegisterTools registers the send_email tool with the MCP server.
func RegisterTools(s *Server) {
	s.MCPServer().AddTool(&mcp.Tool{
		Name:        ToolSendEmail,
		Description: "Send an email via the configured ProtonMail SMTP account",
		InputSchema: sendEmailToolSchema(),
	}, s.handleSendEmail)
}
