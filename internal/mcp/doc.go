// Package mcp provides an MCP (Model Context Protocol) server that exposes
// email sending through the ProtonMail SMTP bridge.
//
// The server exposes a single tool:
//
//   - send_email: send an email with to/subject/body plus optional
//     isHtml, cc and bcc fields
//
// It uses the official MCP Go SDK from github.com/modelcontextprotocol/go-sdk
// and communicates over STDIO transport, making it suitable for integration
// with AI assistants and IDE extensions that support the MCP protocol.
//
// Usage:
//
//	protonmail-mcp serve
package mcp
