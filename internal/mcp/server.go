package mcp

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/amotivv/protonmail-mcp/internal/config"
	"github.com/amotivv/protonmail-mcp/internal/smtp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is set by build flags, defaults to "dev" for development builds.
var Version = "dev"

// Server wraps the MCP SDK server around the mail transport client.
// It handles STDIO transport, the two log channels and tool registration.
type Server struct {
	mcpServer *mcp.Server
	cfg       config.Config
	sender    smtp.Sender

	// errLog is the always-on channel: errors and startup diagnostics,
	// written regardless of the DEBUG setting.
	errLog *log.Logger
	// debugLog is gated by cfg.Debug and discarded otherwise. Call sites
	// never branch on the flag themselves.
	debugLog *log.Logger
}

// ServerOptions configures the MCP server behavior.
type ServerOptions struct {
	// LogWriter overrides the log destination (for testing).
	// Defaults to stderr; stdout is reserved for the protocol stream.
	LogWriter io.Writer
}

// NewServer creates a ProtonMail MCP server bound to the given transport.
func NewServer(cfg config.Config, sender smtp.Sender, opts *ServerOptions) *Server {
	if opts == nil {
		opts = &ServerOptions{}
	}

	w := opts.LogWriter
	if w == nil {
		w = os.Stderr
	}

	errLog := log.New(w, "[protonmail-mcp] ", log.LstdFlags)

	debugDst := io.Discard
	if cfg.Debug {
		debugDst = w
	}
	debugLog := log.New(debugDst, "[protonmail-mcp] debug: ", log.LstdFlags)

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "protonmail-mcp",
		Version: Version,
	}, nil)

	return &Server{
		mcpServer: mcpServer,
		cfg:       cfg,
		sender:    sender,
		errLog:    errLog,
		debugLog:  debugLog,
	}
}

// Run starts the MCP server using STDIO transport and blocks until the
// client disconnects or ctx is cancelled. Tool calls naming anything other
// than a registered tool are rejected by the SDK dispatch with a JSON-RPC
// "method not found" error.
func (s *Server) Run(ctx context.Context) error {
	s.errLog.Println("starting MCP server on STDIO transport")
	s.debugLog.Printf("smtp server %s (secure=%v, user=%s)",
		s.cfg.Addr(), s.cfg.Secure, s.cfg.Username)

	if err := s.mcpServer.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// Context cancellation is normal shutdown, not an error.
		if err != context.Canceled {
			s.errLog.Printf("error: server stopped: %v", err)
		}
		return err
	}
	return nil
}

// MCPServer returns the underlying MCP SDK server for tool registration.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcpServer
}

// Logger returns the always-on error log channel.
func (s *Server) Logger() *log.Logger {
	return s.errLog
}
