package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/amotivv/protonmail-mcp/internal/cli"
	"github.com/amotivv/protonmail-mcp/internal/config"
	"github.com/amotivv/protonmail-mcp/internal/mcp"
	"github.com/amotivv/protonmail-mcp/internal/smtp"

	"github.com/peterbourgon/ff/v3/ffcli"
)

// version is set by build flags, defaults to "dev" for development builds.
var version = "dev"

func main() {
	// Root command
	rootFlagSet := flag.NewFlagSet("protonmail-mcp", flag.ContinueOnError)

	// Serve command (no flags)
	serveFlagSet := flag.NewFlagSet("protonmail-mcp serve", flag.ContinueOnError)

	serveCmd := &ffcli.Command{
		Name:       "serve",
		ShortUsage: "protonmail-mcp serve",
		ShortHelp:  "Start MCP server (STDIO transport)",
		LongHelp: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server exposes one tool:
  send_email   Send an email via the configured ProtonMail SMTP account

Configuration is read from the environment (a .env file is honored):
  PROTONMAIL_USERNAME   login identity for SMTP auth (required)
  PROTONMAIL_PASSWORD   SMTP bridge password (required)
  PROTONMAIL_HOST       SMTP server (default: smtp.protonmail.ch)
  PROTONMAIL_PORT       SMTP port (default: 587)
  PROTONMAIL_SECURE     use implicit TLS (default: false)
  DEBUG                 verbose diagnostics; errors log regardless

The SMTP connection is verified before the server accepts any tool call.
All diagnostics go to stderr; stdout carries the protocol stream.

Exit codes:
  0  Normal shutdown
  1  Missing configuration or SMTP connection verification failed

Examples:
  protonmail-mcp serve`,
		FlagSet: serveFlagSet,
		Exec: func(ctx context.Context, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}

			client := smtp.New(cfg)
			server := mcp.NewServer(cfg, client, nil)
			mcp.RegisterTools(server)

			// No point serving tool calls the transport cannot fulfill.
			if err := client.Verify(ctx); err != nil {
				server.Logger().Printf("error: %v", err)
				os.Exit(1)
			}
			server.Logger().Printf("smtp connection verified (%s)", cfg.Addr())

			// Run the server (blocks until shutdown)
			if err := server.Run(ctx); err != nil {
				// Context cancellation is normal shutdown
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil
				}
				os.Exit(1)
			}
			return nil
		},
	}

	// Send command flags
	sendFlagSet := flag.NewFlagSet("protonmail-mcp send", flag.ContinueOnError)
	var sendOpts cli.SendOptions
	sendFlagSet.StringVar(&sendOpts.To, "to", "", "recipient address(es), comma-separated")
	sendFlagSet.StringVar(&sendOpts.Subject, "subject", "", "subject line")
	sendFlagSet.StringVar(&sendOpts.Body, "body", "", "body content (or pipe via stdin)")
	sendFlagSet.StringVar(&sendOpts.CC, "cc", "", "cc address(es), comma-separated")
	sendFlagSet.StringVar(&sendOpts.BCC, "bcc", "", "bcc address(es), comma-separated")
	sendFlagSet.BoolVar(&sendOpts.HTML, "html", false, "send body as HTML")

	sendCmd := &ffcli.Command{
		Name:       "send",
		ShortUsage: "protonmail-mcp send --to <addr> --subject <subject> [--body <body>]",
		ShortHelp:  "Send a single email",
		LongHelp: `Send a single email through the configured ProtonMail SMTP account.

The body can be given with --body or piped via stdin.

Examples:
  protonmail-mcp send --to a@example.com --subject "Hi" --body "Hello"
  cat report.txt | protonmail-mcp send --to a@example.com --subject "Report"
  protonmail-mcp send --to a@example.com --cc b@example.com --subject "Hi" --body "<p>Hello</p>" --html`,
		FlagSet: sendFlagSet,
		Exec: func(ctx context.Context, args []string) error {
			exitCode := cli.Send(os.Stdin, os.Stdout, os.Stderr, sendOpts)
			if exitCode != 0 {
				os.Exit(exitCode)
			}
			return nil
		},
	}

	// Check command (no flags)
	checkFlagSet := flag.NewFlagSet("protonmail-mcp check", flag.ContinueOnError)

	checkCmd := &ffcli.Command{
		Name:       "check",
		ShortUsage: "protonmail-mcp check",
		ShortHelp:  "Verify SMTP connectivity and credentials",
		LongHelp: `Dial the configured SMTP server and authenticate, then disconnect.

Exit codes:
  0  Connection and authentication succeeded
  1  Missing configuration or connection failed

Examples:
  protonmail-mcp check`,
		FlagSet: checkFlagSet,
		Exec: func(ctx context.Context, args []string) error {
			exitCode := cli.Check(os.Stdout, os.Stderr, cli.CheckOptions{})
			if exitCode != 0 {
				os.Exit(exitCode)
			}
			return nil
		},
	}

	// Version command (no flags)
	versionFlagSet := flag.NewFlagSet("protonmail-mcp version", flag.ContinueOnError)

	versionCmd := &ffcli.Command{
		Name:       "version",
		ShortUsage: "protonmail-mcp version",
		ShortHelp:  "Show version information",
		FlagSet:    versionFlagSet,
		Exec: func(ctx context.Context, args []string) error {
			fmt.Printf("protonmail-mcp version %s\n", version)
			return nil
		},
	}

	// Root command help text
	rootHelp := `protonmail-mcp - Email sending for AI assistants via ProtonMail SMTP

Exposes a send_email tool over the Model Context Protocol (STDIO
transport), backed by an authenticated ProtonMail SMTP bridge connection.

Commands:
  serve     Start MCP server (STDIO transport)
  send      Send a single email from the command line
  check     Verify SMTP connectivity and credentials
  version   Show version information

Use "protonmail-mcp <command> --help" for more information about a command.`

	// Root command
	root := &ffcli.Command{
		ShortUsage:  "protonmail-mcp <command> [flags]",
		ShortHelp:   "Email sending for AI assistants via ProtonMail SMTP",
		LongHelp:    rootHelp,
		FlagSet:     rootFlagSet,
		Subcommands: []*ffcli.Command{serveCmd, sendCmd, checkCmd, versionCmd},
		Exec: func(ctx context.Context, args []string) error {
			// No subcommand provided, show help
			fmt.Fprintln(os.Stderr, rootHelp)
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, "Run 'protonmail-mcp <command> --help' for usage.")
			os.Exit(1)
			return nil
		},
	}

	if err := root.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
