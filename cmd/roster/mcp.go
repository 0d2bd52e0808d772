package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/jacksmith/roster/internal/mcptools"
	"github.com/jacksmith/roster/internal/roster"
)

const mcpInstructions = `Tools for an in-memory employee roster.
add_employee appends a record; every field must be filled in and ids are unique.
To change or remove a record, call select_employee first, then modify_employee or delete_employee.
Every successful change clears the selection. Nothing is persisted.`

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the roster as MCP tools over stdio",
	Long: `Run an MCP server on standard input and output.

The server holds one empty roster for its lifetime and exposes the form
actions as tools: add_employee, modify_employee, delete_employee,
select_employee, find_employee and list_employees.

Use --verbose to log each tool call to stderr.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mcpServer := server.NewMCPServer(
		"roster",
		Version,
		server.WithInstructions(mcpInstructions),
		server.WithToolCapabilities(false),
	)
	mcptools.Register(mcpServer, roster.New(), cfg, logger)

	logger.Println("Stdio ready")
	stdioSrv := server.NewStdioServer(mcpServer)
	stdioSrv.SetErrorLogger(logger)
	if err := stdioSrv.Listen(ctx, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Println("Stdio server stopped")
	return nil
}
