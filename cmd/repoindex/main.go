// Command repoindex concatenates a repository's text files into a single
// annotated document.
//
// The index command prints the document on stdout; structured scan events
// go to stderr as newline-delimited JSON. The serve command exposes the
// same scan as an MCP stdio tool.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/repoindex-mcp/internal/indexer"
	"github.com/dshills/repoindex-mcp/internal/logging"
	"github.com/dshills/repoindex-mcp/internal/mcp"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var logLevel string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "repoindex",
		Short:        "Concatenate a repository's text files into one annotated document",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"minimum severity for diagnostic events (debug, info, warn, error)")
	root.AddCommand(newIndexCmd(), newServeCmd(), newVersionCmd())
	return root
}

// parseLevel resolves the --log-level flag for the diagnostic stream.
func parseLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	return level, nil
}

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index [path]",
		Short: "Scan a directory tree and print the assembled document to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			level, err := parseLevel()
			if err != nil {
				return err
			}

			// One process invocation is one run: the correlation id is
			// generated here and shared by every event the scan emits.
			log := logging.NewStderr(level, uuid.NewString())
			defer func() { _ = log.Sync() }()

			result, err := indexer.New(log).Index(path)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Document)
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel()
			if err != nil {
				return err
			}

			// stdout carries MCP protocol frames; events go to stderr.
			server, err := mcp.NewServer(os.Stderr, level)
			if err != nil {
				return fmt.Errorf("failed to create MCP server: %w", err)
			}

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			errChan := make(chan error, 1)
			go func() {
				errChan <- server.Serve(cmd.Context())
			}()

			select {
			case <-sigChan:
				return nil
			case err := <-errChan:
				return err
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Repoindex MCP Server\n")
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Build Time: %s\n", buildTime)
		},
	}
}
