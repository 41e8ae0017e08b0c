package mcp

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/repoindex-mcp/internal/indexer"
	"github.com/dshills/repoindex-mcp/internal/logging"
)

const (
	// ServerName is the MCP server name
	ServerName = "repoindex-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp      *server.MCPServer
	logW     io.Writer
	logLevel zapcore.Level
}

// NewServer creates a new MCP server instance. Diagnostic events from tool
// calls are written to logW (typically stderr; stdout carries the protocol).
func NewServer(logW io.Writer, logLevel zapcore.Level) (*Server, error) {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:      mcpServer,
		logW:     logW,
		logLevel: logLevel,
	}

	// Register tools
	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	// Register index_repository tool
	s.mcp.AddTool(indexRepositoryTool(), s.handleIndexRepository)

	// Register get_policy tool
	s.mcp.AddTool(getPolicyTool(), s.handleGetPolicy)

	return nil
}

// newRun builds an indexer for one tool call. Every call is an independent
// run with a fresh correlation id.
func (s *Server) newRun() *indexer.Indexer {
	log := logging.New(s.logW, s.logLevel, uuid.NewString())
	return indexer.New(log)
}
