// Package mcp implements the Model Context Protocol (MCP) server for
// Repoindex.
//
// The server exposes two tools to AI coding assistants:
//   - index_repository: scan a repository and return its text content as a
//     single annotated document
//   - get_policy: report the fixed skip policy and truncation limit
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport. The server reads
// requests on stdin and writes responses on stdout; diagnostic events go to
// stderr so they never corrupt protocol frames.
//
// # Tool: index_repository
//
//	Request:
//	{
//	  "name": "index_repository",
//	  "arguments": {"path": "/path/to/repo"}
//	}
//
//	Response:
//	{
//	  "document": "### main.go\n...",
//	  "metrics": {
//	    "files_indexed": 42,
//	    "files_skipped": 7,
//	    "files_errors": 0,
//	    "char_count": 81234
//	  },
//	  "duration_ms": 12
//	}
//
// Each tool call is an independent run with its own correlation id; nothing
// is persisted between calls.
//
// # Tool: get_policy
//
// Takes no arguments and returns the pruned directory names, excluded
// extensions, excluded filenames, and the per-file character budget.
package mcp
