// Package types provides shared type definitions for the Repoindex MCP server.
//
// This package defines the domain types used across the scan pipeline:
// skip reasons, index entries, and the per-run metrics record.
//
// # Core Types
//
// Entry represents one indexed file, pairing the path relative to the scan
// root with the (possibly truncated) file content:
//
//	entry := types.Entry{
//	    RelPath: "internal/server/server.go",
//	    Content: fileText,
//	}
//	section := entry.Section() // "### internal/server/server.go\n..."
//
// Metrics is the counter record for a single scan. It has exactly one
// writer (the orchestrator) and is read once to build the summary event:
//
//	metrics.Indexed   // files whose content entered the document
//	metrics.Skipped   // files excluded by the skip policy
//	metrics.Errors    // files that failed to read or decode
//	metrics.CharCount // character count of the assembled document
//
// # Skip Reasons
//
// SkipReason identifies which policy rule excluded a file. The rules are
// checked in a fixed order (extension, exact filename, content-type guess),
// and the first match wins, so every skipped file carries exactly one reason.
package types
