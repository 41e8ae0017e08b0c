package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// indexRepositoryTool returns the tool definition for index_repository
func indexRepositoryTool() mcp.Tool {
	return mcp.Tool{
		Name:        "index_repository",
		Description: "Scan a repository tree and return its text content as one annotated document",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the repository root",
				},
			},
			Required: []string{"path"},
		},
	}
}

// getPolicyTool returns the tool definition for get_policy
func getPolicyTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_policy",
		Description: "Report the fixed skip policy and per-file character budget used by scans",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
