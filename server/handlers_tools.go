/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/PivotLLM/Dossier/global"
)

// ListFilesInput defines the input schema for the list-files tool
type ListFilesInput struct {
	Recursive bool `json:"recursive,omitempty" jsonschema:"List files in subdirectories recursively (default: false)"`
}

// ReadFileInput defines the input schema for the read-file tool
type ReadFileInput struct {
	Path string `json:"path" jsonschema:"Path to the file, relative to the base directory"`
}

// registerTools registers all MCP tools
func (s *Server) registerTools() error {
	listFilesSchema, err := jsonschema.For[ListFilesInput](nil)
	if err != nil {
		return fmt.Errorf("schema for %s: %w", global.ToolListFiles, err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        global.ToolListFiles,
		Description: "List files in the base directory. Non-recursive by default; set recursive to true to include all nested files.",
		InputSchema: listFilesSchema,
	}, s.handleListFiles)

	readFileSchema, err := jsonschema.For[ReadFileInput](nil)
	if err != nil {
		return fmt.Errorf("schema for %s: %w", global.ToolReadFile, err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        global.ToolReadFile,
		Description: "Read the full contents of a file, addressed by its path relative to the base directory.",
		InputSchema: readFileSchema,
	}, s.handleReadFile)

	return nil
}

// handleListFiles handles the list-files tool call. Without the recursive
// flag it returns the immediate children of the base directory (files and
// subdirectory names); with it, every file found by a full recursive walk.
func (s *Server) handleListFiles(_ context.Context, _ *mcp.CallToolRequest, input ListFilesInput) (*mcp.CallToolResult, any, error) {
	s.logRequest(global.ToolListFiles, map[string]string{"recursive": strconv.FormatBool(input.Recursive)})

	var entries []string
	var err error
	if input.Recursive {
		entries, err = s.catalog.Walk()
	} else {
		entries, err = s.catalog.ListImmediate()
	}
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to list files: %v", err)), nil, nil
	}
	if entries == nil {
		entries = []string{}
	}

	return jsonResult(entries), nil, nil
}

// handleReadFile handles the read-file tool call
func (s *Server) handleReadFile(_ context.Context, _ *mcp.CallToolRequest, input ReadFileInput) (*mcp.CallToolResult, any, error) {
	s.logRequest(global.ToolReadFile, map[string]string{"path": input.Path})

	// Validate before touching the filesystem
	if input.Path == "" {
		return errorResult("Invalid path: the path parameter is required and must be a non-empty string"), nil, nil
	}

	content, err := s.catalog.ReadFile(input.Path)
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to read file: %v", err)), nil, nil
	}

	return textResult(content), nil, nil
}

// textResult creates a plain text tool result
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult creates an error tool result with a descriptive message
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
		IsError: true,
	}
}

// jsonResult creates a tool result carrying data as indented JSON text
func jsonResult(data any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errorResult("Failed to create JSON result")
	}
	return textResult(string(b))
}
