/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/PivotLLM/Dossier/global"
)

// registerPrompts registers the single supported prompt
func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(&mcp.Prompt{
		Name:        global.PromptFileContents,
		Description: "Returns the contents of a file as a user message",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        global.PromptArgPath,
				Description: "Path to the file, relative to the base directory",
				Required:    true,
			},
		},
	}, s.handleFileContentsPrompt)
}

// handleFileContentsPrompt resolves the file-contents prompt: it validates
// the path argument, reads the file, and wraps its text as one user message.
func (s *Server) handleFileContentsPrompt(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	path := req.Params.Arguments[global.PromptArgPath]
	s.logRequest("prompts/get "+global.PromptFileContents, map[string]string{"path": path})

	// Validate before touching the filesystem
	if path == "" {
		return nil, fmt.Errorf("invalid path: the %s argument is required and must be a non-empty string", global.PromptArgPath)
	}

	content, err := s.catalog.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Contents of %s", path),
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: content},
			},
		},
	}, nil
}

// handleComplete serves completion/complete requests. Only the path argument
// of the file-contents prompt is completable: candidates are all walked
// files whose relative path contains the query case-insensitively.
func (s *Server) handleComplete(_ context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	ref := req.Params.Ref
	if ref == nil || ref.Type != global.RefTypePrompt {
		return nil, fmt.Errorf("unsupported completion reference")
	}
	if ref.Name != global.PromptFileContents {
		return nil, fmt.Errorf("unknown prompt: %s", ref.Name)
	}

	query := req.Params.Argument.Value
	s.logRequest("completion/complete", map[string]string{"query": query})

	values, err := s.catalog.CompletePath(query)
	if err != nil {
		return nil, err
	}

	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values:  values,
			Total:   len(values),
			HasMore: false,
		},
	}, nil
}
