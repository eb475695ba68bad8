/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package server

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/PivotLLM/Dossier/global"
)

const (
	methodListResources = "resources/list"
	methodReadResource  = "resources/read"
)

// resourceMiddleware intercepts resource requests before the SDK's static
// registry. The resource list must be recomputed from the filesystem on
// every call, so it cannot be pre-registered at startup.
func (s *Server) resourceMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		switch method {
		case methodListResources:
			return s.handleListResources(ctx)
		case methodReadResource:
			if rr, ok := req.(*mcp.ReadResourceRequest); ok {
				return s.handleReadResource(ctx, rr)
			}
		}
		return next(ctx, method, req)
	}
}

// handleListResources walks the base directory and returns one resource per
// file: a file:// URI, the fixed text/plain MIME type, and the relative path
// as the display name. The whole tree is returned in one response.
func (s *Server) handleListResources(_ context.Context) (mcp.Result, error) {
	s.logRequest(methodListResources, nil)

	items, err := s.catalog.Resources()
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	result := &mcp.ListResourcesResult{Resources: []*mcp.Resource{}}
	for _, item := range items {
		result.Resources = append(result.Resources, &mcp.Resource{
			URI:      item.URI,
			Name:     item.Name,
			MIMEType: item.MIMEType,
		})
	}
	return result, nil
}

// handleReadResource reads the file addressed by a file:// URI
func (s *Server) handleReadResource(_ context.Context, req *mcp.ReadResourceRequest) (mcp.Result, error) {
	uri := req.Params.URI
	s.logRequest(methodReadResource, map[string]string{"uri": uri})

	path, err := global.PathFromURI(uri)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: global.ResourceMIMEType,
				Text:     string(data),
			},
		},
	}, nil
}
