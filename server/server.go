/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/PivotLLM/Dossier/catalog"
	"github.com/PivotLLM/Dossier/config"
	"github.com/PivotLLM/Dossier/global"
	"github.com/PivotLLM/Dossier/logging"
)

// Server wraps the MCP server with our services
type Server struct {
	config    *config.Config
	logger    *logging.Logger
	catalog   *catalog.Service
	mcpServer *mcp.Server
	instance  string
}

// New creates a new server instance
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	srv := &Server{
		config:   cfg,
		logger:   logger,
		catalog:  catalog.NewService(cfg, logger),
		instance: uuid.New().String(),
	}

	// Create MCP server. Resource requests are served by middleware (see
	// handlers_resources.go) so listings are recomputed on every call.
	srv.mcpServer = mcp.NewServer(
		&mcp.Implementation{
			Name:    global.ProgramName,
			Version: global.Version,
		},
		&mcp.ServerOptions{
			HasTools:          true,
			HasResources:      true,
			HasPrompts:        true,
			CompletionHandler: srv.handleComplete,
		},
	)

	// Register capabilities
	if err := srv.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	srv.registerPrompts()
	srv.mcpServer.AddReceivingMiddleware(srv.resourceMiddleware)

	return srv, nil
}

// Run starts the MCP server on stdio with graceful shutdown. It blocks until
// stdin is closed, a shutdown signal arrives, or the transport fails.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	s.logger.Infof("%s v%s serving %s (instance %s)",
		global.ProgramName, global.Version, s.config.BaseDir(), s.instance)

	err := s.mcpServer.Run(ctx, &mcp.StdioTransport{})
	defer func() {
		if syncErr := s.logger.Sync(); syncErr != nil {
			s.logger.Warnf("Failed to flush logs on shutdown: %v", syncErr)
		}
	}()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.logger.Info("Shutdown signal received")
			s.logger.Info("Server stopped")
			return nil
		}
		s.logger.Errorf("Server error: %v", err)
		return fmt.Errorf("server error: %w", err)
	}

	// nil error means stdin was closed (EOF) - normal exit
	s.logger.Info("Connection closed")
	s.logger.Info("Server exiting")
	return nil
}

// logRequest logs an MCP request at INFO level
func (s *Server) logRequest(kind string, params map[string]string) {
	var parts []string
	for k, v := range params {
		if v != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", k, v))
		}
	}
	if len(parts) == 0 {
		s.logger.Infof("Handling %s", kind)
		return
	}
	s.logger.Infof("Handling %s: %s", kind, strings.Join(parts, ", "))
}
