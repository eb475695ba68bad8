/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/PivotLLM/Dossier/config"
	"github.com/PivotLLM/Dossier/global"
	"github.com/PivotLLM/Dossier/logging"
	"github.com/PivotLLM/Dossier/server"
)

func main() {
	// Top-level panic recovery
	defer func() {
		if rec := recover(); rec != nil {
			_, _ = fmt.Fprintf(os.Stderr, "FATAL PANIC: %v\n", rec)
			os.Exit(2)
		}
	}()

	// Parse command line flags
	var (
		logPath = flag.String("log", "", "Path to log file (default: stderr)")
		version = flag.Bool("version", false, "Show version information")
		help    = flag.Bool("help", false, "Show help information")
	)
	flag.Parse()

	// Handle version flag
	if *version {
		fmt.Printf("%s v%s\n", global.ProgramName, global.Version)
		return
	}

	// Handle help flag
	if *help {
		showHelp()
		return
	}

	// The base directory is the working directory at launch; there is no
	// configuration file and no environment lookup.
	cfg := config.New(config.WithLogFile(*logPath))
	if err := cfg.Load(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger (stderr unless a log file was requested)
	logger, err := logging.New(cfg.LogFile())
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer func(logger *logging.Logger) {
		// Ensure logs are flushed before exit
		_ = logger.Sync()
		_ = logger.Close()
	}(logger)

	// Announce startup
	logger.Infof("%s v%s starting", global.ProgramName, global.Version)

	// Create and start server
	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to create server: %v", err)
	}

	// Run the server
	if err := srv.Run(); err != nil {
		logger.Fatalf("Server error: %v", err)
	}
}

func showHelp() {
	fmt.Printf(`%s v%s - MCP Server for Local Filesystem Access

USAGE:
    %s [OPTIONS]

OPTIONS:
    --log PATH       Write diagnostics to PATH instead of stderr
    --version        Show version information
    --help           Show this help message

DESCRIPTION:
    %s is a Model Context Protocol (MCP) server that exposes the
    working directory it was started in over stdio:

    - Every file under the directory as a readable file:// resource
    - list-files and read-file tools
    - A file-contents prompt with path completion

    All access is read-only. The server speaks the MCP protocol on
    stdin/stdout; diagnostics go to stderr.
`, global.ProgramName, global.Version, global.ProgramName, global.ProgramName)
}
