/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PivotLLM/Dossier/global"
)

// Config provides access to application configuration. The base directory is
// fixed once by Load and injected into all services; it is never read from a
// configuration file or the environment.
type Config struct {
	baseDir string // resolved absolute base directory
	logFile string // optional log file path (empty: stderr)
}

// Option is a functional option for configuring Config
type Option func(*Config)

// New creates a new Config instance with optional configuration
func New(opts ...Option) *Config {
	c := &Config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithBaseDir sets an explicit base directory instead of the process working
// directory. Used by tests to point the server at a temporary directory.
func WithBaseDir(dir string) Option {
	return func(c *Config) {
		c.baseDir = dir
	}
}

// WithLogFile sets an optional log file path for diagnostics
func WithLogFile(path string) Option {
	return func(c *Config) {
		c.logFile = path
	}
}

// Load resolves and validates the configuration. The base directory defaults
// to the process's working directory at the time of the call.
func (c *Config) Load() error {
	if c.baseDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
		c.baseDir = cwd
	}

	abs, err := filepath.Abs(c.baseDir)
	if err != nil {
		return fmt.Errorf("failed to resolve base directory %s: %w", c.baseDir, err)
	}
	c.baseDir = abs

	if !global.DirExists(c.baseDir) {
		return fmt.Errorf("base directory does not exist: %s", c.baseDir)
	}

	return nil
}

// BaseDir returns the resolved base directory (always absolute)
func (c *Config) BaseDir() string {
	return c.baseDir
}

// LogFile returns the optional log file path (empty means stderr)
func (c *Config) LogFile() string {
	return c.logFile
}
