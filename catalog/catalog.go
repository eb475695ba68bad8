/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package catalog enumerates and reads files under the fixed base directory.
// All listings are recomputed from the filesystem on every call; nothing is
// cached, so results may change between calls.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/PivotLLM/Dossier/config"
	"github.com/PivotLLM/Dossier/global"
	"github.com/PivotLLM/Dossier/logging"
)

// FileResource describes one discoverable file for resource listings.
type FileResource struct {
	URI      string // file:// plus the absolute filesystem path
	Name     string // path relative to the base directory
	MIMEType string
}

// Service provides file enumeration and reading rooted at the base directory.
type Service struct {
	baseDir string
	logger  *logging.Logger
}

// NewService creates a new catalog service
func NewService(cfg *config.Config, logger *logging.Logger) *Service {
	return &Service{
		baseDir: cfg.BaseDir(),
		logger:  logger,
	}
}

// BaseDir returns the base directory the service is rooted at
func (s *Service) BaseDir() string {
	return s.baseDir
}

// Walk returns the paths of all files beneath the base directory, relative to
// it and slash-normalized, in depth-first directory order. Directories are
// never included. Any I/O error during traversal aborts the whole listing;
// no partial results are returned.
func (s *Service) Walk() ([]string, error) {
	var files []string

	err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(s.baseDir, path)
		if err != nil {
			return err
		}

		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", s.baseDir, err)
	}

	s.logger.Debugf("Walked %d files under %s", len(files), s.baseDir)
	return files, nil
}

// ListImmediate returns the names of the immediate children of the base
// directory, files and subdirectories alike, from a single directory read.
func (s *Service) ListImmediate() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", s.baseDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// ReadFile returns the full contents of the file at the given path, resolved
// against the base directory. The path is used as supplied; containment is
// not enforced.
func (s *Service) ReadFile(relPath string) (string, error) {
	absPath := filepath.Join(s.baseDir, filepath.FromSlash(relPath))

	data, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", relPath, err)
	}
	return string(data), nil
}

// Resources performs a full walk and maps every file to a resource
// descriptor: a file:// URI over the absolute path, a fixed text/plain MIME
// type, and the relative path as the display name.
func (s *Service) Resources() ([]FileResource, error) {
	files, err := s.Walk()
	if err != nil {
		return nil, err
	}

	resources := make([]FileResource, 0, len(files))
	for _, rel := range files {
		resources = append(resources, FileResource{
			URI:      global.FileURI(filepath.Join(s.baseDir, filepath.FromSlash(rel))),
			Name:     rel,
			MIMEType: global.ResourceMIMEType,
		})
	}
	return resources, nil
}

// CompletePath returns every walked file whose relative path contains the
// query as a case-insensitive substring, in walk order, with no limit. An
// empty query matches everything.
func (s *Service) CompletePath(query string) ([]string, error) {
	files, err := s.Walk()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var matches []string
	for _, rel := range files {
		if strings.Contains(strings.ToLower(rel), needle) {
			matches = append(matches, rel)
		}
	}
	return matches, nil
}
