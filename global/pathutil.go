/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"fmt"
	"strings"
)

// FileURI builds a file:// URI from an absolute filesystem path.
func FileURI(absPath string) string {
	return ResourceScheme + absPath
}

// PathFromURI extracts the absolute filesystem path from a file:// URI.
// Returns an error for any other URI scheme.
func PathFromURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, ResourceScheme) {
		return "", fmt.Errorf("unsupported resource URI scheme: %s", uri)
	}
	path := strings.TrimPrefix(uri, ResourceScheme)
	if path == "" {
		return "", fmt.Errorf("empty path in resource URI: %s", uri)
	}
	return path, nil
}
