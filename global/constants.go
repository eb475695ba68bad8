/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

const (
	// MCP Tool Names
	ToolListFiles = "list-files"
	ToolReadFile  = "read-file"

	// MCP Prompt Names
	PromptFileContents = "file-contents"

	// Prompt Argument Names
	PromptArgPath = "path"

	// Resource Constants
	ResourceScheme   = "file://"
	ResourceMIMEType = "text/plain"

	// Completion Reference Types
	RefTypePrompt   = "ref/prompt"
	RefTypeResource = "ref/resource"

	// Log Levels
	LogLevelDebug = "DEBUG"
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
	LogLevelFatal = "FATAL"
)
