// Package errors provides the domain error taxonomy for tfc-cost.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeConfig indicates a configuration error (missing token)
	TypeConfig Type = "CONFIG_ERROR"

	// TypeAPIInit indicates the API client could not be constructed
	TypeAPIInit Type = "API_INIT_ERROR"

	// TypeWorkspaceListing indicates the organization workspace listing failed
	TypeWorkspaceListing Type = "WORKSPACE_LISTING_ERROR"

	// TypeResourceCounting indicates resource counting failed for one workspace
	TypeResourceCounting Type = "RESOURCE_COUNTING_ERROR"

	// TypeWorkspaceNotFound indicates a workspace lookup by name missed
	TypeWorkspaceNotFound Type = "WORKSPACE_NOT_FOUND"

	// TypeOutputNotFound indicates a named state output was absent
	TypeOutputNotFound Type = "OUTPUT_NOT_FOUND"

	// TypeNetwork indicates a transport-level error
	TypeNetwork Type = "NETWORK_ERROR"

	// TypeParsing indicates a malformed API response
	TypeParsing Type = "PARSING_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Config creates a configuration error
func Config(message string) *Error {
	return New(TypeConfig, message)
}

// APIInit creates an API initialization error
func APIInit(cause error) *Error {
	return Wrap(TypeAPIInit, "failed to initialize API client", cause)
}

// WorkspaceListing creates a workspace listing error
func WorkspaceListing(org string, cause error) *Error {
	return Wrap(TypeWorkspaceListing, fmt.Sprintf("failed to list workspaces in organization %s", org), cause).
		WithContext("organization", org)
}

// ResourceCounting creates a resource counting error for one workspace
func ResourceCounting(workspaceID string, cause error) *Error {
	return Wrap(TypeResourceCounting, fmt.Sprintf("error counting resources in workspace %s", workspaceID), cause).
		WithContext("workspace_id", workspaceID)
}

// WorkspaceNotFound creates a not found error for a workspace
func WorkspaceNotFound(org, workspaceName string) *Error {
	return Newf(TypeWorkspaceNotFound, "workspace %s not found in organization %s", workspaceName, org).
		WithContext("organization", org).
		WithContext("workspace", workspaceName)
}

// OutputNotFound creates a not found error for a state output
func OutputNotFound(outputName, workspaceName string) *Error {
	return Newf(TypeOutputNotFound, "output %s not found in workspace %s", outputName, workspaceName).
		WithContext("output", outputName).
		WithContext("workspace", workspaceName)
}

// Network creates a transport error
func Network(message string, cause error) *Error {
	return Wrap(TypeNetwork, message, cause)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}
