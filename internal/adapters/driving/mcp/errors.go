// Package mcp provides the MCP (Model Context Protocol) server adapter for
// the RAGFlow retrieval connector. It exposes retrieval, dataset listing and
// health checks as tools AI assistants can call over stdio or HTTP.
package mcp

import (
	"encoding/json"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

// Errors returned when required ports are not provided.
var (
	// ErrMissingRetrievalService is returned when the retrieval service is not provided.
	ErrMissingRetrievalService = errors.New("mcp: retrieval service is required")

	// ErrMissingDatasetService is returned when the dataset service is not provided.
	ErrMissingDatasetService = errors.New("mcp: dataset service is required")

	// ErrMissingHealthService is returned when the health service is not provided.
	ErrMissingHealthService = errors.New("mcp: health service is required")
)

// Error kinds carried in tool error payloads. Clients branch on the kind,
// not on the message text.
const (
	// ErrorKindInvalidArgument marks a request rejected before any backend call.
	ErrorKindInvalidArgument = "invalid_argument"

	// ErrorKindNoDatasets marks a retrieval with no datasets to search.
	ErrorKindNoDatasets = "no_datasets"

	// ErrorKindBackendUnavailable marks a backend that could not be reached.
	ErrorKindBackendUnavailable = "backend_unavailable"

	// ErrorKindBackendError marks a backend that answered with a failure.
	ErrorKindBackendError = "backend_error"

	// ErrorKindInternal marks any other failure.
	ErrorKindInternal = "internal"
)

// ToolError is the wire form of a failed tool call.
type ToolError struct {
	// Kind classifies the failure, one of the ErrorKind constants.
	Kind string `json:"kind"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Status is the backend HTTP status for backend_error kinds.
	Status int `json:"status,omitempty"`
}

// toolErrorPayload wraps a ToolError under the "error" key.
type toolErrorPayload struct {
	Error ToolError `json:"error"`
}

// classifyError maps a service error onto its wire form.
func classifyError(err error) ToolError {
	var invalidErr *domain.InvalidArgumentError
	if errors.As(err, &invalidErr) {
		return ToolError{Kind: ErrorKindInvalidArgument, Message: invalidErr.Error()}
	}

	if errors.Is(err, domain.ErrNoDatasets) {
		return ToolError{Kind: ErrorKindNoDatasets, Message: "No datasets available for search."}
	}

	var unavailErr *domain.BackendUnavailableError
	if errors.As(err, &unavailErr) {
		return ToolError{Kind: ErrorKindBackendUnavailable, Message: unavailErr.Error()}
	}

	var backendErr *domain.BackendError
	if errors.As(err, &backendErr) {
		return ToolError{Kind: ErrorKindBackendError, Message: backendErr.Error(), Status: backendErr.Status}
	}

	return ToolError{Kind: ErrorKindInternal, Message: err.Error()}
}

// toolErrorResult renders a failure as a structured tool result instead of a
// protocol fault, so MCP clients receive machine-readable error payloads.
func toolErrorResult(cause error) *mcp.CallToolResult {
	data, err := json.Marshal(toolErrorPayload{Error: classifyError(cause)})
	if err != nil {
		data = []byte(`{"error":{"kind":"internal","message":"failed to encode error"}}`)
	}

	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}
