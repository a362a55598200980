package ragflow

import (
	"encoding/json"
	"errors"
)

// RAGFlow-specific errors.
var (
	// ErrEmptyDatasetID indicates a document listing was requested
	// without naming a dataset.
	ErrEmptyDatasetID = errors.New("ragflow: dataset id is required")
)

// maxBodySnippet bounds the response body carried inside error values,
// so oversized backend responses do not balloon logs.
const maxBodySnippet = 2048

// truncateBody returns the body as a string capped at maxBodySnippet.
func truncateBody(body []byte) string {
	if len(body) <= maxBodySnippet {
		return string(body)
	}
	return string(body[:maxBodySnippet]) + "..."
}

// envelopeMessage extracts the backend's message field from an error body,
// best effort. Returns empty for non-JSON or message-less bodies.
func envelopeMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}
