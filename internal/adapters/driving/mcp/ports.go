package mcp

import (
	"go.uber.org/zap"

	"github.com/trafflux/ragflow-mcp-go/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Retrieval runs similarity searches.
	Retrieval driving.RetrievalService

	// Datasets serves dataset and document metadata.
	Datasets driving.DatasetService

	// Health probes backend reachability.
	Health driving.HealthService

	// Logger receives per-invocation tool logs. Optional; a nop logger
	// is used when nil.
	Logger *zap.Logger
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Retrieval == nil {
		return ErrMissingRetrievalService
	}
	if p.Datasets == nil {
		return ErrMissingDatasetService
	}
	if p.Health == nil {
		return ErrMissingHealthService
	}
	return nil
}
