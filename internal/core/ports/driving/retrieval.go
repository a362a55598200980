package driving

import (
	"context"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

// RetrievalService runs similarity searches against the retrieval backend.
type RetrievalService interface {
	// Retrieve validates params, resolves the dataset scope, runs the
	// search and returns the normalised result page.
	Retrieve(ctx context.Context, params domain.QueryParameters) (*domain.RetrievalResult, error)
}
