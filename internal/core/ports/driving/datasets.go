package driving

import (
	"context"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

// DatasetService exposes backend dataset and document metadata.
// Listings are served from a bounded TTL cache unless forceRefresh is set.
type DatasetService interface {
	// List returns all datasets visible to the configured credential.
	List(ctx context.Context, forceRefresh bool) (domain.DatasetList, error)

	// ListDocuments returns one page of a dataset's documents, optionally
	// filtered by a name keyword.
	ListDocuments(ctx context.Context, datasetID, keywords string, page, pageSize int, forceRefresh bool) (domain.DocumentList, error)
}
