package driven

import (
	"context"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

// Backend is the outbound port to the retrieval backend.
// Implementations own connection pooling, authentication and the mapping
// of transport failures onto the domain error types. They never retry.
type Backend interface {
	// ListDatasets returns one page of the datasets visible to the
	// configured credential.
	ListDatasets(ctx context.Context, page, pageSize int) (domain.DatasetList, error)

	// ListDocuments returns one page of a dataset's documents, optionally
	// filtered by a name keyword.
	ListDocuments(ctx context.Context, datasetID, keywords string, page, pageSize int) (domain.DocumentList, error)

	// Retrieve runs a chunk similarity search across the datasets and
	// documents named in params. Chunks are returned normalised; scores
	// are clamped to [0, 1].
	Retrieve(ctx context.Context, params domain.QueryParameters) (domain.ChunkList, error)

	// Close releases pooled connections. Calls after Close fail with
	// domain.ErrClientClosed.
	Close() error
}
