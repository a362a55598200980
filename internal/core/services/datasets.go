package services

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
	"github.com/trafflux/ragflow-mcp-go/internal/core/ports/driven"
	"github.com/trafflux/ragflow-mcp-go/internal/core/ports/driving"
)

// Ensure DatasetService implements the interface.
var _ driving.DatasetService = (*DatasetService)(nil)

// DatasetService exposes backend dataset and document metadata through
// the bounded caches. Both listings share the backend connection with
// retrieval but are fetched far less often.
type DatasetService struct {
	backend   driven.Backend
	datasets  driven.MetadataCache[domain.DatasetList]
	documents driven.MetadataCache[domain.DocumentList]
	logger    *zap.Logger
}

// NewDatasetService creates a new dataset service.
// A nil logger disables logging.
func NewDatasetService(
	backend driven.Backend,
	datasets driven.MetadataCache[domain.DatasetList],
	documents driven.MetadataCache[domain.DocumentList],
	logger *zap.Logger,
) *DatasetService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DatasetService{
		backend:   backend,
		datasets:  datasets,
		documents: documents,
		logger:    logger,
	}
}

// List returns all datasets visible to the configured credential.
// Backend failures propagate to the caller; a cached catalog is never
// silently substituted for a failed refresh.
func (s *DatasetService) List(ctx context.Context, forceRefresh bool) (domain.DatasetList, error) {
	return s.datasets.GetOrFetch(ctx, datasetsCacheKey, forceRefresh,
		func(ctx context.Context) (domain.DatasetList, error) {
			s.logger.Debug("fetching dataset catalog")
			return s.backend.ListDatasets(ctx, 0, 0)
		})
}

// ListDocuments returns one page of a dataset's documents, optionally
// filtered by a name keyword.
func (s *DatasetService) ListDocuments(
	ctx context.Context, datasetID, keywords string, page, pageSize int, forceRefresh bool,
) (domain.DocumentList, error) {
	if strings.TrimSpace(datasetID) == "" {
		return domain.DocumentList{}, &domain.InvalidArgumentError{Field: "dataset_id", Reason: "must not be empty"}
	}
	if page < 1 {
		page = domain.DefaultPage
	}
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	if pageSize > domain.MaxPageSize {
		return domain.DocumentList{}, &domain.InvalidArgumentError{Field: "page_size", Reason: "must not exceed 100"}
	}

	key := documentsCacheKey(datasetID, keywords, page, pageSize)
	return s.documents.GetOrFetch(ctx, key, forceRefresh,
		func(ctx context.Context) (domain.DocumentList, error) {
			s.logger.Debug("fetching documents",
				zap.String("dataset_id", datasetID),
				zap.Int("page", page))
			return s.backend.ListDocuments(ctx, datasetID, keywords, page, pageSize)
		})
}

// documentsCacheKey builds a cache key covering every request dimension.
// The keyword filter is hashed so arbitrary user text cannot collide
// with the delimited fields around it.
func documentsCacheKey(datasetID, keywords string, page, pageSize int) string {
	sum := sha256.Sum256([]byte(keywords))
	return fmt.Sprintf("documents:%s:%x:%d:%d", datasetID, sum[:8], page, pageSize)
}
