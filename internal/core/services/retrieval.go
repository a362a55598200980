package services

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
	"github.com/trafflux/ragflow-mcp-go/internal/core/ports/driven"
	"github.com/trafflux/ragflow-mcp-go/internal/core/ports/driving"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// datasetsCacheKey stores the full dataset catalog. One backend has one
// catalog, so a single fixed key suffices.
const datasetsCacheKey = "datasets"

// noResultsMessage is attached to results that matched nothing.
const noResultsMessage = "No relevant documents found."

// Retry tuning for transient backend failures. An interactive client
// waits on every call, so intervals stay short and attempts bounded.
const (
	maxRetries           = 2
	initialRetryInterval = 200 * time.Millisecond
	maxRetryInterval     = 2 * time.Second
)

// RetrievalService runs similarity searches against the backend.
// It resolves the dataset scope through the metadata cache and retries
// transient failures with exponential backoff.
type RetrievalService struct {
	backend  driven.Backend
	datasets driven.MetadataCache[domain.DatasetList]
	logger   *zap.Logger

	// retryInterval seeds the backoff policy. Tests shorten it.
	retryInterval time.Duration
}

// NewRetrievalService creates a new retrieval service.
// A nil logger disables logging.
func NewRetrievalService(
	backend driven.Backend,
	datasets driven.MetadataCache[domain.DatasetList],
	logger *zap.Logger,
) *RetrievalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RetrievalService{
		backend:       backend,
		datasets:      datasets,
		logger:        logger,
		retryInterval: initialRetryInterval,
	}
}

// Retrieve validates params, resolves the dataset scope, runs the search
// and shapes the result page. Validation failures surface before any
// backend call is made.
func (s *RetrievalService) Retrieve(ctx context.Context, params domain.QueryParameters) (*domain.RetrievalResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	datasetIDs := params.DatasetIDs
	if len(datasetIDs) == 0 {
		catalog, err := s.datasets.GetOrFetch(ctx, datasetsCacheKey, params.ForceRefresh,
			func(ctx context.Context) (domain.DatasetList, error) {
				return s.backend.ListDatasets(ctx, 0, 0)
			})
		if err != nil {
			return nil, err
		}
		if len(catalog.Datasets) == 0 {
			return nil, domain.ErrNoDatasets
		}
		datasetIDs = catalog.IDs()
		s.logger.Debug("query scoped to full catalog", zap.Int("datasets", len(datasetIDs)))
	}

	effective := params
	effective.DatasetIDs = datasetIDs

	chunks, err := s.retrieveWithRetry(ctx, effective)
	if err != nil {
		return nil, err
	}

	result := &domain.RetrievalResult{
		Chunks: chunks.Chunks,
		QueryInfo: domain.QueryInfo{
			Question:            params.Question,
			SimilarityThreshold: params.SimilarityThreshold,
			VectorWeight:        params.VectorWeight,
			KeywordSearch:       params.Keyword,
			DatasetCount:        len(datasetIDs),
		},
	}

	if len(chunks.Chunks) == 0 {
		result.Chunks = []domain.Chunk{}
		result.Message = noResultsMessage
		result.Pagination = domain.NewPagination(params.Page, params.PageSize, 0)
		return result, nil
	}

	result.Pagination = domain.NewPagination(params.Page, params.PageSize, chunks.Total)
	return result, nil
}

// retrieveWithRetry calls the backend, retrying transient failures up to
// maxRetries times. Non-retryable errors abort immediately and are
// returned as-is so callers keep the typed error.
func (s *RetrievalService) retrieveWithRetry(ctx context.Context, params domain.QueryParameters) (domain.ChunkList, error) {
	var chunks domain.ChunkList

	operation := func() error {
		var err error
		chunks, err = s.backend.Retrieve(ctx, params)
		if err != nil && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		s.logger.Warn("retrieval attempt failed, retrying",
			zap.Error(err),
			zap.Duration("backoff", wait))
	}

	if err := backoff.RetryNotify(operation, s.retryPolicy(ctx), notify); err != nil {
		return domain.ChunkList{}, err
	}
	return chunks, nil
}

// retryPolicy builds the per-call backoff schedule.
func (s *RetrievalService) retryPolicy(ctx context.Context) backoff.BackOffContext {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.retryInterval
	policy.MaxInterval = maxRetryInterval
	return backoff.WithContext(backoff.WithMaxRetries(policy, maxRetries), ctx)
}

// retryable reports whether a retrieval error is worth retrying.
// Transport failures and backend 5xx responses qualify; validation
// errors and other 4xx responses do not.
func retryable(err error) bool {
	if domain.IsBackendUnavailable(err) {
		return true
	}
	var backendErr *domain.BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Retryable()
	}
	return false
}
