package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

func newTestDatasetService(t *testing.T, backend *mockBackend) *DatasetService {
	t.Helper()
	return NewDatasetService(backend, newDatasetCache(t), newDocumentCache(t), nil)
}

func TestNewDatasetService(t *testing.T) {
	svc := newTestDatasetService(t, &mockBackend{})
	require.NotNil(t, svc)
}

func TestDatasetService_List(t *testing.T) {
	backend := &mockBackend{
		datasets: domain.DatasetList{
			Datasets: []domain.Dataset{
				{ID: "ds-1", Name: "support-kb", DocumentCount: 42},
				{ID: "ds-2", Name: "product-docs", DocumentCount: 7},
			},
			Total: 2,
		},
	}
	svc := newTestDatasetService(t, backend)

	list, err := svc.List(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Datasets, 2)
	assert.Equal(t, "support-kb", list.Datasets[0].Name)
}

func TestDatasetService_List_CachesCatalog(t *testing.T) {
	backend := &mockBackend{
		datasets: domain.DatasetList{Datasets: []domain.Dataset{{ID: "ds-1"}}, Total: 1},
	}
	svc := newTestDatasetService(t, backend)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.List(ctx, false)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, backend.listCalls)
}

func TestDatasetService_List_ForceRefresh(t *testing.T) {
	backend := &mockBackend{
		datasets: domain.DatasetList{Datasets: []domain.Dataset{{ID: "ds-1"}}, Total: 1},
	}
	svc := newTestDatasetService(t, backend)
	ctx := context.Background()

	_, err := svc.List(ctx, false)
	require.NoError(t, err)

	_, err = svc.List(ctx, true)
	require.NoError(t, err)

	assert.Equal(t, 2, backend.listCalls)
}

func TestDatasetService_List_ErrorPropagates(t *testing.T) {
	backend := &mockBackend{
		datasetsErr: &domain.BackendError{Status: 401, Message: "authentication failed"},
	}
	svc := newTestDatasetService(t, backend)
	ctx := context.Background()

	_, err := svc.List(ctx, false)
	require.Error(t, err)

	var backendErr *domain.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, 401, backendErr.Status)

	// A failed fetch is not cached; the next call tries again.
	_, err = svc.List(ctx, false)
	require.Error(t, err)
	assert.Equal(t, 2, backend.listCalls)
}

func TestDatasetService_ListDocuments(t *testing.T) {
	backend := &mockBackend{
		documents: domain.DocumentList{
			Documents: []domain.Document{
				{ID: "doc-1", DatasetID: "ds-1", Name: "handbook.pdf", ChunkCount: 12},
			},
			Total: 1,
		},
	}
	svc := newTestDatasetService(t, backend)

	list, err := svc.ListDocuments(context.Background(), "ds-1", "handbook", 2, 25, false)

	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Documents, 1)
	assert.Equal(t, "handbook.pdf", list.Documents[0].Name)

	assert.Equal(t, "ds-1", backend.lastDatasetID)
	assert.Equal(t, "handbook", backend.lastKeywords)
	assert.Equal(t, 2, backend.lastPage)
	assert.Equal(t, 25, backend.lastPageSize)
}

func TestDatasetService_ListDocuments_EmptyDatasetID(t *testing.T) {
	backend := &mockBackend{}
	svc := newTestDatasetService(t, backend)

	_, err := svc.ListDocuments(context.Background(), "  ", "", 1, 10, false)

	require.Error(t, err)
	assert.True(t, domain.IsInvalidArgument(err))

	var argErr *domain.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "dataset_id", argErr.Field)
	assert.Equal(t, 0, backend.documentCalls)
}

func TestDatasetService_ListDocuments_DefaultsPageWindow(t *testing.T) {
	backend := &mockBackend{}
	svc := newTestDatasetService(t, backend)

	_, err := svc.ListDocuments(context.Background(), "ds-1", "", 0, 0, false)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPage, backend.lastPage)
	assert.Equal(t, domain.DefaultPageSize, backend.lastPageSize)
}

func TestDatasetService_ListDocuments_PageSizeCap(t *testing.T) {
	backend := &mockBackend{}
	svc := newTestDatasetService(t, backend)

	_, err := svc.ListDocuments(context.Background(), "ds-1", "", 1, 101, false)

	require.Error(t, err)
	assert.True(t, domain.IsInvalidArgument(err))
	assert.Equal(t, 0, backend.documentCalls)
}

func TestDatasetService_ListDocuments_CachesPerWindow(t *testing.T) {
	backend := &mockBackend{}
	svc := newTestDatasetService(t, backend)
	ctx := context.Background()

	// Identical requests share one backend fetch.
	_, err := svc.ListDocuments(ctx, "ds-1", "report", 1, 10, false)
	require.NoError(t, err)
	_, err = svc.ListDocuments(ctx, "ds-1", "report", 1, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 1, backend.documentCalls)

	// Any changed dimension is a different cache entry.
	_, err = svc.ListDocuments(ctx, "ds-1", "report", 2, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 2, backend.documentCalls)

	_, err = svc.ListDocuments(ctx, "ds-1", "invoice", 1, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 3, backend.documentCalls)

	_, err = svc.ListDocuments(ctx, "ds-2", "report", 1, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 4, backend.documentCalls)
}

func TestDatasetService_ListDocuments_ErrorPropagates(t *testing.T) {
	backend := &mockBackend{
		documentsErr: &domain.BackendUnavailableError{
			URL: "http://ragflow:9380",
			Err: errors.New("connection refused"),
		},
	}
	svc := newTestDatasetService(t, backend)

	_, err := svc.ListDocuments(context.Background(), "ds-1", "", 1, 10, false)

	require.Error(t, err)
	assert.True(t, domain.IsBackendUnavailable(err))
}

func TestDocumentsCacheKey(t *testing.T) {
	base := documentsCacheKey("ds-1", "report", 1, 10)

	assert.Equal(t, base, documentsCacheKey("ds-1", "report", 1, 10))
	assert.NotEqual(t, base, documentsCacheKey("ds-2", "report", 1, 10))
	assert.NotEqual(t, base, documentsCacheKey("ds-1", "invoice", 1, 10))
	assert.NotEqual(t, base, documentsCacheKey("ds-1", "report", 2, 10))
	assert.NotEqual(t, base, documentsCacheKey("ds-1", "report", 1, 20))
}
