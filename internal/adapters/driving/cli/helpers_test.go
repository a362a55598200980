package cli

import (
	"context"
	"errors"

	"github.com/trafflux/ragflow-mcp-go/internal/adapters/driven/config/memory"
	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
	"github.com/trafflux/ragflow-mcp-go/internal/core/services"
)

// setupTestServices swaps the package-level services for test doubles and
// returns a cleanup that restores the originals.
func setupTestServices() func() {
	oldSettings := settingsService
	oldRetrieval := retrievalService
	oldDataset := datasetService
	oldHealth := healthService

	store := memory.NewConfigStore()
	settingsService = services.NewSettingsService(store)

	retrievalService = &mockRetrievalService{result: testRetrievalResult()}
	datasetService = &mockDatasetService{
		catalog:   testDatasetList(),
		documents: testDocumentList(),
	}
	healthService = &mockHealthService{report: testHealthReport()}

	return func() {
		settingsService = oldSettings
		retrievalService = oldRetrieval
		datasetService = oldDataset
		healthService = oldHealth
	}
}

func testRetrievalResult() *domain.RetrievalResult {
	return &domain.RetrievalResult{
		Chunks: []domain.Chunk{
			{
				ID:           "chunk-1",
				DocumentID:   "doc-1",
				DatasetID:    "ds-1",
				DocumentName: "install-guide.pdf",
				Content:      "Install the connector with the package manager.",
				Highlight:    "Install the connector",
				Similarity:   0.92,
			},
			{
				ID:         "chunk-2",
				DocumentID: "doc-2",
				DatasetID:  "ds-1",
				Content:    "Configuration lives in a TOML file under the user config directory.",
				Similarity: 0.81,
			},
		},
		Pagination: domain.NewPagination(1, 10, 2),
		QueryInfo: domain.QueryInfo{
			Question:            "how to install",
			SimilarityThreshold: domain.DefaultSimilarityThreshold,
			VectorWeight:        domain.DefaultVectorWeight,
			DatasetCount:        1,
		},
	}
}

func testDatasetList() domain.DatasetList {
	return domain.DatasetList{
		Datasets: []domain.Dataset{
			{ID: "ds-1", Name: "Product Docs", Description: "Manuals and guides", DocumentCount: 12, ChunkCount: 480},
			{ID: "ds-2", Name: "Support KB", DocumentCount: 7, ChunkCount: 133},
		},
		Total: 2,
	}
}

func testDocumentList() domain.DocumentList {
	return domain.DocumentList{
		Documents: []domain.Document{
			{ID: "doc-1", DatasetID: "ds-1", Name: "install-guide.pdf", ChunkCount: 40},
			{ID: "doc-2", DatasetID: "ds-1", Name: "faq.md", ChunkCount: 12},
		},
		Total: 2,
	}
}

func testHealthReport() domain.HealthReport {
	return domain.HealthReport{
		Status:        domain.HealthStatusOK,
		BackendURL:    "http://127.0.0.1:9380",
		Connection:    domain.ConnectionUp,
		DatasetsCount: 2,
	}
}

type mockRetrievalService struct {
	result    *domain.RetrievalResult
	err       error
	gotParams domain.QueryParameters
}

func (m *mockRetrievalService) Retrieve(_ context.Context, params domain.QueryParameters) (*domain.RetrievalResult, error) {
	m.gotParams = params
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockRetrievalServiceError struct{}

func (m *mockRetrievalServiceError) Retrieve(context.Context, domain.QueryParameters) (*domain.RetrievalResult, error) {
	return nil, errors.New("backend exploded")
}

type mockDatasetService struct {
	catalog   domain.DatasetList
	documents domain.DocumentList
	err       error

	gotForce     bool
	gotDatasetID string
}

func (m *mockDatasetService) List(_ context.Context, forceRefresh bool) (domain.DatasetList, error) {
	m.gotForce = forceRefresh
	if m.err != nil {
		return domain.DatasetList{}, m.err
	}
	return m.catalog, nil
}

func (m *mockDatasetService) ListDocuments(_ context.Context, datasetID, _ string, _, _ int, forceRefresh bool) (domain.DocumentList, error) {
	m.gotDatasetID = datasetID
	m.gotForce = forceRefresh
	if m.err != nil {
		return domain.DocumentList{}, m.err
	}
	return m.documents, nil
}

type mockHealthService struct {
	report domain.HealthReport
}

func (m *mockHealthService) Check(context.Context) domain.HealthReport {
	return m.report
}
