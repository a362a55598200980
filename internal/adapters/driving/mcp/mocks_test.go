package mcp

import (
	"context"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

// mockRetrievalService is a mock implementation of driving.RetrievalService.
type mockRetrievalService struct {
	result    *domain.RetrievalResult
	err       error
	gotParams domain.QueryParameters
}

func (m *mockRetrievalService) Retrieve(
	_ context.Context,
	params domain.QueryParameters,
) (*domain.RetrievalResult, error) {
	m.gotParams = params
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// mockDatasetService is a mock implementation of driving.DatasetService.
type mockDatasetService struct {
	catalog   domain.DatasetList
	documents domain.DocumentList
	err       error

	listCalls    int
	gotForce     bool
	gotDatasetID string
	gotKeywords  string
	gotPage      int
	gotPageSize  int
}

func (m *mockDatasetService) List(_ context.Context, forceRefresh bool) (domain.DatasetList, error) {
	m.listCalls++
	m.gotForce = forceRefresh
	if m.err != nil {
		return domain.DatasetList{}, m.err
	}
	return m.catalog, nil
}

func (m *mockDatasetService) ListDocuments(
	_ context.Context,
	datasetID, keywords string,
	page, pageSize int,
	forceRefresh bool,
) (domain.DocumentList, error) {
	m.gotDatasetID = datasetID
	m.gotKeywords = keywords
	m.gotPage = page
	m.gotPageSize = pageSize
	m.gotForce = forceRefresh
	if m.err != nil {
		return domain.DocumentList{}, m.err
	}
	return m.documents, nil
}

// mockHealthService is a mock implementation of driving.HealthService.
type mockHealthService struct {
	report domain.HealthReport
}

func (m *mockHealthService) Check(_ context.Context) domain.HealthReport {
	return m.report
}
