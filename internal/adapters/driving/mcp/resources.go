package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for RAGFlow resources.
	uriScheme = "ragflow://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the dataset catalog.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "datasets",
		Name:        "datasets",
		Description: "Catalog of datasets available on the RAGFlow backend",
		MIMEType:    "application/json",
	}, s.handleDatasetsResource)

	// Template for the documents of one dataset.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "datasets/{datasetID}/documents",
		Name:        "dataset-documents",
		Description: "Documents indexed in a specific dataset",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)
}

// handleDatasetsResource returns the dataset catalog.
func (s *Server) handleDatasetsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	catalog, err := s.ports.Datasets.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}

	data, err := json.MarshalIndent(datasetListOutput(catalog), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling datasets: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentsResource returns the documents of a specific dataset.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract datasetID from URI: ragflow://datasets/{datasetID}/documents
	datasetID := extractDatasetID(req.Params.URI)
	if datasetID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	list, err := s.ports.Datasets.ListDocuments(ctx, datasetID, "", domain.DefaultPage, domain.MaxPageSize, false)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	// Build simplified document list.
	type docInfo struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		ChunkCount int    `json:"chunk_count"`
	}

	type docList struct {
		DatasetID string    `json:"dataset_id"`
		Documents []docInfo `json:"documents"`
		Total     int       `json:"total"`
	}

	out := docList{
		DatasetID: datasetID,
		Documents: make([]docInfo, len(list.Documents)),
		Total:     list.Total,
	}
	for i := range list.Documents {
		out.Documents[i] = docInfo{
			ID:         list.Documents[i].ID,
			Name:       list.Documents[i].Name,
			ChunkCount: list.Documents[i].ChunkCount,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractDatasetID extracts the dataset ID from a URI like
// ragflow://datasets/{datasetID}/documents.
func extractDatasetID(uri string) string {
	const prefix = uriScheme + "datasets/"
	const suffix = "/documents"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
