package mcp

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

// Tool names exposed to MCP clients.
const (
	toolRetrieval    = "ragflow_retrieval"
	toolListDatasets = "ragflow_list_datasets"
	toolHealthCheck  = "ragflow_health_check"
)

// RetrievalInput is the input schema for the retrieval tool.
// Numeric fields are pointers so that an omitted field picks up its
// default while an explicit zero is still validated.
type RetrievalInput struct {
	Question            string   `json:"question" jsonschema:"the question or query to search for in the RAGFlow datasets"`
	DatasetIDs          []string `json:"dataset_ids,omitempty" jsonschema:"optional list of dataset IDs to search in; if omitted, searches all available datasets"`
	DocumentIDs         []string `json:"document_ids,omitempty" jsonschema:"optional list of specific document IDs to filter search results"`
	Page                *int     `json:"page,omitempty" jsonschema:"page number for pagination, 1-indexed (default 1)"`
	PageSize            *int     `json:"page_size,omitempty" jsonschema:"number of results per page, at most 100 (default 10, recommended 5-20 to avoid token limits)"`
	SimilarityThreshold *float64 `json:"similarity_threshold,omitempty" jsonschema:"minimum similarity score threshold for results, 0.0-1.0 (default 0.2)"`
	VectorWeight        *float64 `json:"vector_similarity_weight,omitempty" jsonschema:"weight balance between vector and keyword similarity, 0.0=keyword only, 1.0=vector only (default 0.3)"`
	Keyword             bool     `json:"keyword,omitempty" jsonschema:"enable keyword-based search in addition to vector search"`
	TopK                *int     `json:"top_k,omitempty" jsonschema:"maximum number of candidates to consider before final ranking (default 1024)"`
	RerankID            string   `json:"rerank_id,omitempty" jsonschema:"optional reranking model identifier for result ordering"`
	ForceRefresh        bool     `json:"force_refresh,omitempty" jsonschema:"force refresh of cached dataset metadata (use sparingly)"`
}

// queryParameters converts the tool input into domain query parameters,
// applying defaults for every omitted field.
func (in RetrievalInput) queryParameters() domain.QueryParameters {
	params := domain.NewQueryParameters(in.Question)
	params.DatasetIDs = in.DatasetIDs
	params.DocumentIDs = in.DocumentIDs
	params.Keyword = in.Keyword
	params.RerankID = in.RerankID
	params.ForceRefresh = in.ForceRefresh

	if in.Page != nil {
		params.Page = *in.Page
	}
	if in.PageSize != nil {
		params.PageSize = *in.PageSize
	}
	if in.SimilarityThreshold != nil {
		params.SimilarityThreshold = *in.SimilarityThreshold
	}
	if in.VectorWeight != nil {
		params.VectorWeight = *in.VectorWeight
	}
	if in.TopK != nil {
		params.TopK = *in.TopK
	}
	return params
}

// RetrievalOutput is the output schema for the retrieval tool.
type RetrievalOutput struct {
	Chunks     []ChunkOutput    `json:"chunks"`
	Pagination PaginationOutput `json:"pagination"`
	QueryInfo  QueryInfoOutput  `json:"query_info"`
	Message    string           `json:"message,omitempty"`
}

// ChunkOutput represents a single retrieved chunk.
type ChunkOutput struct {
	ID                string   `json:"id"`
	DocumentID        string   `json:"document_id"`
	DatasetID         string   `json:"dataset_id"`
	DocumentName      string   `json:"document_name,omitempty"`
	Content           string   `json:"content"`
	ProcessedContent  string   `json:"processed_content,omitempty"`
	Highlight         string   `json:"highlight,omitempty"`
	ImportantKeywords []string `json:"important_keywords,omitempty"`
	Positions         []string `json:"positions,omitempty"`
	Similarity        float64  `json:"similarity"`
	TermSimilarity    float64  `json:"term_similarity"`
	VectorSimilarity  float64  `json:"vector_similarity"`
}

// PaginationOutput describes the result window of a retrieval.
type PaginationOutput struct {
	Page        int `json:"page"`
	PageSize    int `json:"page_size"`
	TotalChunks int `json:"total_chunks"`
	TotalPages  int `json:"total_pages"`
}

// QueryInfoOutput echoes the effective parameters the search ran with.
type QueryInfoOutput struct {
	Question            string  `json:"question"`
	SimilarityThreshold float64 `json:"similarity_threshold"`
	VectorWeight        float64 `json:"vector_weight"`
	KeywordSearch       bool    `json:"keyword_search"`
	DatasetCount        int     `json:"dataset_count"`
}

// ListDatasetsInput is the input schema for the dataset listing tool.
type ListDatasetsInput struct {
	ForceRefresh bool `json:"force_refresh,omitempty" jsonschema:"bypass cached dataset metadata and fetch a fresh listing"`
}

// ListDatasetsOutput is the output schema for the dataset listing tool.
type ListDatasetsOutput struct {
	Datasets []DatasetOutput `json:"datasets"`
	Total    int             `json:"total"`
}

// DatasetOutput represents a single dataset.
type DatasetOutput struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	DocumentCount int    `json:"document_count"`
	ChunkCount    int    `json:"chunk_count"`
}

// HealthCheckInput is the input schema for the health check tool.
type HealthCheckInput struct{}

// HealthCheckOutput is the output schema for the health check tool.
type HealthCheckOutput struct {
	Status        string `json:"status"`
	BackendURL    string `json:"backend_url"`
	Connection    string `json:"connection"`
	DatasetsCount int    `json:"datasets_count"`
	Error         string `json:"error,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolRetrieval,
		Description: "Search RAGFlow datasets and retrieve relevant document chunks for a given question. Supports filtering by dataset/document IDs and advanced search parameters.",
	}, s.handleRetrieval)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolListDatasets,
		Description: "List the datasets available on the RAGFlow backend, with document and chunk counts.",
	}, s.handleListDatasets)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolHealthCheck,
		Description: "Check connectivity to the RAGFlow backend. Always returns a status report, never fails.",
	}, s.handleHealthCheck)
}

// handleRetrieval handles the retrieval tool invocation.
func (s *Server) handleRetrieval(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RetrievalInput,
) (*mcp.CallToolResult, RetrievalOutput, error) {
	log := s.logger.With(
		zap.String("tool", toolRetrieval),
		zap.String("call_id", uuid.NewString()))

	result, err := s.ports.Retrieval.Retrieve(ctx, input.queryParameters())
	if err != nil {
		log.Warn("retrieval failed", zap.Error(err))
		return toolErrorResult(err), RetrievalOutput{}, nil
	}

	log.Info("retrieval completed",
		zap.Int("chunks", len(result.Chunks)),
		zap.Int("total_chunks", result.Pagination.TotalChunks))

	return nil, retrievalOutput(result), nil
}

// handleListDatasets handles the dataset listing tool invocation.
func (s *Server) handleListDatasets(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListDatasetsInput,
) (*mcp.CallToolResult, ListDatasetsOutput, error) {
	log := s.logger.With(
		zap.String("tool", toolListDatasets),
		zap.String("call_id", uuid.NewString()))

	catalog, err := s.ports.Datasets.List(ctx, input.ForceRefresh)
	if err != nil {
		log.Warn("dataset listing failed", zap.Error(err))
		return toolErrorResult(err), ListDatasetsOutput{}, nil
	}

	log.Info("dataset listing completed", zap.Int("datasets", len(catalog.Datasets)))

	return nil, datasetListOutput(catalog), nil
}

// handleHealthCheck handles the health check tool invocation.
// It never reports a tool error; probe failures are part of the report.
func (s *Server) handleHealthCheck(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ HealthCheckInput,
) (*mcp.CallToolResult, HealthCheckOutput, error) {
	log := s.logger.With(
		zap.String("tool", toolHealthCheck),
		zap.String("call_id", uuid.NewString()))

	report := s.ports.Health.Check(ctx)
	log.Info("health check completed",
		zap.String("status", string(report.Status)),
		zap.String("connection", report.Connection))

	return nil, HealthCheckOutput{
		Status:        string(report.Status),
		BackendURL:    report.BackendURL,
		Connection:    report.Connection,
		DatasetsCount: report.DatasetsCount,
		Error:         report.Error,
	}, nil
}

// retrievalOutput converts a domain result into its wire form.
func retrievalOutput(result *domain.RetrievalResult) RetrievalOutput {
	chunks := make([]ChunkOutput, len(result.Chunks))
	for i := range result.Chunks {
		chunks[i] = chunkOutput(result.Chunks[i])
	}

	return RetrievalOutput{
		Chunks: chunks,
		Pagination: PaginationOutput{
			Page:        result.Pagination.Page,
			PageSize:    result.Pagination.PageSize,
			TotalChunks: result.Pagination.TotalChunks,
			TotalPages:  result.Pagination.TotalPages,
		},
		QueryInfo: QueryInfoOutput{
			Question:            result.QueryInfo.Question,
			SimilarityThreshold: result.QueryInfo.SimilarityThreshold,
			VectorWeight:        result.QueryInfo.VectorWeight,
			KeywordSearch:       result.QueryInfo.KeywordSearch,
			DatasetCount:        result.QueryInfo.DatasetCount,
		},
		Message: result.Message,
	}
}

func chunkOutput(c domain.Chunk) ChunkOutput {
	return ChunkOutput{
		ID:                c.ID,
		DocumentID:        c.DocumentID,
		DatasetID:         c.DatasetID,
		DocumentName:      c.DocumentName,
		Content:           c.Content,
		ProcessedContent:  c.ProcessedContent,
		Highlight:         c.Highlight,
		ImportantKeywords: c.ImportantKeywords,
		Positions:         c.Positions,
		Similarity:        c.Similarity,
		TermSimilarity:    c.TermSimilarity,
		VectorSimilarity:  c.VectorSimilarity,
	}
}

func datasetListOutput(catalog domain.DatasetList) ListDatasetsOutput {
	datasets := make([]DatasetOutput, len(catalog.Datasets))
	for i, d := range catalog.Datasets {
		datasets[i] = DatasetOutput{
			ID:            d.ID,
			Name:          d.Name,
			Description:   d.Description,
			DocumentCount: d.DocumentCount,
			ChunkCount:    d.ChunkCount,
		}
	}
	return ListDatasetsOutput{Datasets: datasets, Total: catalog.Total}
}
