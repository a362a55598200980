package ragflow

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

// datasetDTO is the wire form of a dataset in list responses.
type datasetDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	DocumentCount int    `json:"document_count"`
	ChunkCount    int    `json:"chunk_count"`
}

func (d datasetDTO) toDomain() domain.Dataset {
	return domain.Dataset{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		DocumentCount: d.DocumentCount,
		ChunkCount:    d.ChunkCount,
	}
}

// documentDTO is the wire form of a document in list responses.
type documentDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ChunkCount int    `json:"chunk_count"`
}

// toDomain binds the document to its dataset. The dataset id comes from
// the request, not the payload; backend versions disagree on its field name.
func (d documentDTO) toDomain(datasetID string) domain.Document {
	return domain.Document{
		ID:         d.ID,
		DatasetID:  datasetID,
		Name:       d.Name,
		ChunkCount: d.ChunkCount,
	}
}

// documentsData is the data payload of a document listing.
type documentsData struct {
	Docs  []documentDTO `json:"docs"`
	Total int           `json:"total"`
}

// retrievalRequest is the body of a retrieval call.
type retrievalRequest struct {
	Question               string   `json:"question"`
	DatasetIDs             []string `json:"dataset_ids"`
	DocumentIDs            []string `json:"document_ids,omitempty"`
	Page                   int      `json:"page"`
	PageSize               int      `json:"page_size"`
	SimilarityThreshold    float64  `json:"similarity_threshold"`
	VectorSimilarityWeight float64  `json:"vector_similarity_weight"`
	Keyword                bool     `json:"keyword"`
	TopK                   int      `json:"top_k"`
	RerankID               string   `json:"rerank_id,omitempty"`
}

// chunkDTO is the wire form of a retrieved chunk.
type chunkDTO struct {
	ID                string            `json:"id"`
	DocumentID        string            `json:"document_id"`
	DocumentKeyword   string            `json:"document_keyword"`
	DatasetID         string            `json:"dataset_id"`
	KBID              string            `json:"kb_id"`
	Content           string            `json:"content"`
	ContentLtks       string            `json:"content_ltks"`
	Highlight         string            `json:"highlight"`
	ImportantKeywords []string          `json:"important_keywords"`
	Positions         []json.RawMessage `json:"positions"`
	Similarity        float64           `json:"similarity"`
	TermSimilarity    float64           `json:"term_similarity"`
	VectorSimilarity  float64           `json:"vector_similarity"`
}

func (ch chunkDTO) toDomain() domain.Chunk {
	datasetID := ch.DatasetID
	if datasetID == "" {
		datasetID = ch.KBID
	}
	return domain.Chunk{
		ID:                ch.ID,
		DocumentID:        ch.DocumentID,
		DatasetID:         datasetID,
		DocumentName:      ch.DocumentKeyword,
		Content:           ch.Content,
		ProcessedContent:  ch.ContentLtks,
		Highlight:         ch.Highlight,
		ImportantKeywords: ch.ImportantKeywords,
		Positions:         positionStrings(ch.Positions),
		Similarity:        clampScore(ch.Similarity),
		TermSimilarity:    clampScore(ch.TermSimilarity),
		VectorSimilarity:  clampScore(ch.VectorSimilarity),
	}
}

// retrievalData is the data payload of a retrieval call.
type retrievalData struct {
	Chunks []chunkDTO `json:"chunks"`
	Total  int        `json:"total"`
}

// ListDatasets returns one page of the datasets visible to the credential.
func (c *Client) ListDatasets(ctx context.Context, page, pageSize int) (domain.DatasetList, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}

	var dtos []datasetDTO
	if err := c.call(ctx, http.MethodGet, "/datasets", query, nil, &dtos); err != nil {
		return domain.DatasetList{}, fmt.Errorf("list datasets: %w", err)
	}

	datasets := make([]domain.Dataset, 0, len(dtos))
	for _, d := range dtos {
		datasets = append(datasets, d.toDomain())
	}
	return domain.DatasetList{Datasets: datasets, Total: len(datasets)}, nil
}

// ListDocuments returns one page of a dataset's documents, optionally
// filtered by a name keyword.
func (c *Client) ListDocuments(ctx context.Context, datasetID, keywords string, page, pageSize int) (domain.DocumentList, error) {
	if datasetID == "" {
		return domain.DocumentList{}, ErrEmptyDatasetID
	}

	query := url.Values{}
	if keywords != "" {
		query.Set("keywords", keywords)
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}

	var data documentsData
	path := "/datasets/" + url.PathEscape(datasetID) + "/documents"
	if err := c.call(ctx, http.MethodGet, path, query, nil, &data); err != nil {
		return domain.DocumentList{}, fmt.Errorf("list documents: %w", err)
	}

	docs := make([]domain.Document, 0, len(data.Docs))
	for _, d := range data.Docs {
		docs = append(docs, d.toDomain(datasetID))
	}
	total := data.Total
	if total == 0 {
		total = len(docs)
	}
	return domain.DocumentList{Documents: docs, Total: total}, nil
}

// Retrieve runs a chunk similarity search. Chunks come back normalised
// with scores clamped to be non-negative. The backend omits the total on
// some versions; it falls back to the page's chunk count.
func (c *Client) Retrieve(ctx context.Context, params domain.QueryParameters) (domain.ChunkList, error) {
	req := retrievalRequest{
		Question:               params.Question,
		DatasetIDs:             params.DatasetIDs,
		DocumentIDs:            params.DocumentIDs,
		Page:                   params.Page,
		PageSize:               params.PageSize,
		SimilarityThreshold:    params.SimilarityThreshold,
		VectorSimilarityWeight: params.VectorWeight,
		Keyword:                params.Keyword,
		TopK:                   params.TopK,
		RerankID:               params.RerankID,
	}

	var data retrievalData
	if err := c.call(ctx, http.MethodPost, "/retrieval", nil, req, &data); err != nil {
		return domain.ChunkList{}, fmt.Errorf("retrieval: %w", err)
	}

	chunks := make([]domain.Chunk, 0, len(data.Chunks))
	for _, ch := range data.Chunks {
		chunks = append(chunks, ch.toDomain())
	}
	total := data.Total
	if total == 0 {
		total = len(chunks)
	}
	return domain.ChunkList{Chunks: chunks, Total: total}, nil
}

// clampScore floors similarity scores at zero. Some backend versions
// emit small negative values for filtered-out candidates.
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	return score
}

// positionStrings renders position entries as strings. Backend versions
// emit either strings or coordinate arrays here.
func positionStrings(raw []json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			out = append(out, s)
			continue
		}
		out = append(out, string(r))
	}
	return out
}
