package domain

import "strings"

// Retrieval request defaults and limits.
const (
	// DefaultPage is the first result page.
	DefaultPage = 1

	// DefaultPageSize is the number of chunks per page when unspecified.
	DefaultPageSize = 10

	// MaxPageSize caps the chunks returned per page.
	MaxPageSize = 100

	// DefaultSimilarityThreshold filters out chunks scoring below it.
	DefaultSimilarityThreshold = 0.2

	// DefaultVectorWeight is the share of the combined score taken from
	// vector similarity. The term share is the complement.
	DefaultVectorWeight = 0.3

	// DefaultTopK is the candidate pool size the backend ranks before
	// paginating.
	DefaultTopK = 1024
)

// QueryParameters describes a single retrieval request.
// Construct with NewQueryParameters to pick up defaults, then override
// individual fields before calling Validate.
type QueryParameters struct {
	// Question is the natural-language query. Required.
	Question string

	// DatasetIDs restricts the search to specific datasets.
	// Empty means all datasets visible to the credential.
	DatasetIDs []string

	// DocumentIDs restricts the search to specific documents.
	DocumentIDs []string

	// Page is the 1-based result page.
	Page int

	// PageSize is the number of chunks per page, at most MaxPageSize.
	PageSize int

	// SimilarityThreshold drops chunks scoring below it, in [0, 1].
	SimilarityThreshold float64

	// VectorWeight is the vector share of the combined score, in [0, 1].
	VectorWeight float64

	// Keyword enables keyword-based matching alongside similarity.
	Keyword bool

	// TopK is the candidate pool size ranked by the backend.
	TopK int

	// RerankID names a backend reranking model. Empty disables reranking.
	RerankID string

	// ForceRefresh bypasses cached dataset metadata for this request.
	ForceRefresh bool
}

// NewQueryParameters returns parameters for question with all defaults applied.
func NewQueryParameters(question string) QueryParameters {
	return QueryParameters{
		Question:            question,
		Page:                DefaultPage,
		PageSize:            DefaultPageSize,
		SimilarityThreshold: DefaultSimilarityThreshold,
		VectorWeight:        DefaultVectorWeight,
		TopK:                DefaultTopK,
	}
}

// TermWeight returns the keyword share of the combined score.
func (p QueryParameters) TermWeight() float64 {
	return 1 - p.VectorWeight
}

// Validate checks every parameter range and returns an InvalidArgumentError
// for the first violation. It performs no I/O.
func (p QueryParameters) Validate() error {
	if strings.TrimSpace(p.Question) == "" {
		return &InvalidArgumentError{Field: "question", Reason: "must not be empty"}
	}
	if p.Page < 1 {
		return &InvalidArgumentError{Field: "page", Reason: "must be at least 1"}
	}
	if p.PageSize < 1 {
		return &InvalidArgumentError{Field: "page_size", Reason: "must be at least 1"}
	}
	if p.PageSize > MaxPageSize {
		return &InvalidArgumentError{Field: "page_size", Reason: "must not exceed 100"}
	}
	if p.SimilarityThreshold < 0 || p.SimilarityThreshold > 1 {
		return &InvalidArgumentError{Field: "similarity_threshold", Reason: "must be between 0 and 1"}
	}
	if p.VectorWeight < 0 || p.VectorWeight > 1 {
		return &InvalidArgumentError{Field: "vector_similarity_weight", Reason: "must be between 0 and 1"}
	}
	if p.TopK < 1 {
		return &InvalidArgumentError{Field: "top_k", Reason: "must be at least 1"}
	}
	return nil
}
