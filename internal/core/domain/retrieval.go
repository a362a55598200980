package domain

// Pagination describes the window a retrieval result covers.
type Pagination struct {
	// Page is the 1-based page number of this result.
	Page int

	// PageSize is the requested number of chunks per page.
	PageSize int

	// TotalChunks is the backend-reported total matching chunk count.
	TotalChunks int

	// TotalPages is the number of pages needed to cover TotalChunks.
	TotalPages int
}

// NewPagination derives the pagination envelope for a result window.
// TotalPages is the ceiling of total over pageSize.
func NewPagination(page, pageSize, total int) Pagination {
	pages := 0
	if pageSize > 0 {
		pages = (total + pageSize - 1) / pageSize
	}
	return Pagination{
		Page:        page,
		PageSize:    pageSize,
		TotalChunks: total,
		TotalPages:  pages,
	}
}

// QueryInfo echoes the effective parameters a retrieval ran with,
// so clients can see which defaults were applied.
type QueryInfo struct {
	// Question is the query text as searched.
	Question string

	// SimilarityThreshold is the effective score cutoff.
	SimilarityThreshold float64

	// VectorWeight is the effective vector score share.
	VectorWeight float64

	// KeywordSearch reports whether keyword matching was enabled.
	KeywordSearch bool

	// DatasetCount is the number of datasets the search covered.
	DatasetCount int
}

// RetrievalResult is the normalised outcome of one retrieval request.
type RetrievalResult struct {
	// Chunks holds the scored chunks of the requested page.
	Chunks []Chunk

	// Pagination describes the result window.
	Pagination Pagination

	// QueryInfo echoes the effective query parameters.
	QueryInfo QueryInfo

	// Message carries a human-readable note for empty results.
	Message string
}
