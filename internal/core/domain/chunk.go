package domain

// Chunk represents a scored retrieval unit returned by a search.
// Chunks are request-scoped: they are never cached and only reference
// documents and datasets the backend returned for the same query.
type Chunk struct {
	// ID is the backend-assigned chunk identifier.
	ID string

	// DocumentID is the identifier of the document this chunk belongs to.
	DocumentID string

	// DatasetID is the identifier of the dataset this chunk belongs to.
	DatasetID string

	// DocumentName is the display name of the owning document.
	DocumentName string

	// Content is the raw chunk text.
	Content string

	// ProcessedContent is the backend's tokenised form of the content,
	// when provided.
	ProcessedContent string

	// Highlight is the content with query terms marked up, when the
	// backend computed highlights.
	Highlight string

	// ImportantKeywords are backend-extracted keywords for the chunk.
	ImportantKeywords []string

	// Positions locate the chunk within the source document layout.
	Positions []string

	// Similarity is the combined relevance score in [0, 1].
	Similarity float64

	// TermSimilarity is the keyword relevance score in [0, 1].
	TermSimilarity float64

	// VectorSimilarity is the embedding relevance score in [0, 1].
	VectorSimilarity float64
}

// ChunkList is a page of scored chunks together with the backend's total
// match count.
type ChunkList struct {
	// Chunks holds the scored chunks of the requested page.
	Chunks []Chunk

	// Total is the backend-reported count of all matching chunks.
	Total int
}
