package domain

// Document represents a file indexed within a backend dataset.
// A document belongs to exactly one dataset, referenced by ID.
type Document struct {
	// ID is the backend-assigned document identifier.
	ID string

	// DatasetID is the identifier of the owning dataset.
	DatasetID string

	// Name is the display name of the document, usually the filename.
	Name string

	// ChunkCount is the number of chunks the backend split the
	// document into, when reported.
	ChunkCount int
}

// DocumentList is a page of documents together with the backend's total count.
type DocumentList struct {
	// Documents holds the documents of the requested dataset page.
	Documents []Document

	// Total is the backend-reported total document count for the dataset.
	Total int
}
