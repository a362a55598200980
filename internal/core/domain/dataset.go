package domain

// Dataset represents a document collection hosted on the retrieval backend.
// Datasets are read-only from the connector's perspective: fetched, cached,
// and replaced wholesale on refresh, never mutated field by field.
type Dataset struct {
	// ID is the backend-assigned dataset identifier.
	ID string

	// Name is the human-readable dataset name.
	Name string

	// Description is the optional dataset description.
	Description string

	// DocumentCount is the number of documents in the dataset,
	// when the backend reports it.
	DocumentCount int

	// ChunkCount is the number of indexed chunks in the dataset,
	// when the backend reports it.
	ChunkCount int
}

// DatasetList is a page of datasets together with the backend's total count.
type DatasetList struct {
	// Datasets holds the datasets visible to the configured credential.
	Datasets []Dataset

	// Total is the backend-reported total dataset count.
	Total int
}

// IDs returns the identifiers of all datasets in the list.
func (l DatasetList) IDs() []string {
	ids := make([]string, 0, len(l.Datasets))
	for _, d := range l.Datasets {
		ids = append(ids, d.ID)
	}
	return ids
}
