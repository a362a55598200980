// Package domain defines the core business entities for the RAGFlow connector.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Dataset: A document collection hosted on the retrieval backend
//   - Document: A file indexed within a dataset
//   - Chunk: A scored retrieval unit returned by a search
//   - QueryParameters: A validated retrieval request
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
