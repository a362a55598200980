// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Backend: Lists datasets and documents and runs retrieval on the
//     remote RAGFlow instance
//   - MetadataCache: Bounded TTL cache for dataset and document listings
//   - ConfigStore: Application configuration persistence
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
