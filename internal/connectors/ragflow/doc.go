// Package ragflow implements the client for the RAGFlow retrieval backend.
//
// RAGFlow exposes a REST API for dataset management and chunk retrieval.
// This package owns all communication with it: connection pooling, bearer
// authentication, request throttling, and the mapping of wire responses
// onto domain types.
//
// # Architecture
//
// The client implements the driven port pattern defined in [driven.Backend].
// It comprises the following components:
//
//   - Client: pooled HTTP access with lazy initialisation
//   - Config: connection parameters with applied defaults
//   - RateLimiter: proactive throttling plus reactive backoff on 429
//
// # Authentication
//
// Every request carries an API key as a bearer token. Keys are created in
// the RAGFlow web console under API settings. The key is injected by an
// oauth2.Transport wrapping the pooled transport, so no request path ever
// formats the header by hand.
//
// # Connection Pooling
//
// The pool is created on first use, not at construction, so building a
// client is free and configuration errors surface before any socket is
// opened. Limits follow the backend's recommended client settings:
// 100 connections total, 10 per host, idle connections kept for five
// minutes. Connects are bounded separately from full requests, which
// makes unreachable-backend failures cheap to detect.
//
// # Error Handling
//
// The client separates two failure classes and never retries either:
//
//   - [domain.BackendUnavailableError]: the backend could not be reached
//     (connection refused, connect timeout, DNS failure)
//   - [domain.BackendError]: the backend answered with a non-2xx status
//     or an error envelope
//
// Retry policy lives with the caller; see the retrieval service.
//
// # Response Envelope
//
// Every RAGFlow response wraps its payload as {"code", "message", "data"}.
// A zero code means success. Non-zero codes are surfaced as
// [domain.BackendError] carrying the backend's message, even when the
// HTTP status is 200.
package ragflow
