// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services never speak HTTP or MCP themselves; the backend connector
// and the caches are reached through their ports only.
package services
