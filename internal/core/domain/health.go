package domain

// HealthStatus summarises backend reachability.
type HealthStatus string

const (
	// HealthStatusOK means the backend answered the probe.
	HealthStatusOK HealthStatus = "ok"

	// HealthStatusError means the probe failed.
	HealthStatusError HealthStatus = "error"
)

// Connection states reported by a health probe.
const (
	// ConnectionUp means the backend accepted a request.
	ConnectionUp = "up"

	// ConnectionDown means the backend could not be reached.
	ConnectionDown = "down"
)

// HealthReport is the outcome of a backend health probe.
// A report is always produced; probe failures are carried in the
// report itself, never raised as errors.
type HealthReport struct {
	// Status is the overall probe outcome.
	Status HealthStatus

	// BackendURL is the configured backend base URL.
	BackendURL string

	// Connection is the reachability state, ConnectionUp or ConnectionDown.
	Connection string

	// DatasetsCount is the number of visible datasets when the probe
	// succeeded.
	DatasetsCount int

	// Error describes the failure when Status is HealthStatusError.
	Error string
}
