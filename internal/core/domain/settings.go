package domain

const unknownDescription = "Unknown"

// LogLevel controls logging verbosity.
type LogLevel string

// Available log levels.
const (
	// LogLevelDebug enables development-style verbose logging.
	LogLevelDebug LogLevel = "debug"

	// LogLevelInfo is the production default.
	LogLevelInfo LogLevel = "info"

	// LogLevelWarn logs only degraded operation.
	LogLevelWarn LogLevel = "warn"

	// LogLevelError logs only failures.
	LogLevelError LogLevel = "error"
)

// IsValid returns true if the log level is recognised.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l LogLevel) String() string {
	return string(l)
}

// Description returns a human-readable description of the level.
func (l LogLevel) Description() string {
	switch l {
	case LogLevelDebug:
		return "Debug (verbose, development)"
	case LogLevelInfo:
		return "Info (production default)"
	case LogLevelWarn:
		return "Warn (degraded operation only)"
	case LogLevelError:
		return "Error (failures only)"
	default:
		return unknownDescription
	}
}

// AllLogLevels returns all available log levels.
func AllLogLevels() []LogLevel {
	return []LogLevel{
		LogLevelDebug,
		LogLevelInfo,
		LogLevelWarn,
		LogLevelError,
	}
}

// BackendSettings holds the connection configuration for the retrieval backend.
type BackendSettings struct {
	// BaseURL is the backend address, without the API path prefix.
	BaseURL string

	// APIKey is the bearer credential for all backend calls.
	APIKey string

	// TimeoutSeconds bounds each backend request.
	TimeoutSeconds int

	// RateLimitRPS caps outbound requests per second. Zero disables
	// client-side throttling.
	RateLimitRPS float64
}

// IsConfigured returns true if the backend connection is set up.
func (b BackendSettings) IsConfigured() bool {
	return b.BaseURL != "" && b.APIKey != ""
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Backend holds the retrieval backend connection settings.
	Backend BackendSettings

	// LogLevel is the logging verbosity.
	LogLevel LogLevel
}

// DefaultAppSettings returns settings with sensible defaults.
// The API key is left empty and must be configured explicitly.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Backend: BackendSettings{
			BaseURL:        "http://127.0.0.1:9380",
			TimeoutSeconds: 30,
			RateLimitRPS:   10,
		},
		LogLevel: LogLevelInfo,
	}
}
