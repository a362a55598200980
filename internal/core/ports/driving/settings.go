package driving

import "github.com/trafflux/ragflow-mcp-go/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetBaseURL updates the backend base URL.
	SetBaseURL(url string) error

	// SetAPIKey updates the backend API key.
	SetAPIKey(key string) error

	// SetLogLevel updates the logging verbosity.
	SetLogLevel(level domain.LogLevel) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Validate checks if current settings allow backend calls.
	Validate() error
}
