package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
	"github.com/trafflux/ragflow-mcp-go/internal/core/ports/driven"
	"github.com/trafflux/ragflow-mcp-go/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyBackendBaseURL = "backend.base_url"
	keyBackendAPIKey  = "backend.api_key"
	keyBackendTimeout = "backend.timeout_seconds"
	keyBackendRateRPS = "backend.rate_limit_rps"
	keyLogLevel       = "log.level"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings, falling back to defaults
// for anything the config store does not hold.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Backend: domain.BackendSettings{
			BaseURL:        s.getString(keyBackendBaseURL, defaults.Backend.BaseURL),
			APIKey:         s.configStore.GetString(keyBackendAPIKey),
			TimeoutSeconds: s.getInt(keyBackendTimeout, defaults.Backend.TimeoutSeconds),
			RateLimitRPS:   s.getFloat(keyBackendRateRPS, defaults.Backend.RateLimitRPS),
		},
		LogLevel: s.getLogLevel(defaults.LogLevel),
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyBackendBaseURL, settings.Backend.BaseURL); err != nil {
		return fmt.Errorf("save backend base_url: %w", err)
	}
	// Never clobber a stored key with an empty value.
	if settings.Backend.APIKey != "" {
		if err := s.configStore.Set(keyBackendAPIKey, settings.Backend.APIKey); err != nil {
			return fmt.Errorf("save backend api_key: %w", err)
		}
	}
	if err := s.configStore.Set(keyBackendTimeout, settings.Backend.TimeoutSeconds); err != nil {
		return fmt.Errorf("save backend timeout_seconds: %w", err)
	}
	if err := s.configStore.Set(keyBackendRateRPS, settings.Backend.RateLimitRPS); err != nil {
		return fmt.Errorf("save backend rate_limit_rps: %w", err)
	}
	if err := s.configStore.Set(keyLogLevel, settings.LogLevel.String()); err != nil {
		return fmt.Errorf("save log level: %w", err)
	}

	return nil
}

// SetBaseURL updates the backend base URL.
func (s *SettingsService) SetBaseURL(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https, got %q", rawURL)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Backend.BaseURL = strings.TrimRight(rawURL, "/")

	return s.Save(settings)
}

// SetAPIKey updates the backend API key.
func (s *SettingsService) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("API key must not be empty")
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Backend.APIKey = key

	return s.Save(settings)
}

// SetLogLevel updates the logging verbosity.
func (s *SettingsService) SetLogLevel(level domain.LogLevel) error {
	if !level.IsValid() {
		return fmt.Errorf("invalid log level: %s", level)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.LogLevel = level

	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Validate checks if current settings allow backend calls.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.Backend.BaseURL == "" {
		return domain.ErrMissingBaseURL
	}
	if settings.Backend.APIKey == "" {
		return domain.ErrMissingAPIKey
	}
	if settings.Backend.TimeoutSeconds <= 0 {
		return fmt.Errorf("backend timeout must be positive, got %d", settings.Backend.TimeoutSeconds)
	}
	if !settings.LogLevel.IsValid() {
		return fmt.Errorf("invalid log level: %s", settings.LogLevel)
	}

	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getLogLevel(defaultVal domain.LogLevel) domain.LogLevel {
	val := s.configStore.GetString(keyLogLevel)
	if val == "" {
		return defaultVal
	}
	level := domain.LogLevel(val)
	if !level.IsValid() {
		return defaultVal
	}
	return level
}
