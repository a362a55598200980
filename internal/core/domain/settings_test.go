package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLogLevel_IsValid tests log level recognition
func TestLogLevel_IsValid(t *testing.T) {
	for _, level := range AllLogLevels() {
		t.Run(level.String(), func(t *testing.T) {
			assert.True(t, level.IsValid())
		})
	}

	assert.False(t, LogLevel("trace").IsValid())
	assert.False(t, LogLevel("").IsValid())
}

// TestLogLevel_Description tests descriptions exist for every level
func TestLogLevel_Description(t *testing.T) {
	for _, level := range AllLogLevels() {
		assert.NotEqual(t, unknownDescription, level.Description())
	}
	assert.Equal(t, unknownDescription, LogLevel("bogus").Description())
}

// TestBackendSettings_IsConfigured tests the configuration predicate
func TestBackendSettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings BackendSettings
		want     bool
	}{
		{"empty", BackendSettings{}, false},
		{"url only", BackendSettings{BaseURL: "http://127.0.0.1:9380"}, false},
		{"key only", BackendSettings{APIKey: "ragflow-abc"}, false},
		{"both", BackendSettings{BaseURL: "http://127.0.0.1:9380", APIKey: "ragflow-abc"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.IsConfigured())
		})
	}
}

// TestDefaultAppSettings tests the defaults leave the key unset
func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, "http://127.0.0.1:9380", settings.Backend.BaseURL)
	assert.Empty(t, settings.Backend.APIKey)
	assert.Equal(t, 30, settings.Backend.TimeoutSeconds)
	assert.Equal(t, float64(10), settings.Backend.RateLimitRPS)
	assert.Equal(t, LogLevelInfo, settings.LogLevel)
	assert.False(t, settings.Backend.IsConfigured())
}
