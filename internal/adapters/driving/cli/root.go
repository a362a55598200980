// Package cli implements the ragflow-mcp command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/trafflux/ragflow-mcp-go/internal/adapters/driven/cache/memory"
	"github.com/trafflux/ragflow-mcp-go/internal/adapters/driven/config/file"
	"github.com/trafflux/ragflow-mcp-go/internal/connectors/ragflow"
	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
	"github.com/trafflux/ragflow-mcp-go/internal/core/ports/driving"
	"github.com/trafflux/ragflow-mcp-go/internal/core/services"
	"github.com/trafflux/ragflow-mcp-go/internal/logger"
)

// version is the build version, overridden at release time via
// -ldflags "-X .../internal/adapters/driving/cli.version=v1.2.3".
var version = "dev"

// Environment variables honoured at startup. They take precedence over
// the stored configuration, so containerised deployments can run without
// a config file.
const (
	envBaseURL      = "RAGFLOW_BASE_URL"
	envAPIKey       = "RAGFLOW_API_KEY" //nolint:gosec // G101: variable name, not a credential
	envTimeout      = "RAGFLOW_TIMEOUT_SECONDS"
	envRateLimitRPS = "RAGFLOW_RATE_LIMIT_RPS"
	envLogLevel     = "RAGFLOW_LOG_LEVEL"
)

// Services wired by initServices. Package-level so commands can reach
// them and tests can swap in mocks.
var (
	settingsService  driving.SettingsService
	retrievalService driving.RetrievalService
	datasetService   driving.DatasetService
	healthService    driving.HealthService

	appLogger     = zap.NewNop()
	backendClient *ragflow.Client
)

var rootCmd = &cobra.Command{
	Use:   "ragflow-mcp",
	Short: "RAGFlow retrieval connector for MCP clients",
	Long: `ragflow-mcp bridges AI assistants to a RAGFlow backend over the
Model Context Protocol. It exposes similarity search, dataset listings
and health checks as MCP tools, and offers the same operations directly
on the command line.`,
	SilenceUsage: true,
}

// Execute wires the application services and runs the root command.
// It blocks until the invoked command returns or a shutdown signal fires.
func Execute() error {
	if err := initServices(); err != nil {
		return err
	}
	defer closeServices()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

// initServices builds the service graph from stored settings and
// environment overrides. When the backend is not configured yet, the
// backend-dependent services stay nil so that config and version
// commands still work.
func initServices() error {
	store, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	settingsService = services.NewSettingsService(store)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	applyEnvOverrides(settings)

	appLogger = logger.Must(settings.LogLevel)

	if !settings.Backend.IsConfigured() {
		appLogger.Debug("backend not configured, only config commands available")
		return nil
	}

	client, err := ragflow.NewClient(ragflow.Config{
		BaseURL:      settings.Backend.BaseURL,
		APIKey:       settings.Backend.APIKey,
		Timeout:      time.Duration(settings.Backend.TimeoutSeconds) * time.Second,
		RateLimitRPS: settings.Backend.RateLimitRPS,
		Logger:       appLogger,
	})
	if err != nil {
		return fmt.Errorf("creating backend client: %w", err)
	}
	backendClient = client

	datasetCache, err := memory.New[domain.DatasetList](memory.DefaultDatasetCapacity, memory.DefaultTTL)
	if err != nil {
		return fmt.Errorf("creating dataset cache: %w", err)
	}
	documentCache, err := memory.New[domain.DocumentList](memory.DefaultDocumentCapacity, memory.DefaultTTL)
	if err != nil {
		return fmt.Errorf("creating document cache: %w", err)
	}

	retrievalService = services.NewRetrievalService(client, datasetCache, appLogger)
	datasetService = services.NewDatasetService(client, datasetCache, documentCache, appLogger)
	healthService = services.NewHealthService(datasetService, client.BaseURL(), appLogger)

	return nil
}

// applyEnvOverrides overlays environment values onto the loaded settings.
// Overrides are runtime-only and never written back to the config file.
func applyEnvOverrides(settings *domain.AppSettings) {
	if v := os.Getenv(envBaseURL); v != "" {
		settings.Backend.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv(envAPIKey); v != "" {
		settings.Backend.APIKey = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			settings.Backend.TimeoutSeconds = seconds
		}
	}
	if v := os.Getenv(envRateLimitRPS); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil && rps >= 0 {
			settings.Backend.RateLimitRPS = rps
		}
	}
	if v := os.Getenv(envLogLevel); v != "" {
		if level := domain.LogLevel(strings.ToLower(v)); level.IsValid() {
			settings.LogLevel = level
		}
	}
}

func closeServices() {
	if backendClient != nil {
		backendClient.Close() //nolint:errcheck
	}
	appLogger.Sync() //nolint:errcheck
}
