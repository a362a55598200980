package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage connector configuration",
	Long: `View and configure the RAGFlow backend connection and logging.

Settings are stored in a TOML file under the user config directory. The
RAGFLOW_BASE_URL, RAGFLOW_API_KEY, and RAGFLOW_LOG_LEVEL environment
variables override stored values at runtime without changing the file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetURLCmd = &cobra.Command{
	Use:   "set-url [url]",
	Short: "Set the backend base URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetURL,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Set the backend API key",
	Long:  `Prompts for the API key without echoing it to the terminal.`,
	RunE:  runConfigSetKey,
}

var configSetLogLevelCmd = &cobra.Command{
	Use:   "set-log-level [level]",
	Short: "Set the logging verbosity",
	Long:  `Set the logging verbosity. Valid levels: debug, info, warn, error.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetLogLevel,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetURLCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configSetLogLevelCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()

	cmd.Println("[Backend]")
	cmd.Printf("  Base URL: %s\n", settings.Backend.BaseURL)
	if settings.Backend.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Backend.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Timeout: %ds\n", settings.Backend.TimeoutSeconds)
	cmd.Printf("  Rate limit: %g req/s\n", settings.Backend.RateLimitRPS)
	status := "configured"
	if !settings.Backend.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Logging]")
	cmd.Printf("  Level: %s\n", settings.LogLevel.Description())
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'ragflow-mcp config set-url' and 'ragflow-mcp config set-key' to fix.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runConfigSetURL(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetBaseURL(args[0]); err != nil {
		return fmt.Errorf("failed to set base URL: %w", err)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Printf("Base URL set to: %s\n", settings.Backend.BaseURL)
	return nil
}

func runConfigSetKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("Enter API key: ")
	apiKey := readPassword()
	cmd.Println()
	if apiKey == "" {
		return errors.New("API key cannot be empty")
	}

	if err := settingsService.SetAPIKey(apiKey); err != nil {
		return fmt.Errorf("failed to set API key: %w", err)
	}

	cmd.Printf("API key set: %s\n", maskAPIKey(apiKey))
	return nil
}

func runConfigSetLogLevel(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	level := domain.LogLevel(strings.ToLower(args[0]))
	if !level.IsValid() {
		levels := make([]string, 0, len(domain.AllLogLevels()))
		for _, l := range domain.AllLogLevels() {
			levels = append(levels, l.String())
		}
		return fmt.Errorf("invalid log level %q (valid: %s)", args[0], strings.Join(levels, ", "))
	}

	if err := settingsService.SetLogLevel(level); err != nil {
		return fmt.Errorf("failed to set log level: %w", err)
	}

	cmd.Printf("Log level set to: %s\n", level.Description())
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
