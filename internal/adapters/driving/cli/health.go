package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

var healthJSON bool

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check connectivity to the RAGFlow backend",
	Long: `Probes the RAGFlow API with the configured credentials and reports
whether the backend is reachable. Exits non-zero when the probe fails.`,
	RunE: runHealth,
}

func init() {
	healthCmd.Flags().BoolVar(&healthJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	if healthService == nil {
		return errors.New("health service not configured")
	}

	ctx := context.Background()

	report := healthService.Check(ctx)

	if healthJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
	} else {
		cmd.Printf("Status:     %s\n", report.Status)
		cmd.Printf("Backend:    %s\n", report.BackendURL)
		cmd.Printf("Connection: %s\n", report.Connection)
		if report.Status == domain.HealthStatusOK {
			cmd.Printf("Datasets:   %d\n", report.DatasetsCount)
		}
		if report.Error != "" {
			cmd.Printf("Error:      %s\n", report.Error)
		}
	}

	if report.Status != domain.HealthStatusOK {
		return errors.New("backend health check failed")
	}
	return nil
}
