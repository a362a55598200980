package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trafflux/ragflow-mcp-go/internal/adapters/driving/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop, the Docker MCP gateway and other MCP clients.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  ragflow-mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  ragflow-mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "ragflow": {
        "command": "/path/to/ragflow-mcp",
        "args": ["serve"],
        "env": {
          "RAGFLOW_BASE_URL": "http://ragflow:9380",
          "RAGFLOW_API_KEY": "your-api-key"
        }
      }
    }
  }`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	if retrievalService == nil || datasetService == nil || healthService == nil {
		return errors.New("backend not configured: set " + envBaseURL + " and " + envAPIKey +
			" or run 'ragflow-mcp config set-url' and 'ragflow-mcp config set-key'")
	}

	ports := &mcp.Ports{
		Retrieval: retrievalService,
		Datasets:  datasetService,
		Health:    healthService,
		Logger:    appLogger,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	// Stdio mode: stdout belongs to the protocol, so no banner here.
	return server.Run(cmd.Context())
}
