package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Inspect RAGFlow datasets",
	Long:  `List the datasets visible to the configured API key and browse their documents.`,
	RunE:  runDatasetsList,
}

var datasetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available datasets",
	RunE:  runDatasetsList,
}

var datasetsDocsCmd = &cobra.Command{
	Use:   "docs [dataset-id]",
	Short: "List documents in a dataset",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetsDocs,
}

var (
	datasetsForceRefresh bool
	datasetsJSON         bool
	docsKeywords         string
	docsPage             int
	docsPageSize         int
)

func init() {
	datasetsCmd.PersistentFlags().BoolVar(&datasetsForceRefresh, "force-refresh", false, "bypass cached metadata")
	datasetsCmd.PersistentFlags().BoolVar(&datasetsJSON, "json", false, "output as JSON")

	datasetsDocsCmd.Flags().StringVar(&docsKeywords, "keywords", "", "filter documents by name keywords")
	datasetsDocsCmd.Flags().IntVar(&docsPage, "page", domain.DefaultPage, "result page, 1-indexed")
	datasetsDocsCmd.Flags().IntVarP(&docsPageSize, "page-size", "n", domain.DefaultPageSize, "documents per page")

	datasetsCmd.AddCommand(datasetsListCmd)
	datasetsCmd.AddCommand(datasetsDocsCmd)
	rootCmd.AddCommand(datasetsCmd)
}

func runDatasetsList(cmd *cobra.Command, _ []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	ctx := context.Background()

	catalog, err := datasetService.List(ctx, datasetsForceRefresh)
	if err != nil {
		return fmt.Errorf("failed to list datasets: %w", err)
	}

	if datasetsJSON {
		data, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal datasets: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(catalog.Datasets) == 0 {
		cmd.Println("No datasets found.")
		return nil
	}

	cmd.Println("Datasets:")
	cmd.Println()
	for i := range catalog.Datasets {
		ds := &catalog.Datasets[i]
		cmd.Printf("  %s\n", ds.ID)
		cmd.Printf("    Name: %s\n", ds.Name)
		if ds.Description != "" {
			cmd.Printf("    Description: %s\n", ds.Description)
		}
		cmd.Printf("    Documents: %d, Chunks: %d\n", ds.DocumentCount, ds.ChunkCount)
		cmd.Println()
	}

	cmd.Printf("Total: %d datasets\n", len(catalog.Datasets))
	return nil
}

func runDatasetsDocs(cmd *cobra.Command, args []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	datasetID := args[0]
	ctx := context.Background()

	docs, err := datasetService.ListDocuments(ctx, datasetID, docsKeywords, docsPage, docsPageSize, datasetsForceRefresh)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if datasetsJSON {
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal documents: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(docs.Documents) == 0 {
		cmd.Printf("No documents found in dataset: %s\n", datasetID)
		return nil
	}

	cmd.Printf("Documents in dataset %s:\n\n", datasetID)
	for i := range docs.Documents {
		doc := &docs.Documents[i]
		cmd.Printf("  %s\n", doc.ID)
		cmd.Printf("    Name: %s\n", doc.Name)
		cmd.Printf("    Chunks: %d\n", doc.ChunkCount)
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", docs.Total)
	return nil
}
