package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

var (
	searchDatasetIDs   []string
	searchDocumentIDs  []string
	searchPage         int
	searchPageSize     int
	searchThreshold    float64
	searchVectorWeight float64
	searchKeyword      bool
	searchTopK         int
	searchRerankID     string
	searchForceRefresh bool
	searchJSON         bool
)

var searchCmd = &cobra.Command{
	Use:   "search [question]",
	Short: "Search the RAGFlow datasets",
	Long: `Runs a similarity search across the configured RAGFlow datasets and
prints the matching chunks with their scores. Without --dataset flags the
search covers every dataset visible to the API key.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVar(&searchDatasetIDs, "dataset", nil, "dataset ID to search (repeatable)")
	searchCmd.Flags().StringSliceVar(&searchDocumentIDs, "document", nil, "document ID filter (repeatable)")
	searchCmd.Flags().IntVar(&searchPage, "page", domain.DefaultPage, "result page, 1-indexed")
	searchCmd.Flags().IntVarP(&searchPageSize, "page-size", "n", domain.DefaultPageSize, "chunks per page")
	searchCmd.Flags().Float64Var(&searchThreshold, "threshold", domain.DefaultSimilarityThreshold, "minimum similarity score")
	searchCmd.Flags().Float64Var(&searchVectorWeight, "vector-weight", domain.DefaultVectorWeight, "vector share of the combined score")
	searchCmd.Flags().BoolVar(&searchKeyword, "keyword", false, "enable keyword matching alongside similarity")
	searchCmd.Flags().IntVar(&searchTopK, "top-k", domain.DefaultTopK, "candidate pool size ranked by the backend")
	searchCmd.Flags().StringVar(&searchRerankID, "rerank", "", "reranking model id")
	searchCmd.Flags().BoolVar(&searchForceRefresh, "force-refresh", false, "bypass cached dataset metadata")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	params := domain.NewQueryParameters(args[0])
	params.DatasetIDs = searchDatasetIDs
	params.DocumentIDs = searchDocumentIDs
	params.Page = searchPage
	params.PageSize = searchPageSize
	params.SimilarityThreshold = searchThreshold
	params.VectorWeight = searchVectorWeight
	params.Keyword = searchKeyword
	params.TopK = searchTopK
	params.RerankID = searchRerankID
	params.ForceRefresh = searchForceRefresh

	ctx := context.Background()

	result, err := retrievalService.Retrieve(ctx, params)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputResultJSON(cmd, result)
	}

	return outputResultTable(cmd, result)
}

func outputResultJSON(cmd *cobra.Command, result *domain.RetrievalResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultTable(cmd *cobra.Command, result *domain.RetrievalResult) error {
	if len(result.Chunks) == 0 {
		message := result.Message
		if message == "" {
			message = "No relevant documents found."
		}
		cmd.Println(message)
		return nil
	}

	cmd.Printf("Results (page %d of %d, %d chunks total):\n",
		result.Pagination.Page, result.Pagination.TotalPages, result.Pagination.TotalChunks)
	cmd.Println()

	for i := range result.Chunks {
		chunk := &result.Chunks[i]

		name := chunk.DocumentName
		if name == "" {
			name = chunk.DocumentID
		}

		snippet := chunk.Highlight
		if snippet == "" {
			snippet = chunk.Content
		}

		cmd.Printf("  [%d] %s (%.2f)\n", i+1, name, chunk.Similarity)
		if snippet != "" {
			cmd.Printf("      %s\n", truncate(snippet, 200))
		}
		cmd.Println()
	}

	return nil
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
