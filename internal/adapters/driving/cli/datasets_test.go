package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetsCmd_Use(t *testing.T) {
	assert.Equal(t, "datasets", datasetsCmd.Use)
}

func TestDatasetsCmd_HasSubcommands(t *testing.T) {
	subcommands := make(map[string]bool)
	for _, cmd := range datasetsCmd.Commands() {
		subcommands[cmd.Name()] = true
	}

	assert.True(t, subcommands["list"], "list subcommand should exist")
	assert.True(t, subcommands["docs"], "docs subcommand should exist")
}

func TestDatasetsCmd_ListsDatasets(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"datasets"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "ds-1")
	assert.Contains(t, buf.String(), "Product Docs")
	assert.Contains(t, buf.String(), "Support KB")
	assert.Contains(t, buf.String(), "Total: 2 datasets")
}

func TestDatasetsListCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"datasets", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Product Docs")
}

func TestDatasetsListCmd_ForceRefresh(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := &mockDatasetService{catalog: testDatasetList()}
	datasetService = mock

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"datasets", "list", "--force-refresh"})
	defer func() {
		rootCmd.SetArgs(nil)
		datasetsForceRefresh = false // Reset flag
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.True(t, mock.gotForce)
}

func TestDatasetsListCmd_EmptyCatalog(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	datasetService = &mockDatasetService{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"datasets", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No datasets found.")
}

func TestDatasetsListCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"datasets", "list", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		datasetsJSON = false // Reset flag
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"Datasets\"")
	assert.Contains(t, buf.String(), "\"Total\": 2")
}

func TestDatasetsCmd_ServiceNotConfigured(t *testing.T) {
	oldService := datasetService
	datasetService = nil
	defer func() {
		datasetService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"datasets"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dataset service not configured")
}

func TestDatasetsDocsCmd_RequiresDatasetID(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"datasets", "docs"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestDatasetsDocsCmd_ListsDocuments(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := &mockDatasetService{documents: testDocumentList()}
	datasetService = mock

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"datasets", "docs", "ds-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "ds-1", mock.gotDatasetID)
	assert.Contains(t, buf.String(), "install-guide.pdf")
	assert.Contains(t, buf.String(), "faq.md")
	assert.Contains(t, buf.String(), "Total: 2 documents")
}

func TestDatasetsDocsCmd_EmptyDataset(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	datasetService = &mockDatasetService{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"datasets", "docs", "ds-9"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No documents found in dataset: ds-9")
}

func TestDatasetsDocsCmd_HasPageSizeFlag(t *testing.T) {
	flag := datasetsDocsCmd.Flags().Lookup("page-size")
	require.NotNil(t, flag, "page-size flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "10", flag.DefValue)
}

func TestDatasetsDocsCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	datasetService = &mockDatasetService{err: assert.AnError}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"datasets", "docs", "ds-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list documents")
}
