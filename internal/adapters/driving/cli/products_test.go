package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pablo751/dientes/internal/core/domain"
)

func TestProductsCmd_Definition(t *testing.T) {
	assert.Equal(t, "products", productsCmd.Use)
	assert.NotEmpty(t, productsCmd.Short)

	jsonFlag := productsCmd.Flags().Lookup("json")
	require.NotNil(t, jsonFlag)
	assert.Equal(t, "false", jsonFlag.DefValue)
}

func TestProductsCmd_Table(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"products"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Products (2):")
	assert.Contains(t, output, "[1] Floss X")
	assert.Contains(t, output, "30m roll")
	assert.Contains(t, output, "[2] Brush Y")
}

func TestProductsCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"products", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		productsJSON = false
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, `"name": "Floss X"`)
	assert.Contains(t, output, `"usage_instructions": "Use daily"`)
	assert.Contains(t, output, `"presentation": "Single unit"`)
}

func TestProductsCmd_EmptyCatalog(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	catalogService = &mockCatalogService{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"products"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "The catalog is empty.")
}

func TestOutputProductsJSON_Empty(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputProductsJSON(rootCmd, []domain.Product{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[]")
}
