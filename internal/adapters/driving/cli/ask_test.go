package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pablo751/dientes/internal/core/domain"
)

func TestAskCmd_Definition(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
	assert.NotEmpty(t, askCmd.Short)
	assert.NotEmpty(t, askCmd.Long)

	productFlag := askCmd.Flags().Lookup("product")
	require.NotNil(t, productFlag)
	assert.Equal(t, "p", productFlag.Shorthand)

	jsonFlag := askCmd.Flags().Lookup("json")
	require.NotNil(t, jsonFlag)
	assert.Equal(t, "false", jsonFlag.DefValue)
}

func TestAskCmd_RequiresQuestionArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "--product", "Floss X"})
	defer func() {
		rootCmd.SetArgs(nil)
		askProduct = ""
		askCmd.Flags().Lookup("product").Changed = false
	}()

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAskCmd_RequiresProductFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "How often?"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product")
}

func TestAskCmd_PrintsAnswer(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "How often?", "--product", "Floss X"})
	defer func() {
		rootCmd.SetArgs(nil)
		askProduct = ""
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "[Floss X]")
	assert.Contains(t, output, "Once per day.")

	mock := assistantService.(*mockAssistantService)
	assert.Equal(t, "Floss X", mock.lastSelection)
	assert.Equal(t, "How often?", mock.lastQuestion)
}

func TestAskCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "How often?", "--product", "Floss X", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		askProduct = ""
		askJSON = false
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, `"product": "Floss X"`)
	assert.Contains(t, output, `"answer": "Once per day."`)
	assert.Contains(t, output, `"from_cache": false`)
}

func TestAskCmd_ProductNotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	assistantService.(*mockAssistantService).err = domain.ErrNotFound

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "How often?", "--product", "Unknown"})
	defer func() {
		rootCmd.SetArgs(nil)
		askProduct = ""
	}()

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no product matches "Unknown"`)
}

func TestAskCmd_EmptyQuestion(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	assistantService.(*mockAssistantService).err = domain.ErrEmptyQuestion

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "   ", "--product", "Floss X"})
	defer func() {
		rootCmd.SetArgs(nil)
		askProduct = ""
	}()

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question must not be empty")
}

func TestAskCmd_LLMNotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	assistantService.(*mockAssistantService).err = domain.ErrLLMUnavailable

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "How often?", "--product", "Floss X"})
	defer func() {
		rootCmd.SetArgs(nil)
		askProduct = ""
	}()

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dientes settings llm")
}

func TestOutputAnswerJSON_FailedAnswer(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	answer := domain.Answer{
		Product:  "Floss X",
		Question: "How often?",
		Failed:   true,
		Cause:    "backend timeout",
	}
	err := outputAnswerJSON(rootCmd, answer)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, `"failed": true`)
	assert.Contains(t, output, `"cause": "backend timeout"`)
}
