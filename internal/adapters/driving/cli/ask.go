package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pablo751/dientes/internal/core/domain"
	"github.com/Pablo751/dientes/internal/logger"
)

var (
	askProduct string
	askJSON    bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about a product",
	Long: `Answers a single question about a catalog product.

The answer is generated strictly from the product's catalog data. Identical
questions about unchanged products are served from the answer cache without
touching the LLM backend.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askProduct, "product", "p", "", "product name (exact or partial match)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	if err := askCmd.MarkFlagRequired("product"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	if err := ensureAssistant(cmd.Context()); err != nil {
		return err
	}
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	sess := domain.NewSession(historyLimit)
	answer, err := assistantService.Ask(cmd.Context(), sess, askProduct, question)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("no product matches %q", askProduct)
		case errors.Is(err, domain.ErrEmptyQuestion):
			return errors.New("question must not be empty")
		case errors.Is(err, domain.ErrLLMUnavailable):
			return fmt.Errorf("%w: run 'dientes settings llm' to configure a provider", err)
		default:
			return err
		}
	}

	if askJSON {
		return outputAnswerJSON(cmd, answer)
	}

	cmd.Printf("[%s]\n", answer.Product)
	cmd.Println(answer.Text)
	if answer.FromCache {
		logger.Debug("answer served from cache")
	}
	return nil
}

func outputAnswerJSON(cmd *cobra.Command, answer domain.Answer) error {
	out := struct {
		Product   string `json:"product"`
		Question  string `json:"question"`
		Answer    string `json:"answer"`
		FromCache bool   `json:"from_cache"`
		Failed    bool   `json:"failed"`
		Cause     string `json:"cause,omitempty"`
	}{
		Product:   answer.Product,
		Question:  answer.Question,
		Answer:    answer.Text,
		FromCache: answer.FromCache,
		Failed:    answer.Failed,
		Cause:     answer.Cause,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
