// Package cli implements the dientes command line interface.
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/Pablo751/dientes/internal/adapters/driven/ai"
	"github.com/Pablo751/dientes/internal/adapters/driven/catalog/csvfile"
	"github.com/Pablo751/dientes/internal/adapters/driven/config/file"
	"github.com/Pablo751/dientes/internal/adapters/driven/storage/memory"
	"github.com/Pablo751/dientes/internal/core/ports/driving"
	"github.com/Pablo751/dientes/internal/core/services"
	"github.com/Pablo751/dientes/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Backend throttling: at most one generation per second with a small burst.
const (
	llmRequestsPerSecond = 1
	llmBurst             = 2
)

// Persistent flags.
var (
	verbose     bool
	configDir   string
	catalogFlag string
)

// Services used by the commands. Wired lazily on first use so that tests
// can inject their own implementations.
var (
	catalogService   driving.CatalogService
	assistantService driving.AssistantService
	settingsService  driving.SettingsService
)

// catalogPath is the dataset path resolved at wiring time, kept for the
// chat command's file watcher.
var catalogPath string

// historyLimit is the configured conversation bound, resolved at wiring time.
var historyLimit int

var rootCmd = &cobra.Command{
	Use:   "dientes",
	Short: "Asistente de productos dentales",
	Long: `dientes answers questions about dental products, grounded strictly
in a CSV product catalog. Each answer is generated by an LLM from the
selected product's data and memoized so identical questions never pay
for a second generation.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.dientes)")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "product CSV path (overrides the configured path)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensureSettings wires the settings service if no test injected one.
func ensureSettings() error {
	if settingsService != nil {
		return nil
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}
	settingsService = services.NewSettings(configStore, ai.ValidateLLMConfig)
	return nil
}

// ensureAssistant wires the catalog and assistant services if no test
// injected them. The catalog is loaded eagerly so commands fail fast on a
// malformed dataset.
func ensureAssistant(ctx context.Context) error {
	if err := ensureSettings(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	historyLimit = settings.History.Limit

	catalogPath = settings.Catalog.Path
	if catalogFlag != "" {
		catalogPath = catalogFlag
	}

	if catalogService == nil {
		catalog := services.NewCatalog(csvfile.NewLoader(), memory.NewCatalogStore())
		if err := catalog.Load(ctx, catalogPath); err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		logger.Info("loaded %d products from %s", catalog.Count(ctx), catalogPath)
		catalogService = catalog
	}

	if assistantService != nil {
		return nil
	}

	llm, err := ai.CreateLLMService(&settings.LLM)
	if err != nil {
		return fmt.Errorf("create LLM service: %w", err)
	}
	if llm != nil {
		logger.Debug("using %s model %s", settings.LLM.Provider, llm.ModelName())
	}

	var promptDir string
	if configDir != "" {
		promptDir = filepath.Join(configDir, "prompts")
	}
	promptStore, err := file.NewPromptStore(promptDir)
	if err != nil {
		return fmt.Errorf("open prompt store: %w", err)
	}

	assistantService = services.NewAssistant(services.AssistantConfig{
		Catalog:         catalogService,
		Builder:         services.NewPromptBuilder(promptStore),
		LLM:             llm,
		Cache:           memory.NewAnswerCache(),
		MaxOutputTokens: settings.Generation.MaxOutputTokens,
		Temperature:     settings.Generation.Temperature,
		Limiter:         rate.NewLimiter(rate.Limit(llmRequestsPerSecond), llmBurst),
	})
	return nil
}
