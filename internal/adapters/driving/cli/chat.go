package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Pablo751/dientes/internal/adapters/driven/catalog/csvfile"
	"github.com/Pablo751/dientes/internal/adapters/driving/tui"
	"github.com/Pablo751/dientes/internal/core/domain"
	"github.com/Pablo751/dientes/internal/logger"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Launch the interactive chat",
	Long: `Launch the interactive terminal chat for product questions.

Pick a product, then ask questions about it. The conversation log keeps the
most recent exchanges; repeated questions are answered from the cache.

Controls:
  ↑/k, ↓/j - Navigate products
  Enter    - Select / Ask
  Esc      - Back to product list
  Ctrl+C   - Quit`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in chat: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if err := ensureAssistant(cmd.Context()); err != nil {
		return err
	}

	sess := domain.NewSession(historyLimit)
	ports := tui.NewPorts(catalogService, assistantService, sess)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Reload the catalog when the dataset changes on disk. The chat is
	// long-running, so edits to the CSV should show up without a restart.
	watchCtx, cancelWatch := context.WithCancel(cmd.Context())
	defer cancelWatch()
	if stop, err := watchCatalog(watchCtx, p); err != nil {
		logger.Warn("catalog watching disabled: %v", err)
	} else {
		defer stop()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat error: %w", err)
	}

	return nil
}

// watchCatalog reloads the catalog and notifies the program on dataset
// changes. Returns a stop function releasing the watcher.
func watchCatalog(ctx context.Context, p *tea.Program) (func(), error) {
	watcher, err := csvfile.NewWatcher(catalogPath)
	if err != nil {
		return nil, err
	}

	changes := watcher.Watch(ctx)
	go func() {
		for path := range changes {
			if err := catalogService.Load(ctx, path); err != nil {
				// Keep serving the previous catalog on a bad edit.
				logger.Warn("catalog reload failed: %v", err)
				continue
			}
			logger.Info("catalog reloaded from %s", path)
			p.Send(tui.CatalogReloadedMsg{})
		}
	}()

	return func() { watcher.Close() }, nil
}
