package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Pablo751/dientes/internal/core/domain"
)

// viewState identifies the active screen.
type viewState int

const (
	// viewPicker is the product selection list.
	viewPicker viewState = iota

	// viewChat is the question/answer screen for the selected product.
	viewChat
)

// App is the chat application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *Styles

	// state tracks which screen is active.
	state viewState

	// products holds the catalog records shown in the picker.
	products []domain.Product

	// cursor is the highlighted picker row.
	cursor int

	// selected is the product questions are asked about.
	selected *domain.Product

	// input is the question entry field.
	input textinput.Model

	// spin renders while a generation is in flight.
	spin spinner.Model

	// thinking is true while a question is being answered. Input is
	// ignored until the in-flight request completes.
	thinking bool

	// lastAnswer is the most recent result, used for cache/failure markers.
	lastAnswer *domain.Answer

	// err holds the last pipeline error.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates the first WindowSizeMsg has arrived.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the chat application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := DefaultStyles()

	input := textinput.New()
	input.Placeholder = "Escribe tu pregunta sobre el producto..."
	input.CharLimit = 500
	input.Width = 60

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = s.Selected

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		state:  viewPicker,
		input:  input,
		spin:   spin,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("dientes - Chatbot de Productos Dentales"),
		a.loadProducts(),
	)
}

// loadProducts fetches the catalog for the picker.
func (a *App) loadProducts() tea.Cmd {
	return func() tea.Msg {
		products, err := a.ports.Catalog.Products(a.ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return productsMsg{products: products}
	}
}

// ask submits the question for the selected product.
func (a *App) ask(selection, question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := a.ports.Assistant.Ask(a.ctx, a.ports.Session, selection, question)
		if err != nil {
			return errMsg{err: err}
		}
		return answerMsg{answer: answer}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case CatalogReloadedMsg:
		return a, a.loadProducts()

	case productsMsg:
		a.products = msg.products
		if a.cursor >= len(a.products) {
			a.cursor = 0
		}
		return a, nil

	case answerMsg:
		a.thinking = false
		a.lastAnswer = &msg.answer
		a.err = nil
		return a, nil

	case errMsg:
		a.thinking = false
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if !a.thinking {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleKey routes key presses to the active screen.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	if a.state == viewPicker {
		return a.handlePickerKey(msg)
	}
	return a.handleChatKey(msg)
}

func (a *App) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return a, tea.Quit

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}

	case "down", "j":
		if a.cursor < len(a.products)-1 {
			a.cursor++
		}

	case "enter":
		if len(a.products) == 0 {
			return a, nil
		}
		product := a.products[a.cursor]
		a.selected = &product
		a.state = viewChat
		a.err = nil
		a.input.SetValue("")
		return a, a.input.Focus()
	}

	return a, nil
}

func (a *App) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if a.thinking {
			return a, nil
		}
		a.state = viewPicker
		a.selected = nil
		a.input.Blur()
		return a, a.loadProducts()

	case tea.KeyEnter:
		if a.thinking || a.selected == nil {
			return a, nil
		}
		question := strings.TrimSpace(a.input.Value())
		if question == "" {
			return a, nil
		}
		a.thinking = true
		a.err = nil
		a.input.SetValue("")
		return a, tea.Batch(a.ask(a.selected.Name, question), a.spin.Tick)
	}

	if a.thinking {
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Cargando..."
	}

	if a.state == viewPicker {
		return a.pickerView()
	}
	return a.chatView()
}

func (a *App) pickerView() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("🦷 Chatbot de Productos Dentales"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Normal.Render("Selecciona un producto:"))
	b.WriteString("\n\n")

	if len(a.products) == 0 {
		b.WriteString(a.styles.Muted.Render("  (catálogo vacío)"))
		b.WriteString("\n")
	}

	for i, p := range a.products {
		line := "  " + p.Name
		if i == a.cursor {
			line = a.styles.Selected.Render("> " + p.Name)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if a.err != nil {
		b.WriteString("\n")
		b.WriteString(a.styles.Error.Render(a.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render("↑/k ↓/j mover · enter seleccionar · q salir"))
	return b.String()
}

func (a *App) chatView() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("🦷 " + a.selected.Name))
	b.WriteString("\n\n")

	entries := a.ports.Session.Conversation.Entries()
	for i, e := range entries {
		b.WriteString(a.styles.Question.Render(fmt.Sprintf("%d. %s", i+1, e.Question)))
		b.WriteString("\n")
		b.WriteString(a.styles.Answer.Render("   " + e.Answer))
		b.WriteString("\n\n")
	}

	if a.lastAnswer != nil && len(entries) > 0 {
		if a.lastAnswer.FromCache {
			b.WriteString(a.styles.Cached.Render("(respuesta desde caché)"))
			b.WriteString("\n")
		}
		if a.lastAnswer.Failed {
			b.WriteString(a.styles.Error.Render("(falló la generación)"))
			b.WriteString("\n")
		}
	}

	if a.err != nil {
		b.WriteString(a.styles.Error.Render(a.err.Error()))
		b.WriteString("\n")
	}

	if a.thinking {
		b.WriteString(a.spin.View())
		b.WriteString(a.styles.Muted.Render(" generando respuesta..."))
		b.WriteString("\n")
	} else {
		b.WriteString(a.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render("enter preguntar · esc volver · ctrl+c salir"))
	return b.String()
}
