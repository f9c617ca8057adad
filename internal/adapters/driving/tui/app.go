package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickswitch/internal/adapters/driving/tui/views/picker"
)

// App is the TUI application. It implements tea.Model.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	pickerView *picker.View

	width  int
	height int

	// ready is set once the terminal size is known.
	ready bool
}

var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingPicker)
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		pickerView: picker.NewView(s, nil, ports.Picker, ports.Actions),
	}, nil
}

// WithContext sets the context for lookups and browser actions.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.pickerView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("quickswitch"),
		a.pickerView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.pickerView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case messages.Quit:
		return a, tea.Quit
	}

	a.pickerView, cmd = a.pickerView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.pickerView.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Opened returns every url handed to the browser during the session.
func (a *App) Opened() []string {
	return a.pickerView.Opened()
}

// Input returns the current input value.
func (a *App) Input() string {
	return a.pickerView.Input()
}

// Ready reports whether the terminal size is known.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.pickerView.SetDimensions(width, height)
}
