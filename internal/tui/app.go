package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"phonefield/internal/field"
	"phonefield/platform/logger"
)

var appFrame = lipgloss.NewStyle().Margin(1, 2)

// App is the root Bubble Tea model wrapping the control for standalone use.
type App struct {
	control Model
	keys    keyMap
	width   int
	height  int
}

// NewApp builds the root model around a field state.
func NewApp(state *field.State, log *logger.Logger) App {
	return App{
		control: New(state, log),
		keys:    defaultKeyMap(),
	}
}

func (a App) Init() tea.Cmd {
	return a.control.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.control, cmd = a.control.Update(msg)
	return a, cmd
}

func (a App) View() string {
	content := appFrame.Render(a.control.View())
	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
	}
	return content
}
