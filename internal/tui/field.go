// Package tui renders the phone field control with Bubble Tea: the activator
// button, the country picker popover, the phone input and the error line.
// All state transitions go through the field package; this package only maps
// terminal events onto them and draws the result.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"phonefield/internal/field"
	"phonefield/platform/logger"
)

// Model is the control facade. It owns the two text inputs and the picker
// highlight; everything else is derived from the field state on every View.
type Model struct {
	state *field.State
	keys  keyMap
	log   *logger.Logger

	phoneInput  textinput.Model
	searchInput textinput.Model
	highlighted int
}

// New builds the facade around an already-constructed field state.
func New(state *field.State, log *logger.Logger) Model {
	phone := textinput.New()
	phone.Placeholder = state.Placeholder()
	phone.Prompt = "> "
	phone.Width = 30
	phone.Focus()

	search := textinput.New()
	search.Placeholder = "Search countries"
	search.Prompt = "/ "
	search.Width = 28

	return Model{
		state:       state,
		keys:        defaultKeyMap(),
		log:         log,
		phoneInput:  phone,
		searchInput: search,
	}
}

// Init starts cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes events to the picker while the popover is open, to the phone
// input otherwise.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.state.PopoverOpen() {
			return m.updatePicker(keyMsg)
		}
		return m.updatePhone(keyMsg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.phoneInput, cmd = m.phoneInput.Update(msg)
	cmds = append(cmds, cmd)
	m.searchInput, cmd = m.searchInput.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updatePhone(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.OpenPicker):
		if m.state.Mode() != field.ModeSelectable {
			return m, nil
		}
		// Moving focus to the picker blurs the phone input, which commits.
		m.commitPhone()
		m.state.Open()
		m.log.Transition("open")
		m.highlighted = 0
		m.searchInput.SetValue("")
		m.phoneInput.Blur()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Commit):
		m.commitPhone()
		return m, nil

	default:
		var cmd tea.Cmd
		m.phoneInput, cmd = m.phoneInput.Update(msg)
		m.state.TypePhone(m.phoneInput.Value())
		return m, cmd
	}
}

func (m *Model) commitPhone() {
	// The input shows the formatted value after a successful commit; only
	// user-typed text counts as raw input, so an unedited re-commit
	// reformats the original raw instead of the formatter's own output.
	value := m.phoneInput.Value()
	if display, ok := m.state.DisplayValue(); !ok || value != display {
		m.state.TypePhone(value)
	}
	out := m.state.CommitPhone()
	m.log.FormatResult(m.state.Active().Name, out.HasDisplay)
	if display, ok := m.state.DisplayValue(); ok {
		m.phoneInput.SetValue(display)
		m.phoneInput.CursorEnd()
	}
}

func (m Model) updatePicker(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss), key.Matches(msg, m.keys.OpenPicker):
		m.state.Close()
		m.log.Transition("close")
		m.searchInput.Blur()
		return m, m.phoneInput.Focus()

	case key.Matches(msg, m.keys.Up):
		if m.highlighted > 0 {
			m.highlighted--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.highlighted < len(m.state.Candidates())-1 {
			m.highlighted++
		}
		return m, nil

	case key.Matches(msg, m.keys.Choose):
		candidates := m.state.Candidates()
		if len(candidates) == 0 || m.highlighted >= len(candidates) {
			return m, nil
		}
		name := candidates[m.highlighted].CountryName
		if err := m.state.Select(name); err != nil {
			// The picker only offers current candidates, so this is a bug.
			m.log.Error("select rejected", "country", name, "error", err)
			return m, nil
		}
		m.log.Selection(name, m.state.ActiveIndex())
		m.searchInput.Blur()
		return m, m.phoneInput.Focus()

	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		if query := m.searchInput.Value(); query != m.state.Query() {
			m.state.Search(query)
			m.log.Transition("search", "query", query)
			m.highlighted = 0
		}
		return m, cmd
	}
}

// View draws the control from the current field state.
func (m Model) View() string {
	sections := []string{
		labelStyle.Render(m.state.Label()),
	}

	if m.state.Mode() == field.ModeSelectable {
		button := buttonStyle
		if m.state.PopoverOpen() {
			button = buttonOpenStyle
		}
		sections = append(sections, button.Render("▾ "+m.state.ButtonLabel()))
		if m.state.PopoverOpen() {
			sections = append(sections, m.viewPopover())
		}
	} else {
		// Degenerate single-country control: no picker affordance at all.
		sections = append(sections, m.state.ButtonLabel())
	}

	sections = append(sections, m.phoneInput.View())

	if errText := m.state.ValidationError(); errText != "" {
		sections = append(sections, errorStyle.Render(errText))
	}

	sections = append(sections, m.viewHint())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewPopover() string {
	var rows strings.Builder
	rows.WriteString(m.searchInput.View())
	rows.WriteString("\n")

	candidates := m.state.Candidates()
	if len(candidates) == 0 {
		rows.WriteString(emptyRowStyle.Render("No matching countries"))
	}
	for i, c := range candidates {
		if i > 0 {
			rows.WriteString("\n")
		}
		if i == m.highlighted {
			rows.WriteString(selectedRowStyle.Render(c.Label))
		} else {
			rows.WriteString(rowStyle.Render(c.Label))
		}
	}

	return popoverStyle.Render(rows.String())
}

func (m Model) viewHint() string {
	if m.state.PopoverOpen() {
		return hintStyle.Render("↑/↓ move · enter select · esc close")
	}
	if m.state.Mode() == field.ModeSelectable {
		return hintStyle.Render("ctrl+k change country · enter confirm · ctrl+c quit")
	}
	return hintStyle.Render("enter confirm · ctrl+c quit")
}
