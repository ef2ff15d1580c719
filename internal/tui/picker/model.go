// Package picker implements the interactive component chooser shown by
// `rnmanifest pick`.
package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/rnmanifest/internal/manifest"
	"github.com/alexisbeaulieu97/rnmanifest/internal/ui"
)

// ErrCancelled is returned by Run when the user leaves without choosing.
var ErrCancelled = errors.New("no component selected")

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the Bubbletea state of the picker.
type Model struct {
	components []*manifest.Component
	cursor     int
	selected   *manifest.Component
	cancelled  bool
	swatches   bool
	keys       keyMap
	help       help.Model
}

// NewModel lists the components of c with the cursor on preselect when present.
func NewModel(c *manifest.Collection, preselect string) Model {
	m := Model{
		components: c.Components(),
		keys:       defaultKeyMap(),
		help:       help.New(),
	}

	for i, comp := range m.components {
		if comp.Name() == preselect {
			m.cursor = i
			break
		}
	}

	return m
}

// WithSwatches enables painted background color swatches.
func (m Model) WithSwatches(enabled bool) Model {
	m.swatches = enabled
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.components)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if len(m.components) == 0 {
				return m, nil
			}
			m.selected = m.components[m.cursor]
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the component list.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(ui.TitleStyle.Render("Choose a component to launch"))
	b.WriteString("\n")

	if len(m.components) == 0 {
		b.WriteString(ui.MutedStyle.Render("  This manifest declares no components."))
		b.WriteString("\n")
	}

	for i, comp := range m.components {
		line := fmt.Sprintf("%s  %s  %s",
			ui.Swatch(comp.BackgroundColor(), m.swatches),
			displayOrName(comp),
			ui.MutedStyle.Render(comp.Name()),
		)
		if i == m.cursor {
			b.WriteString(ui.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(ui.ItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Cursor returns the highlighted index.
func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the component chosen with enter.
func (m Model) Selected() (*manifest.Component, bool) {
	return m.selected, m.selected != nil
}

// Cancelled reports whether the user quit without choosing.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Run shows the picker and blocks until the user chooses or quits.
func Run(m Model, opts ...tea.ProgramOption) (*manifest.Component, error) {
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return nil, err
	}

	result, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected picker model %T", final)
	}

	if comp, ok := result.Selected(); ok {
		return comp, nil
	}
	return nil, ErrCancelled
}

func displayOrName(comp *manifest.Component) string {
	if strings.TrimSpace(comp.DisplayName()) == "" {
		return comp.Name()
	}
	return comp.DisplayName()
}
