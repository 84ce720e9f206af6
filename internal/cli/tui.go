package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/depsentry/depsentry/pkg/lockfile"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// depPickerModel is the bubbletea model for selecting a dependency from
// the diff artifact.
type depPickerModel struct {
	Deps     []lockfile.Identity
	Cursor   int
	Selected *lockfile.Identity
	Height   int
	Offset   int
}

// newDepPickerModel creates a picker over the given identities.
func newDepPickerModel(deps []lockfile.Identity) depPickerModel {
	return depPickerModel{Deps: deps, Height: 15}
}

func (m depPickerModel) Init() tea.Cmd {
	return nil
}

func (m depPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Deps)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			dep := m.Deps[m.Cursor]
			m.Selected = &dep
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m depPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Dependency"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Deps))
	for i := m.Offset; i < end; i++ {
		dep := m.Deps[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-40s %s", cursor, dep.Name, listDimStyle.Render(dep.Version))
		if i == m.Cursor {
			line = fmt.Sprintf("%s%-40s %s", cursor, dep.Name, dep.Version)
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Deps))))

	return b.String()
}
