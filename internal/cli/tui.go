package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/chartbridge/pkg/errors"
	"github.com/matzehuels/chartbridge/pkg/palette"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// paletteModel is the bubbletea model behind "palette browse".
type paletteModel struct {
	gen    *palette.Generator
	names  []palette.Name
	cursor int
	count  int
	dark   bool
	chosen palette.Name
}

func newPaletteModel(g *palette.Generator) paletteModel {
	return paletteModel{gen: g, names: palette.Names(), count: defaultPaletteCount}
}

func (m paletteModel) Init() tea.Cmd {
	return nil
}

func (m paletteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "left", "h", "-":
		if m.count > 1 {
			m.count--
		}
	case "right", "l", "+":
		if m.count < errors.MaxPaletteCount {
			m.count++
		}
	case "d":
		m.dark = !m.dark
	case "enter":
		m.chosen = m.names[m.cursor]
		return m, tea.Quit
	}
	return m, nil
}

func (m paletteModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Palettes"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ palette  ←/→ count  d dark  ⏎ print  q quit"))
	b.WriteString("\n\n")
	b.WriteString(paletteTable(m.gen, m.dark, m.cursor))
	b.WriteString("\n\n")

	mode := "light"
	if m.dark {
		mode = "dark"
	}
	name := m.names[m.cursor]
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleValue.Render(string(name)), listDimStyle.Render(fmt.Sprintf("%d colors · %s", m.count, mode))))
	b.WriteString(swatch(m.colors()))
	b.WriteString("\n")
	return b.String()
}

// colors returns the colors of the highlighted palette.
func (m paletteModel) colors() []string {
	return m.gen.Generate(m.names[m.cursor], m.count, m.dark)
}
