package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/yegors/termflight/internal/instruments"
)

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Faint(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// frameStyle paints the cockpit background behind every instrument
func frameStyle() lipgloss.Style {
	st := lipgloss.NewStyle()
	if c, ok := lipglossColor(instruments.ColorPanel); ok {
		st = st.Background(c)
	}
	return st
}

// lipglossColor converts a tcell color; default and invalid colors map to
// no color at all
func lipglossColor(c tcell.Color) (lipgloss.Color, bool) {
	if c == tcell.ColorDefault {
		return "", false
	}
	h := c.Hex()
	if h < 0 {
		return "", false
	}
	return lipgloss.Color(fmt.Sprintf("#%06x", h)), true
}

func cellStyle(fg, bg tcell.Color, attr tcell.AttrMask) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c, ok := lipglossColor(fg); ok {
		st = st.Foreground(c)
	}
	if c, ok := lipglossColor(bg); ok {
		st = st.Background(c)
	}
	if attr&tcell.AttrBold != 0 {
		st = st.Bold(true)
	}
	if attr&tcell.AttrDim != 0 {
		st = st.Faint(true)
	}
	if attr&tcell.AttrBlink != 0 {
		st = st.Blink(true)
	}
	return st
}

// RenderGrid renders g as styled text. Runs of cells sharing a style are
// rendered together.
func RenderGrid(g instruments.Grid) string {
	lines := make([]string, 0, g.Rows)
	for y := 0; y < g.Rows; y++ {
		var sb strings.Builder
		row := g.Row(y)
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && sameStyle(row[start], row[end]) {
				end++
			}
			var run strings.Builder
			for _, c := range row[start:end] {
				run.WriteRune(c.Glyph)
			}
			sb.WriteString(cellStyle(row[start].FG, row[start].BG, row[start].Attr).Render(run.String()))
			start = end
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func sameStyle(a, b instruments.Cell) bool {
	return a.FG == b.FG && a.BG == b.BG && a.Attr == b.Attr
}

// RenderLine renders one instrument text line
func RenderLine(l instruments.Line) string {
	return cellStyle(l.FG, tcell.ColorDefault, l.Attr).Render(l.Text)
}

// box frames content, under a bold title when one is given
func box(title string, body ...string) string {
	parts := body
	if title != "" {
		parts = append([]string{titleStyle.Render(title)}, body...)
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
}
