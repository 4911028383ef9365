package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// Table is an aligned text table. Columns listed in RightAlign are padded on
// the left, which suits numeric series.
type Table struct {
	Headers    []string
	Rows       [][]string
	RightAlign map[int]bool
}

// RenderTable renders a left-aligned table with a header separator line.
func RenderTable(headers []string, rows [][]string) string {
	return Table{Headers: headers, Rows: rows}.Render()
}

// RenderNumericTable renders a table whose first column is a label and every
// other column is right-aligned.
func RenderNumericTable(headers []string, rows [][]string) string {
	right := make(map[int]bool, len(headers))
	for i := 1; i < len(headers); i++ {
		right[i] = true
	}
	return Table{Headers: headers, Rows: rows, RightAlign: right}.Render()
}

// Render lays the table out by visible width, so styled cells align.
func (t Table) Render() string {
	cols := len(t.Headers)
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	styled := make([]string, cols)
	for i, h := range t.Headers {
		styled[i] = StyleHeader.Render(h)
	}
	t.writeRow(&b, styled, widths)

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		cells := make([]string, cols)
		copy(cells, row)
		t.writeRow(&b, cells, widths)
	}
	return b.String()
}

func (t Table) writeRow(b *strings.Builder, cells []string, widths []int) {
	last := len(cells) - 1
	for i, cell := range cells {
		pad := strings.Repeat(" ", max(0, widths[i]-lipgloss.Width(cell)))
		if t.RightAlign[i] {
			b.WriteString(pad + cell)
		} else {
			b.WriteString(cell)
			if i < last {
				b.WriteString(pad)
			}
		}
		if i < last {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}
