package preview

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/grindlemire/go-frame/internal/view"
)

// Table lists every tagged view under root with its frame in the parent's
// coordinate space and its absolute frame.
func Table(root *view.View) string {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	var rows [][]string
	root.Walk(func(v *view.View) bool {
		if v.Tag() == "" {
			return true
		}
		f, abs := v.Frame(), v.AbsoluteFrame()
		rows = append(rows, []string{
			v.Tag(),
			num(f.X), num(f.Y), num(f.Width), num(f.Height),
			num(abs.X), num(abs.Y),
		})
		return true
	})

	headerStyle := lipgloss.NewStyle().Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Tag", "X", "Y", "Width", "Height", "Abs X", "Abs Y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render()
}
