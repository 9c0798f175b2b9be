package measure

import "github.com/mattn/go-runewidth"

// Cells measures text in terminal cells. Each line is one cell tall and the
// baseline sits at the bottom of the cell.
type Cells struct {
	// EastAsianWide treats ambiguous-width runes as two cells.
	EastAsianWide bool
}

// Width returns the display width of s in cells.
func (c Cells) Width(s string) float64 {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = c.EastAsianWide
	return float64(cond.StringWidth(s))
}

// LineHeight returns 1.
func (Cells) LineHeight() float64 { return 1 }

// Ascent returns 1.
func (Cells) Ascent() float64 { return 1 }
