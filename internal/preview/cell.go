package preview

import "github.com/mattn/go-runewidth"

// Kind classifies what drew a cell, so runs of cells can be styled.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindBorder
	KindTitle
	KindText
)

// Cell represents a single character cell in the buffer.
// Wide characters occupy two cells; the first holds the rune and the
// second is marked as a continuation.
type Cell struct {
	Rune  rune  // The character (0 for continuation cells)
	Kind  Kind  // What drew the cell
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a Cell with automatic width detection.
func NewCell(r rune, kind Kind) Cell {
	return Cell{Rune: r, Kind: kind, Width: uint8(RuneWidth(r))}
}

// IsContinuation returns true if this cell is a continuation of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// RuneWidth returns the display width of a rune in terminal cells, at
// least 1.
func RuneWidth(r rune) int {
	return max(runewidth.RuneWidth(r), 1)
}
