package preview

import (
	"image"
	"strings"
)

// Buffer is a 2D grid of cells.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a grid of the specified dimensions filled with spaces.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	cells := make([]Cell, width*height)
	blank := NewCell(' ', KindEmpty)
	for i := range cells {
		cells[i] = blank
	}
	return &Buffer{cells: cells, width: width, height: height}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in rows.
func (b *Buffer) Height() int { return b.height }

// Rect returns the buffer bounds starting at (0, 0).
func (b *Buffer) Rect() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at position (x, y).
// Returns an empty Cell if the position is out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// SetCell sets the cell at position (x, y).
// Does nothing if the position is out of bounds.
func (b *Buffer) SetCell(x, y int, c Cell) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.cells[i] = c
}

// SetRune sets a rune at position (x, y).
// Handles wide characters by setting continuation cells and clears any
// wide character it overlaps.
func (b *Buffer) SetRune(x, y int, r rune, kind Kind) {
	if b.idx(x, y) < 0 {
		return
	}

	width := RuneWidth(r)
	current := b.Cell(x, y)
	if current.IsContinuation() || current.Width == 2 {
		b.clearWideCharAt(x, y)
	}
	if width == 2 && x+1 < b.width {
		next := b.Cell(x+1, y)
		if next.Width == 2 || next.IsContinuation() {
			b.clearWideCharAt(x+1, y)
		}
	}

	// A wide char at the last column cannot fit.
	if width == 2 && x+1 >= b.width {
		b.SetCell(x, y, NewCell(' ', kind))
		return
	}

	b.SetCell(x, y, Cell{Rune: r, Kind: kind, Width: uint8(width)})
	if width == 2 {
		b.SetCell(x+1, y, Cell{Kind: kind})
	}
}

// clearWideCharAt clears the wide character covering position (x, y).
func (b *Buffer) clearWideCharAt(x, y int) {
	cell := b.Cell(x, y)
	blank := NewCell(' ', KindEmpty)

	if cell.IsContinuation() {
		if x > 0 {
			b.SetCell(x-1, y, blank)
		}
		b.SetCell(x, y, blank)
	} else if cell.Width == 2 {
		b.SetCell(x, y, blank)
		b.SetCell(x+1, y, blank)
	}
}

// SetStringClipped writes s starting at (x, y), drawing only the cells
// inside clip. Returns the display width of the cells drawn.
func (b *Buffer) SetStringClipped(x, y int, s string, kind Kind, clip image.Rectangle) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Min.Y || y >= clip.Max.Y {
		return 0
	}

	total := 0
	curX := x
	for _, r := range s {
		width := RuneWidth(r)
		if curX >= clip.Max.X {
			break
		}
		// Wide chars must fit entirely inside the clip.
		if curX >= clip.Min.X && curX+width <= clip.Max.X {
			b.SetRune(curX, y, r, kind)
			total += width
		}
		curX += width
	}
	return total
}

// String renders the buffer to a string. Each row is separated by a
// newline and has its trailing spaces removed.
func (b *Buffer) String() string {
	rows := make([]string, b.height)
	for y := range b.height {
		rows[y] = strings.TrimRight(b.row(y), " ")
	}
	return strings.Join(rows, "\n")
}

func (b *Buffer) row(y int) string {
	var sb strings.Builder
	for x := range b.width {
		cell := b.cells[y*b.width+x]
		if cell.IsContinuation() {
			continue
		}
		if cell.Rune == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(cell.Rune)
		}
	}
	return sb.String()
}
