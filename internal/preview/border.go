package preview

import (
	"image"

	"github.com/grindlemire/go-frame/internal/view"
)

// DrawBoxClipped draws a box border on the buffer. Positions are computed
// from the full rect, but only characters within clip are drawn. Rects
// smaller than 2x2 are not drawn.
func DrawBoxClipped(buf *Buffer, rect image.Rectangle, border view.Border, clip image.Rectangle) {
	if rect.Dx() < 2 || rect.Dy() < 2 || border == view.BorderNone {
		return
	}

	chars := border.Chars()
	left, right := rect.Min.X, rect.Max.X-1
	top, bottom := rect.Min.Y, rect.Max.Y-1

	set := func(x, y int, r rune) {
		if image.Pt(x, y).In(clip) {
			buf.SetRune(x, y, r, KindBorder)
		}
	}

	set(left, top, chars.TopLeft)
	set(right, top, chars.TopRight)
	set(left, bottom, chars.BottomLeft)
	set(right, bottom, chars.BottomRight)

	for x := left + 1; x < right; x++ {
		set(x, top, chars.Top)
		set(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		set(left, y, chars.Left)
		set(right, y, chars.Right)
	}
}

// DrawTitleClipped writes title centered in the top border of rect,
// truncated to the space between the corners.
func DrawTitleClipped(buf *Buffer, rect image.Rectangle, title string, clip image.Rectangle) {
	available := rect.Dx() - 2
	if title == "" || available <= 0 || rect.Dy() < 1 {
		return
	}

	var (
		runes []rune
		width int
	)
	for _, r := range title {
		w := RuneWidth(r)
		if width+w > available {
			break
		}
		runes = append(runes, r)
		width += w
	}
	if len(runes) == 0 {
		return
	}

	x := rect.Min.X + 1 + (available-width)/2
	buf.SetStringClipped(x, rect.Min.Y, string(runes), KindTitle, clip)
}
