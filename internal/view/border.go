package view

import "fmt"

// Border represents different styles of box borders.
type Border int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone Border = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

var borderNames = map[string]Border{
	"none":    BorderNone,
	"single":  BorderSingle,
	"double":  BorderDouble,
	"rounded": BorderRounded,
	"thick":   BorderThick,
}

// ParseBorder returns the border named s ("none", "single", "double",
// "rounded" or "thick").
func ParseBorder(s string) (Border, error) {
	if s == "" {
		return BorderNone, nil
	}
	b, ok := borderNames[s]
	if !ok {
		return BorderNone, fmt.Errorf("unknown border %q", s)
	}
	return b, nil
}

func (b Border) String() string {
	for name, v := range borderNames {
		if v == b {
			return name
		}
	}
	return fmt.Sprintf("border(%d)", int(b))
}

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b Border) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	}
	return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
}
