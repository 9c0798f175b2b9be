package preview

import (
	"image"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-frame/internal/layout"
	"github.com/grindlemire/go-frame/internal/view"
)

// Styles holds the lipgloss styles applied to each kind of cell.
type Styles struct {
	Border lipgloss.Style
	Title  lipgloss.Style
	Text   lipgloss.Style
}

// DefaultStyles returns the styles used when none are configured.
func DefaultStyles() Styles {
	return NewStyles("240", "36", "255")
}

// NewStyles builds styles from lipgloss color strings (ANSI numbers or hex
// values). An empty color leaves that kind unstyled.
func NewStyles(border, title, text string) Styles {
	fg := func(c string) lipgloss.Style {
		s := lipgloss.NewStyle()
		if c != "" {
			s = s.Foreground(lipgloss.Color(c))
		}
		return s
	}
	return Styles{
		Border: fg(border),
		Title:  fg(title).Bold(true),
		Text:   fg(text),
	}
}

func (s Styles) style(k Kind) (lipgloss.Style, bool) {
	switch k {
	case KindBorder:
		return s.Border, true
	case KindTitle:
		return s.Title, true
	case KindText:
		return s.Text, true
	}
	return lipgloss.Style{}, false
}

// Render renders the buffer with each run of same-kind cells styled.
func (s Styles) Render(b *Buffer) string {
	rows := make([]string, b.height)
	for y := range b.height {
		cells := b.cells[y*b.width : (y+1)*b.width]
		end := len(cells)
		for end > 0 && (cells[end-1].Rune == ' ' || cells[end-1].Rune == 0) && !cells[end-1].IsContinuation() {
			end--
		}

		var sb strings.Builder
		for start := 0; start < end; {
			kind := cells[start].Kind
			stop := start
			var run strings.Builder
			for stop < end && cells[stop].Kind == kind {
				if c := cells[stop]; !c.IsContinuation() {
					run.WriteRune(max(c.Rune, ' '))
				}
				stop++
			}
			if st, ok := s.style(kind); ok {
				sb.WriteString(st.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			start = stop
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// Option configures Render.
type Option func(*options)

type options struct {
	scale  float64
	color  bool
	styles Styles
}

// WithScale sets how many cells one layout unit spans. The default is 1.
func WithScale(scale float64) Option {
	return func(o *options) { o.scale = scale }
}

// WithColor turns styled output on or off.
func WithColor(on bool) Option {
	return func(o *options) { o.color = on }
}

// WithStyles sets the styles used when color is on.
func WithStyles(s Styles) Option {
	return func(o *options) { o.styles = s }
}

// Render draws the tree rooted at root and returns it as text. The root is
// drawn at the top-left corner regardless of its origin.
func Render(root *view.View, opts ...Option) string {
	o := options{scale: 1, styles: DefaultStyles()}
	for _, opt := range opts {
		opt(&o)
	}
	buf := Draw(root, o.scale)
	if !o.color {
		return buf.String()
	}
	return o.styles.Render(buf)
}

// Draw draws the tree rooted at root into a new buffer sized to the
// root's frame.
func Draw(root *view.View, scale float64) *Buffer {
	if scale <= 0 {
		scale = 1
	}
	f := root.Frame()
	bounds := CellRect(layout.Rect{Width: f.Width, Height: f.Height}, scale)
	buf := NewBuffer(bounds.Dx(), bounds.Dy())
	draw(buf, root, f.Origin(), buf.Rect(), scale)
	return buf
}

func draw(buf *Buffer, v *view.View, offset layout.Point, clip image.Rectangle, scale float64) {
	f := v.AbsoluteFrame().Translate(-offset.X, -offset.Y)
	r := CellRect(f, scale)

	content := r
	if v.Border() != view.BorderNone && r.Dx() >= 2 && r.Dy() >= 2 {
		DrawBoxClipped(buf, r, v.Border(), clip)
		DrawTitleClipped(buf, r, v.Title(), clip)
		content = r.Inset(1)
	}
	inner := clip.Intersect(content)

	if lines := v.Lines(); len(lines) > 0 {
		text := CellRect(f.Inset(v.Padding()), scale).Intersect(inner)
		step := max(v.Measurer().LineHeight()*scale, 1)
		for i, line := range lines {
			y := text.Min.Y + int(math.Round(float64(i)*step))
			buf.SetStringClipped(text.Min.X, y, line, KindText, text)
		}
	}

	for _, c := range v.Children() {
		draw(buf, c, offset, inner, scale)
	}
}

// CellRect snaps r to the cell grid, with scale cells per layout unit.
// Edges are rounded independently so adjacent frames stay adjacent.
func CellRect(r layout.Rect, scale float64) image.Rectangle {
	cell := func(v float64) int { return int(math.Round(v * scale)) }
	return image.Rect(cell(r.MinX()), cell(r.MinY()), cell(r.MaxX()), cell(r.MaxY()))
}
