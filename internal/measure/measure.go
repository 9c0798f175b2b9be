// Package measure provides text measurement services for leaf elements.
//
// A [Measurer] reports the advance width of a run of text and the vertical
// metrics of a line. [Wrap] and [Measure] build multi-line sizes on top of
// it. [Cells] measures terminal cells using go-runewidth; [Face] measures a
// golang.org/x/image/font face in pixels.
package measure

import (
	"strings"
	"unicode"

	"github.com/grindlemire/go-frame/internal/layout"
)

// Measurer measures single lines of text.
type Measurer interface {
	// Width returns the advance width of s, which contains no newlines.
	Width(s string) float64
	// LineHeight returns the distance between consecutive baselines.
	LineHeight() float64
	// Ascent returns the distance from the top of a line to its baseline.
	Ascent() float64
}

// Wrap breaks text into lines no wider than maxWidth. Explicit newlines are
// kept, lines break at whitespace, and words wider than maxWidth are split
// between runes. A non-positive maxWidth disables wrapping.
func Wrap(m Measurer, text string, maxWidth float64) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(m, para, maxWidth)...)
	}
	return lines
}

func wrapParagraph(m Measurer, para string, maxWidth float64) []string {
	if maxWidth <= 0 || m.Width(para) <= maxWidth {
		return []string{para}
	}

	words := strings.FieldsFunc(para, unicode.IsSpace)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := ""
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if m.Width(candidate) <= maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
		// Split words that cannot fit on a line of their own.
		for m.Width(word) > maxWidth {
			head, tail := splitAt(m, word, maxWidth)
			lines = append(lines, head)
			word = tail
		}
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// splitAt returns the longest prefix of word that fits in maxWidth (at least
// one rune) and the remainder.
func splitAt(m Measurer, word string, maxWidth float64) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && m.Width(string(runes[:n+1])) <= maxWidth {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}

// Measure returns the size of text wrapped at maxWidth, keeping at most
// maxLines lines (0 means unlimited).
func Measure(m Measurer, text string, maxWidth float64, maxLines int) layout.Size {
	lines := Wrap(m, text, maxWidth)
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	var w float64
	for _, l := range lines {
		w = max(w, m.Width(l))
	}
	return layout.Size{Width: w, Height: float64(len(lines)) * m.LineHeight()}
}

// Baselines returns the offsets of the first and last baselines of text
// wrapped at maxWidth, measured from the top of the first line.
func Baselines(m Measurer, text string, maxWidth float64, maxLines int) (first, last float64) {
	n := len(Wrap(m, text, maxWidth))
	if maxLines > 0 && n > maxLines {
		n = maxLines
	}
	first = m.Ascent()
	if n <= 1 {
		return first, first
	}
	return first, first + float64(n-1)*m.LineHeight()
}
