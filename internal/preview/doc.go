// Package preview draws laid-out view trees into a grid of terminal cells.
//
// Frames are snapped to the cell grid, borders are drawn with box-drawing
// characters and text is written line by line inside each view's content
// area. Output is plain text, or styled with lipgloss when colors are on.
package preview
