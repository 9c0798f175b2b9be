// Package view provides headless host elements for node trees.
//
// A [View] is a plain in-memory element: it has a frame in its parent's
// coordinate space, children, an optional viewport override and optional
// text. It implements layout.Layoutable, layout.Baselinable and node.Host,
// so layout operations can run against it directly and node trees can be
// installed into it. The preview package draws a View tree to a cell grid.
package view
