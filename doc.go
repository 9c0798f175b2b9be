// Package frame provides a frame-based layout engine for Go.
//
// Users import this single package for the public API: geometry types,
// anchors, layout operations, diagnostics and the node trees used to
// calculate a layout once and install it into many live element trees.
//
// A layout is a sequence of operations that read and write element frames:
//
//	frame.Run(
//		frame.HPut(
//			frame.Fix(8),
//			frame.FixCurrent(icon),
//			frame.Fix(8),
//			frame.Flex(1, title),
//			frame.Fix(8),
//		),
//		frame.VCenter(icon),
//		frame.VCenter(title),
//	)
package frame
