// Package layout implements a frame-based layout engine.
//
// Every element exposes a single mutable frame through [Layoutable]. Layout is
// expressed as a sequence of declarative [Operation] values (Set, Align, Fill,
// Center, SizeToFit, Put, Follow and Combine) that compute new frames from the
// current ones. There is no constraint solver: each operation reads the frames
// it depends on, writes the frames it owns and returns.
//
// Operations run inside a [Pass], which carries the active viewport stack and
// the [Diagnostics] sink used for fail-soft warnings. Nothing in this package
// panics or returns an error on bad input; anomalies are reported and the pass
// continues.
//
// The box-distribution algorithm behind [HPut] and [VPut] apportions one axis
// of a container among [Fix] and [Flex] intentions strictly in order.
package layout
