// Package node builds layout trees that can be computed off-screen and
// installed into real elements later.
//
// A [RootNode] owns a tree of [Node] values and a layout function. Nodes
// implement layout.Layoutable, so the layout function runs ordinary layout
// operations against them. [RootNode.Calculate] runs the function for a
// target size and caches the result until a different size is requested;
// [RootNode.Install] then walks the tree, reusing host elements by tag or
// creating them through each node's factory, and copies the computed frames.
//
// This split lets list and table adapters measure rows on a background
// goroutine and install them on the UI goroutine, reusing the same host
// elements across rows.
package node
