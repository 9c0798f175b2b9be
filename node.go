// node.go re-exports node tree types from internal/node.
package frame

import (
	"context"

	"github.com/grindlemire/go-frame/internal/node"
)

// Host is a real element a node tree installs into.
type Host = node.Host

// Node is a lightweight stand-in for a Host that layout can run against
// without creating the real element.
type Node = node.Node

// NodeOption configures a Node.
type NodeOption = node.Option

// RootNode is the top of a node tree.
type RootNode = node.RootNode

// RootOption configures a RootNode.
type RootOption = node.RootOption

// LayoutFunc computes the frames of a root's nodes.
type LayoutFunc = node.LayoutFunc

// NodeState is the lifecycle stage of a RootNode.
type NodeState = node.State

const (
	Unmeasured = node.Unmeasured
	Measured   = node.Measured
	Installed  = node.Installed
)

// Scratch is a pool of hosts used to measure nodes.
type Scratch = node.Scratch

// Epsilon is the tolerance under which two target sizes are the same.
const Epsilon = node.Epsilon

var (
	NewNode             = node.New
	NewRoot             = node.NewRoot
	NewScratch          = node.NewScratch
	WithChildren        = node.WithChildren
	WithNodeFrame       = node.WithFrame
	WithNodeViewport    = node.WithViewport
	WithMeasure         = node.WithMeasure
	WithBaseline        = node.WithBaseline
	WithRootDiagnostics = node.WithDiagnostics
	WithScratch         = node.WithScratch
)

// OnConfigure runs fn on the host a node is installed into.
func OnConfigure[T Host](fn func(T)) NodeOption { return node.OnConfigure(fn) }

// OnReset runs fn on a reused host before it is configured again.
func OnReset[T Host](fn func(T)) NodeOption { return node.OnReset(fn) }

// MeasureWith sizes a node by configuring a scratch host of the given kind
// with fn and asking it.
func MeasureWith[T Host](kind string, fn func(T)) NodeOption { return node.MeasureWith(kind, fn) }

// MeasureAll calculates roots concurrently for the same target size.
func MeasureAll(ctx context.Context, roots []*RootNode, size Size, workers int) ([]Size, error) {
	return node.MeasureAll(ctx, roots, size, workers)
}
