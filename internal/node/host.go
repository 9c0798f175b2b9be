package node

import "github.com/grindlemire/go-frame/internal/layout"

// Host is a real element a node tree installs into. The tag is a
// first-class field of the host so lookups do not depend on side storage.
type Host interface {
	layout.Layoutable

	// Tag returns the tag this host was installed under.
	Tag() string
	// SetTag sets the tag this host is looked up by.
	SetTag(tag string)
	// SetViewport sets or clears the bounds override the host exposes to
	// its children.
	SetViewport(r *layout.Rect)
	// ChildWithTag returns the direct child installed under tag, or nil.
	ChildWithTag(tag string) Host
	// AddChild appends child to this host.
	AddChild(child Host)
}
