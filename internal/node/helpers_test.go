package node

import "github.com/grindlemire/go-frame/internal/layout"

// fakeHost is an in-memory Host that records how it was used.
type fakeHost struct {
	tag      string
	kind     string
	frame    layout.Rect
	viewport *layout.Rect
	parent   *fakeHost
	children []*fakeHost

	text    string
	resets  int
	fitsPer float64 // width per rune for SizeThatFits
}

func newFakeHost(kind string) *fakeHost { return &fakeHost{kind: kind, fitsPer: 1} }

func (h *fakeHost) Frame() layout.Rect         { return h.frame }
func (h *fakeHost) SetFrame(r layout.Rect)     { h.frame = r }
func (h *fakeHost) Viewport() *layout.Rect     { return h.viewport }
func (h *fakeHost) SetViewport(r *layout.Rect) { h.viewport = r }
func (h *fakeHost) Tag() string                { return h.tag }
func (h *fakeHost) SetTag(tag string)          { h.tag = tag }
func (h *fakeHost) Parent() layout.Layoutable {
	if h.parent == nil {
		return nil
	}
	return h.parent
}

func (h *fakeHost) SizeThatFits(c layout.Size) layout.Size {
	w := float64(len([]rune(h.text))) * h.fitsPer
	return layout.Size{Width: min(w, c.Width), Height: 1}
}

func (h *fakeHost) ChildWithTag(tag string) Host {
	var found *fakeHost
	for _, c := range h.children {
		if c.tag == tag {
			found = c
		}
	}
	if found == nil {
		return nil
	}
	return found
}

func (h *fakeHost) AddChild(child Host) {
	c := child.(*fakeHost)
	c.parent = h
	h.children = append(h.children, c)
}

func fakeFactory(kind string, created *int) func() Host {
	return func() Host {
		if created != nil {
			*created++
		}
		return newFakeHost(kind)
	}
}
