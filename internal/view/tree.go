package view

import "github.com/grindlemire/go-frame/internal/node"

// Tag returns the tag this view was installed under.
func (v *View) Tag() string { return v.tag }

// SetTag sets the tag.
func (v *View) SetTag(tag string) { v.tag = tag }

// AddChild appends child, which must be a *View; other hosts are ignored.
func (v *View) AddChild(child node.Host) {
	if c, ok := child.(*View); ok {
		v.Append(c)
	}
}

// Append appends children to this view.
func (v *View) Append(children ...*View) {
	for _, c := range children {
		if c.parent != nil {
			c.parent.RemoveChild(c)
		}
		c.parent = v
		v.children = append(v.children, c)
	}
}

// RemoveChild removes child, keeping the order of the others.
// Returns true if the child was found and removed.
func (v *View) RemoveChild(child *View) bool {
	for i, c := range v.children {
		if c == child {
			v.children = append(v.children[:i], v.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// ChildWithTag returns the last direct child tagged tag, or nil.
func (v *View) ChildWithTag(tag string) node.Host {
	if c := v.Child(tag); c != nil {
		return c
	}
	return nil
}

// Child is ChildWithTag returning a *View.
func (v *View) Child(tag string) *View {
	for i := len(v.children) - 1; i >= 0; i-- {
		if v.children[i].tag == tag {
			return v.children[i]
		}
	}
	return nil
}

// Find returns the first descendant (or v itself) tagged tag, depth first.
func (v *View) Find(tag string) *View {
	var found *View
	v.Walk(func(c *View) bool {
		if found != nil {
			return false
		}
		if c.tag == tag {
			found = c
			return false
		}
		return true
	})
	return found
}

// Children returns the child views.
func (v *View) Children() []*View { return v.children }

// Root returns the topmost ancestor of v.
func (v *View) Root() *View {
	r := v
	for r.parent != nil {
		r = r.parent
	}
	return r
}
