package layout

type follow[A Anchor] struct {
	src, dst A
}

// Follow moves dst's element so that dst resolves to the value src resolves
// to right now. It is a one-shot assignment: later changes to src's element
// are not propagated until Follow runs again.
//
// Both elements are expected to share a parent. When they don't, a
// MismatchedParent warning is reported and the raw values are used anyway.
func Follow[A Anchor](src, dst A) Operation {
	return follow[A]{src: src, dst: dst}
}

func (f follow[A]) Calculate(p *Pass) {
	sv, dv := f.src.View(), f.dst.View()
	if sv == nil || dv == nil {
		p.Warn(NoContainer, "Follow", "anchor without an element")
		return
	}
	if sv.Parent() != dv.Parent() {
		p.Warn(MismatchedParent, "Follow", "source and target do not share a parent")
	}
	f.dst.Apply(f.src.Value())
}
