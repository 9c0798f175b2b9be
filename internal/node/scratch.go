package node

// Scratch holds throwaway host elements used to measure leaf nodes, one per
// kind, so repeated measurement does not allocate a new element each time.
//
// A Scratch is not safe for concurrent use. Give each goroutine its own.
type Scratch struct {
	elems map[string]Host
}

// NewScratch returns an empty pool.
func NewScratch() *Scratch {
	return &Scratch{elems: make(map[string]Host)}
}

// Get returns the element for kind, creating it on first use.
func (s *Scratch) Get(kind string, create func() Host) Host {
	if h, ok := s.elems[kind]; ok {
		return h
	}
	h := create()
	s.elems[kind] = h
	return h
}

// Len returns the number of pooled elements.
func (s *Scratch) Len() int {
	return len(s.elems)
}
