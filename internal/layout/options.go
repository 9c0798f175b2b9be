package layout

// Option configures Align, Fill and Center operations.
type Option func(*opOptions)

type opOptions struct {
	insets Edges
	offset float64
}

func applyOptions(opts []Option) opOptions {
	var o opOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Inset offsets the operation from every edge of the container by n.
func Inset(n float64) Option {
	return func(o *opOptions) { o.insets = EdgeAll(n) }
}

// Insets offsets the operation from each edge of the container separately.
func Insets(e Edges) Option {
	return func(o *opOptions) { o.insets = e }
}

// Offset shifts a centered element by n along each centered axis.
func Offset(n float64) Option {
	return func(o *opOptions) { o.offset = n }
}
