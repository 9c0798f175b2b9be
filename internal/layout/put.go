package layout

import "math"

type intentionKind uint8

const (
	intentionFix intentionKind = iota
	intentionFlex
)

// FixStrategy selects how a Fix intention measures its extent.
type FixStrategy uint8

const (
	FixValue   FixStrategy = iota // A literal extent
	FixFirst                      // The first element's current extent
	FixMinimum                    // The smallest current extent among the elements
	FixMaximum                    // The largest current extent among the elements
)

func (s FixStrategy) String() string {
	return [...]string{"value", "first", "min", "max"}[s]
}

// PutIntention is one segment of a box distribution. Every element listed
// in an intention receives the same span along the distributed axis; an
// intention without elements is empty space.
type PutIntention struct {
	kind     intentionKind
	views    []Layoutable
	strategy FixStrategy
	value    float64
	weight   float64
}

// Fix is a segment of exactly n. Without views it is fixed empty space.
func Fix(n float64, views ...Layoutable) PutIntention {
	return PutIntention{kind: intentionFix, views: views, strategy: FixValue, value: n}
}

// FixCurrent is a segment as long as the first view's current extent.
func FixCurrent(views ...Layoutable) PutIntention {
	return PutIntention{kind: intentionFix, views: views, strategy: FixFirst}
}

// FixMin is a segment as long as the smallest current extent among views.
func FixMin(views ...Layoutable) PutIntention {
	return PutIntention{kind: intentionFix, views: views, strategy: FixMinimum}
}

// FixMax is a segment as long as the largest current extent among views.
func FixMax(views ...Layoutable) PutIntention {
	return PutIntention{kind: intentionFix, views: views, strategy: FixMaximum}
}

// Flex is a segment sized weight/totalWeight of the extent left over after
// every Fix segment. Without views it is flexible empty space.
func Flex(weight float64, views ...Layoutable) PutIntention {
	return PutIntention{kind: intentionFlex, views: views, weight: weight}
}

// IsFlex reports whether the intention is a Flex segment.
func (pi PutIntention) IsFlex() bool { return pi.kind == intentionFlex }

// Views returns the elements the intention positions.
func (pi PutIntention) Views() []Layoutable { return pi.views }

// Weight returns the Flex weight, or 0 for Fix segments.
func (pi PutIntention) Weight() float64 { return pi.weight }

// fixedExtent resolves a Fix intention along axis.
func (pi PutIntention) fixedExtent(axis Axis) float64 {
	switch pi.strategy {
	case FixValue:
		return pi.value
	case FixFirst:
		if len(pi.views) == 0 {
			return 0
		}
		return axis.Extent(pi.views[0].Frame())
	case FixMinimum, FixMaximum:
		if len(pi.views) == 0 {
			return 0
		}
		ext := axis.Extent(pi.views[0].Frame())
		for _, v := range pi.views[1:] {
			e := axis.Extent(v.Frame())
			if pi.strategy == FixMinimum {
				ext = min(ext, e)
			} else {
				ext = max(ext, e)
			}
		}
		return ext
	}
	return 0
}

// Segment is the span computed for one intention.
type Segment struct {
	Origin, Extent float64
}

// Distribution is the result of apportioning an axis among intentions.
type Distribution struct {
	Segments []Segment
	// Unit is the extent of one unit of Flex weight.
	Unit float64
	// ZeroWeight is set when Flex intentions were present but their total
	// weight was not positive; every Flex segment then has extent 0.
	ZeroWeight bool
}

// Distribute apportions [origin, origin+extent) among intentions in order.
// Fix segments take their resolved extent; the remainder is split among
// Flex segments by weight. Nothing is clamped: if Fix segments overflow the
// extent, Flex segments receive negative extents.
func Distribute(axis Axis, origin, extent float64, intentions []PutIntention) Distribution {
	d := Distribution{Segments: make([]Segment, len(intentions))}
	if len(intentions) == 0 {
		return d
	}

	fixed := make([]float64, len(intentions))
	available := extent
	totalWeight := 0.0
	hasFlex := false
	for i, pi := range intentions {
		if pi.IsFlex() {
			hasFlex = true
			totalWeight += pi.weight
			continue
		}
		fixed[i] = pi.fixedExtent(axis)
		available -= fixed[i]
	}

	if hasFlex {
		if totalWeight > 0 && !math.IsInf(totalWeight, 0) && !math.IsNaN(totalWeight) {
			d.Unit = available / totalWeight
		} else {
			d.ZeroWeight = true
		}
	}

	cursor := origin
	for i, pi := range intentions {
		ext := fixed[i]
		if pi.IsFlex() {
			ext = pi.weight * d.Unit
			if d.ZeroWeight {
				ext = 0
			}
		}
		d.Segments[i] = Segment{Origin: cursor, Extent: ext}
		cursor += ext
	}
	return d
}

type put struct {
	axis       Axis
	intentions []PutIntention
}

// HPut distributes the container's width among intentions, left to right.
func HPut(intentions ...PutIntention) Operation {
	return put{axis: Horizontal, intentions: intentions}
}

// VPut distributes the container's height among intentions, top to bottom.
func VPut(intentions ...PutIntention) Operation {
	return put{axis: Vertical, intentions: intentions}
}

// Put distributes the container's extent along axis among intentions.
func Put(axis Axis, intentions ...PutIntention) Operation {
	return put{axis: axis, intentions: intentions}
}

func (op put) name() string {
	if op.axis == Vertical {
		return "VPut"
	}
	return "HPut"
}

func (op put) Calculate(p *Pass) {
	var views []Layoutable
	for _, pi := range op.intentions {
		views = append(views, pi.views...)
	}
	// Pure spacing positions nothing.
	if len(views) == 0 {
		return
	}

	name := op.name()
	frame, ok := p.frame(name, views...)
	if !ok {
		return
	}

	d := Distribute(op.axis, op.axis.Origin(frame), op.axis.Extent(frame), op.intentions)
	if d.ZeroWeight {
		p.Warn(ZeroWeight, name, "total flex weight is not positive, flex segments get no extent")
	}
	for i, pi := range op.intentions {
		seg := d.Segments[i]
		for _, v := range pi.views {
			v.SetFrame(op.axis.Span(v.Frame(), seg.Origin, seg.Extent))
		}
	}
}
