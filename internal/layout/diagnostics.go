package layout

import (
	"fmt"
	"sync"
)

// WarningKind classifies a fail-soft anomaly detected during a layout pass.
type WarningKind uint8

const (
	// MismatchedParent means the elements referenced by one operation do not
	// share a parent.
	MismatchedParent WarningKind = iota
	// NoContainer means an operation could not determine its container.
	NoContainer
	// ForeignViewportAnchor means a viewport anchor belongs to an element that
	// is neither the container nor one of its children.
	ForeignViewportAnchor
	// DuplicateTag means two sibling nodes share a tag.
	DuplicateTag
	// ZeroWeight means Flex intentions were present but their total weight
	// was not positive.
	ZeroWeight
	// NotMeasured means a node tree was installed before it was calculated.
	NotMeasured
)

var warningKindNames = [...]string{
	MismatchedParent:      "mismatched-parent",
	NoContainer:           "no-container",
	ForeignViewportAnchor: "foreign-viewport-anchor",
	DuplicateTag:          "duplicate-tag",
	ZeroWeight:            "zero-weight",
	NotMeasured:           "not-measured",
}

func (k WarningKind) String() string {
	if int(k) < len(warningKindNames) {
		return warningKindNames[k]
	}
	return fmt.Sprintf("warning(%d)", k)
}

// Warning describes one anomaly. Op names the operation that detected it.
type Warning struct {
	Kind    WarningKind
	Op      string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s: %s", w.Op, w.Kind, w.Message)
}

// Diagnostics receives warnings produced during layout. Implementations
// decide whether to log, collect, or escalate them; the pass itself always
// continues.
type Diagnostics interface {
	Report(Warning)
}

// DiagnosticsFunc adapts a function to the Diagnostics interface.
type DiagnosticsFunc func(Warning)

// Report calls f(w).
func (f DiagnosticsFunc) Report(w Warning) { f(w) }

type discardDiagnostics struct{}

func (discardDiagnostics) Report(Warning) {}

// DiscardDiagnostics drops every warning.
var DiscardDiagnostics Diagnostics = discardDiagnostics{}

// Collector records warnings in memory. It is safe for concurrent use so a
// single collector can observe passes running on several goroutines.
type Collector struct {
	mu       sync.Mutex
	warnings []Warning
}

// Report records w.
func (c *Collector) Report(w Warning) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, w)
}

// Warnings returns a copy of the recorded warnings.
func (c *Collector) Warnings() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Count returns how many warnings of the given kind were recorded.
func (c *Collector) Count(kind WarningKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, w := range c.warnings {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

// Reset clears the recorded warnings.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = nil
}
