// Package scene reads layout scenes from TOML documents.
//
// A scene declares a tree of views and a list of layout operations over
// them:
//
//	width = 40.0
//	height = 10.0
//
//	[[views]]
//	tag = "title"
//	text = "Hello"
//	border = "rounded"
//
//	[[ops]]
//	op = "hput"
//	items = [{ fix = 2.0 }, { flex = 1.0, views = ["title"] }, { fix = 2.0 }]
//
// Views without a parent are children of the scene root, tagged "root".
// Operations reference views by tag and anchors as "tag.edge", optionally
// followed by an inset ("title.bottom+2"). A scene can be laid out directly
// against a view tree with Layout, or off-screen as a node tree with Root.
package scene

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// RootTag is the tag of the scene's root element.
const RootTag = "root"

var (
	// ErrUnknownView is returned when a document references an undeclared view.
	ErrUnknownView = errors.New("unknown view")
	// ErrUnknownOp is returned for an unsupported operation name.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrBadAnchor is returned for a malformed or mismatched anchor reference.
	ErrBadAnchor = errors.New("bad anchor")
	// ErrInvalid is returned for structural problems in the document.
	ErrInvalid = errors.New("invalid scene")
)

// Scene is a parsed scene document.
type Scene struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	// Units selects how text is measured: "cells" (default) or "pixels".
	Units string `toml:"units"`
	Views []View `toml:"views"`
	Ops   []Op   `toml:"ops"`
}

// View declares one element.
type View struct {
	Tag      string    `toml:"tag"`
	Parent   string    `toml:"parent"`
	Text     string    `toml:"text"`
	MaxLines int       `toml:"max_lines"`
	Frame    []float64 `toml:"frame"`    // x, y, width, height
	Viewport []float64 `toml:"viewport"` // x, y, width, height
	Padding  []float64 `toml:"padding"`  // all, or top, right, bottom, left
	Border   string    `toml:"border"`
	Title    string    `toml:"title"`
}

// Op declares one layout operation. Which fields apply depends on Op.
type Op struct {
	Op string `toml:"op"`

	// set, align, fill, center, sizetofit
	View   string    `toml:"view"`
	Edge   string    `toml:"edge"`
	Value  float64   `toml:"value"`
	Inset  float64   `toml:"inset"`
	Insets []float64 `toml:"insets"`
	Offset float64   `toml:"offset"`

	// hput, vput
	Items []Item `toml:"items"`

	// follow
	From string `toml:"from"`
	To   string `toml:"to"`

	// sizetofit: "max", "current", "keep" or a number
	FitWidth  string   `toml:"fit_width"`
	FitHeight string   `toml:"fit_height"`
	MinWidth  *float64 `toml:"min_width"`
	MaxWidth  *float64 `toml:"max_width"`
	MinHeight *float64 `toml:"min_height"`
	MaxHeight *float64 `toml:"max_height"`

	// combine
	Viewport *Viewport `toml:"viewport"`
	Ops      []Op      `toml:"ops"`
}

// Item is one put intention. Exactly one of Fix, Flex or Fit is set; Fit
// is "current", "min" or "max" and fixes the extent from Views.
type Item struct {
	Fix   *float64 `toml:"fix"`
	Flex  *float64 `toml:"flex"`
	Fit   string   `toml:"fit"`
	Views []string `toml:"views"`
}

// Viewport narrows the container of the operations in a combine.
type Viewport struct {
	Top    string `toml:"top"`
	Bottom string `toml:"bottom"`
	Left   string `toml:"left"`
	Right  string `toml:"right"`
}

// Load reads and parses the scene at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene document and checks that it builds.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the view tree and compiles every operation.
func (s *Scene) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("%w: negative size %vx%v", ErrInvalid, s.Width, s.Height)
	}
	if _, err := s.measurer(); err != nil {
		return err
	}

	parents := make(map[string]string, len(s.Views))
	for i, v := range s.Views {
		switch {
		case v.Tag == "":
			return fmt.Errorf("%w: view %d has no tag", ErrInvalid, i)
		case v.Tag == RootTag:
			return fmt.Errorf("%w: tag %q is reserved", ErrInvalid, RootTag)
		case strings.ContainsAny(v.Tag, ".+-"):
			return fmt.Errorf("%w: tag %q contains '.', '+' or '-'", ErrInvalid, v.Tag)
		}
		if _, dup := parents[v.Tag]; dup {
			return fmt.Errorf("%w: duplicate tag %q", ErrInvalid, v.Tag)
		}
		parents[v.Tag] = v.Parent
	}
	for tag, parent := range parents {
		seen := map[string]bool{tag: true}
		for p := parent; p != "" && p != RootTag; p = parents[p] {
			if _, ok := parents[p]; !ok {
				return fmt.Errorf("%w: %q is the parent of %q", ErrUnknownView, p, tag)
			}
			if seen[p] {
				return fmt.Errorf("%w: %q is its own ancestor", ErrInvalid, tag)
			}
			seen[p] = true
		}
	}

	_, _, err := s.Build()
	return err
}
