package cli

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grindlemire/go-frame/internal/config"
	"github.com/grindlemire/go-frame/internal/debug"
	"github.com/grindlemire/go-frame/internal/layout"
	"github.com/grindlemire/go-frame/internal/preview"
	"github.com/grindlemire/go-frame/internal/scene"
	"github.com/grindlemire/go-frame/internal/view"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	width  float64 // target width; 0 uses the scene, config or terminal width
	height float64 // target height; 0 uses the scene height or the content height
	scale  float64 // preview cells per layout unit
	color  bool    // style the preview
	frames bool    // print the frames table
	direct bool    // lay out the view tree directly instead of via a node tree
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Lay out a scene and preview it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())
			if !cmd.Flags().Changed("scale") {
				opts.scale = cfg.Scale
			}
			if opts.scale <= 0 {
				return fmt.Errorf("scale must be positive, got %v", opts.scale)
			}
			if !cmd.Flags().Changed("color") {
				opts.color = cfg.Color && isTerminal(os.Stdout)
			}
			return runRender(cmd, args[0], cfg, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", 0, "target width (default: scene, config or terminal width)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "target height (default: scene height or content height)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "preview cells per layout unit")
	cmd.Flags().BoolVar(&opts.color, "color", true, "style the preview")
	cmd.Flags().BoolVar(&opts.frames, "frames", false, "print a table of computed frames")
	cmd.Flags().BoolVar(&opts.direct, "direct", false, "lay out views directly instead of through a node tree")
	return cmd
}

func runRender(cmd *cobra.Command, path string, cfg config.Config, opts renderOpts) error {
	logger := debug.LoggerFrom(cmd.Context())

	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	size := targetSize(s, cfg, opts)
	logger.Debug("laying out scene", "scene", path, "width", size.Width, "height", size.Height, "direct", opts.direct)

	var content *view.View
	if opts.direct {
		s.Width, s.Height = size.Width, size.Height
		if content, err = s.Layout(nil); err != nil {
			return err
		}
		if size.Height == 0 {
			size.Height = contentHeight(content)
			content.SetFrame(layout.NewRect(0, 0, size.Width, size.Height))
		}
	} else {
		root, err := s.Root()
		if err != nil {
			return err
		}
		target := size
		if target.Height == 0 {
			target.Height = layout.MaxExtent
		}
		got := root.Calculate(target)
		if unbounded(got.Height) {
			// The scene fills its container vertically; give it the
			// configured height instead of an unbounded one.
			target.Height = cfg.Height
			if target.Height <= 0 {
				target.Height = config.Default().Height
			}
			logger.Debug("scene fills vertically, using config height", "height", target.Height)
			got = root.Calculate(target)
		}
		if size.Height == 0 {
			size.Height = got.Height
		}
		content = view.New(view.WithTag(scene.RootTag), view.WithFrame(layout.NewRect(0, 0, size.Width, size.Height)))
		root.Install(content)
		logger.Debug("installed node tree", "state", root.State(), "height", got.Height)
	}

	// Frame the scene in the configured border, outside its own bounds.
	content.SetFrame(content.Frame().WithOrigin(layout.Point{X: 1 / opts.scale, Y: 1 / opts.scale}))
	frame := view.New(
		view.WithFrame(layout.NewRect(0, 0, size.Width+2/opts.scale, size.Height+2/opts.scale)),
		view.WithBorder(cfg.BorderStyle()),
		view.WithTitle(filepath.Base(path)),
		view.WithChildren(content),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, preview.Render(frame,
		preview.WithScale(opts.scale),
		preview.WithColor(opts.color),
		preview.WithStyles(preview.NewStyles(cfg.Colors.Border, cfg.Colors.Title, cfg.Colors.Text)),
	))
	if opts.frames {
		fmt.Fprintln(out, preview.Table(content))
	}
	return nil
}

// targetSize picks the layout size: flags first, then the scene, then the
// config, then the terminal width.
func targetSize(s *scene.Scene, cfg config.Config, opts renderOpts) layout.Size {
	size := layout.Size{Width: opts.width, Height: opts.height}
	if size.Width == 0 {
		size.Width = s.Width
	}
	if size.Height == 0 {
		size.Height = s.Height
	}
	if size.Width == 0 {
		size.Width = cfg.Width
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 2 {
			size.Width = float64(w-2) / opts.scale
		}
	}
	return size
}

// unbounded reports whether h came from laying out against MaxExtent
// rather than from the content.
func unbounded(h float64) bool {
	return math.IsInf(h, 0) || math.IsNaN(h) || h >= layout.MaxExtent/2
}

// contentHeight is the bottom of v's lowest child.
func contentHeight(v *view.View) float64 {
	var h float64
	for _, c := range v.Children() {
		if mh := c.Frame().MaxY(); !unbounded(mh) {
			h = max(h, mh)
		}
	}
	return h
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
