// Package cli implements the frame command-line interface.
//
// The commands lay out TOML scene documents with the layout engine:
//   - render: lay out a scene and draw it in the terminal
//   - measure: compute the height scenes need at one or more widths
//   - version: print build information
//
// All commands accept --verbose (-v) for debug logging and --config for the
// configuration file. Layout warnings are logged at warn level; setting
// FRAME_DEBUG to a path also appends them to that file.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-frame/internal/config"
	"github.com/grindlemire/go-frame/internal/debug"
	"github.com/grindlemire/go-frame/internal/layout"
)

var (
	version = "dev"  // semantic version
	commit  = "none" // git commit SHA
	date    = ""     // build timestamp
)

// SetVersion sets the version information printed by the version command.
// It is called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// Execute runs the frame CLI.
func Execute() error {
	return newRootCmd(os.Stderr).ExecuteContext(context.Background())
}

type cfgKey struct{}

func withConfig(ctx context.Context, c config.Config) context.Context {
	return context.WithValue(ctx, cfgKey{}, c)
}

func configFrom(ctx context.Context) config.Config {
	if c, ok := ctx.Value(cfgKey{}).(config.Config); ok {
		return c
	}
	return config.Default()
}

// newRootCmd builds the command tree. Logs go to logw.
func newRootCmd(logw io.Writer) *cobra.Command {
	var (
		verbose bool
		cfgPath string
	)
	if p, err := config.DefaultPath(); err == nil {
		cfgPath = p
	}

	root := &cobra.Command{
		Use:           "frame",
		Short:         "Lay out and preview frame scenes",
		Long:          `frame lays out TOML scene documents with a frame-based layout engine and previews the result in the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(cfgPath)
			if err != nil {
				return err
			}

			level := log.InfoLevel
			if verbose || cfg.Verbose {
				level = log.DebugLevel
			}
			logger := debug.NewLogger(logw, level)
			logger.Debug("loaded config", "path", cfgPath, "width", cfg.Width, "height", cfg.Height)

			layout.SetDefaultDiagnostics(debug.Tee(
				debug.Diagnostics(logger),
				debug.Diagnostics(debug.FromEnv()),
			))

			ctx := debug.WithLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			layout.SetDefaultDiagnostics(layout.DiscardDiagnostics)
			_ = debug.Close()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&cfgPath, "config", cfgPath, "configuration file")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newMeasureCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "frame %s\ncommit: %s\n", version, commit)
			if date != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", date)
			}
		},
	}
}
