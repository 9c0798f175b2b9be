package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-frame/internal/debug"
	"github.com/grindlemire/go-frame/internal/rows"
	"github.com/grindlemire/go-frame/internal/scene"
)

func newMeasureCmd() *cobra.Command {
	var (
		widths  []float64
		workers int
	)

	cmd := &cobra.Command{
		Use:   "measure [scene...]",
		Short: "Print the height each scene needs at the given widths",
		Long: `measure lays out every scene off-screen, as rows of a virtualized list
would be, and prints the height each one extends to at each width.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())
			if len(widths) == 0 {
				widths = []float64{cfg.Width}
			}
			if !cmd.Flags().Changed("workers") {
				workers = cfg.Workers
			}
			return runMeasure(cmd, args, widths, workers)
		},
	}

	cmd.Flags().Float64SliceVar(&widths, "width", nil, "widths to measure at (repeatable; default: config width)")
	cmd.Flags().IntVar(&workers, "workers", 0, "measurement goroutines (0: GOMAXPROCS)")
	return cmd
}

func runMeasure(cmd *cobra.Command, paths []string, widths []float64, workers int) error {
	logger := debug.LoggerFrom(cmd.Context())

	cache := rows.New[string](rows.WithWorkers(workers))
	for _, p := range paths {
		s, err := scene.Load(p)
		if err != nil {
			return err
		}
		root, err := s.Root()
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		cache.Put(p, root)
	}

	heights := make([][]float64, len(widths))
	for i, w := range widths {
		hs, err := cache.Heights(cmd.Context(), paths, w)
		if err != nil {
			return err
		}
		heights[i] = hs
		logger.Debug("measured scenes", "width", w, "count", len(hs))
	}

	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	headers := []string{"Scene"}
	for _, w := range widths {
		headers = append(headers, "h@"+num(w))
	}
	var data [][]string
	for j, p := range paths {
		row := []string{p}
		for i := range widths {
			h := heights[i][j]
			if unbounded(h) {
				row = append(row, "fill")
				continue
			}
			row = append(row, num(h))
		}
		data = append(data, row)
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
