package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/plot"
)

// projectCommand creates the project command printing display coordinates.
func (c *CLI) projectCommand() *cobra.Command {
	var inverse, matrix bool

	cmd := &cobra.Command{
		Use:   "project <scenario.toml>",
		Short: "Print the display position of every data point",
		Long: `Project the [[points]] of a scenario through the data transform of the
axes and print their display coordinates. Points below rmin print as NaN.`,
		Example: `  # Project points
  polardemo project scenario.toml

  # Also map the display coordinates back to data
  polardemo project --inverse scenario.toml

  # Print the affine from the projected plane to display coordinates
  polardemo project --matrix scenario.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			ax, err := s.newAxes()
			if err != nil {
				return err
			}
			c.Logger.Debug("axes ready", "rmin", ax.RMin(), "rmax", ax.RMax(), "scale", ax.RScale().Name())

			data := s.data()
			display := ax.DataTransform().TransformPoints(data)
			var back []plot.Point
			if inverse {
				back = ax.DataTransform().Inverted().TransformPoints(display)
			}

			out := cmd.OutOrStdout()
			if matrix {
				m := ax.DisplayAffine()
				fmt.Fprintf(out, "display affine: [%.6g %.6g %.6g; %.6g %.6g %.6g]\n", m[0], m[1], m[2], m[3], m[4], m[5])
			}
			for i, p := range data {
				fmt.Fprintf(out, "%s -> (%.3f, %.3f)", ax.FormatCoord(p.X, p.Y), display[i].X, display[i].Y)
				if inverse {
					fmt.Fprintf(out, " -> %s", ax.FormatCoord(back[i].X, back[i].Y))
				}
				fmt.Fprintln(out)
			}
			if clipped := countUndefined(display); clipped > 0 {
				c.Logger.Warnf("%d of %d points lie below rmin", clipped, len(display))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&inverse, "inverse", false, "map display coordinates back through the inverse transform")
	cmd.Flags().BoolVar(&matrix, "matrix", false, "print the display affine in x/image/draw row-major order")

	return cmd
}

func countUndefined(pts []plot.Point) int {
	n := 0
	for _, p := range pts {
		if p.IsUndefined() {
			n++
		}
	}
	return n
}

