package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/polar"
)

// ticksCommand creates the ticks command listing ticks and label positions.
func (c *CLI) ticksCommand() *cobra.Command {
	var positions bool

	cmd := &cobra.Command{
		Use:   "ticks <scenario.toml>",
		Short: "Print angular and radial ticks with their labels",
		Example: `  polardemo ticks scenario.toml
  polardemo ticks --positions scenario.toml`,
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

			out := cmd.OutOrStdout()
			var thetaPos, rPos []plot.Point
			if positions {
				thetaPos, _ = ax.ThetaLabelPositions()
				rPos, _ = ax.RLabelPositions()
			}
			fmt.Fprintln(out, "theta:")
			for i, t := range ax.ThetaTicks() {
				writeTick(out, t, 180/math.Pi, thetaPos, i)
			}
			fmt.Fprintln(out, "r:")
			for i, t := range ax.RTicks() {
				writeTick(out, t, 1, rPos, i)
			}
			c.Logger.Debug("ticks listed", "theta", len(ax.ThetaTicks()), "r", len(ax.RTicks()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&positions, "positions", false, "also print the display position of each label")

	return cmd
}

// writeTick prints t with its value multiplied by unit, followed by the
// label position when pos has one.
func writeTick(w io.Writer, t polar.Tick, unit float64, pos []plot.Point, i int) {
	if i < len(pos) {
		fmt.Fprintf(w, "  %10.4g  %-8s (%.3f, %.3f)\n", t.Value*unit, t.Label, pos[i].X, pos[i].Y)
		return
	}
	fmt.Fprintf(w, "  %10.4g  %s\n", t.Value*unit, t.Label)
}
