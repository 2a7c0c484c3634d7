package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/plot/polar"
)

// panCommand creates the pan command replaying a pointer gesture.
func (c *CLI) panCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pan <scenario.toml>",
		Short: "Replay a pan gesture and print the resulting axes state",
		Long: `Replay the [gesture] of a scenario: press at start, drag through every
position in drags, release. A right-button gesture zooms; a left-button
press on the radius labels rotates them.`,
		Example: `  polardemo pan zoom.toml
  polardemo -v pan drag-labels.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			if s.Gesture == nil {
				return fmt.Errorf("%s: no [gesture] table", args[0])
			}
			ax, err := s.newAxes()
			if err != nil {
				return err
			}
			mode, err := c.replay(ax, s.Gesture)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mode: %s\n", mode)
			fmt.Fprintf(out, "rmin: %.6g\n", ax.RMin())
			fmt.Fprintf(out, "rmax: %.6g\n", ax.RMax())
			fmt.Fprintf(out, "label angle: %.6g\n", ax.RLabelAngle())
			return nil
		},
	}

	return cmd
}

// replay drives ax through g. Drags rejected as degenerate are logged and
// skipped.
func (c *CLI) replay(ax *polar.Axes, g *gestureSpec) (polar.PanMode, error) {
	button, err := parseButton(g.Button)
	if err != nil {
		return polar.PanNone, err
	}
	x, y, err := xy(g.Start)
	if err != nil {
		return polar.PanNone, fmt.Errorf("gesture start: %w", err)
	}

	mode := ax.StartPan(x, y, button)
	c.Logger.Info("gesture started", "mode", mode, "x", x, "y", y)
	for i, d := range g.Drags {
		x, y, err := xy(d)
		if err != nil {
			return mode, fmt.Errorf("gesture drag %d: %w", i, err)
		}
		err = ax.DragPan(button, g.Key, x, y)
		switch {
		case errors.Is(err, polar.ErrDegenerateZoom):
			c.Logger.Warn("zoom through the centre ignored", "drag", i, "x", x, "y", y)
		case err != nil:
			return mode, fmt.Errorf("gesture drag %d: %w", i, err)
		default:
			c.Logger.Debug("dragged", "drag", i, "rmax", ax.RMax(), "label_angle", ax.RLabelAngle())
		}
	}
	return mode, ax.EndPan()
}
