package cli

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/polar"
)

// scenario is the TOML description of a polar axes and what to do with it.
//
//	bounds = [0, 0, 400, 400]
//	rmin = 0
//	rmax = 10
//	rscale = "linear"
//
//	[[points]]
//	theta = 45   # degrees
//	r = 5
//
//	[gesture]
//	button = "right"
//	start = [300, 200]
//	drags = [[350, 200]]
type scenario struct {
	Bounds    []float64    `toml:"bounds"`
	RMin      float64      `toml:"rmin"`
	RMax      float64      `toml:"rmax"`
	RScale    string       `toml:"rscale"`
	RPad      *float64     `toml:"rpad"`
	Steps     int          `toml:"steps"`
	Language  string       `toml:"language"`
	TeX       bool         `toml:"tex"`
	Autoscale bool         `toml:"autoscale"`
	Points    []dataPoint  `toml:"points"`
	Gesture   *gestureSpec `toml:"gesture"`
	Grids     gridSpec     `toml:"grids"`
}

type dataPoint struct {
	Theta float64 `toml:"theta"` // degrees
	R     float64 `toml:"r"`
}

type gestureSpec struct {
	Button string      `toml:"button"`
	Key    string      `toml:"key"`
	Start  []float64   `toml:"start"`
	Drags  [][]float64 `toml:"drags"`
}

type gridSpec struct {
	Theta       []float64 `toml:"theta"` // degrees
	ThetaLabels []string  `toml:"theta_labels"`
	ThetaFrac   float64   `toml:"theta_frac"`
	R           []float64 `toml:"r"`
	RLabels     []string  `toml:"r_labels"`
	RAngle      *float64  `toml:"r_angle"`
	RFormat     string    `toml:"r_format"`
}

func defaultScenario() scenario {
	return scenario{
		Bounds:   []float64{0, 0, 400, 400},
		RMax:     1,
		RScale:   "linear",
		Language: "en",
	}
}

// loadScenario reads and decodes the scenario file at path.
func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeScenario(string(data))
}

// decodeScenario decodes a scenario, rejecting unknown keys.
func decodeScenario(data string) (*scenario, error) {
	s := defaultScenario()
	md, err := toml.Decode(data, &s)
	if err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parse scenario: unknown keys: %s", strings.Join(keys, ", "))
	}
	if len(s.Bounds) != 4 {
		return nil, fmt.Errorf("parse scenario: bounds must have 4 values, got %d", len(s.Bounds))
	}
	return &s, nil
}

// newAxes builds the axes the scenario describes, including its data and
// gridlines.
func (s *scenario) newAxes() (*polar.Axes, error) {
	tag, err := language.Parse(s.Language)
	if err != nil {
		return nil, fmt.Errorf("language %q: %w", s.Language, err)
	}
	opts := []polar.Option{
		polar.WithRLim(s.RMin, s.RMax),
		polar.WithRScale(s.RScale),
		polar.WithLanguage(tag),
		polar.WithTeX(s.TeX),
	}
	if s.RPad != nil {
		opts = append(opts, polar.WithRPad(*s.RPad))
	}
	if s.Steps > 0 {
		opts = append(opts, polar.WithInterpolationSteps(s.Steps))
	}

	b := s.Bounds
	ax, err := polar.NewAxes(b[0], b[1], b[2], b[3], opts...)
	if err != nil {
		return nil, fmt.Errorf("create axes: %w", err)
	}

	if s.Autoscale && len(s.Points) > 0 {
		ax.AddData(s.data())
		if err := ax.AutoscaleR(); err != nil {
			return nil, fmt.Errorf("autoscale: %w", err)
		}
	}

	if g := s.Grids; len(g.Theta) > 0 {
		var gopts []polar.GridOption
		if g.ThetaLabels != nil {
			gopts = append(gopts, polar.GridLabels(g.ThetaLabels...))
		}
		if g.ThetaFrac != 0 {
			gopts = append(gopts, polar.GridFrac(g.ThetaFrac))
		}
		if err := ax.SetThetaGrids(g.Theta, gopts...); err != nil {
			return nil, fmt.Errorf("theta grids: %w", err)
		}
	}
	if g := s.Grids; len(g.R) > 0 {
		var gopts []polar.GridOption
		if g.RLabels != nil {
			gopts = append(gopts, polar.GridLabels(g.RLabels...))
		}
		if g.RAngle != nil {
			gopts = append(gopts, polar.GridAngle(*g.RAngle))
		}
		if g.RFormat != "" {
			gopts = append(gopts, polar.GridFormat(g.RFormat))
		}
		if err := ax.SetRGrids(g.R, gopts...); err != nil {
			return nil, fmt.Errorf("radial grids: %w", err)
		}
	}
	return ax, nil
}

// data returns the scenario points in radians.
func (s *scenario) data() []plot.Point {
	pts := make([]plot.Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = plot.Pt(p.Theta*math.Pi/180, p.R)
	}
	return pts
}

func parseButton(name string) (polar.MouseButton, error) {
	switch strings.ToLower(name) {
	case "left", "1":
		return polar.ButtonLeft, nil
	case "middle", "2":
		return polar.ButtonMiddle, nil
	case "right", "3":
		return polar.ButtonRight, nil
	case "", "none":
		return polar.ButtonNone, nil
	}
	return polar.ButtonNone, fmt.Errorf("unknown mouse button %q", name)
}

func xy(v []float64) (float64, float64, error) {
	if len(v) != 2 {
		return 0, 0, fmt.Errorf("want [x, y], got %d values", len(v))
	}
	return v[0], v[1], nil
}
