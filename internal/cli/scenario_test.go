package cli

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/plot/polar"
)

func TestDecodeScenarioDefaults(t *testing.T) {
	s, err := decodeScenario("")
	if err != nil {
		t.Fatalf("decodeScenario() error: %v", err)
	}
	want := defaultScenario()
	if diff := cmp.Diff(&want, s); diff != "" {
		t.Errorf("empty scenario mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeScenario(t *testing.T) {
	s, err := decodeScenario(`
bounds = [0.0, 0.0, 100.0, 100.0]
rmin = 1.0
rmax = 10.0
rpad = 0.1

[[points]]
theta = 90.0
r = 5.0

[gesture]
button = "left"
start = [60.0, 50.0]
drags = [[70.0, 50.0], [80.0, 50.0]]

[grids]
r = [2.0, 4.0]
r_angle = 45.0
`)
	if err != nil {
		t.Fatalf("decodeScenario() error: %v", err)
	}
	if s.RMin != 1 || s.RMax != 10 || s.RPad == nil || *s.RPad != 0.1 {
		t.Errorf("limits = [%v, %v], rpad %v", s.RMin, s.RMax, s.RPad)
	}
	if s.Gesture == nil || len(s.Gesture.Drags) != 2 {
		t.Fatalf("gesture = %+v", s.Gesture)
	}
	if got := s.data(); math.Abs(got[0].X-math.Pi/2) > 1e-12 || got[0].Y != 5 {
		t.Errorf("data() = %v, want theta in radians", got)
	}

	ax, err := s.newAxes()
	if err != nil {
		t.Fatalf("newAxes() error: %v", err)
	}
	if ax.RLabelAngle() != 45 || len(ax.RTicks()) != 2 {
		t.Errorf("radial grids not applied: angle %v, ticks %v", ax.RLabelAngle(), ax.RTicks())
	}
}

func TestDecodeScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown key", "bogus = 1", "bogus"},
		{"short bounds", "bounds = [1.0, 2.0]", "4 values"},
		{"syntax", "rmax = = 1", "parse scenario"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeScenario(tt.data)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("decodeScenario() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestScenarioNewAxesErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero span", "rmin = 2.0\nrmax = 2.0"},
		{"unknown scale", `rscale = "cubic"`},
		{"bad language", `language = "not a tag!"`},
		{"non-positive grid", "[grids]\nr = [0.0, 1.0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := decodeScenario(tt.data)
			if err != nil {
				t.Fatalf("decodeScenario() error: %v", err)
			}
			if _, err := s.newAxes(); err == nil {
				t.Error("newAxes() succeeded, want error")
			}
		})
	}
}

func TestScenarioAutoscale(t *testing.T) {
	s, err := decodeScenario(`
autoscale = true

[[points]]
theta = 0.0
r = 0.5

[[points]]
theta = 10.0
r = 7.3
`)
	if err != nil {
		t.Fatal(err)
	}
	ax, err := s.newAxes()
	if err != nil {
		t.Fatalf("newAxes() error: %v", err)
	}
	if ax.RMin() != 0 || ax.RMax() != 8 {
		t.Errorf("autoscaled limits = [%v, %v], want [0, 8]", ax.RMin(), ax.RMax())
	}
}

func TestLoadScenarioMissing(t *testing.T) {
	if _, err := loadScenario(filepath.Join(t.TempDir(), "missing.toml")); !os.IsNotExist(err) {
		t.Errorf("loadScenario() error = %v, want not-exist", err)
	}
}

func TestParseButton(t *testing.T) {
	tests := []struct {
		in      string
		want    polar.MouseButton
		wantErr bool
	}{
		{"left", polar.ButtonLeft, false},
		{"Right", polar.ButtonRight, false},
		{"2", polar.ButtonMiddle, false},
		{"", polar.ButtonNone, false},
		{"thumb", polar.ButtonNone, true},
	}
	for _, tt := range tests {
		got, err := parseButton(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseButton(%q) = %v, %v", tt.in, got, err)
		}
	}
}
