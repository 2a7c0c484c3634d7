package ticker

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type stubAxis struct {
	vmin, vmax float64
	dmin, dmax float64
}

func (a *stubAxis) ViewInterval() (float64, float64)   { return a.vmin, a.vmax }
func (a *stubAxis) SetViewInterval(vmin, vmax float64) { a.vmin, a.vmax = vmin, vmax }
func (a *stubAxis) DataInterval() (float64, float64)   { return a.dmin, a.dmax }

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestMaxNLocatorTicks(t *testing.T) {
	tests := []struct {
		name       string
		vmin, vmax float64
		n          int
		want       []float64
	}{
		{"zero to ten", 0, 10, 5, []float64{0, 2, 4, 6, 8, 10}},
		{"negative span", -1, 1, 4, []float64{-1, -0.5, 0, 0.5, 1}},
		{"unaligned", 0.3, 9.1, 4, []float64{2.5, 5, 7.5}},
		{"inverted", 10, 0, 5, []float64{0, 2, 4, 6, 8, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewMaxNLocator(&stubAxis{vmin: tt.vmin, vmax: tt.vmax}, tt.n)
			if diff := cmp.Diff(tt.want, l.Ticks(), approx); diff != "" {
				t.Errorf("Ticks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMaxNLocatorViewLimits(t *testing.T) {
	l := NewMaxNLocator(&stubAxis{}, 5)
	lo, hi := l.ViewLimits(0.3, 9.1)
	if lo != 0 || hi != 10 {
		t.Errorf("ViewLimits(0.3, 9.1) = (%v, %v), want (0, 10)", lo, hi)
	}
}

func TestLogLocator(t *testing.T) {
	axis := &stubAxis{vmin: 0.5, vmax: 2000, dmin: 3, dmax: 700}
	l := NewLogLocator(axis, 10)
	if diff := cmp.Diff([]float64{1, 10, 100, 1000}, l.Ticks(), approx); diff != "" {
		t.Errorf("Ticks() mismatch (-want +got):\n%s", diff)
	}
	lo, hi := l.Autoscale()
	if diff := cmp.Diff([]float64{1, 1000}, []float64{lo, hi}, approx); diff != "" {
		t.Errorf("Autoscale() mismatch (-want +got):\n%s", diff)
	}
}

func TestLogLocatorNonPositiveView(t *testing.T) {
	l := NewLogLocator(&stubAxis{vmin: -5, vmax: 100}, 10)
	for _, v := range l.Ticks() {
		if v <= 0 {
			t.Errorf("log tick %v is not positive", v)
		}
	}
}

func TestFixedLocator(t *testing.T) {
	locs := []float64{1, 2, 3}
	l := NewFixedLocator(&stubAxis{}, locs)
	locs[0] = 99
	if diff := cmp.Diff([]float64{1, 2, 3}, l.Ticks()); diff != "" {
		t.Errorf("FixedLocator aliased its input (-want +got):\n%s", diff)
	}
}

func TestPanAndZoom(t *testing.T) {
	axis := &stubAxis{vmin: 0, vmax: 10}
	l := NewMaxNLocator(axis, 5)

	l.Pan(1)
	if axis.vmin != 2 || axis.vmax != 12 {
		t.Errorf("after Pan(1): (%v, %v), want (2, 12)", axis.vmin, axis.vmax)
	}

	axis.vmin, axis.vmax = 0, 10
	l.Zoom(1)
	if diff := cmp.Diff([]float64{1, 9}, []float64{axis.vmin, axis.vmax}, approx); diff != "" {
		t.Errorf("after Zoom(1) (-want +got):\n%s", diff)
	}
}

func TestNonsingular(t *testing.T) {
	tests := []struct {
		name             string
		vmin, vmax       float64
		wantMin, wantMax float64
	}{
		{"ordinary", 1, 2, 1, 2},
		{"swapped", 2, 1, 1, 2},
		{"both zero", 0, 0, -0.05, 0.05},
		{"equal", 10, 10, 9.5, 10.5},
		{"nan", math.NaN(), 1, -0.05, 0.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := Nonsingular(tt.vmin, tt.vmax, 0.05)
			if diff := cmp.Diff([]float64{tt.wantMin, tt.wantMax}, []float64{lo, hi}, approx); diff != "" {
				t.Errorf("Nonsingular mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatters(t *testing.T) {
	if got := NewFormatStrFormatter("%.1f").Format(2.25, 0); got != "2.2" && got != "2.3" {
		t.Errorf("FormatStrFormatter = %q", got)
	}
	if got := (ScalarFormatter{}).Format(0.5, 0); got != "0.5" {
		t.Errorf("ScalarFormatter = %q, want 0.5", got)
	}
}
