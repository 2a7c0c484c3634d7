package transform

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/plot"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestComposeOrder(t *testing.T) {
	scale := NewAffine2D().Scale(2, 2)
	shift := NewAffine2D().Translate(1, 0)

	tests := []struct {
		name string
		node Node
		want plot.Point
	}{
		{"scale then shift", Compose(scale, shift), plot.Pt(3, 2)},
		{"shift then scale", Compose(shift, scale), plot.Pt(4, 2)},
		{"chain", Chain(scale, shift, scale), plot.Pt(6, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransformPoint(tt.node, plot.Pt(1, 1))
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("TransformPoint mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComposeAffineIsAffine(t *testing.T) {
	c := Compose(NewAffine2D(), NewFixed(plot.Scale(2, 3)))
	if _, ok := c.(Affine); !ok {
		t.Fatalf("Compose of two affines = %T, want Affine", c)
	}
	c = Compose(NewAffine2D(), NewWrapper(Identity()))
	if _, ok := c.(Affine); ok {
		t.Fatalf("Compose with a wrapper should not be affine")
	}
}

func TestInvalidationPropagates(t *testing.T) {
	box := NewBbox(0, 0, 10, 10)
	viewport := BboxTransformTo(box)
	label := NewAffine2D().Translate(0, 1)
	chain := Compose(label, viewport).(Affine)

	if got, want := chain.Matrix().TransformPoint(plot.Pt(0.5, 0)), plot.Pt(5, 10); got != want {
		t.Fatalf("before resize: got %v, want %v", got, want)
	}

	box.SetPoints(0, 0, 20, 20)
	if got, want := chain.Matrix().TransformPoint(plot.Pt(0.5, 0)), plot.Pt(10, 20); got != want {
		t.Errorf("after resize: got %v, want %v", got, want)
	}

	label.Clear().Translate(0, 0.5)
	if got, want := chain.Matrix().TransformPoint(plot.Pt(0.5, 0)), plot.Pt(10, 10); got != want {
		t.Errorf("after label change: got %v, want %v", got, want)
	}
}

func TestVersionBumpsOnInvalidate(t *testing.T) {
	box := UnitBbox()
	viewport := BboxTransformTo(box)
	before := viewport.Version()
	box.SetIntervalY(0, 2)
	if viewport.Version() == before {
		t.Error("dependent version did not change after child mutation")
	}
	if viewport.Valid() {
		t.Error("dependent should be stale after child mutation")
	}
}

func TestInvertedAffineTracksSource(t *testing.T) {
	a := NewAffine2D().Scale(2, 4)
	inv := a.Inverted()
	if diff := cmp.Diff(plot.Pt(1, 1), TransformPoint(inv, plot.Pt(2, 4)), approx); diff != "" {
		t.Errorf("inverse mismatch (-want +got):\n%s", diff)
	}
	a.Clear().Scale(10, 10)
	if diff := cmp.Diff(plot.Pt(1, 1), TransformPoint(inv, plot.Pt(10, 10)), approx); diff != "" {
		t.Errorf("inverse did not follow source (-want +got):\n%s", diff)
	}
}

func TestInvertedIsReused(t *testing.T) {
	box := NewBbox(0, 0, 100, 100)
	label := NewAffine2D().Translate(0, 1)
	chain := Compose(label, BboxTransformTo(box))
	nonAffine := Compose(NewWrapper(Identity()), chain)

	first, firstNA := chain.Inverted(), nonAffine.Inverted()
	deps := len(chain.GraphNode().dependents)
	for range 1000 {
		if chain.Inverted() != first {
			t.Fatal("Inverted() built a new node on a repeated call")
		}
		if nonAffine.Inverted() != firstNA {
			t.Fatal("Inverted() of a composite built a new node on a repeated call")
		}
	}
	if got := len(chain.GraphNode().dependents); got != deps {
		t.Errorf("dependents grew from %d to %d", deps, got)
	}

	box.SetPoints(0, 0, 200, 200)
	if diff := cmp.Diff(plot.Pt(0.5, 0), TransformPoint(first, plot.Pt(100, 200)), approx); diff != "" {
		t.Errorf("reused inverse did not follow the box (-want +got):\n%s", diff)
	}
}

func TestFrozenLeavesGraphUntouched(t *testing.T) {
	id := Identity()
	box := UnitBbox()
	live := Compose(NewWrapper(id), BboxTransformTo(box))
	idDeps, boxDeps := len(id.dependents), len(box.dependents)
	for range 10 {
		live.Frozen()
		live.Inverted().Frozen()
	}
	if len(id.dependents) != idDeps || len(box.dependents) != boxDeps {
		t.Errorf("snapshots linked into the live graph: %d and %d dependents, want %d and %d",
			len(id.dependents), len(box.dependents), idDeps, boxDeps)
	}
}

func TestWrapperInverseFollowsSet(t *testing.T) {
	w := NewWrapper(Identity())
	inv := Compose(w, NewFixed(plot.Translate(1, 0))).Inverted()
	if got, want := TransformPoint(inv, plot.Pt(3, 2)), plot.Pt(2, 2); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	w.Set(NewFixed(plot.Scale(2, 2)))
	if diff := cmp.Diff(plot.Pt(1, 1), TransformPoint(inv, plot.Pt(3, 2)), approx); diff != "" {
		t.Errorf("inverse after Set (-want +got):\n%s", diff)
	}
	if w.Inverted().Inverted() != Node(w) {
		t.Error("inverse of the wrapper inverse is not the wrapper")
	}
}

func TestFrozenIgnoresLaterChanges(t *testing.T) {
	box := NewBbox(0, 0, 100, 100)
	frozen := BboxTransformTo(box).Frozen()
	box.SetPoints(0, 0, 1, 1)
	if got, want := TransformPoint(frozen, plot.Pt(1, 1)), plot.Pt(100, 100); got != want {
		t.Errorf("frozen transform moved: got %v, want %v", got, want)
	}
}

func TestWrapperSet(t *testing.T) {
	w := NewWrapper(Identity())
	chain := Compose(w, NewFixed(plot.Translate(1, 1)))
	if got, want := TransformPoint(chain, plot.Pt(1, 1)), plot.Pt(2, 2); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}

	old := w.Child()
	w.Set(NewFixed(plot.Scale(3, 3)))
	if got, want := TransformPoint(chain, plot.Pt(1, 1)), plot.Pt(4, 4); got != want {
		t.Errorf("after Set: got %v, want %v", got, want)
	}
	if len(old.GraphNode().dependents) != 0 {
		t.Errorf("old child still has %d dependents", len(old.GraphNode().dependents))
	}
}

func TestBboxOrdering(t *testing.T) {
	b := NewBbox(5, 10, 1, -2)
	if b.XMin() != 1 || b.XMax() != 5 || b.YMin() != -2 || b.YMax() != 10 {
		t.Errorf("min/max of %v are wrong", b)
	}
	if b.Width() != -4 || b.Height() != -12 {
		t.Errorf("Width/Height = %v/%v, want -4/-12", b.Width(), b.Height())
	}
}

func TestBboxTransformed(t *testing.T) {
	b := NewBbox(0, 1, 2, 3).Transformed(NewFixed(plot.Scale(10, 100)))
	want := []float64{0, 100, 20, 300}
	got := []float64{b.X0(), b.Y0(), b.X1(), b.Y1()}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Transformed mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformPathAffine(t *testing.T) {
	p := plot.PolyLine(plot.Pt(0, 0), plot.Pt(1, 0), plot.Pt(1, 1))
	p.SetInterpolationSteps(8)
	got := NewFixed(plot.Translate(1, 2)).TransformPath(p)
	want := []plot.Point{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 3}}
	if diff := cmp.Diff(want, got.Vertices(), approx); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
	if got.InterpolationSteps() != 8 {
		t.Errorf("InterpolationSteps = %d, want 8", got.InterpolationSteps())
	}
}

func TestSingularInverseIsNotFinite(t *testing.T) {
	inv := NewFixed(plot.Scale(0, 1)).Inverted()
	got := TransformPoint(inv, plot.Pt(1, 1))
	if !math.IsInf(got.X, 0) && !math.IsNaN(got.X) {
		t.Errorf("inverse of singular matrix mapped x to %v, want Inf or NaN", got.X)
	}
}
