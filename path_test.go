package plot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathVertices(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.LineTo(1, 1)
	p.Close()

	got := p.Vertices()
	want := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	if len(got) != len(want) {
		t.Fatalf("len(Vertices()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Vertices()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPathInterpolated(t *testing.T) {
	tests := []struct {
		name  string
		path  func() *Path
		steps int
		want  int
	}{
		{"single segment", func() *Path { return PolyLine(Pt(0, 1), Pt(1, 1)) }, 4, 5},
		{"two segments", func() *Path { return PolyLine(Pt(0, 0), Pt(1, 0), Pt(2, 0)) }, 3, 7},
		{"steps one", func() *Path { return PolyLine(Pt(0, 0), Pt(1, 0), Pt(2, 0)) }, 1, 3},
		{"closed triangle", func() *Path {
			p := PolyLine(Pt(0, 0), Pt(1, 0), Pt(1, 1))
			p.Close()
			return p
		}, 2, 3 + 2 + 1},
		{"move only", func() *Path { return PolyLine(Pt(1, 1)) }, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.path().Interpolated(tt.steps)
			if n := len(got.Vertices()); n != tt.want {
				t.Errorf("Interpolated(%d) has %d vertices, want %d", tt.steps, n, tt.want)
			}
		})
	}
}

func TestPathInterpolatedPositions(t *testing.T) {
	got := PolyLine(Pt(0, 2), Pt(4, 2)).Interpolated(4).Vertices()
	for i, v := range got {
		if want := Pt(float64(i), 2); !pointsClose(v, want) {
			t.Errorf("vertex %d = %v, want %v", i, v, want)
		}
	}
	// The endpoint is exact, not accumulated.
	if last := got[len(got)-1]; last != Pt(4, 2) {
		t.Errorf("last vertex = %v, want exactly (4, 2)", last)
	}
}

func TestPathMapVerticesKeepsStructure(t *testing.T) {
	p := PolyLine(Pt(0, 0), Pt(1, 0))
	p.Close()
	p.SetInterpolationSteps(16)

	q := p.Transform(Translate(1, 1))
	if q.InterpolationSteps() != 16 {
		t.Errorf("InterpolationSteps = %d, want 16", q.InterpolationSteps())
	}
	if diff := cmp.Diff([]Point{{X: 1, Y: 1}, {X: 2, Y: 1}}, q.Vertices()); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
	// The closing segment survives: it is resampled like the original's.
	if got, want := len(q.Interpolated(4).Vertices()), len(p.Interpolated(4).Vertices()); got != want {
		t.Errorf("resampled transformed path has %d vertices, want %d", got, want)
	}
}

func TestPathMapVerticesLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched vertex count")
		}
	}()
	PolyLine(Pt(0, 0), Pt(1, 1)).MapVertices(func(pts []Point) []Point { return pts[:1] })
}

func TestSetInterpolationStepsClamps(t *testing.T) {
	p := NewPath()
	p.SetInterpolationSteps(-3)
	if p.InterpolationSteps() != 1 {
		t.Errorf("InterpolationSteps = %d, want 1", p.InterpolationSteps())
	}
}
