package viewport

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const epsilon = 1e-12

// approx compares float64 values with a small absolute margin.
var approx = cmpopts.EquateApprox(0, epsilon)

func TestTransformScenarios(t *testing.T) {
	tests := []struct {
		name   string
		v      Viewport
		want   Matrix[float64]
		points [][2]Point[float64] // input, expected output
	}{
		{
			name: "aligned 100x200",
			v: Viewport{
				Rect:       [4]int32{0, 0, 100, 200},
				DrawSize:   [2]uint32{100, 200},
				WindowSize: [2]uint32{100, 200},
			},
			want: Matrix[float64]{
				{0.02, 0, -1},
				{0, -0.01, 1},
			},
			points: [][2]Point[float64]{
				{Pt(50.0, 100.0), Pt(0.0, 0.0)},
				{Pt(0.0, 0.0), Pt(-1.0, 1.0)},
				{Pt(100.0, 200.0), Pt(1.0, -1.0)},
			},
		},
		{
			name: "hidpi sub-region",
			v: Viewport{
				Rect:       [4]int32{10, 10, 80, 80},
				DrawSize:   [2]uint32{100, 100},
				WindowSize: [2]uint32{50, 50},
			},
			want: Matrix[float64]{
				{0.05, 0, -1},
				{0, -0.05, 1},
			},
			points: [][2]Point[float64]{
				{Pt(20.0, 20.0), Pt(0.0, 0.0)},
				{Pt(0.0, 0.0), Pt(-1.0, 1.0)},
				{Pt(40.0, 40.0), Pt(1.0, -1.0)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform[float64](tt.v)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Transform(%v) mismatch (-want +got):\n%s", tt.v, diff)
			}
			for _, pp := range tt.points {
				in, want := pp[0], pp[1]
				out := got.TransformPoint(in)
				if diff := cmp.Diff(want, out, approx); diff != "" {
					t.Errorf("TransformPoint(%v) mismatch (-want +got):\n%s", in, diff)
				}
			}
		})
	}
}

func TestTransformFloat32(t *testing.T) {
	v := Viewport{
		Rect:       [4]int32{10, 10, 80, 80},
		DrawSize:   [2]uint32{100, 100},
		WindowSize: [2]uint32{50, 50},
	}
	m := Transform[float32](v)

	want := Convert[float32](Transform[float64](v))
	if m != want {
		t.Errorf("Transform[float32] = %v, want %v (float64 result converted)", m, want)
	}

	p := m.TransformPoint(Pt[float32](20, 20))
	if math.Abs(float64(p.X)) > 1e-6 || math.Abs(float64(p.Y)) > 1e-6 {
		t.Errorf("TransformPoint(20,20) = %v, want (0,0)", p)
	}
}

// ndc is a caller-defined scalar type.
type ndc float32

func TestTransformNamedFloat(t *testing.T) {
	v := Full([2]uint32{100, 200}, [2]uint32{100, 200})
	m := Transform[ndc](v)

	wantX, wantY := 0.02, -0.01
	sx, sy := m.Scale()
	if sx != ndc(wantX) {
		t.Errorf("sx = %v, want %v", sx, float32(wantX))
	}
	if sy != ndc(wantY) {
		t.Errorf("sy = %v, want %v", sy, float32(wantY))
	}
}

// Conversion to T happens once at the end, not per step.
func TestTransformComputesInFloat64(t *testing.T) {
	v := Viewport{
		Rect:       [4]int32{0, 0, 3, 7},
		DrawSize:   [2]uint32{1000003, 999983},
		WindowSize: [2]uint32{11, 13},
	}
	m := Transform[float32](v)

	dw, dh := 1000003.0, 999983.0
	ww, wh := 11.0, 13.0
	rw, rh := 3.0, 7.0
	wantX := float32(2 * (dw / ww) / rw)
	wantY := float32(-2 * (dh / wh) / rh)
	if m[0][0] != wantX || m[1][1] != wantY {
		t.Errorf("Transform[float32] scale = (%v, %v), want (%v, %v)", m[0][0], m[1][1], wantX, wantY)
	}
}

func TestTransformLayout(t *testing.T) {
	m := Transform[float64](Viewport{
		Rect:       [4]int32{-50, 75, 640, 480},
		DrawSize:   [2]uint32{1920, 1080},
		WindowSize: [2]uint32{960, 540},
	})
	if m[0][1] != 0 || m[1][0] != 0 {
		t.Errorf("off-diagonal entries = (%v, %v), want zero", m[0][1], m[1][0])
	}
	tx, ty := m.Translation()
	if tx != -1 || ty != 1 {
		t.Errorf("Translation() = (%v, %v), want (-1, 1)", tx, ty)
	}
}

func TestTransformIgnoresRectOrigin(t *testing.T) {
	base := Viewport{
		Rect:       [4]int32{0, 0, 320, 240},
		DrawSize:   [2]uint32{640, 480},
		WindowSize: [2]uint32{320, 240},
	}
	moved := base
	moved.Rect[0], moved.Rect[1] = 123, -45

	if got, want := Transform[float64](moved), Transform[float64](base); got != want {
		t.Errorf("Transform with origin (123,-45) = %v, want %v", got, want)
	}
}

func TestTransformCentering(t *testing.T) {
	for _, size := range [][2]uint32{{1, 1}, {100, 200}, {640, 480}, {1919, 1081}} {
		v := Full(size, size)
		m := Transform[float64](v)
		center := Pt(float64(size[0])/2, float64(size[1])/2)
		got := m.TransformPoint(center)
		if math.Abs(got.X) > epsilon || math.Abs(got.Y) > epsilon {
			t.Errorf("size %v: center maps to %v, want (0,0)", size, got)
		}
	}
}

func TestTransformCorners(t *testing.T) {
	for _, size := range [][2]uint32{{1, 1}, {100, 200}, {640, 480}, {1919, 1081}} {
		m := Transform[float64](Full(size, size))

		ul := m.TransformPoint(Pt(0.0, 0.0))
		if diff := cmp.Diff(Pt(-1.0, 1.0), ul, approx); diff != "" {
			t.Errorf("size %v: upper-left mismatch (-want +got):\n%s", size, diff)
		}
		lr := m.TransformPoint(Pt(float64(size[0]), float64(size[1])))
		if diff := cmp.Diff(Pt(1.0, -1.0), lr, approx); diff != "" {
			t.Errorf("size %v: lower-right mismatch (-want +got):\n%s", size, diff)
		}
	}
}

func TestTransformPixelRatioLinearity(t *testing.T) {
	base := Viewport{
		Rect:       [4]int32{0, 0, 300, 200},
		DrawSize:   [2]uint32{300, 200},
		WindowSize: [2]uint32{300, 200},
	}
	sx0, sy0 := Transform[float64](base).Scale()

	for _, k := range []uint32{2, 3, 4, 7} {
		v := base
		v.DrawSize = [2]uint32{base.DrawSize[0] * k, base.DrawSize[1] * k}
		sx, sy := Transform[float64](v).Scale()

		if math.Abs(sx-float64(k)*sx0) > epsilon {
			t.Errorf("k=%d: sx = %v, want %v", k, sx, float64(k)*sx0)
		}
		if math.Abs(sy-float64(k)*sy0) > epsilon {
			t.Errorf("k=%d: sy = %v, want %v", k, sy, float64(k)*sy0)
		}
	}
}

func TestTransformInverseRectScaling(t *testing.T) {
	base := Viewport{
		Rect:       [4]int32{0, 0, 64, 48},
		DrawSize:   [2]uint32{1280, 960},
		WindowSize: [2]uint32{640, 480},
	}
	sx0, sy0 := Transform[float64](base).Scale()

	for _, k := range []int32{2, 5, 10} {
		v := base
		v.Rect[2], v.Rect[3] = base.Rect[2]*k, base.Rect[3]*k
		sx, sy := Transform[float64](v).Scale()

		if math.Abs(sx-sx0/float64(k)) > epsilon {
			t.Errorf("k=%d: sx = %v, want %v", k, sx, sx0/float64(k))
		}
		if math.Abs(sy-sy0/float64(k)) > epsilon {
			t.Errorf("k=%d: sy = %v, want %v", k, sy, sy0/float64(k))
		}
	}
}

func TestTransformSignConvention(t *testing.T) {
	for _, v := range []Viewport{
		Full([2]uint32{1, 1}, [2]uint32{1, 1}),
		Full([2]uint32{2560, 1600}, [2]uint32{1280, 800}),
		{Rect: [4]int32{5, 5, 7, 3}, DrawSize: [2]uint32{9, 11}, WindowSize: [2]uint32{13, 17}},
		{Rect: [4]int32{0, 0, 1, 1}, DrawSize: [2]uint32{0, 0}, WindowSize: [2]uint32{10, 10}},
	} {
		sx, sy := Transform[float64](v).Scale()
		if sx < 0 {
			t.Errorf("%v: sx = %v, want >= 0", v, sx)
		}
		if sy > 0 {
			t.Errorf("%v: sy = %v, want <= 0", v, sy)
		}
	}
}

func TestTransformRoundTrip(t *testing.T) {
	views := []Viewport{
		Full([2]uint32{100, 200}, [2]uint32{100, 200}),
		{Rect: [4]int32{10, 10, 80, 80}, DrawSize: [2]uint32{100, 100}, WindowSize: [2]uint32{50, 50}},
		{Rect: [4]int32{0, 0, 1366, 768}, DrawSize: [2]uint32{2732, 1536}, WindowSize: [2]uint32{1366, 768}},
	}
	points := []Point[float64]{
		Pt(0.0, 0.0), Pt(1.5, 2.25), Pt(40.0, 40.0), Pt(-17.0, 1000.0), Pt(683.0, 384.0),
	}
	for _, v := range views {
		m := Transform[float64](v)
		inv, ok := m.Invert()
		if !ok {
			t.Fatalf("%v: Invert() not ok", v)
		}
		for _, p := range points {
			back := inv.TransformPoint(m.TransformPoint(p))
			if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
				t.Errorf("%v: round trip of %v = %v", v, p, back)
			}
		}
	}
}

func TestTransformDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		v     Viewport
		check func(sx, sy float64) bool
	}{
		{
			name: "zero rect",
			v:    Viewport{DrawSize: [2]uint32{100, 100}, WindowSize: [2]uint32{100, 100}},
			check: func(sx, sy float64) bool {
				return math.IsInf(sx, 1) && math.IsInf(sy, -1)
			},
		},
		{
			name: "zero window",
			v:    Viewport{Rect: [4]int32{0, 0, 10, 10}, DrawSize: [2]uint32{100, 100}},
			check: func(sx, sy float64) bool {
				return math.IsInf(sx, 1) && math.IsInf(sy, -1)
			},
		},
		{
			name: "zero draw and window",
			v:    Viewport{Rect: [4]int32{0, 0, 10, 10}},
			check: func(sx, sy float64) bool {
				return math.IsNaN(sx) && math.IsNaN(sy)
			},
		},
		{
			name: "zero value",
			v:    Viewport{},
			check: func(sx, sy float64) bool {
				return math.IsNaN(sx) && math.IsNaN(sy)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Transform[float64](tt.v)
			sx, sy := m.Scale()
			if !tt.check(sx, sy) {
				t.Errorf("Transform(%v) scale = (%v, %v)", tt.v, sx, sy)
			}
			if m.IsFinite() {
				t.Errorf("Transform(%v).IsFinite() = true, want false", tt.v)
			}
			if tt.v.Validate() == nil {
				t.Errorf("Validate(%v) = nil, want error", tt.v)
			}
		})
	}
}

func TestTransformConcurrent(t *testing.T) {
	v := Viewport{
		Rect:       [4]int32{10, 10, 80, 80},
		DrawSize:   [2]uint32{100, 100},
		WindowSize: [2]uint32{50, 50},
	}
	want := Transform[float64](v)

	done := make(chan Matrix[float64])
	for range 16 {
		go func(v Viewport) { done <- Transform[float64](v) }(v)
	}
	for range 16 {
		if got := <-done; got != want {
			t.Errorf("concurrent Transform = %v, want %v", got, want)
		}
	}
}

func BenchmarkTransform(b *testing.B) {
	v := Viewport{
		Rect:       [4]int32{0, 0, 1280, 720},
		DrawSize:   [2]uint32{2560, 1440},
		WindowSize: [2]uint32{1280, 720},
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = Transform[float32](v)
	}
}
