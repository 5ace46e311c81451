package pix

import (
	"errors"
	"math"
	"testing"
)

func mustPixel[T Value](t *testing.T, model Model, values ...T) Pixel[T] {
	t.Helper()
	p, err := PixelOf(model, values...)
	if err != nil {
		t.Fatalf("PixelOf: %v", err)
	}
	return p
}

func TestPixelOfShape(t *testing.T) {
	if _, err := PixelOf[uint8](RGB, 1, 2); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("2 values for rgb: got %v, want ErrShapeMismatch", err)
	}
	p := mustPixel[uint8](t, RGBA, 1, 2, 3, 4)
	if p.Channels() != 4 || p.Model() != RGBA {
		t.Errorf("pixel shape: got %d channels, model %s", p.Channels(), p.Model())
	}
}

func TestPixelOfCopiesValues(t *testing.T) {
	values := []uint8{10, 20, 30}
	p := mustPixel(t, RGB, values...)
	values[0] = 99
	if p.Data()[0] != 10 {
		t.Error("PixelOf aliased the caller's slice")
	}
}

func TestAddSaturates(t *testing.T) {
	a := mustPixel[uint8](t, RGB, 200, 10, 0)
	b := mustPixel[uint8](t, RGB, 100, 5, 0)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	want := []uint8{255, 15, 0}
	for i, v := range want {
		if sum.Data()[i] != v {
			t.Errorf("channel %d: got %d, want %d", i, sum.Data()[i], v)
		}
	}
}

func TestSubSaturatesAtZero(t *testing.T) {
	a := mustPixel[uint8](t, Gray, 10)
	b := mustPixel[uint8](t, Gray, 30)
	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if diff.Data()[0] != 0 {
		t.Errorf("10-30 on uint8: got %d, want 0", diff.Data()[0])
	}
}

func TestFloatArithmeticUnclamped(t *testing.T) {
	a := mustPixel[float32](t, Gray, 0.75)
	b := mustPixel[float32](t, Gray, 0.5)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum.Data()[0] != 1.25 {
		t.Errorf("float add: got %v, want 1.25", sum.Data()[0])
	}
	diff, err := b.Sub(a)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if diff.Data()[0] != -0.25 {
		t.Errorf("float sub: got %v, want -0.25", diff.Data()[0])
	}
}

func TestDivByZeroSaturates(t *testing.T) {
	a := mustPixel[uint8](t, Gray, 10)
	z := mustPixel[uint8](t, Gray, 0)
	q, err := a.Div(z)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if q.Data()[0] != 255 {
		t.Errorf("10/0 on uint8: got %d, want 255", q.Data()[0])
	}
}

func TestArithmeticModelMismatch(t *testing.T) {
	a := mustPixel[uint8](t, RGB, 1, 2, 3)
	b := mustPixel[uint8](t, HSV, 1, 2, 3)
	if _, err := a.Add(b); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("rgb+hsv: got %v, want ErrShapeMismatch", err)
	}
}

func TestClamp(t *testing.T) {
	p := mustPixel[uint8](t, RGB, 5, 100, 250)
	got := p.Clamp(10, 200).Data()
	want := []uint8{10, 100, 200}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("channel %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestConvertModel(t *testing.T) {
	// BT.601 luma of pure green on uint8.
	p := mustPixel[uint8](t, RGB, 0, 255, 0)
	gray := p.Convert(Gray)
	if gray.Model() != Gray || gray.Channels() != 1 {
		t.Fatalf("convert shape: model %s, %d channels", gray.Model(), gray.Channels())
	}
	if gray.Data()[0] != 150 {
		t.Errorf("green luma: got %d, want 150", gray.Data()[0])
	}

	// Same-model conversion is a detached copy.
	q := p.Convert(RGB)
	q.Data()[0] = 42
	if p.Data()[0] != 0 {
		t.Error("same-model convert aliased the source")
	}
}

func TestConvertPixelType(t *testing.T) {
	p := mustPixel[uint8](t, RGB, 0, 128, 255)
	f := ConvertPixel[float32](p)
	if f.Model() != RGB {
		t.Fatalf("model: got %s", f.Model())
	}
	want := []float64{0, 128.0 / 255.0, 1}
	for i, w := range want {
		if math.Abs(float64(f.Data()[i])-w) > 1e-6 {
			t.Errorf("channel %d: got %v, want %v", i, f.Data()[i], w)
		}
	}

	back := ConvertPixel[uint8](f)
	for i, v := range p.Data() {
		if back.Data()[i] != v {
			t.Errorf("round trip channel %d: got %d, want %d", i, back.Data()[i], v)
		}
	}
}
