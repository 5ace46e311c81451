package pix

import "testing"

func fillNorm(t *testing.T, im *Image[uint8], v float64) {
	t.Helper()
	for y := 0; y < im.Height(); y++ {
		for x := 0; x < im.Width(); x++ {
			for c := 0; c < im.Channels(); c++ {
				im.SetNorm(x, y, c, v)
			}
		}
	}
}

func TestHashFlatImages(t *testing.T) {
	white, err := New[uint8](32, 16, Gray)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fillNorm(t, white, 1)

	black, err := New[uint8](32, 16, Gray)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	hw, hb := HashImage(white), HashImage(black)
	if hw != (Hash{^uint64(0), ^uint64(0)}) {
		t.Errorf("white hash: got %s", hw)
	}
	if hb != (Hash{}) {
		t.Errorf("black hash: got %s", hb)
	}
	if got := hw.Diff(hb); got != 128 {
		t.Errorf("white/black diff: got %d, want 128", got)
	}
	if got := hw.Diff(hw); got != 0 {
		t.Errorf("self diff: got %d, want 0", got)
	}
}

func TestHashStableUnderSmallChange(t *testing.T) {
	a, err := New[uint8](64, 32, Gray)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Left half bright, right half dark.
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			v := 0.9
			if x >= 32 {
				v = 0.1
			}
			a.SetNorm(x, y, 0, v)
		}
	}
	b := a.Clone()
	// Nudge one pixel; the cell average barely moves.
	b.SetNorm(0, 0, 0, 0.8)

	if diff := HashImage(a).Diff(HashImage(b)); diff != 0 {
		t.Errorf("one-pixel nudge changed %d bits", diff)
	}

	// Inverting the halves flips every bit.
	c := a.Clone()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			c.SetNorm(x, y, 0, 1-a.NormAt(x, y, 0))
		}
	}
	if diff := HashImage(a).Diff(HashImage(c)); diff != 128 {
		t.Errorf("inverted halves diff: got %d, want 128", diff)
	}
}

func TestHashString(t *testing.T) {
	h := Hash{0x1, 0xff}
	if got := h.String(); got != "000000000000000100000000000000ff" {
		t.Errorf("String: got %q", got)
	}
}
