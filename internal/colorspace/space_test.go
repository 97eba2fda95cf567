package colorspace

import (
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{"red", RGB{255, 0, 0}, "#ff0000"},
		{"white", RGB{255, 255, 255}, "#ffffff"},
		{"black", RGB{0, 0, 0}, "#000000"},
		{"mixed", RGB{255, 128, 64}, "#ff8040"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	rgb, err := ParseHex("#ff8040")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	if rgb != (RGB{255, 128, 64}) {
		t.Errorf("got %v, want {255 128 64}", rgb)
	}
}

func TestParseHex_Invalid(t *testing.T) {
	tests := []string{"", "red", "#12345", "#gghhii"}
	for _, s := range tests {
		if _, err := ParseHex(s); err == nil {
			t.Errorf("ParseHex(%q) should fail", s)
		}
	}
}

func TestToLab_KnownValues(t *testing.T) {
	// White is L*=100 with no chroma; black is the origin.
	white := RGB{255, 255, 255}.ToLab()
	if math.Abs(white[0]-100) > 0.5 || math.Abs(white[1]) > 0.5 || math.Abs(white[2]) > 0.5 {
		t.Errorf("white Lab: got %v, want ~[100 0 0]", white)
	}

	black := RGB{0, 0, 0}.ToLab()
	if math.Abs(black[0]) > 0.5 || math.Abs(black[1]) > 0.5 || math.Abs(black[2]) > 0.5 {
		t.Errorf("black Lab: got %v, want ~[0 0 0]", black)
	}
}

func TestLab_RoundTrip(t *testing.T) {
	samples := []RGB{
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{128, 128, 128},
		{200, 150, 50},
		{13, 37, 73},
	}

	for _, c := range samples {
		got := FromLab(c.ToLab())
		for i := 0; i < 3; i++ {
			if absDiff8(got[i], c[i]) > 1 {
				t.Errorf("round trip of %v: got %v", c, got)
				break
			}
		}
	}
}

func TestFromFloat_Clamps(t *testing.T) {
	got := FromFloat([3]float64{-10, 300, 127.6})
	if got != (RGB{0, 255, 128}) {
		t.Errorf("got %v, want {0 255 128}", got)
	}
}

func TestDeltaE76(t *testing.T) {
	a := RGB{200, 30, 30}

	if d := DeltaE76(a, a); d != 0 {
		t.Errorf("distance to self: got %f, want 0", d)
	}

	b := RGB{30, 30, 200}
	if DeltaE76(a, b) != DeltaE76(b, a) {
		t.Error("DeltaE76 should be symmetric")
	}

	// Black to white spans the full lightness axis.
	if d := DeltaE76(RGB{0, 0, 0}, RGB{255, 255, 255}); math.Abs(d-100) > 0.5 {
		t.Errorf("black-white distance: got %f, want ~100", d)
	}
}

func TestDeltaE76_Ordering(t *testing.T) {
	red := RGB{255, 0, 0}
	darkRed := RGB{200, 0, 0}
	blue := RGB{0, 0, 255}

	if DeltaE76(red, darkRed) >= DeltaE76(red, blue) {
		t.Error("a dark red should be closer to red than blue is")
	}
}

func TestDeltaE2000(t *testing.T) {
	a := RGB{255, 0, 0}
	if d := DeltaE2000(a, a); d != 0 {
		t.Errorf("distance to self: got %f, want 0", d)
	}
	if d := DeltaE2000(a, RGB{0, 0, 255}); d < 20 {
		t.Errorf("red-blue distance too small: %f", d)
	}
}

func absDiff8(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
