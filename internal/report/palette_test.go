package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marearts/xcolor"
)

func TestRenderPalette(t *testing.T) {
	colors := []xcolor.Color{
		{RGB: [3]uint8{255, 0, 0}, Hex: "#ff0000", Percentage: 60},
		{RGB: [3]uint8{0, 0, 255}, Hex: "#0000ff", Percentage: 40},
	}

	img, err := RenderPalette(colors, 10, 8)
	if err != nil {
		t.Fatalf("RenderPalette failed: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 20 || b.Dy() != 8 {
		t.Fatalf("strip size: got %dx%d, want 20x8", b.Dx(), b.Dy())
	}

	// Centers of the two swatches.
	r, _, _, _ := img.At(5, 4).RGBA()
	if r>>8 != 255 {
		t.Errorf("first swatch should be red, got r=%d", r>>8)
	}
	_, _, bl, _ := img.At(15, 4).RGBA()
	if bl>>8 != 255 {
		t.Errorf("second swatch should be blue, got b=%d", bl>>8)
	}
}

func TestRenderPalette_Empty(t *testing.T) {
	if _, err := RenderPalette(nil, 10, 10); err == nil {
		t.Error("expected error for empty palette")
	}
}

func TestSavePalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.png")
	colors := []xcolor.Color{
		{RGB: [3]uint8{10, 20, 30}, Hex: "#0a141e", Percentage: 100},
	}

	if err := SavePalette(colors, path); err != nil {
		t.Fatalf("SavePalette failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("palette file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("palette file is empty")
	}
}
