package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a solid-color PNG into dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestCache_Load(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "red.png", 20, 10, color.RGBA{255, 0, 0, 255})

	cache := NewCache()
	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Second load returns the cached image even after the file is gone.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove test file: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached load failed: %v", err)
	}
}

func TestCache_Evict(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "red.png", 4, 4, color.RGBA{255, 0, 0, 255})

	cache := NewCache()
	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove test file: %v", err)
	}
	if _, err := cache.Load(path); err == nil {
		t.Error("load after evict should hit the disk and fail")
	}
}

func TestCache_Clear(t *testing.T) {
	dir := t.TempDir()
	a := writeTestPNG(t, dir, "a.png", 4, 4, color.RGBA{0, 255, 0, 255})
	b := writeTestPNG(t, dir, "b.png", 4, 4, color.RGBA{0, 0, 255, 255})

	cache := NewCache()
	for _, p := range []string{a, b} {
		if _, err := cache.Load(p); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
	}

	cache.Clear()
	os.Remove(a)
	if _, err := cache.Load(a); err == nil {
		t.Error("load after clear should hit the disk and fail")
	}
}

func TestCache_MissingFile(t *testing.T) {
	cache := NewCache()
	if _, err := cache.Load("/nonexistent/image.png"); err == nil {
		t.Error("expected error for missing file")
	}
}
