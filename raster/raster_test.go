package raster

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func uniformImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestGridFor(t *testing.T) {
	tests := []struct {
		name       string
		w, h, cell int
		want       Grid
	}{
		{"exact", 800, 600, 10, Grid{80, 60}},
		{"remainder dropped", 805, 609, 10, Grid{80, 60}},
		{"tiny surface clamps", 3, 2, 10, Grid{1, 1}},
		{"zero surface clamps", 0, 0, 10, Grid{1, 1}},
		{"zero cell treated as one", 4, 3, 0, Grid{4, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GridFor(tt.w, tt.h, tt.cell)
			if got != tt.want {
				t.Errorf("GridFor(%d, %d, %d) = %+v, want %+v", tt.w, tt.h, tt.cell, got, tt.want)
			}
			if got.Cells() != got.Cols*got.Rows || got.Cells() < 1 {
				t.Errorf("Invalid cell count %d for %+v", got.Cells(), got)
			}
		})
	}
}

func TestSampleImageUniformWhite(t *testing.T) {
	img := uniformImage(37, 23, color.White)
	grid := Grid{Cols: 4, Rows: 4}

	samples, err := SampleImage(img, grid, FilterNearest)
	if err != nil {
		t.Fatalf("SampleImage failed: %v", err)
	}
	if len(samples) != 16 {
		t.Fatalf("Expected 16 samples, got %d", len(samples))
	}
	for i, s := range samples {
		if s.Brightness != 255 {
			t.Errorf("sample %d: expected brightness 255, got %f", i, s.Brightness)
		}
		if s.A != 255 {
			t.Errorf("sample %d: expected opaque alpha, got %d", i, s.A)
		}
	}
}

func TestSampleImageSplit(t *testing.T) {
	// Left half black, right half pure red
	img := image.NewRGBA(image.Rect(0, 0, 40, 10))
	for y := 0; y < 10; y++ {
		for x := 20; x < 40; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	samples, err := SampleImage(img, Grid{Cols: 4, Rows: 1}, FilterNearest)
	if err != nil {
		t.Fatalf("SampleImage failed: %v", err)
	}
	if samples[0].Brightness != 0 || samples[1].Brightness != 0 {
		t.Errorf("Expected dark left cells, got %f %f", samples[0].Brightness, samples[1].Brightness)
	}
	if samples[3].R != 255 || samples[3].G != 0 || samples[3].Brightness != 85 {
		t.Errorf("Expected red right cell with brightness 85, got %+v", samples[3])
	}
}

func TestSampleImageDeterministic(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: uint8(x ^ y), A: 255})
		}
	}
	grid := Grid{Cols: 13, Rows: 7}

	for _, f := range []Filter{FilterNearest, FilterBilinear, FilterCatmullRom} {
		t.Run(f.String(), func(t *testing.T) {
			a, err := SampleImage(img, grid, f)
			if err != nil {
				t.Fatal(err)
			}
			b, err := SampleImage(img, grid, f)
			if err != nil {
				t.Fatal(err)
			}
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("sample %d differs between runs: %+v vs %+v", i, a[i], b[i])
				}
			}
		})
	}
}

func TestSampleImageFailures(t *testing.T) {
	if _, err := SampleImage(nil, Grid{2, 2}, FilterNearest); !errors.Is(err, ErrImageDecode) {
		t.Errorf("Expected ErrImageDecode for nil image, got %v", err)
	}
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := SampleImage(empty, Grid{2, 2}, FilterNearest); !errors.Is(err, ErrImageDecode) {
		t.Errorf("Expected ErrImageDecode for empty image, got %v", err)
	}
}

func TestParseFilter(t *testing.T) {
	for _, name := range []string{"nearest", "bilinear", "catmullrom"} {
		f, err := ParseFilter(name)
		if err != nil {
			t.Errorf("ParseFilter(%q) failed: %v", name, err)
		}
		if f.String() != name {
			t.Errorf("Round trip mismatch: %q -> %q", name, f.String())
		}
	}
	if _, err := ParseFilter("box"); err == nil {
		t.Error("Expected error for unknown filter")
	}
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "face.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, uniformImage(8, 8, color.Gray{Y: 128})); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := FileLoader{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("Expected 8px wide image, got %d", img.Bounds().Dx())
	}

	// Not an image
	bad := filepath.Join(dir, "notes.txt")
	os.WriteFile(bad, []byte("hello"), 0o644)
	if _, err := (FileLoader{Path: bad}).Load(context.Background()); !errors.Is(err, ErrImageDecode) {
		t.Errorf("Expected ErrImageDecode for garbage file, got %v", err)
	}

	// Missing
	if _, err := (FileLoader{Path: filepath.Join(dir, "nope.png")}).Load(context.Background()); !errors.Is(err, ErrImageDecode) {
		t.Errorf("Expected ErrImageDecode for missing file, got %v", err)
	}

	// Cancelled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (FileLoader{Path: path}).Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled in chain, got %v", err)
	}
}

func TestImageLoader(t *testing.T) {
	img := uniformImage(2, 2, color.Black)
	got, err := ImageLoader{Image: img}.Load(context.Background())
	if err != nil || got != img {
		t.Errorf("Expected the same image back, got %v, %v", got, err)
	}
	if _, err := (ImageLoader{}).Load(context.Background()); !errors.Is(err, ErrImageDecode) {
		t.Errorf("Expected ErrImageDecode for empty loader, got %v", err)
	}
}
