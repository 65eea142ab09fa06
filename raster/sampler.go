package raster

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ErrImageDecode covers every way the source raster can fail to become samples
var ErrImageDecode = errors.New("image decode failed")

// Sample is one cell of the downsampled raster, straight (non-premultiplied) RGBA
type Sample struct {
	R, G, B, A uint8
	Brightness float64 // (R+G+B)/3
}

// Filter selects the resampling kernel
type Filter uint8

const (
	FilterNearest Filter = iota
	FilterBilinear
	FilterCatmullRom
)

// ParseFilter maps a config name to a Filter
func ParseFilter(name string) (Filter, error) {
	switch name {
	case "nearest":
		return FilterNearest, nil
	case "bilinear", "":
		return FilterBilinear, nil
	case "catmullrom":
		return FilterCatmullRom, nil
	default:
		return FilterBilinear, fmt.Errorf("unknown filter %q", name)
	}
}

func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterCatmullRom:
		return "catmullrom"
	default:
		return "bilinear"
	}
}

func (f Filter) interpolator() draw.Interpolator {
	switch f {
	case FilterNearest:
		return draw.NearestNeighbor
	case FilterCatmullRom:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}

// SampleImage resizes img into an offscreen buffer of exactly grid.Cols x grid.Rows
// pixels and reads back one Sample per cell, row-major
// Deterministic for a given image, grid and filter
func SampleImage(img image.Image, grid Grid, filter Filter) ([]Sample, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrImageDecode)
	}
	src := img.Bounds()
	if src.Empty() {
		return nil, fmt.Errorf("%w: empty image %v", ErrImageDecode, src)
	}
	if grid.Cols < 1 || grid.Rows < 1 {
		grid = Grid{Cols: max(1, grid.Cols), Rows: max(1, grid.Rows)}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, grid.Cols, grid.Rows))
	filter.interpolator().Scale(dst, dst.Bounds(), img, src, draw.Src, nil)

	samples := make([]Sample, grid.Cells())
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			off := dst.PixOffset(x, y)
			px := dst.Pix[off : off+4 : off+4]
			samples[grid.Index(x, y)] = Sample{
				R:          px[0],
				G:          px[1],
				B:          px[2],
				A:          px[3],
				Brightness: (float64(px[0]) + float64(px[1]) + float64(px[2])) / 3,
			}
		}
	}
	return samples, nil
}
