package raster

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Loader yields the decoded source raster once, before animation starts
type Loader interface {
	Load(ctx context.Context) (image.Image, error)
}

// FileLoader decodes a PNG, JPEG or GIF from disk
type FileLoader struct {
	Path string
}

func (l FileLoader) Load(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImageDecode, l.Path, err)
	}

	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImageDecode, l.Path, err)
	}
	return img, nil
}

// ImageLoader hands out an already decoded raster
// Used when a session is rebuilt after resize without touching the source again
type ImageLoader struct {
	Image image.Image
}

func (l ImageLoader) Load(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}
	if l.Image == nil {
		return nil, fmt.Errorf("%w: no image", ErrImageDecode)
	}
	return l.Image, nil
}
