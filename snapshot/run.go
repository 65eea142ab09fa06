package snapshot

import (
	"context"
	"fmt"

	"github.com/lixenwraith/ascii-portrait/compositor"
	"github.com/lixenwraith/ascii-portrait/config"
	"github.com/lixenwraith/ascii-portrait/engine"
	"github.com/lixenwraith/ascii-portrait/raster"
	"github.com/lixenwraith/ascii-portrait/render"
)

// Run plays frames frames of a session onto surface as fast as possible and disposes it
// The surface holds the last frame on return
func Run(ctx context.Context, surface render.Surface, cfg config.Config, loader raster.Loader, frames int, opts ...compositor.Option) (compositor.Stats, error) {
	q := engine.NewFrameQueue()
	c, err := compositor.New(surface, q, cfg, opts...)
	if err != nil {
		return compositor.Stats{}, err
	}
	defer c.Dispose()

	if err := c.Load(ctx, loader); err != nil {
		return compositor.Stats{}, err
	}
	if err := c.Start(); err != nil {
		return compositor.Stats{}, err
	}
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return c.Stats(), fmt.Errorf("after %d frames: %w", i, err)
		}
		q.Fire()
	}
	return c.Stats(), nil
}
