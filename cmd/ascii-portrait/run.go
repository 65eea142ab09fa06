package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/ascii-portrait/audio"
	"github.com/lixenwraith/ascii-portrait/compositor"
	"github.com/lixenwraith/ascii-portrait/config"
	"github.com/lixenwraith/ascii-portrait/engine"
	"github.com/lixenwraith/ascii-portrait/raster"
	"github.com/lixenwraith/ascii-portrait/render"
	"github.com/lixenwraith/ascii-portrait/snapshot"
	"github.com/lixenwraith/ascii-portrait/terminal"
	"github.com/lixenwraith/ascii-portrait/vmath"
)

type runOptions struct {
	imagePath string
	cfg       config.Config
	colorMode terminal.ColorMode
	seed      uint64
	logger    *slog.Logger
}

type headlessTarget struct {
	png, ansi string
	frames   int
	width    int
	height   int
}

// compositorOptions are shared by every session of one run
func (o runOptions) compositorOptions(extra ...compositor.Option) []compositor.Option {
	opts := []compositor.Option{compositor.WithLogger(o.logger)}
	if o.seed != 0 {
		opts = append(opts, compositor.WithRand(vmath.NewFastRand(o.seed)))
	}
	return append(opts, extra...)
}

func (o runOptions) background() render.RGB {
	r, g, b := o.cfg.BackgroundRGB()
	return render.RGB{R: r, G: g, B: b}
}

// runHeadless advances a session without a terminal and writes the last frame
func runHeadless(ctx context.Context, o runOptions, target headlessTarget) error {
	loader := raster.FileLoader{Path: o.imagePath}

	if target.png != "" {
		canvas, err := snapshot.NewCanvas(target.width, target.height, o.background())
		if err != nil {
			return err
		}
		defer canvas.Close()

		stats, err := snapshot.Run(ctx, canvas, o.cfg, loader, target.frames, o.compositorOptions()...)
		if err != nil {
			return err
		}
		if err := canvas.Err(); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		if err := snapshot.SavePNG(target.png, canvas); err != nil {
			return err
		}
		o.logger.Info("png written", "path", target.png, "frames", stats.Frames, "drawn", stats.Drawn)
	}

	if target.ansi != "" {
		cell := o.cfg.CellSizePx
		buf := render.NewCellBuffer(target.width/cell, target.height/cell, cell, o.background())
		stats, err := snapshot.Run(ctx, buf, o.cfg, loader, target.frames, o.compositorOptions()...)
		if err != nil {
			return err
		}
		if err := snapshot.SaveANSI(target.ansi, buf, o.colorMode); err != nil {
			return err
		}
		o.logger.Info("ansi written", "path", target.ansi, "frames", stats.Frames, "drawn", stats.Drawn)
	}
	return nil
}

// session is one compositor bound to one cell buffer sized to the terminal
type session struct {
	comp *compositor.Compositor
	buf  *render.CellBuffer
}

func newSession(ctx context.Context, o runOptions, q *engine.FrameQueue, cols, rows int, img raster.Loader, extra ...compositor.Option) (*session, error) {
	buf := render.NewCellBuffer(cols, rows, o.cfg.CellSizePx, o.background())
	comp, err := compositor.New(buf, q, o.cfg, o.compositorOptions(extra...)...)
	if err != nil {
		return nil, err
	}
	s := &session{comp: comp, buf: buf}

	// A failed load leaves a blank disposed session, the loop keeps running so quit still works
	if err := comp.Load(ctx, img); err != nil {
		o.logger.Warn("portrait unavailable", "error", err)
		return s, nil
	}
	if err := comp.Start(); err != nil {
		return nil, err
	}
	return s, nil
}

// runInteractive animates the portrait in the terminal until a quit key or signal
func runInteractive(ctx context.Context, o runOptions) error {
	// Decode once; resize rebuilds reuse the raster
	img, err := raster.FileLoader{Path: o.imagePath}.Load(ctx)
	if err != nil {
		o.logger.Warn("source image failed", "path", o.imagePath, "error", err)
	}
	source := raster.ImageLoader{Image: img}

	var extra []compositor.Option
	if o.cfg.Sound {
		cue := audio.NewCue(o.logger)
		if err := cue.Init(); err == nil {
			defer cue.Close()
			extra = append(extra, compositor.WithPulseListener(cue))
		}
	}

	screen, err := terminal.NewScreen(o.colorMode)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	q := engine.NewFrameQueue()
	cols, rows := screen.Size()
	sess, err := newSession(ctx, o, q, cols, rows, source, extra...)
	if err != nil {
		return err
	}
	defer func() { sess.comp.Dispose() }()
	screen.Flush(sess.buf)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan func(), 256)
	cell := float64(o.cfg.CellSizePx)
	center := cell / 2

	go func() {
		defer func() {
			if r := recover(); r != nil {
				terminal.EmergencyReset(os.Stdout)
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			var fn func()
			switch {
			case ev.Type == terminal.EventClosed:
				return
			case ev.Quit():
				fn = cancel
			case ev.Type == terminal.EventMouse:
				x, y := float64(ev.X)*cell+center, float64(ev.Y)*cell+center
				fn = func() { sess.comp.PointerMove(x, y) }
			case ev.Type == terminal.EventEnter:
				fn = func() { sess.comp.PointerEnter() }
			case ev.Type == terminal.EventLeave:
				fn = func() { sess.comp.PointerLeave() }
			case ev.Type == terminal.EventResize:
				w, h := ev.Width, ev.Height
				fn = func() {
					sess.comp.Dispose()
					next, err := newSession(ctx, o, q, w, h, source, extra...)
					if err != nil {
						o.logger.Error("resize rebuild failed", "error", err)
						cancel()
						return
					}
					sess = next
					screen.Sync()
					screen.Flush(sess.buf)
				}
			default:
				continue
			}
			select {
			case events <- fn:
			case <-ctx.Done():
				return
			}
		}
	}()

	loop := &engine.Loop{
		Interval:   o.cfg.FrameInterval(),
		Queue:      q,
		Events:     events,
		AfterFrame: func() { screen.Flush(sess.buf) },
	}
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	o.logger.Info("session ended", "frames", sess.comp.Stats().Frames)
	return nil
}
