// Package loop drives the render, present, pause cycle.
package loop

import (
	"context"
	"fmt"
	"time"

	"sdfterm/internal/present"
	"sdfterm/internal/raster"
)

// Options configures Run.
type Options struct {
	Renderer  *raster.Renderer
	Presenter present.Presenter
	Interval  time.Duration // pause between frames; <= 0 runs unpaced
	Frames    int           // stop after this many frames; 0 runs until cancelled

	// OnFrame, if set, is called after each frame is presented with the
	// frame index and the time spent rendering it.
	OnFrame func(frame int, render time.Duration)
}

// Run renders and presents frames into one owned buffer until ctx is done,
// the presenter asks to quit, or Frames frames have been shown.
// Cancellation and quit requests are a normal stop and return nil.
func Run(ctx context.Context, opt Options) error {
	p := opt.Renderer.Params
	fb := raster.NewFrameBuffer(p.Width, p.Height)

	var quit <-chan struct{}
	if q, ok := opt.Presenter.(present.Quitter); ok {
		quit = q.Quit()
	}

	var tick <-chan time.Time
	if opt.Interval > 0 {
		ticker := time.NewTicker(opt.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	start := time.Now()
	for frame := 0; opt.Frames <= 0 || frame < opt.Frames; frame++ {
		t := float32(time.Since(start).Seconds())

		t0 := time.Now()
		if err := opt.Renderer.Render(fb, t); err != nil {
			return fmt.Errorf("loop: frame %d: %w", frame, err)
		}
		elapsed := time.Since(t0)

		if err := opt.Presenter.Present(fb); err != nil {
			return fmt.Errorf("loop: frame %d: %w", frame, err)
		}
		if opt.OnFrame != nil {
			opt.OnFrame(frame, elapsed)
		}

		if opt.Frames > 0 && frame == opt.Frames-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil
		case <-quit:
			return nil
		default:
		}
		if tick == nil {
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-quit:
			return nil
		case <-tick:
		}
	}
	return nil
}
