// Package present writes rendered frame buffers to a terminal.
package present

import (
	"bufio"
	"fmt"
	"io"

	"sdfterm/internal/raster"
)

// Presenter displays one frame at a time.
type Presenter interface {
	Present(fb *raster.FrameBuffer) error
	Close() error
}

// Quitter is implemented by presenters that accept a user quit request.
type Quitter interface {
	Quit() <-chan struct{}
}

// Home cursor, then clear the whole display.
var clearSeq = []byte("\x1b[1;1H\x1b[2J")

// ANSI writes frames as plain lines preceded by a clear sequence.
type ANSI struct {
	w *bufio.Writer
}

func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: bufio.NewWriterSize(w, 4096)}
}

// Present writes the clear sequence and Height lines of Width glyphs, then flushes.
func (a *ANSI) Present(fb *raster.FrameBuffer) error {
	a.w.Write(clearSeq)
	for y := 0; y < fb.Height; y++ {
		a.w.Write(fb.Row(y))
		a.w.WriteByte('\n')
	}
	if err := a.w.Flush(); err != nil {
		return fmt.Errorf("present: write frame: %w", err)
	}
	return nil
}

func (a *ANSI) Close() error {
	return a.w.Flush()
}
