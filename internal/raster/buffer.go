package raster

import (
	"bytes"
	"strings"
)

// FrameBuffer holds one glyph per pixel as a flat row-major slice.
type FrameBuffer struct {
	Width  int
	Height int
	Cells  []byte // len = W*H
}

// NewFrameBuffer allocates a buffer with every cell set to space.
func NewFrameBuffer(w, h int) *FrameBuffer {
	cells := make([]byte, w*h)
	for i := range cells {
		cells[i] = ' '
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Cells:  cells,
	}
}

// Row returns the cells of row y. The slice aliases the buffer.
func (fb *FrameBuffer) Row(y int) []byte {
	off := y * fb.Width
	return fb.Cells[off : off+fb.Width]
}

func (fb *FrameBuffer) At(x, y int) byte {
	return fb.Cells[y*fb.Width+x]
}

func (fb *FrameBuffer) Set(x, y int, c byte) {
	fb.Cells[y*fb.Width+x] = c
}

// Count returns the number of cells matching fn.
func (fb *FrameBuffer) Count(fn func(byte) bool) int {
	n := 0
	for _, c := range fb.Cells {
		if fn(c) {
			n++
		}
	}
	return n
}

func (fb *FrameBuffer) Equal(o *FrameBuffer) bool {
	return fb.Width == o.Width && fb.Height == o.Height && bytes.Equal(fb.Cells, o.Cells)
}

// String renders the buffer as Height newline-terminated lines.
func (fb *FrameBuffer) String() string {
	var sb strings.Builder
	sb.Grow((fb.Width + 1) * fb.Height)
	for y := 0; y < fb.Height; y++ {
		sb.Write(fb.Row(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}
