package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"sdfterm/internal/raster"
)

// ErrFormat is returned for file extensions with no encoder.
var ErrFormat = errors.New("export: unsupported format")

// Format names accepted by Encode.
const (
	FormatText = "txt"
	FormatPNG  = "png"
	FormatWebP = "webp"
	FormatTGA  = "tga"
)

// Options controls image output. Zero values pick white on black at 1×.
type Options struct {
	Scale int
	FG    color.Color
	BG    color.Color
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.FG == nil {
		o.FG = color.White
	}
	if o.BG == nil {
		o.BG = color.Black
	}
	return o
}

// FormatFromPath maps a file extension onto a format name.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case FormatText, FormatPNG, FormatWebP, FormatTGA:
		return ext, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
}

// Encode writes img to w in the named image format.
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	case FormatTGA:
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
	if err != nil {
		return fmt.Errorf("export: encode %s: %w", format, err)
	}
	return nil
}

// WriteFile saves fb to path, choosing the format from the extension.
// Text files hold the raw glyph rows; image formats are rasterised first.
func WriteFile(path string, fb *raster.FrameBuffer, opt Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if format == FormatText {
		if err := os.WriteFile(path, []byte(fb.String()), 0644); err != nil {
			return fmt.Errorf("export: write %s: %w", path, err)
		}
		return nil
	}

	opt = opt.withDefaults()
	img := Scale(Rasterize(fb, opt.FG, opt.BG), opt.Scale)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}
