package main

import (
	"flag"
	"fmt"
	"os"

	"sdfterm/internal/config"
	"sdfterm/internal/export"
	"sdfterm/internal/raster"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	output := flag.String("output", "frame.webp", "Output file (.webp, .png, .tga or .txt)")
	shader := flag.String("shader", "", "Shading: constant or lit (default: constant)")
	at := flag.Float64("t", 0, "Animation time in seconds")
	scale := flag.Int("scale", 2, "Integer upscale factor for image output")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Shader: *shader})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fb := raster.NewFrameBuffer(cfg.Width, cfg.Height)
	if err := cfg.Renderer().Render(fb, float32(*at)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := export.WriteFile(*output, fb, export.Options{Scale: *scale}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hits := fb.Count(func(c byte) bool { return c != raster.DefaultPalette.Background() })
	fmt.Printf("Frame %dx%d, %d surface cells\n", cfg.Width, cfg.Height, hits)
	fmt.Printf("Output: %s\n", *output)
}
