package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"sdfterm/internal/config"
	"sdfterm/internal/loop"
	"sdfterm/internal/present"
	"sdfterm/internal/stats"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	frames := flag.Int("frames", 200, "Number of frames to render")
	workers := flag.Int("workers", 0, "Row workers per frame (default: NumCPU)")
	shader := flag.String("shader", "", "Shading: constant or lit (default: constant)")

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
	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}
	cfg.Resolve(config.Flags{Workers: *workers, Shader: *shader})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Grid: %dx%d, Workers: %d, Shader: %s\n", cfg.Width, cfg.Height, cfg.Workers, cfg.Shader)
	fmt.Println("------------------------------------------------------------")

	durations := make([]time.Duration, 0, *frames)
	start := time.Now()
	err := loop.Run(context.Background(), loop.Options{
		Renderer:  cfg.Renderer(),
		Presenter: present.NewANSI(io.Discard),
		Frames:    *frames,
		OnFrame: func(_ int, d time.Duration) {
			durations = append(durations, d)
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done in %.2fs\n", time.Since(start).Seconds())
	fmt.Println(stats.Summarize(durations))
}
