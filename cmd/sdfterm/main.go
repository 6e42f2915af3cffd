package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sdfterm/internal/config"
	"sdfterm/internal/loop"
	"sdfterm/internal/present"
)

func main() {
	// CLI flags; none is required
	configFile := flag.String("config", "", "Path to config.json file")
	presenter := flag.String("presenter", "", "Output: ansi or screen (default: ansi)")
	shader := flag.String("shader", "", "Shading: constant or lit (default: constant)")
	interval := flag.Duration("interval", 0, "Pause between frames (default: 1s)")
	frames := flag.Int("frames", 0, "Stop after N frames (default: run until interrupted)")
	workers := flag.Int("workers", 0, "Row workers per frame (default: 1)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Workers:   *workers,
		Interval:  *interval,
		Shader:    *shader,
		Presenter: *presenter,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var out present.Presenter
	switch cfg.Presenter {
	case config.PresenterScreen:
		s, err := present.NewScreen()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		out = s
	default:
		out = present.NewANSI(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := loop.Run(ctx, loop.Options{
		Renderer:  cfg.Renderer(),
		Presenter: out,
		Interval:  cfg.Interval(),
		Frames:    *frames,
	})
	stop()
	closeErr := out.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if closeErr != nil {
		fmt.Fprintf(os.Stderr, "Error closing output: %v\n", closeErr)
		os.Exit(1)
	}
}
