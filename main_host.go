//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"tickface/app"
	"tickface/hal"
	"tickface/internal/buildinfo"
	"tickface/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	flag.StringVar(&cfg.Shape, "shape", cfg.Shape, "Display shape: rect or round.")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Display width in pixels.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Display height in pixels (ignored for round).")
	flag.IntVar(&cfg.Scale, "scale", cfg.Scale, "Window magnification.")
	flag.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", cfg.Hz, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", cfg.Ticks, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&cfg.PeekEvery, "peek-every", cfg.PeekEvery, "Toggle quick view every N seconds in headless mode (0 = never).")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Log every viewport change.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Println(buildinfo.Long())

	host := hal.HostConfig{Screen: cfg.Screen(), Scale: cfg.Scale}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{Verbose: cfg.Verbose})
	}

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Host:      host,
			Hz:        cfg.Hz,
			Ticks:     cfg.Ticks,
			PeekEvery: cfg.PeekEvery,
		}); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(host, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
