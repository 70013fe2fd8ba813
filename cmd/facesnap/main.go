// Command facesnap renders the dial to a PNG without opening a window.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"

	"tickface/gfx"
	"tickface/internal/buildinfo"
	"tickface/internal/config"

	"github.com/fogleman/gg"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatalf("%v", err)
	}

	var (
		outPath = flag.String("out", "face.png", "Output PNG path (- for stdout).")
		peek    = flag.Bool("peek", false, "Draw with the quick-view panel shown.")
		caption = flag.Bool("caption", true, "Add a caption strip with shape, size and build.")
		table   = flag.Bool("table", false, "Print the tick table instead of writing a PNG.")
	)
	flag.StringVar(&cfg.Shape, "shape", cfg.Shape, "Display shape: rect or round.")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Display width in pixels.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Display height in pixels (ignored for round).")
	flag.IntVar(&cfg.Scale, "scale", cfg.Scale, "Output magnification.")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}
	screen := cfg.Screen()

	if *table {
		if err := dumpTable(os.Stdout, cfg.FaceShape(), gfx.FromImage(screen.Bounds())); err != nil {
			fatalf("table: %v", err)
		}
		return
	}

	var logw io.Writer
	if cfg.Verbose {
		logw = os.Stderr
	}
	frame := snapshot(screen, *peek, logw)

	text := ""
	if *caption {
		text = fmt.Sprintf("%s %dx%d  %s", cfg.FaceShape(), screen.Width, screen.Height, buildinfo.Short())
	}
	img := compose(frame, screen.Round, cfg.Scale, text)

	if *outPath == "-" {
		if err := png.Encode(os.Stdout, img); err != nil {
			fatalf("write png: %v", err)
		}
		return
	}
	if err := gg.SavePNG(*outPath, img); err != nil {
		fatalf("write png: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "facesnap: "+format+"\n", args...)
	os.Exit(2)
}
