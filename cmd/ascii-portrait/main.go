package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"

	"github.com/lixenwraith/ascii-portrait/config"
	"github.com/lixenwraith/ascii-portrait/terminal"
)

var (
	configFlag    = flag.String("config", "", "TOML config file")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	snapshotFlag  = flag.String("snapshot", "", "Render headless to a PNG file, - for stdout")
	ansiFlag      = flag.String("ansi", "", "Render headless to ANSI text, - for stdout")
	framesFlag    = flag.Int("frames", 120, "Frames to advance before a headless capture")
	sizeFlag      = flag.String("size", "800x600", "Headless PNG size in pixels, WxH")
	seedFlag      = flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	soundFlag     = flag.Bool("sound", false, "Play the heartbeat through the speaker")
	debugFlag     = flag.Bool("debug", false, "Write a debug log under logs/")
)

func main() {
	// Terminal must be restored before the trace is readable
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mASCII-PORTRAIT CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <image>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	imagePath := flag.Arg(0)

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}
	if *soundFlag {
		cfg.Sound = true
	}

	colorMode := terminal.DetectColorMode()
	if *colorModeFlag != "auto" {
		if colorMode, err = terminal.ParseColorMode(*colorModeFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := runOptions{
		imagePath: imagePath,
		cfg:       cfg,
		colorMode: colorMode,
		seed:      *seedFlag,
		logger:    logger,
	}

	switch {
	case *snapshotFlag != "" || *ansiFlag != "":
		w, h, err := parseSize(*sizeFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
		err = runHeadless(ctx, opts, headlessTarget{
			png:    *snapshotFlag,
			ansi:   *ansiFlag,
			frames: *framesFlag,
			width:  w,
			height: h,
		})
		if err != nil {
			logger.Error("headless render failed", "error", err)
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	default:
		if err := runInteractive(ctx, opts); err != nil {
			logger.Error("interactive session failed", "error", err)
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
}

// parseSize reads WxH
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	if w, err = strconv.Atoi(ws); err != nil || w < 1 {
		return 0, 0, fmt.Errorf("size %q: bad width", s)
	}
	if h, err = strconv.Atoi(hs); err != nil || h < 1 {
		return 0, 0, fmt.Errorf("size %q: bad height", s)
	}
	return w, h, nil
}
