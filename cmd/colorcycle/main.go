// Command colorcycle plays color cycling images in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/colorcycle/loader"
	"github.com/lixenwraith/colorcycle/render"
	"github.com/lixenwraith/colorcycle/terminal"
)

var (
	timeFlag  = flag.String("time", "", "Time of day to display, HH:MM in 24h time (default: current time)")
	colorFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	scaleFlag = flag.Int("scale", 1, "Terminal cells per image pixel")
	fpsFlag   = flag.Int("fps", 60, "Target frames per second")
	watchFlag = flag.Bool("watch", false, "Reload the image when the file changes")
	debugFlag = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <image.json>\n\nDisplay a color cycling image.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	filename := flag.Arg(0)

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	img, kind, err := loader.LoadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load image: %v\n", err)
		os.Exit(1)
	}
	log.Printf("loaded %s (%s)", filename, kind)

	colorMode, err := terminal.ParseColorMode(*colorFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	startTOD, ok := parseTimeOfDay(*timeFlag)
	if !ok {
		fmt.Fprintln(os.Stderr, "Rendering at current time")
		startTOD = secondsSinceMidnight(time.Now())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Background goroutines report panics through the same handler as main
	onCrash := newCrashHandler(screen)
	loader.SetCrashHandler(onCrash)
	defer func() {
		if r := recover(); r != nil {
			onCrash(r)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.Background))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads <-chan loader.Reload
	if *watchFlag {
		if reloads, err = loader.Watch(ctx, filename); err != nil {
			log.Printf("watch disabled: %v", err)
		}
	}

	renderer := render.NewRenderer(screen, colorMode, *scaleFlag)
	v := newViewer(screen, renderer, img, startTOD, *fpsFlag)
	v.onCrash = onCrash
	log.Printf("playing at %d fps, color mode %s, start %ds", *fpsFlag, colorMode, startTOD)
	v.run(ctx, reloads)
}
