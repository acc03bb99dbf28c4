package main

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/colorcycle/loader"
	"github.com/lixenwraith/colorcycle/palette"
	"github.com/lixenwraith/colorcycle/render"
)

// viewer drives one Cycler onto a screen at a fixed frame rate
type viewer struct {
	screen   tcell.Screen
	renderer *render.Renderer
	img      palette.Cycler

	startTOD int       // seconds since midnight at start
	start    time.Time // animation epoch, reset on reload
	frame    time.Duration
	now      func() time.Time
	onCrash  func(any) // called with the panic value of the event pump
}

func newViewer(screen tcell.Screen, renderer *render.Renderer, img palette.Cycler, startTOD, fps int) *viewer {
	v := &viewer{
		screen:   screen,
		renderer: renderer,
		startTOD: startTOD,
		frame:    time.Second / time.Duration(max(fps, 1)),
		now:      time.Now,
	}
	v.setImage(img)
	return v
}

func (v *viewer) setImage(img palette.Cycler) {
	v.img = img
	v.renderer.SetImage(img)
	v.start = v.now()
}

// drawFrame renders the palette for the current elapsed time
func (v *viewer) drawFrame() {
	elapsed := v.now().Sub(v.start)
	tod := palette.At(v.startTOD + int(elapsed/time.Second))
	v.renderer.Draw(v.img.Cycle(tod, int(elapsed.Milliseconds())))
}

// isQuit reports whether a key event ends the viewer
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// run draws frames until a quit key, ctx cancellation, or the event source closes
// reloads may be nil when the file is not watched
func (v *viewer) run(ctx context.Context, reloads <-chan loader.Reload) {
	events := make(chan tcell.Event, 16)
	goSafe(v.onCrash, func() {
		defer close(events)
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	ticker := time.NewTicker(v.frame)
	defer ticker.Stop()

	v.drawFrame()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					log.Printf("quit requested")
					return
				}
			case *tcell.EventResize:
				v.screen.Sync()
				v.renderer.Invalidate()
			}
		case r, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			if r.Err != nil {
				continue
			}
			v.setImage(r.Image)
		case <-ticker.C:
			v.drawFrame()
		}
	}
}
