package loader

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/lixenwraith/colorcycle/palette"
)

// ReloadDelay coalesces the bursts of events editors emit for a single save
const ReloadDelay = 100 * time.Millisecond

// Reload is one result of re-reading a watched description
type Reload struct {
	Image palette.Cycler
	Kind  Kind
	Err   error
}

// Watch reloads path whenever it is written or replaced until ctx is done
// The parent directory is watched so that atomic renames are observed
func Watch(ctx context.Context, path string) (<-chan Reload, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed creating file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed watching %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan Reload)
	go func() {
		defer recoverCrash()
		defer close(out)
		defer watcher.Close()

		timer := time.NewTimer(ReloadDelay)
		timer.Stop()

		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					timer.Reset(ReloadDelay)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("file watcher error on %s: %v", abs, err)
			case <-timer.C:
				img, kind, err := LoadFile(abs)
				if err != nil {
					log.Printf("reload of %s failed: %v", abs, err)
				} else {
					log.Printf("reloaded %s (%s)", abs, kind)
				}
				select {
				case out <- Reload{Image: img, Kind: kind, Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
