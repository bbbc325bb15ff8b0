package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/lixenwraith/shooter-snake/core"
)

// Watch reloads path whenever it is written and sends each valid result
// Invalid edits are logged and skipped; the channel closes when ctx ends
func Watch(ctx context.Context, path string) (<-chan *Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watch: %w", err)
	}
	// Editors often replace the file, so watch the directory and filter by name
	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("config watch: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("config watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan *Config, 1)
	core.Go(func() {
		defer close(out)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(abs)
				if err != nil {
					log.Printf("[config] reload rejected: %v", err)
					continue
				}
				log.Printf("[config] reloaded %s", abs)
				// Keep only the newest pending result
				select {
				case <-out:
				default:
				}
				out <- cfg
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[config] watch error: %v", err)
			}
		}
	})
	return out, nil
}
