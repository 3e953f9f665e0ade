package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reports a freshly loaded Config, merged over base, on the returned
// channel every time the file at path is written or replaced. Parse failures are reported on
// the error channel and the previous config stays in effect. Both channels
// are closed when ctx is cancelled.
//
// The parent directory is watched rather than the file so editors that save
// via rename are still seen.
func Watch(ctx context.Context, path string, base *Config) (<-chan Config, <-chan error, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("creating config watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	updates := make(chan Config, 1)
	errs := make(chan error, 1)
	go func() {
		defer close(updates)
		defer close(errs)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := loadFile(abs, false)
				if err == nil && cfg == nil {
					continue
				}
				if err != nil {
					select {
					case errs <- err:
					case <-ctx.Done():
						return
					}
					continue
				}
				merged := Merge(base, cfg)
				select {
				case updates <- merged:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				select {
				case errs <- err:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return updates, errs, nil
}
