package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/kestrel-lang/kestrel/internal/cli"
)

// watchAndLex blocks, re-running relex whenever the input file is written.
// The parent directory is watched rather than the file itself so that
// editors which replace the file on save keep triggering events.
func watchAndLex(filename string, relex func() error, logger *cli.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(filename)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", filename, err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	logger.Info("watching %s", target)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(ev.Name)
			if err != nil || name != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("change detected: %s", ev.Op)
			if err := relex(); err != nil {
				logger.Error("%v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
