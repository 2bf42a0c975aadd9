package main

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reloads the config file when it changes on disk
type ConfigWatcher struct {
	watchDir      string
	fileName      string
	onChange      func()
	stopChan      chan bool
	doneChan      chan struct{}
	debounceTimer *time.Timer
	debounceMutex sync.Mutex
	stopped       bool
}

// StartWatcher starts monitoring the config directory. The directory is
// not created; if it does not exist there is nothing to watch.
func (m *ConfigManager) StartWatcher() error {
	path := m.Path()
	if path == "" {
		return fmt.Errorf("config path not resolved")
	}

	// Stop existing watcher if running
	m.StopWatcher()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Editors often replace the file, so the directory is watched rather than the file
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	cw := &ConfigWatcher{
		watchDir: dir,
		fileName: filepath.Base(path),
		onChange: m.Reload,
		stopChan: make(chan bool, 1),
		doneChan: make(chan struct{}),
	}

	m.mutex.Lock()
	m.watcher = cw
	m.mutex.Unlock()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				m.log.Error().Interface("panic", r).Msg("Config watcher panic recovered")
			}
			watcher.Close()
			close(cw.doneChan)
		}()

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if cw.isConfigEvent(event) {
					m.log.Debug().Str("op", event.Op.String()).Str("file", event.Name).Msg("Config file event")
					cw.scheduleReload()
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				m.log.Warn().Err(err).Msg("Config watcher error")

			case <-cw.stopChan:
				return
			}
		}
	}()

	m.log.Info().Str("dir", dir).Msg("Config file watcher started")
	return nil
}

// StopWatcher stops the config watcher and waits for it to exit
func (m *ConfigManager) StopWatcher() {
	m.mutex.Lock()
	cw := m.watcher
	m.watcher = nil
	m.mutex.Unlock()

	if cw == nil {
		return
	}

	select {
	case cw.stopChan <- true:
	default:
	}

	// The goroutine must be gone before the timer is cancelled, otherwise a
	// late event could arm a reload after shutdown
	select {
	case <-cw.doneChan:
	case <-time.After(2 * time.Second):
		m.log.Warn().Msg("Config watcher goroutine did not exit in time")
	}

	cw.debounceMutex.Lock()
	cw.stopped = true
	if cw.debounceTimer != nil {
		cw.debounceTimer.Stop()
		cw.debounceTimer = nil
	}
	cw.debounceMutex.Unlock()

	m.log.Info().Msg("Config file watcher stopped")
}

// isConfigEvent reports whether an event touches the config file
func (cw *ConfigWatcher) isConfigEvent(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != cw.fileName {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// scheduleReload coalesces bursts of events into a single reload
func (cw *ConfigWatcher) scheduleReload() {
	cw.debounceMutex.Lock()
	defer cw.debounceMutex.Unlock()

	if cw.stopped {
		return
	}
	if cw.debounceTimer != nil {
		cw.debounceTimer.Stop()
	}
	cw.debounceTimer = time.AfterFunc(DebounceDelay, cw.onChange)
}
