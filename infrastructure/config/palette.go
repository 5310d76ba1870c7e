package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	domaincfg "mindmesh-backend/domain/config"
)

// LoadGraphConfig builds the graph appearance configuration. Defaults are
// applied first, then the palette file (when configured) overlays them.
func LoadGraphConfig(cfg *Config) (*domaincfg.GraphConfig, error) {
	graphCfg := domaincfg.DefaultGraphConfig()
	graphCfg.IncludeTopics = cfg.EnableTopics

	if cfg.PaletteFile == "" {
		return graphCfg, nil
	}

	if err := overlayPaletteFile(graphCfg, cfg.PaletteFile); err != nil {
		return nil, err
	}
	return graphCfg, nil
}

func overlayPaletteFile(graphCfg *domaincfg.GraphConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read palette file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, graphCfg); err != nil {
		return fmt.Errorf("failed to parse palette file %s: %w", path, err)
	}
	return nil
}

// PaletteWatcher hot reloads the graph appearance configuration when the
// palette file changes on disk. It implements config.Source, so the
// pipeline and positioner pick up reloads on their next run. Used in
// development for palette tuning without restarts.
type PaletteWatcher struct {
	path    string
	current *domaincfg.GraphConfig
	mu      sync.RWMutex
	logger  *zap.Logger
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
}

// NewPaletteWatcher creates a watcher over the given palette file. A nil
// watcher with no error is returned when no file is configured.
func NewPaletteWatcher(cfg *Config, initial *domaincfg.GraphConfig, logger *zap.Logger) (*PaletteWatcher, error) {
	if cfg.PaletteFile == "" {
		return nil, nil
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory so editor rename-and-replace saves are seen.
	if err := fsWatcher.Add(filepath.Dir(cfg.PaletteFile)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch palette file: %w", err)
	}

	w := &PaletteWatcher{
		path:    cfg.PaletteFile,
		current: initial,
		logger:  logger,
		watcher: fsWatcher,
		stopCh:  make(chan struct{}),
	}
	go w.watchLoop()

	logger.Info("Palette hot reloading enabled",
		zap.String("file", cfg.PaletteFile),
	)
	return w, nil
}

func (w *PaletteWatcher) watchLoop() {
	defer w.watcher.Close()

	// Debounce timer to avoid multiple rapid reloads
	var debounceTimer *time.Timer
	const debounceDelay = 500 * time.Millisecond

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Palette watcher error", zap.Error(err))

		case <-w.stopCh:
			return
		}
	}
}

func (w *PaletteWatcher) reload() {
	next := domaincfg.DefaultGraphConfig()
	next.IncludeTopics = w.Current().IncludeTopics

	if err := overlayPaletteFile(next, w.path); err != nil {
		w.logger.Error("Invalid palette after reload, keeping previous",
			zap.Error(err),
		)
		return
	}

	w.mu.Lock()
	w.current = next
	w.mu.Unlock()

	w.logger.Info("Palette reloaded",
		zap.String("file", w.path),
	)
}

var _ domaincfg.Source = (*PaletteWatcher)(nil)

// Current returns the most recently loaded configuration.
func (w *PaletteWatcher) Current() *domaincfg.GraphConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Stop stops the watcher.
func (w *PaletteWatcher) Stop() {
	close(w.stopCh)
}
