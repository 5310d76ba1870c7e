package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domaincfg "mindmesh-backend/domain/config"
)

func TestLoadGraphConfig_DefaultsWithoutPaletteFile(t *testing.T) {
	cfg := &Config{EnableTopics: true}

	graphCfg, err := LoadGraphConfig(cfg)

	require.NoError(t, err)
	assert.Equal(t, domaincfg.DefaultGraphConfig().Palette, graphCfg.Palette)
	assert.True(t, graphCfg.IncludeTopics)
}

func TestLoadGraphConfig_PaletteOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
max_scale: 30
palette:
  topic_segment: "#111111"
  guest_segment: "#222222"
`), 0o644))

	cfg := &Config{PaletteFile: path, EnableTopics: true}

	graphCfg, err := LoadGraphConfig(cfg)

	require.NoError(t, err)
	assert.Equal(t, 30.0, graphCfg.MaxScale)
	assert.Equal(t, "#111111", graphCfg.Palette.TopicSegment)
	assert.Equal(t, "#222222", graphCfg.Palette.GuestSegment)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, domaincfg.DefaultGraphConfig().Palette.ChildrenSegment, graphCfg.Palette.ChildrenSegment)
}

func TestPaletteWatcher_ReloadVisibleThroughCurrent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
palette:
  topic_segment: "#111111"
`), 0o644))

	cfg := &Config{PaletteFile: path, EnableTopics: true}
	initial, err := LoadGraphConfig(cfg)
	require.NoError(t, err)

	watcher, err := NewPaletteWatcher(cfg, initial, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, watcher)
	defer watcher.Stop()

	require.NoError(t, os.WriteFile(path, []byte(`
palette:
  topic_segment: "#222222"
`), 0o644))

	assert.Eventually(t, func() bool {
		return watcher.Current().Palette.TopicSegment == "#222222"
	}, 5*time.Second, 50*time.Millisecond)

	// Reload starts from defaults, so the topics flag survives.
	assert.True(t, watcher.Current().IncludeTopics)
}

func TestPaletteWatcher_NilWithoutPaletteFile(t *testing.T) {
	watcher, err := NewPaletteWatcher(&Config{}, domaincfg.DefaultGraphConfig(), zap.NewNop())

	require.NoError(t, err)
	assert.Nil(t, watcher)
}

func TestLoadGraphConfig_MissingFileFails(t *testing.T) {
	cfg := &Config{PaletteFile: "/nonexistent/palette.yaml"}

	_, err := LoadGraphConfig(cfg)
	assert.Error(t, err)
}

func TestLoadGraphConfig_MalformedYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_scale: [not a number"), 0o644))

	cfg := &Config{PaletteFile: path}

	_, err := LoadGraphConfig(cfg)
	assert.Error(t, err)
}
