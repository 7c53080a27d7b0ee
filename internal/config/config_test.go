package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"), nil)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path, nil)

	cfg := DefaultConfig()
	cfg.Theme = "dracula"
	cfg.UISettings.CrossfadeMS = 80
	cfg.Animations["2"] = "stagger"
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, "dracula", loaded.Theme)
	assert.Equal(t, 80, loaded.UISettings.CrossfadeMS)
	table, errs := loaded.AnimationTable()
	assert.Empty(t, errs)
	assert.Equal(t, map[int]string{2: "stagger"}, table)
}

func TestAnimationTableReportsBadKeys(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Animations["3"] = "pop"
	cfg.Animations["intro"] = "rise"

	table, errs := cfg.AnimationTable()
	assert.Equal(t, map[int]string{3: "pop"}, table)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrInvalidConfig)
	assert.ErrorContains(t, errs[0], `"intro"`)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("theme = \"light\"\n\n[ui]\nshow_menu = true\n"), 0644))

	cfg, err := NewConfigServiceAt(path, nil).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.True(t, cfg.UISettings.ShowMenu)
	assert.Equal(t, 50, cfg.UISettings.CrossfadeMS)
	assert.True(t, cfg.Watch.Enabled)
}

func TestLoadFromPathErrors(t *testing.T) {
	dir := t.TempDir()
	svc := NewConfigServiceAt(filepath.Join(dir, "config.toml"), nil)

	_, err := svc.LoadFromPath(filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, "config file not found")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("theme = ["), 0644))
	_, err = svc.LoadFromPath(bad)
	assert.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[ui]\ncrossfade_ms = -5\n"), 0644))
	_, err = svc.LoadFromPath(invalid)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidateAnimationKeys(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Animations["intro"] = "pop"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
