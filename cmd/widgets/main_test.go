package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/deskwidgets/internal/config"
)

func TestWriteConfig_RoundTripsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	settings := config.DefaultSettings()
	settings.MusicDir = "/music"
	settings.PlaylistFormat = "pls"
	require.NoError(t, writeConfig(settings, path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestWriteConfig_NoPath(t *testing.T) {
	assert.Error(t, writeConfig(config.DefaultSettings(), ""))
}

func TestRunCalc_DivisionByZero(t *testing.T) {
	err := runCalc("8/0=", nil)
	assert.Error(t, err)
}
