package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bloeys/learngl/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestParseOverrides(t *testing.T) {

	cfg, err := Parse(strings.NewReader(`
[window]
title = "quad"
width = 800
backend = "sdl"
vsync = false

[render]
clear_color = [0.1, 0.2, 0.3, 1.0]
`))
	require.NoError(t, err)

	assert.Equal(t, "quad", cfg.Window.Title)
	assert.Equal(t, int32(800), cfg.Window.Width)
	assert.Equal(t, Backend_SDL, cfg.Window.Backend)
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, cfg.Render.ClearColor)

	// Untouched fields keep their defaults
	def := Default()
	assert.Equal(t, def.Window.Height, cfg.Window.Height)
	assert.Equal(t, def.Window.DebugContext, cfg.Window.DebugContext)
	assert.Equal(t, def.Render.Shader, cfg.Render.Shader)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {

	tests := []struct {
		name    string
		src     string
		errIs   error
		errText string
	}{
		{
			name:    "unknown key",
			src:     "[window]\ntitel = \"oops\"\n",
			errText: "titel",
		},
		{
			name:    "unknown table",
			src:     "[audio]\nvolume = 1\n",
			errText: "audio",
		},
		{
			name:  "bad backend",
			src:   "[window]\nbackend = \"vulkan\"\n",
			errIs: ErrInvalidBackend,
		},
		{
			name:  "zero width",
			src:   "[window]\nwidth = 0\n",
			errIs: ErrInvalidSize,
		},
		{
			name:  "negative height",
			src:   "[window]\nheight = -5\n",
			errIs: ErrInvalidSize,
		},
		{
			name:  "empty shader",
			src:   "[render]\nshader = \"\"\n",
			errIs: ErrNoShader,
		},
		{
			name:    "syntax error",
			src:     "[window\n",
			errText: "line 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			_, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)

			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			}

			if tt.errText != "" {
				assert.Contains(t, err.Error(), tt.errText)
			}
		})
	}
}

func TestLoad(t *testing.T) {

	buf := &bytes.Buffer{}
	logging.SetOutput(buf)
	t.Cleanup(logging.ResetOutput)

	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Contains(t, buf.String(), "using defaults")

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nheight = 480\n"), 0644))

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, int32(480), cfg.Window.Height)

	require.NoError(t, os.WriteFile(path, []byte("[window]\nbackend = \"dx12\"\n"), 0644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidBackend)
	assert.Contains(t, err.Error(), path)
}
