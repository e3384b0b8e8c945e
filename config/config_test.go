package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, 735, cfg.DataSize())
	assert.Equal(t, 1470, cfg.ScreenWidth())
}

func TestDataSize_IntegerDivision(t *testing.T) {
	cfg := Default()
	cfg.Audio.SampleRate = 48000
	cfg.Display.FPS = 144
	assert.Equal(t, 333, cfg.DataSize())

	cfg.Display.FPS = 0
	assert.Equal(t, 0, cfg.DataSize())
}

func TestScreenWidth_Explicit(t *testing.T) {
	cfg := Default()
	cfg.Display.Width = 800
	assert.Equal(t, 800, cfg.ScreenWidth())
}

func TestLoadFromReader_OverridesDefaults(t *testing.T) {
	yml := `
file: /tmp/track.ogg
audio:
  backend: beep
  format: s16
  downmix: first
display:
  backend: terminal
  fps: 30
log:
  level: debug
`
	cfg, err := LoadFromReader(strings.NewReader(yml))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/track.ogg", cfg.File)
	assert.Equal(t, "beep", cfg.Audio.Backend)
	assert.Equal(t, "s16", cfg.Audio.Format)
	assert.Equal(t, "first", cfg.Audio.Downmix)
	assert.Equal(t, "silence", cfg.Audio.OnExhausted)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
	assert.Equal(t, "terminal", cfg.Display.Backend)
	assert.Equal(t, 1470, cfg.DataSize())
	assert.Equal(t, 900, cfg.Display.Height)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromReader_Empty(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromReader_UnknownField(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("audio:\n  volume: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode yaml")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Audio.Backend = "alsa"
	cfg.Audio.Format = "s24"
	cfg.Display.FPS = 0
	cfg.File = ""

	err := Validate(cfg)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `audio.backend "alsa"`)
	assert.Contains(t, msg, `audio.format "s24"`)
	assert.Contains(t, msg, "display.fps must be positive")
	assert.Contains(t, msg, "file must be set")
}

func TestValidate_FPSAboveSampleRate(t *testing.T) {
	cfg := Default()
	cfg.Audio.SampleRate = 30
	cfg.Display.FPS = 60
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds audio.sample_rate")
}

func TestValidate_HeightTooSmall(t *testing.T) {
	cfg := Default()
	cfg.Display.Height = 50
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leaves no room")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("file: song.wav\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "song.wav", cfg.File)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
