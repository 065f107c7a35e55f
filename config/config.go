// Package config loads the TOML file that controls the window and what gets rendered.
//
// A missing file is not an error, every field has a default. Keys that are not known
// are rejected so typos do not silently fall back to defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/bloeys/learngl/logging"
	"github.com/pelletier/go-toml/v2"
)

const DefaultPath = "res/config.toml"

type Backend string

const (
	Backend_GLFW Backend = "glfw"
	Backend_SDL  Backend = "sdl"
)

func (b Backend) IsValid() bool {
	return b == Backend_GLFW || b == Backend_SDL
}

type Window struct {
	Title        string  `toml:"title"`
	Width        int32   `toml:"width"`
	Height       int32   `toml:"height"`
	Backend      Backend `toml:"backend"`
	VSync        bool    `toml:"vsync"`
	DebugContext bool    `toml:"debug_context"`
}

type Render struct {
	// Shader is the path of a combined '#shader vertex'/'#shader fragment' file
	Shader     string     `toml:"shader"`
	ClearColor [4]float32 `toml:"clear_color"`
}

type Config struct {
	Window Window `toml:"window"`
	Render Render `toml:"render"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:        "Learning OpenGL | Go",
			Width:        640,
			Height:       640,
			Backend:      Backend_GLFW,
			VSync:        true,
			DebugContext: true,
		},
		Render: Render{
			Shader:     "res/shaders/basic.shader",
			ClearColor: [4]float32{0, 0, 0, 1},
		},
	}
}

var (
	ErrInvalidBackend = errors.New("invalid window backend")
	ErrInvalidSize    = errors.New("window width and height must be positive")
	ErrNoShader       = errors.New("no shader path set")
)

func (c *Config) Validate() error {

	if !c.Window.Backend.IsValid() {
		return fmt.Errorf("%w '%s'. Expected '%s' or '%s'", ErrInvalidBackend, c.Window.Backend, Backend_GLFW, Backend_SDL)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w, got %dx%d", ErrInvalidSize, c.Window.Width, c.Window.Height)
	}

	if c.Render.Shader == "" {
		return ErrNoShader
	}

	return nil
}

// Parse reads a config from r. Fields missing from r keep their default values.
func Parse(r io.Reader) (Config, error) {

	cfg := Default()

	err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg)
	if err != nil {

		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return Config{}, fmt.Errorf("unknown config keys:\n%s", strictErr.String())
		}

		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return Config{}, fmt.Errorf("invalid config at line %d column %d: %w", row, col, err)
		}

		return Config{}, err
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads the config at path, or returns the defaults if there is no file there
func Load(path string) (Config, error) {

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.InfoLog.Printf("No config found at '%s', using defaults\n", path)
		return Default(), nil
	}

	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config '%s': %w", path, err)
	}

	return cfg, nil
}
