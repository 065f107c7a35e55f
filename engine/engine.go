package engine

import (
	"fmt"
	"runtime"

	"github.com/bloeys/learngl/assert"
	"github.com/bloeys/learngl/config"
	"github.com/bloeys/learngl/driver"
	"github.com/bloeys/learngl/driver/gl41"
	"github.com/bloeys/learngl/logging"
)

var (
	initedBackend config.Backend
)

// Window is an OS window with a current OpenGL 4.1 core context
type Window interface {
	// Driver returns the driver bound to this window's context
	Driver() driver.Driver

	// ShouldClose is true once the user asked to close the window
	ShouldClose() bool
	SwapBuffers()
	// PollEvents starts a new input frame and feeds pending window events to the input package
	PollEvents()

	// Size returns the framebuffer size in pixels, which can differ from the window size on high-DPI displays
	Size() (width, height int32)
	SetVSync(enabled bool)

	Destroy() error
}

// Init prepares the given window backend. It must be called from the main goroutine
// before any window is created, and locks it to the current OS thread.
func Init(backend config.Backend) error {

	runtime.LockOSThread()

	var err error
	switch backend {
	case config.Backend_SDL:
		err = initSDL()
	case config.Backend_GLFW:
		err = initGLFW()
	default:
		return fmt.Errorf("unknown window backend '%s'", backend)
	}

	if err != nil {
		return err
	}

	initedBackend = backend
	return nil
}

// CreateWindow creates a centered window on the backend set in cfg, which must already be initialized by Init
func CreateWindow(cfg config.Window) (Window, error) {

	assert.T(initedBackend == cfg.Backend, "engine.Init(%s) was not called!", cfg.Backend)

	switch cfg.Backend {
	case config.Backend_SDL:
		return CreateOpenGLWindowCentered(cfg.Title, cfg.Width, cfg.Height, WindowFlags_RESIZABLE|WindowFlags_ALLOW_HIGHDPI, cfg.VSync, cfg.DebugContext)
	case config.Backend_GLFW:
		return CreateGLFWWindow(cfg.Title, cfg.Width, cfg.Height, cfg.VSync, cfg.DebugContext)
	default:
		return nil, fmt.Errorf("unknown window backend '%s'", cfg.Backend)
	}
}

// initOpenGL loads OpenGL for the context that was just made current
func initOpenGL(fbWidth, fbHeight int32) (*gl41.GL, error) {

	d, err := gl41.New()
	if err != nil {
		return nil, err
	}

	logging.InfoLog.Printf("OpenGL Version: %s (%s)\n", d.GetString(driver.StringName_Version), d.GetString(driver.StringName_Renderer))

	d.Viewport(0, 0, fbWidth, fbHeight)
	d.ClearColor(0, 0, 0, 1)

	return d, nil
}
