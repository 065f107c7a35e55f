package engine

import (
	"fmt"
	"time"

	"github.com/bloeys/learngl/driver"
	"github.com/bloeys/learngl/input"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var _ Window = &GLFWWindow{}

type GLFWWindow struct {
	GLFWWin *glfw.Window

	lastCursorX float64
	lastCursorY float64

	// GLFW doesn't report double clicks
	clicks input.ClickCounter

	drv driver.Driver
}

func (w *GLFWWindow) Driver() driver.Driver {
	return w.drv
}

func (w *GLFWWindow) ShouldClose() bool {
	return w.GLFWWin.ShouldClose() || input.IsQuitClicked()
}

func (w *GLFWWindow) SwapBuffers() {
	w.GLFWWin.SwapBuffers()
}

func (w *GLFWWindow) PollEvents() {
	input.EventLoopStart()
	glfw.PollEvents()
}

func (w *GLFWWindow) Size() (width, height int32) {
	fbWidth, fbHeight := w.GLFWWin.GetFramebufferSize()
	return int32(fbWidth), int32(fbHeight)
}

func (w *GLFWWindow) SetVSync(enabled bool) {

	if enabled {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (w *GLFWWindow) Destroy() error {
	w.GLFWWin.Destroy()
	glfw.Terminate()
	return nil
}

func initGLFW() error {

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	return nil
}

// CreateGLFWWindow creates a window with a 4.1 core, forward compatible context and makes it current
func CreateGLFWWindow(title string, width, height int32, vsync, debugCtx bool) (*GLFWWindow, error) {

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	if debugCtx {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	glfwWin, err := glfw.CreateWindow(int(width), int(height), title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWin.MakeContextCurrent()

	win := &GLFWWindow{GLFWWin: glfwWin}
	win.SetVSync(vsync)

	fbWidth, fbHeight := win.Size()
	win.drv, err = initOpenGL(fbWidth, fbHeight)
	if err != nil {
		glfwWin.Destroy()
		return nil, err
	}

	win.lastCursorX, win.lastCursorY = glfwWin.GetCursorPos()
	win.setCallbacks()

	return win, nil
}

func (w *GLFWWindow) setCallbacks() {

	w.GLFWWin.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		input.HandleKeyEvent(glfwKeyToKey(key), action != glfw.Release, action == glfw.Repeat)
	})

	w.GLFWWin.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		btn := glfwBtnToMouseBtn(button)

		clicks := 1
		if action == glfw.Press {
			clicks = w.clicks.Press(btn, time.Now())
		}

		input.HandleMouseBtnEvent(btn, action == glfw.Press, clicks)
	})

	w.GLFWWin.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		input.HandleMouseMotionEvent(int32(xpos), int32(ypos), int32(xpos-w.lastCursorX), int32(ypos-w.lastCursorY))
		w.lastCursorX, w.lastCursorY = xpos, ypos
	})

	w.GLFWWin.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		input.HandleMouseWheelEventFloat(xoff, yoff)
	})

	w.GLFWWin.SetCloseCallback(func(_ *glfw.Window) {
		input.HandleQuitEvent()
	})

	// Framebuffer size is in pixels, which is what the viewport wants even on high-DPI displays
	w.GLFWWin.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {

		if width <= 0 || height <= 0 {
			return
		}

		w.drv.Viewport(0, 0, int32(width), int32(height))
	})
}

func glfwKeyToKey(k glfw.Key) input.Key {

	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ,
		k >= glfw.Key0 && k <= glfw.Key9,
		k == glfw.KeySpace,
		k >= glfw.KeyEscape && k <= glfw.KeyBackspace,
		k >= glfw.KeyRight && k <= glfw.KeyUp:
		return input.Key(k)
	default:
		return input.Key_Unknown
	}
}

func glfwBtnToMouseBtn(btn glfw.MouseButton) input.MouseBtn {

	switch btn {
	case glfw.MouseButtonLeft:
		return input.MouseBtn_Left
	case glfw.MouseButtonMiddle:
		return input.MouseBtn_Middle
	case glfw.MouseButtonRight:
		return input.MouseBtn_Right
	default:
		return input.MouseBtn_Unknown
	}
}
