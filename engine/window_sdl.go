package engine

import (
	"github.com/bloeys/learngl/driver"
	"github.com/bloeys/learngl/input"
	"github.com/bloeys/learngl/logging"
	"github.com/veandco/go-sdl2/sdl"
)

type WindowFlags uint32

const (
	WindowFlags_FULLSCREEN         WindowFlags = sdl.WINDOW_FULLSCREEN
	WindowFlags_OPENGL             WindowFlags = sdl.WINDOW_OPENGL
	WindowFlags_SHOWN              WindowFlags = sdl.WINDOW_SHOWN
	WindowFlags_HIDDEN             WindowFlags = sdl.WINDOW_HIDDEN
	WindowFlags_BORDERLESS         WindowFlags = sdl.WINDOW_BORDERLESS
	WindowFlags_RESIZABLE          WindowFlags = sdl.WINDOW_RESIZABLE
	WindowFlags_MINIMIZED          WindowFlags = sdl.WINDOW_MINIMIZED
	WindowFlags_MAXIMIZED          WindowFlags = sdl.WINDOW_MAXIMIZED
	WindowFlags_INPUT_GRABBED      WindowFlags = sdl.WINDOW_INPUT_GRABBED
	WindowFlags_FULLSCREEN_DESKTOP WindowFlags = sdl.WINDOW_FULLSCREEN_DESKTOP
	WindowFlags_ALLOW_HIGHDPI      WindowFlags = sdl.WINDOW_ALLOW_HIGHDPI
)

var _ Window = &SDLWindow{}

type SDLWindow struct {
	SDLWin *sdl.Window
	GlCtx  sdl.GLContext

	drv driver.Driver
}

func (w *SDLWindow) Driver() driver.Driver {
	return w.drv
}

func (w *SDLWindow) ShouldClose() bool {
	return input.IsQuitClicked()
}

func (w *SDLWindow) SwapBuffers() {
	w.SDLWin.GLSwap()
}

func (w *SDLWindow) PollEvents() {
	w.handleInputs()
}

func (w *SDLWindow) handleInputs() {

	input.EventLoopStart()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {

		switch e := event.(type) {

		case *sdl.MouseWheelEvent:
			input.HandleMouseWheelEvent(e.X, e.Y)

		case *sdl.KeyboardEvent:
			input.HandleKeyEvent(sdlKeyToKey(e.Keysym.Sym), e.State == sdl.PRESSED, e.Repeat != 0)

		case *sdl.MouseButtonEvent:
			input.HandleMouseBtnEvent(sdlBtnToMouseBtn(e.Button), e.State == sdl.PRESSED, int(e.Clicks))

		case *sdl.MouseMotionEvent:
			input.HandleMouseMotionEvent(e.X, e.Y, e.XRel, e.YRel)

		case *sdl.WindowEvent:

			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w.handleWindowResize()
			}

		case *sdl.QuitEvent:
			input.HandleQuitEvent()
		}
	}
}

func (w *SDLWindow) handleWindowResize() {

	fbWidth, fbHeight := w.Size()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	w.drv.Viewport(0, 0, fbWidth, fbHeight)
}

func (w *SDLWindow) Size() (width, height int32) {
	return w.SDLWin.GLGetDrawableSize()
}

func (w *SDLWindow) SetVSync(enabled bool) {

	interval := 0
	if enabled {
		interval = 1
	}

	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logging.WarnLog.Printf("Failed to set swap interval to %d. Err: %s\n", interval, err)
	}
}

func (w *SDLWindow) Destroy() error {

	sdl.GLDeleteContext(w.GlCtx)
	err := w.SDLWin.Destroy()
	sdl.Quit()

	return err
}

func initSDL() error {

	err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	sdl.ShowCursor(1)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)

	sdl.GLSetAttribute(sdl.GL_RED_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	return nil
}

func CreateOpenGLWindowCentered(title string, width, height int32, flags WindowFlags, vsync, debugCtx bool) (*SDLWindow, error) {
	return createSDLWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, WindowFlags_OPENGL|flags, vsync, debugCtx)
}

func createSDLWindow(title string, x, y, width, height int32, flags WindowFlags, vsync, debugCtx bool) (*SDLWindow, error) {

	ctxFlags := int(sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if debugCtx {
		ctxFlags |= int(sdl.GL_CONTEXT_DEBUG_FLAG)
	}
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, ctxFlags)

	sdlWin, err := sdl.CreateWindow(title, x, y, width, height, uint32(flags))
	if err != nil {
		return nil, err
	}

	win := &SDLWindow{SDLWin: sdlWin}

	win.GlCtx, err = sdlWin.GLCreateContext()
	if err != nil {
		sdlWin.Destroy()
		return nil, err
	}

	win.SetVSync(vsync)

	fbWidth, fbHeight := win.Size()
	d, err := initOpenGL(fbWidth, fbHeight)
	if err != nil {
		win.Destroy()
		return nil, err
	}

	win.drv = d

	// Get rid of the blinding white startup screen
	d.Clear(driver.ClearMask_Color | driver.ClearMask_Depth | driver.ClearMask_Stencil)
	sdlWin.GLSwap()

	return win, nil
}

func sdlKeyToKey(k sdl.Keycode) input.Key {

	switch {
	case k >= sdl.K_a && k <= sdl.K_z:
		return input.Key(k - sdl.K_a + 'A')
	case k >= sdl.K_0 && k <= sdl.K_9:
		return input.Key(k)
	}

	switch k {
	case sdl.K_SPACE:
		return input.Key_Space
	case sdl.K_ESCAPE:
		return input.Key_Escape
	case sdl.K_RETURN:
		return input.Key_Enter
	case sdl.K_TAB:
		return input.Key_Tab
	case sdl.K_BACKSPACE:
		return input.Key_Backspace
	case sdl.K_RIGHT:
		return input.Key_Right
	case sdl.K_LEFT:
		return input.Key_Left
	case sdl.K_DOWN:
		return input.Key_Down
	case sdl.K_UP:
		return input.Key_Up
	default:
		return input.Key_Unknown
	}
}

func sdlBtnToMouseBtn(btn uint8) input.MouseBtn {

	switch btn {
	case sdl.BUTTON_LEFT:
		return input.MouseBtn_Left
	case sdl.BUTTON_MIDDLE:
		return input.MouseBtn_Middle
	case sdl.BUTTON_RIGHT:
		return input.MouseBtn_Right
	default:
		return input.MouseBtn_Unknown
	}
}
