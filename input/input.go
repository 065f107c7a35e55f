// The input package keeps track of keyboard, mouse and quit state, and provides higher level
// constructs like pressed/released this frame, double clicks and normalized motion.
//
// Window backends translate their native events into calls to the Handle* functions,
// so the rest of the program never deals with SDL or GLFW event types.
// EventLoopStart must be called once per frame before any events are handled.
package input

import (
	"math"
	"time"
)

// DoubleClickInterval is the longest gap between two presses of a button that still counts as a double click
const DoubleClickInterval = 500 * time.Millisecond

type Key int32

// Key values follow GLFW, where printable keys use their uppercase ASCII value
const (
	Key_Unknown Key = -1

	Key_Space Key = 32

	Key_0 Key = 48
	Key_1 Key = 49
	Key_2 Key = 50
	Key_3 Key = 51
	Key_4 Key = 52
	Key_5 Key = 53
	Key_6 Key = 54
	Key_7 Key = 55
	Key_8 Key = 56
	Key_9 Key = 57

	Key_A Key = 65
	Key_D Key = 68
	Key_R Key = 82
	Key_S Key = 83
	Key_V Key = 86
	Key_W Key = 87
	Key_Z Key = 90

	Key_Escape    Key = 256
	Key_Enter     Key = 257
	Key_Tab       Key = 258
	Key_Backspace Key = 259
	Key_Right     Key = 262
	Key_Left      Key = 263
	Key_Down      Key = 264
	Key_Up        Key = 265
)

type MouseBtn int32

const (
	MouseBtn_Unknown MouseBtn = iota
	MouseBtn_Left
	MouseBtn_Middle
	MouseBtn_Right
)

type keyState struct {
	Key                 Key
	IsDown              bool
	IsPressedThisFrame  bool
	IsReleasedThisFrame bool
}

type mouseBtnState struct {
	Btn    MouseBtn
	IsDown bool

	IsPressedThisFrame  bool
	IsReleasedThisFrame bool
	IsDoubleClicked     bool
}

type mouseMotionState struct {
	XDelta int32
	YDelta int32
	XPos   int32
	YPos   int32
}

type mouseWheelState struct {
	XDelta int32
	YDelta int32
}

var (
	mouseWheel  = mouseWheelState{}
	mouseMotion = mouseMotionState{}
	mouseBtnMap = make(map[MouseBtn]mouseBtnState)
	keyMap      = make(map[Key]keyState)

	isQuitRequested bool
)

func EventLoopStart() {

	// Update per-frame state
	for k, v := range keyMap {
		v.IsPressedThisFrame = false
		v.IsReleasedThisFrame = false
		keyMap[k] = v
	}

	for k, v := range mouseBtnMap {
		v.IsPressedThisFrame = false
		v.IsReleasedThisFrame = false
		v.IsDoubleClicked = false
		mouseBtnMap[k] = v
	}

	mouseMotion.XDelta = 0
	mouseMotion.YDelta = 0

	mouseWheel.XDelta = 0
	mouseWheel.YDelta = 0

	isQuitRequested = false
}

func ClearKeyboardState() {
	clear(keyMap)
}

func ClearMouseState() {
	clear(mouseBtnMap)
	mouseMotion = mouseMotionState{}
	mouseWheel = mouseWheelState{}
}

func HandleQuitEvent() {
	isQuitRequested = true
}

func IsQuitClicked() bool {
	return isQuitRequested
}

// HandleKeyEvent records a key going down or up. Repeats generated by holding
// a key do not count as a press this frame.
func HandleKeyEvent(key Key, isDown, isRepeat bool) {

	if key == Key_Unknown {
		return
	}

	ks, ok := keyMap[key]
	if !ok {
		ks = keyState{Key: key}
	}

	ks.IsDown = isDown
	ks.IsPressedThisFrame = isDown && !isRepeat
	ks.IsReleasedThisFrame = !isDown && !isRepeat

	keyMap[ks.Key] = ks
}

func HandleMouseBtnEvent(btn MouseBtn, isDown bool, clicks int) {

	if btn == MouseBtn_Unknown {
		return
	}

	mb, ok := mouseBtnMap[btn]
	if !ok {
		mb = mouseBtnState{Btn: btn}
	}

	mb.IsDown = isDown
	mb.IsDoubleClicked = clicks == 2 && isDown
	mb.IsPressedThisFrame = isDown
	mb.IsReleasedThisFrame = !isDown

	mouseBtnMap[btn] = mb
}

func HandleMouseMotionEvent(x, y, xRel, yRel int32) {

	mouseMotion.XPos = x
	mouseMotion.YPos = y

	mouseMotion.XDelta = xRel
	mouseMotion.YDelta = yRel
}

func HandleMouseWheelEvent(x, y int32) {
	mouseWheel.XDelta = x
	mouseWheel.YDelta = y
}

// HandleMouseWheelEventFloat is for backends that report fractional offsets, like trackpads and
// high resolution wheels. Offsets are rounded away from zero so that small scrolls still register.
func HandleMouseWheelEventFloat(x, y float64) {
	HandleMouseWheelEvent(wheelSteps(x), wheelSteps(y))
}

func wheelSteps(off float64) int32 {

	if off > 0 {
		return int32(math.Ceil(off))
	}

	return int32(math.Floor(off))
}

// ClickCounter counts consecutive presses of the same button, for backends that don't report
// click counts themselves. The zero value is ready to use.
type ClickCounter struct {
	lastBtn   MouseBtn
	lastPress time.Time
	clicks    int
}

// Press records a press of btn at now and returns the click count to pass to HandleMouseBtnEvent
func (c *ClickCounter) Press(btn MouseBtn, now time.Time) int {

	if c.clicks > 0 && btn == c.lastBtn && now.Sub(c.lastPress) <= DoubleClickInterval {
		c.clicks++
	} else {
		c.clicks = 1
	}

	c.lastBtn = btn
	c.lastPress = now
	return c.clicks
}

// GetMousePos returns the window coordinates of the mouse
func GetMousePos() (x, y int32) {
	return mouseMotion.XPos, mouseMotion.YPos
}

// GetMouseMotion returns how many pixels were moved last frame
func GetMouseMotion() (xDelta, yDelta int32) {
	return mouseMotion.XDelta, mouseMotion.YDelta
}

// GetMouseMotionNorm returns the sign of the mouse motion, with y flipped so that moving up is positive
func GetMouseMotionNorm() (xDelta, yDelta int32) {

	x, y := mouseMotion.XDelta, mouseMotion.YDelta
	if x > 0 {
		x = 1
	} else if x < 0 {
		x = -1
	}

	if y > 0 {
		y = -1
	} else if y < 0 {
		y = 1
	}

	return x, y
}

func GetMouseWheelMotion() (xDelta, yDelta int32) {
	return mouseWheel.XDelta, mouseWheel.YDelta
}

// GetMouseWheelXNorm returns 1 if mouse wheel xDelta > 0, -1 if xDelta < 0, and 0 otherwise
func GetMouseWheelXNorm() int32 {

	if mouseWheel.XDelta > 0 {
		return 1
	} else if mouseWheel.XDelta < 0 {
		return -1
	}

	return 0
}

// GetMouseWheelYNorm returns 1 if mouse wheel yDelta > 0, -1 if yDelta < 0, and 0 otherwise
func GetMouseWheelYNorm() int32 {

	if mouseWheel.YDelta > 0 {
		return 1
	} else if mouseWheel.YDelta < 0 {
		return -1
	}

	return 0
}

func KeyClicked(k Key) bool {

	ks, ok := keyMap[k]
	if !ok {
		return false
	}

	return ks.IsPressedThisFrame
}

func KeyReleased(k Key) bool {

	ks, ok := keyMap[k]
	if !ok {
		return false
	}

	return ks.IsReleasedThisFrame
}

func KeyDown(k Key) bool {

	ks, ok := keyMap[k]
	if !ok {
		return false
	}

	return ks.IsDown
}

func KeyUp(k Key) bool {

	ks, ok := keyMap[k]
	if !ok {
		return true
	}

	return !ks.IsDown
}

func MouseClicked(mb MouseBtn) bool {

	btn, ok := mouseBtnMap[mb]
	if !ok {
		return false
	}

	return btn.IsPressedThisFrame
}

func MouseDoubleClicked(mb MouseBtn) bool {

	btn, ok := mouseBtnMap[mb]
	if !ok {
		return false
	}

	return btn.IsDoubleClicked
}

func MouseReleased(mb MouseBtn) bool {

	btn, ok := mouseBtnMap[mb]
	if !ok {
		return false
	}

	return btn.IsReleasedThisFrame
}

func MouseDown(mb MouseBtn) bool {

	btn, ok := mouseBtnMap[mb]
	if !ok {
		return false
	}

	return btn.IsDown
}

func MouseUp(mb MouseBtn) bool {

	btn, ok := mouseBtnMap[mb]
	if !ok {
		return true
	}

	return !btn.IsDown
}
