package engine

import (
	"testing"

	"github.com/bloeys/learngl/input"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

// Both backends must agree on key and button values
func TestKeyTranslation(t *testing.T) {

	tests := []struct {
		sdlKey  sdl.Keycode
		glfwKey glfw.Key
		want    input.Key
	}{
		{sdl.K_r, glfw.KeyR, input.Key_R},
		{sdl.K_v, glfw.KeyV, input.Key_V},
		{sdl.K_0, glfw.Key0, input.Key_0},
		{sdl.K_SPACE, glfw.KeySpace, input.Key_Space},
		{sdl.K_ESCAPE, glfw.KeyEscape, input.Key_Escape},
		{sdl.K_RETURN, glfw.KeyEnter, input.Key_Enter},
		{sdl.K_UP, glfw.KeyUp, input.Key_Up},
		{sdl.K_F1, glfw.KeyF1, input.Key_Unknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sdlKeyToKey(tt.sdlKey))
		assert.Equal(t, tt.want, glfwKeyToKey(tt.glfwKey))
	}
}

func TestMouseBtnTranslation(t *testing.T) {

	assert.Equal(t, input.MouseBtn_Left, sdlBtnToMouseBtn(sdl.BUTTON_LEFT))
	assert.Equal(t, input.MouseBtn_Middle, sdlBtnToMouseBtn(sdl.BUTTON_MIDDLE))
	assert.Equal(t, input.MouseBtn_Right, sdlBtnToMouseBtn(sdl.BUTTON_RIGHT))
	assert.Equal(t, input.MouseBtn_Unknown, sdlBtnToMouseBtn(sdl.BUTTON_X1))

	assert.Equal(t, input.MouseBtn_Left, glfwBtnToMouseBtn(glfw.MouseButtonLeft))
	assert.Equal(t, input.MouseBtn_Middle, glfwBtnToMouseBtn(glfw.MouseButtonMiddle))
	assert.Equal(t, input.MouseBtn_Right, glfwBtnToMouseBtn(glfw.MouseButtonRight))
	assert.Equal(t, input.MouseBtn_Unknown, glfwBtnToMouseBtn(glfw.MouseButton4))
}
