package materials

import (
	"bytes"
	"io"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/learngl/driver"
	"github.com/bloeys/learngl/driver/drivertest"
	"github.com/bloeys/learngl/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uniformsShader = `#shader vertex
#version 410 core
layout(location = 0) in vec4 position;
uniform mat4 u_MVP;
uniform vec2 u_Offset;
void main()
{
    gl_Position = u_MVP * position + vec4(u_Offset, 0, 0);
}
#shader fragment
#version 410 core
layout(location = 0) out vec4 color;
uniform vec4 u_Color;
uniform vec3 u_Tint;
uniform float u_Alpha;
uniform int u_Mode;
void main()
{
    color = u_Color;
}
`

func newTestMaterial(t *testing.T) (*drivertest.Fake, Material) {

	d := drivertest.NewFake()
	mat, err := NewMaterialSrc(d, "test", []byte(uniformsShader))
	require.NoError(t, err)
	require.NotNil(t, mat.ShaderProg)

	return d, mat
}

func TestNewMaterial(t *testing.T) {

	_, mat1 := newTestMaterial(t)
	_, mat2 := newTestMaterial(t)

	assert.Equal(t, "test", mat1.Name)
	assert.NotZero(t, mat1.Id)
	assert.NotEqual(t, mat1.Id, mat2.Id)
}

func TestNewMaterialFailure(t *testing.T) {

	buf := &bytes.Buffer{}
	logging.SetOutput(buf)
	t.Cleanup(logging.ResetOutput)

	d := drivertest.NewFake()
	mat, err := NewMaterialSrc(d, "broken", []byte("#shader vertex\ninvalid_token\n#shader fragment\nvoid main() {}\n"))
	require.Error(t, err)
	assert.Nil(t, mat.ShaderProg)
	assert.Contains(t, buf.String(), "Failed to create new material 'broken'")

	_, err = NewMaterial(d, "missing", "does/not/exist.shader")
	assert.Error(t, err)
}

func TestGetUnifLocCaches(t *testing.T) {

	d, mat := newTestMaterial(t)

	loc := mat.GetUnifLoc("u_Color")
	assert.NotEqual(t, int32(-1), loc)
	assert.Equal(t, loc, mat.GetUnifLoc("u_Color"))
	assert.Equal(t, loc, mat.GetUnifLoc("u_Color"))
	assert.Equal(t, 1, d.CallCount("GetUniformLocation"))

	assert.True(t, mat.HasUnif("u_Tint"))
	assert.False(t, mat.HasUnif("u_Nope"))
	assert.Panics(t, func() { mat.GetUnifLoc("u_Nope") })
}

func TestHasUnifCachesMisses(t *testing.T) {

	logging.SetOutput(io.Discard)
	t.Cleanup(logging.ResetOutput)

	d, mat := newTestMaterial(t)

	for i := 0; i < 5; i++ {
		assert.False(t, mat.HasUnif("u_Nope"))
	}
	assert.Equal(t, 1, d.CallCount("GetUniformLocation"))

	// A cached miss is still an error when asked for directly
	assert.Panics(t, func() { mat.GetUnifLoc("u_Nope") })
	assert.Equal(t, 1, d.CallCount("GetUniformLocation"))
}

func TestGetUnifLocMessageKeepsName(t *testing.T) {

	buf := &bytes.Buffer{}
	logging.SetOutput(buf)
	t.Cleanup(logging.ResetOutput)

	_, mat := newTestMaterial(t)

	assert.PanicsWithValue(t, "Assert failed: Uniform 'u_100%d' doesn't exist on material test", func() { mat.GetUnifLoc("u_100%d") })
	assert.Contains(t, buf.String(), "Uniform 'u_100%d' doesn't exist on material test")
}

func TestSetUniforms(t *testing.T) {

	d, mat := newTestMaterial(t)

	color := gglm.NewVec4(0.2, 0.7, 0.8, 1)
	tint := gglm.NewVec3(1, 0.5, 0.25)
	offset := gglm.NewVec2(0.1, -0.1)
	mvp := gglm.Mat4{Data: [4][4]float32{
		{1, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 3, 0},
		{0, 0, 0, 1},
	}}

	mat.SetUnifVec4("u_Color", &color)
	mat.SetUnifVec3("u_Tint", &tint)
	mat.SetUnifVec2("u_Offset", &offset)
	mat.SetUnifMat4("u_MVP", &mvp)
	mat.SetUnifFloat32("u_Alpha", 0.5)
	mat.SetUnifInt32("u_Mode", 3)
	require.Equal(t, driver.NoError, d.GetError())

	// Setters do not depend on the bound program
	assert.Zero(t, d.CurrentProgram)

	vals := d.Programs[mat.ShaderProg.Id].UniformVals
	assert.Equal(t, [4]float32{0.2, 0.7, 0.8, 1}, vals[mat.GetUnifLoc("u_Color")])
	assert.Equal(t, [3]float32{1, 0.5, 0.25}, vals[mat.GetUnifLoc("u_Tint")])
	assert.Equal(t, [2]float32{0.1, -0.1}, vals[mat.GetUnifLoc("u_Offset")])
	assert.Equal(t, mvp.Data, vals[mat.GetUnifLoc("u_MVP")])
	assert.Equal(t, float32(0.5), vals[mat.GetUnifLoc("u_Alpha")])
	assert.Equal(t, int32(3), vals[mat.GetUnifLoc("u_Mode")])
}

func TestMaterialBindAndDelete(t *testing.T) {

	d, mat := newTestMaterial(t)
	progId := mat.ShaderProg.Id

	mat.Bind()
	assert.Equal(t, progId, d.CurrentProgram)

	mat.UnBind()
	assert.Zero(t, d.CurrentProgram)

	// Copies share the same program so deleting through either frees it once
	matCopy := mat
	mat.Delete()
	matCopy.Delete()
	assert.Equal(t, 1, d.CallCount("DeleteProgram"))
	assert.True(t, d.Programs[progId].Deleted)
	assert.Equal(t, driver.NoError, d.GetError())
}
