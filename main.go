package main

import (
	"flag"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/learngl/buffers"
	"github.com/bloeys/learngl/config"
	"github.com/bloeys/learngl/driver"
	"github.com/bloeys/learngl/engine"
	"github.com/bloeys/learngl/input"
	"github.com/bloeys/learngl/logging"
	"github.com/bloeys/learngl/materials"
	"github.com/bloeys/learngl/renderer/rend3dgl"
)

const (
	defaultColorStep = 0.05
	minColorStep     = 0.005
	maxColorStep     = 0.25
)

var (
	configPath = flag.String("config", config.DefaultPath, "path of the TOML config file")

	quadPositions = []float32{
		-0.5, -0.5,
		0.5, -0.5,
		0.5, 0.5,
		-0.5, 0.5,
	}

	quadIndices = []uint32{
		0, 1, 2,
		2, 3, 0,
	}
)

type Game struct {
	Cfg  config.Config
	Win  engine.Window
	Drv  driver.Driver
	Rend *rend3dgl.Rend3DGL

	QuadVbo *buffers.VertexBuffer
	QuadIbo *buffers.IndexBuffer
	QuadVao *buffers.VertexArray
	QuadMat materials.Material

	Color          gglm.Vec4
	ColorStep      float32
	ColorIncrement float32

	VSync      bool
	QuitCalled bool
}

func main() {

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load config. Err:", err)
	}

	//Init engine
	err = engine.Init(cfg.Window.Backend)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init window backend. Err:", err)
	}

	//Create window
	win, err := engine.CreateWindow(cfg.Window)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err:", err)
	}
	defer win.Destroy()

	game := &Game{
		Cfg:   cfg,
		Win:   win,
		Drv:   win.Driver(),
		Rend:  rend3dgl.NewRend3DGL(win.Driver()),
		VSync: cfg.Window.VSync,
	}

	game.Init()
	for !game.QuitCalled && !win.ShouldClose() {

		win.PollEvents()

		game.Update()
		game.Render()
		win.SwapBuffers()

		game.FrameEnd()
	}
	game.DeInit()
}

func (g *Game) Init() {

	g.QuadVbo = buffers.NewVertexBufferF32(g.Drv, quadPositions, buffers.Element{ElementType: buffers.DataTypeVec2})
	g.QuadIbo = buffers.NewIndexBuffer(g.Drv, quadIndices)

	g.QuadVao = buffers.NewVertexArray(g.Drv)
	g.QuadVao.AddVertexBuffer(g.QuadVbo)
	g.QuadVao.SetIndexBuffer(g.QuadIbo)

	var err error
	g.QuadMat, err = materials.NewMaterial(g.Drv, "basic", g.Cfg.Render.Shader)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load the quad shader. Err:", err)
	}

	g.Color = gglm.NewVec4(0, 0.7, 0.8, 1)
	g.ColorStep = defaultColorStep
	g.ColorIncrement = defaultColorStep

	if err := g.Rend.Err(); err != nil {
		logging.ErrLog.Fatalln("Failed to set up the quad. Err:", err)
	}
}

func (g *Game) Update() {

	if input.KeyClicked(input.Key_Escape) {
		g.QuitCalled = true
	}

	if input.KeyClicked(input.Key_R) {
		g.reloadShader()
	}

	if input.KeyClicked(input.Key_V) {
		g.VSync = !g.VSync
		g.Win.SetVSync(g.VSync)
		logging.InfoLog.Println("VSync:", g.VSync)
	}

	if wheel := input.GetMouseWheelYNorm(); wheel != 0 {
		g.ColorStep = scaleColorStep(g.ColorStep, wheel)
	}

	g.Color.Data[0], g.ColorIncrement = pulse(g.Color.Data[0], g.ColorIncrement, g.ColorStep)
}

// reloadShader rebuilds the quad material from disk. On failure the current one is kept.
func (g *Game) reloadShader() {

	newMat, err := materials.NewMaterial(g.Drv, "basic", g.Cfg.Render.Shader)
	if err != nil {
		logging.WarnLog.Println("Shader reload failed, keeping the current shader")
		return
	}

	g.QuadMat.Delete()
	g.QuadMat = newMat

	// The deleted program might still be remembered as bound
	g.Rend.FrameEnd()
	logging.InfoLog.Println("Reloaded shader", g.Cfg.Render.Shader)
}

func (g *Game) Render() {

	cc := &g.Cfg.Render.ClearColor
	g.Rend.Clear(cc[0], cc[1], cc[2], cc[3])

	if g.QuadMat.HasUnif("u_Color") {
		g.QuadMat.SetUnifVec4("u_Color", &g.Color)
	}

	g.Rend.DrawIndexed(g.QuadMat, g.QuadVao)

	if err := g.Rend.Err(); err != nil {
		logging.ErrLog.Println("Render error:", err)
	}
}

func (g *Game) FrameEnd() {
	g.Rend.FrameEnd()
}

func (g *Game) DeInit() {
	g.QuadMat.Delete()
	g.QuadVao.Delete()
	g.QuadVbo.Delete()
	g.QuadIbo.Delete()
}

// pulse moves v by inc, bouncing between 0 and 1. The returned increment is the one to use next frame.
func pulse(v, inc, step float32) (newV, newInc float32) {

	if v > 1 {
		inc = -step
	} else if v < 0 {
		inc = step
	} else if inc < 0 {
		inc = -step
	} else {
		inc = step
	}

	return v + inc, inc
}

func scaleColorStep(step float32, wheelDir int32) float32 {

	if wheelDir > 0 {
		step *= 1.25
	} else if wheelDir < 0 {
		step /= 1.25
	}

	return min(max(step, minColorStep), maxColorStep)
}
