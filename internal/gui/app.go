// Package gui is the interactive raylib frontend: the arena window, pause
// and reset controls, click-to-spawn, and a parameter tuning screen.
package gui

import (
	"fmt"
	"os"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/splitsim/internal/engine"
)

// Theme colors
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColBoundry = rl.NewColor(255, 255, 255, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

type App struct {
	World *engine.World

	Running  bool
	InConfig bool

	Params    map[string]float64
	ParamKeys []string
	ParamSel  int

	titleTimer float32
}

func initWindow() {
	rl.InitWindow(engine.DefaultWidth, engine.DefaultHeight, "splitsim")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(w *engine.World) *App {
	app := &App{
		World:   w,
		Running: true,
	}
	app.reloadParams()
	return app
}

func (a *App) reloadParams() {
	a.Params = a.World.GetParams()
	a.ParamKeys = make([]string, 0, len(a.Params))
	for k := range a.Params {
		a.ParamKeys = append(a.ParamKeys, k)
	}
	sort.Strings(a.ParamKeys)
	if a.ParamSel >= len(a.ParamKeys) {
		a.ParamSel = 0
	}
}

// Run opens the window and blocks in the update-draw loop until the window
// closes or the user quits.
func Run(w *engine.World) {
	initWindow()
	defer rl.CloseWindow()

	app := NewApp(w)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		os.Exit(0)
	}

	if a.InConfig {
		a.updateConfig()
		return
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.World.Reset()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.InConfig = true
		a.Running = false
		a.reloadParams()
		return
	}

	var spawns []engine.SpawnCommand
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		spawns = append(spawns, engine.SpawnCommand{X: float64(pos.X), Y: float64(pos.Y)})
	}

	if a.Running || len(spawns) > 0 {
		a.World.Step(spawns)
	}

	// Window title carries FPS and the live ball count, refreshed once per
	// second to avoid thrashing the window manager.
	a.titleTimer += rl.GetFrameTime()
	if a.titleTimer >= 1.0 {
		a.titleTimer = 0
		rl.SetWindowTitle(fmt.Sprintf("splitsim - FPS: %d - Balls: %d",
			int(rl.GetFPS()), a.World.Count()))
	}
}

func (a *App) updateConfig() {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyC) {
		a.InConfig = false
		a.Running = true
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		for k, v := range a.Params {
			if err := a.World.SetParam(k, v); err != nil {
				// Out-of-bounds edits revert to the live value.
				a.Params[k] = a.World.GetParams()[k]
			}
		}
		a.InConfig = false
		a.Running = true
		return
	}

	if len(a.ParamKeys) == 0 {
		return
	}

	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.ParamSel = (a.ParamSel + 1) % len(a.ParamKeys)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.ParamSel--
		if a.ParamSel < 0 {
			a.ParamSel = len(a.ParamKeys) - 1
		}
	}

	key := a.ParamKeys[a.ParamSel]
	step := 0.1
	if rl.IsKeyDown(rl.KeyLeftShift) {
		step = 1.0
	}

	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL) {
		a.Params[key] += step
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH) {
		a.Params[key] -= step
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.InConfig {
		a.drawConfig()
	} else {
		a.drawSim()
		a.drawHUD()
	}

	rl.EndDrawing()
}

func (a *App) drawConfig() {
	rl.DrawText("splitsim", 50, 40, 40, ColTextDim)
	rl.DrawText("configure", 230, 55, 20, ColSelect)

	y := int32(130)
	for i, key := range a.ParamKeys {
		val := a.Params[key]
		if i == a.ParamSel {
			rl.DrawText(fmt.Sprintf("> %-12s %.2f", key, val), 50, y, 20, ColSelect)
		} else {
			rl.DrawText(fmt.Sprintf("  %-12s %.2f", key, val), 50, y, 20, ColText)
		}
		y += 28
	}

	rl.DrawText("ARROWS: ADJUST  ENTER: APPLY  ESC: BACK", 420, 570, 14, ColTextDim)
}

func (a *App) drawHUD() {
	rl.DrawText("splitsim", 20, 20, 24, ColSelect)

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	rl.DrawText(status, 710, 20, 16, col)

	rl.DrawText(fmt.Sprintf("balls  %d", a.World.Count()), 20, 54, 16, ColText)
	rl.DrawText(fmt.Sprintf("splits %d", a.World.TotalSplits()), 20, 74, 16, ColText)
	rl.DrawText(fmt.Sprintf("tick   %d", a.World.Tick()), 20, 94, 16, ColText)

	rl.DrawText("[CLICK] SPAWN  [SPACE] PAUSE  [R] RESET  [C] CONFIG  [Q] QUIT", 160, 570, 14, ColTextDim)
}
