// Command demo draws a grid of lit meshes with a moving point light, a
// flashlight following the camera and a yellow directional light. WASD
// moves, the mouse turns, Escape quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"vgfx/app"
	"vgfx/core"
)

func main() {
	var (
		configPath = flag.String("config", "assets/vgfx.yaml", "config file, YAML or TOML")
		shaderDir  = flag.String("shaders", "assets/shaders", "directory holding shader.vert, shader.frag and light.frag")
		gridMesh   = flag.String("grid-mesh", "", "mesh drawn in the grid (.obj, .gltf, .glb); a sphere when empty")
		lampMesh   = flag.String("lamp-mesh", "", "mesh marking the moving light; a cube when empty")
	)
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		slog.Error("demo: config", "err", err)
		os.Exit(1)
	}
	app.UseTextLogger(cfg)

	if err := run(cfg, *shaderDir, *gridMesh, *lampMesh); err != nil {
		slog.Error("demo", "err", err)
		os.Exit(1)
	}
}

func run(cfg core.Config, shaderDir, gridMesh, lampMesh string) error {
	a, err := app.Open(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	vert := filepath.Join(shaderDir, "shader.vert")
	lightShader, err := a.LoadShader(vert, filepath.Join(shaderDir, "light.frag"))
	if err != nil {
		return err
	}
	defaultShader, err := a.LoadShader(vert, filepath.Join(shaderDir, "shader.frag"))
	if err != nil {
		return err
	}

	w, err := newWorld(a.Context, gridMesh, lampMesh, defaultShader, lightShader)
	if err != nil {
		return err
	}
	a.Camera().SetPosition(gridCenter.Add(cameraOffset))

	for !a.ShouldClose() {
		if err := w.updateLights(a.Context); err != nil {
			return err
		}
		a.Window.SetTitle(fmt.Sprintf("FPS: %d (%.6f)", int(a.FPS()), a.DeltaTime()))

		if err := a.BeginFrame(); err != nil {
			return err
		}
		handleInput(a)
		if err := w.draw(a.Context); err != nil {
			return err
		}
		if err := a.EndFrame(); err != nil {
			return err
		}
	}
	return nil
}

const mouseSensitivity = 0.003

func handleInput(a *app.App) {
	cam := a.Camera()
	dt := float32(a.DeltaTime())
	forward := cam.GetForward().Mul(dt)
	right := cam.GetRight().Mul(dt)

	if a.Window.KeyDown(core.KeyW) {
		cam.Translate(forward)
	}
	if a.Window.KeyDown(core.KeyS) {
		cam.Translate(forward.Mul(-1))
	}
	if a.Window.KeyDown(core.KeyD) {
		cam.Translate(right)
	}
	if a.Window.KeyDown(core.KeyA) {
		cam.Translate(right.Mul(-1))
	}
	if a.Window.KeyPressed(core.KeySpace) {
		slog.Info("jump!")
	}

	cam.AddYaw(-a.Window.MouseDelta().X() * mouseSensitivity)
}
