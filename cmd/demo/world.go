package main

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"vgfx/core"
	"vgfx/renderer"
	"vgfx/scene"
)

const gridSide = 10

var (
	gridCenter   = mgl32.Vec3{(gridSide - 1) / 2.0, 0, (gridSide - 1) / 2.0}
	cameraOffset = mgl32.Vec3{0, 1.5, 8}
)

// object is one placed model instance.
type object struct {
	model renderer.ModelHandle
	pos   mgl32.Vec3
	rot   mgl32.Vec3
	scale mgl32.Vec3
}

func (o object) draw(ctx *renderer.Context) error {
	return ctx.DrawAt(o.model, o.pos, o.rot, o.scale)
}

type world struct {
	grid []object
	lamp object

	sun   renderer.LightHandle
	flash renderer.LightHandle
}

func newWorld(ctx *renderer.Context, gridMesh, lampMesh string, gridShader, lampShader renderer.ShaderHandle) (*world, error) {
	gridModel, err := loadOr(ctx, gridMesh, scene.CreateSphere(0.8, 24, 16), gridShader)
	if err != nil {
		return nil, err
	}
	lampModel, err := loadOr(ctx, lampMesh, scene.CreateCube(2), lampShader)
	if err != nil {
		return nil, err
	}

	w := &world{
		lamp: object{model: lampModel, rot: mgl32.Vec3{5, 5, 5}, scale: mgl32.Vec3{0.1, 0.1, 0.1}},
	}
	for i := 0; i < gridSide*gridSide; i++ {
		w.grid = append(w.grid, object{
			model: gridModel,
			pos:   mgl32.Vec3{float32(i % gridSide), 0, float32(i / gridSide)},
			scale: mgl32.Vec3{0.5, 0.5, 0.5},
		})
	}

	if w.flash, err = ctx.CreateFlashLight(); err != nil {
		return nil, err
	}
	direct, err := ctx.CreateDirectLight()
	if err != nil {
		return nil, err
	}
	err = ctx.SetDirectLight(direct, scene.DirectLight{
		Direction: mgl32.Vec3{0, 1, 0},
		Color:     core.ColorYellow.RGB(),
	})
	if err != nil {
		return nil, err
	}
	if w.sun, err = ctx.CreatePointLight(); err != nil {
		return nil, err
	}
	return w, nil
}

// loadOr loads path, or uploads fallback when path is empty.
func loadOr(ctx *renderer.Context, path string, fallback core.MeshData, sh renderer.ShaderHandle) (renderer.ModelHandle, error) {
	if path == "" {
		return ctx.LoadModelData(fallback, 0, sh)
	}
	return ctx.LoadModel(path, 0, sh)
}

// updateLights swings the point light and its lamp over the origin and
// points the flashlight where the camera looks.
func (w *world) updateLights(ctx *renderer.Context) error {
	t := float32(ctx.Time())
	pos := mgl32.Vec3{math32.Abs(math32.Sin(t)), math32.Abs(math32.Cos(t)), 0}
	w.lamp.pos = pos

	if err := ctx.SetPointLight(w.sun, scene.PointLight{Position: pos, Color: pos}); err != nil {
		return err
	}
	if err := ctx.SetColor(w.lamp.model, pos); err != nil {
		return err
	}

	cam := ctx.Camera()
	return ctx.SetFlashLight(w.flash, scene.FlashLight{
		Position:  cam.Position,
		Direction: cam.GetForward(),
		Color:     core.ColorBlue.RGB(),
		Angle:     math32.Pi / 12,
		Cutoff:    math32.Pi / 12,
	})
}

func (w *world) draw(ctx *renderer.Context) error {
	for _, o := range w.grid {
		if err := o.draw(ctx); err != nil {
			return err
		}
	}
	return w.lamp.draw(ctx)
}
