package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"vgfx/arena"
	"vgfx/core"
	remath "vgfx/math"
	"vgfx/scene"
)

// LoadModel reads a mesh file (.obj, .gltf or .glb) and uploads it. tex 0
// draws with the default texture; shader 0 uses the built-in lit shader.
func (c *Context) LoadModel(path string, tex TextureHandle, sh ShaderHandle) (ModelHandle, error) {
	if err := c.checkOpen(); err != nil {
		return 0, err
	}
	mesh, err := scene.LoadMesh(path)
	if err != nil {
		return 0, err
	}
	h, err := c.LoadModelData(mesh, tex, sh)
	if err != nil {
		return 0, fmt.Errorf("load model %q: %w", path, err)
	}
	return h, nil
}

// LoadModelData uploads in-memory geometry as a model tinted white.
func (c *Context) LoadModelData(mesh core.MeshData, tex TextureHandle, sh ShaderHandle) (ModelHandle, error) {
	if err := c.checkOpen(); err != nil {
		return 0, err
	}
	if tex != 0 && !c.textures.Valid(arena.Handle(tex)) {
		return 0, handleErr("texture", arena.Handle(tex), arena.ErrInvalidHandle)
	}
	if sh == 0 {
		var err error
		if sh, err = c.builtinShader(&c.litShader, "lit", litVertexSrc, litFragmentSrc); err != nil {
			return 0, err
		}
	} else if !c.shaders.Valid(arena.Handle(sh)) {
		return 0, handleErr("shader", arena.Handle(sh), arena.ErrInvalidHandle)
	}
	if err := scene.Validate(mesh); err != nil {
		return 0, err
	}

	// Upload before bumping so a failed upload does not burn a handle.
	vao, err := c.dev.UploadMesh(mesh)
	if err != nil {
		return 0, fmt.Errorf("upload mesh %q: %w", mesh.Name, err)
	}
	h, err := c.models.Bump()
	if err != nil {
		c.dev.DeleteMesh(vao)
		return 0, err
	}
	err = c.models.Set(h, model{
		vertexArray: vao,
		indexCount:  int32(len(mesh.Indices)),
		shader:      sh,
		texture:     tex,
		color:       mgl32.Vec3{1, 1, 1},
	})
	if err != nil {
		c.dev.DeleteMesh(vao)
		return 0, err
	}
	core.Logger().Debug("renderer: model loaded", "name", mesh.Name, "handle", h,
		"vertices", len(mesh.Vertices), "indices", len(mesh.Indices))
	return ModelHandle(h), nil
}

// DrawAt draws model h with the transform Translate(pos) * Rotate(rot) *
// Scale(scale), rotation being Euler angles in radians. It activates the
// model's shader and texture through the binding tracker, uploads "model"
// and "material.color", then issues one indexed draw.
func (c *Context) DrawAt(h ModelHandle, pos, rot, scale mgl32.Vec3) error {
	if err := c.checkDraw(); err != nil {
		return err
	}
	m, err := c.models.Get(arena.Handle(h))
	if err != nil {
		return handleErr("model", arena.Handle(h), err)
	}

	if err := c.useShader(m.shader); err != nil {
		return err
	}
	tex := m.texture
	if tex == 0 {
		tex = c.defaultTexture
	}
	if err := c.useTexture(tex); err != nil {
		return err
	}

	c.SetMat4("model", remath.ModelMatrix(pos, rot, scale))
	c.SetVec3("material.color", m.color)
	c.dev.DrawIndexed(m.vertexArray, m.indexCount)
	return nil
}

// Draw is DrawAt with a Transform.
func (c *Context) Draw(h ModelHandle, t core.Transform) error {
	return c.DrawAt(h, t.Position, t.Rotation, t.Scale)
}

// SetColor sets the tint of model h, used from its next draw on.
func (c *Context) SetColor(h ModelHandle, rgb mgl32.Vec3) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if err := c.models.Update(arena.Handle(h), func(m *model) { m.color = rgb }); err != nil {
		return handleErr("model", arena.Handle(h), err)
	}
	return nil
}

// Color returns the tint of model h.
func (c *Context) Color(h ModelHandle) (mgl32.Vec3, error) {
	if err := c.checkOpen(); err != nil {
		return mgl32.Vec3{}, err
	}
	m, err := c.models.Get(arena.Handle(h))
	if err != nil {
		return mgl32.Vec3{}, handleErr("model", arena.Handle(h), err)
	}
	return m.color, nil
}
