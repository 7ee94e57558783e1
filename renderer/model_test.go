package renderer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vgfx/arena"
	"vgfx/core"
	"vgfx/scene"
)

func TestDrawAtComposesTRS(t *testing.T) {
	ctx, dev, _ := newTestContext(t)
	m, err := ctx.LoadModelData(triangle(), 0, 0)
	require.NoError(t, err)
	require.NoError(t, ctx.BeginFrame())

	require.NoError(t, ctx.DrawAt(m, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, mgl32.Vec3{2, 2, 2}))

	got, ok := dev.uniform(dev.program, "model").(mgl32.Mat4)
	require.True(t, ok)
	assertNear(t, mgl32.Vec3{1, 0, 0}, mgl32.TransformCoordinate(mgl32.Vec3{}, got))
	assertNear(t, mgl32.Vec3{3, 0, 0}, mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, got))
}

func TestDrawAtPipeline(t *testing.T) {
	ctx, dev, _ := newTestContext(t)
	m, err := ctx.LoadModelData(triangle(), 0, 0)
	require.NoError(t, err)
	require.NoError(t, ctx.BeginFrame())
	dev.calls = nil

	require.NoError(t, ctx.DrawAt(m, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))

	assert.Equal(t, []string{"UseProgram", "CreateTexture", "BindTexture", "DrawIndexed"}, dev.calls)
	require.Len(t, dev.draws, 1)
	draw := dev.draws[0]
	assert.Equal(t, int32(3), draw.indexCount)
	assert.Contains(t, dev.meshes, draw.vertexArray)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, dev.uniform(draw.program, "material.color"))
}

func TestDrawWithoutBeginFrameIsRejected(t *testing.T) {
	ctx, dev, _ := newTestContext(t)
	m, err := ctx.LoadModelData(triangle(), 0, 0)
	require.NoError(t, err)

	err = ctx.DrawAt(m, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
	assert.ErrorIs(t, err, ErrFrameNotBegun)

	require.NoError(t, ctx.BeginFrame())
	require.NoError(t, ctx.EndFrame())
	err = ctx.Draw(m, core.NewTransform())
	assert.ErrorIs(t, err, ErrFrameNotBegun, "EndFrame closes the bracket")
	assert.Empty(t, dev.draws)
}

func TestDrawAtUnknownModel(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	require.NoError(t, ctx.BeginFrame())
	err := ctx.DrawAt(7, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})
	assert.ErrorIs(t, err, arena.ErrInvalidHandle)
}

func TestDefaultTextureFallback(t *testing.T) {
	ctx, dev, _ := newTestContext(t)
	own, err := ctx.LoadTextureImage(scene.NewSolidImage("own", 1, 2, 3, 255))
	require.NoError(t, err)
	fallback, err := ctx.LoadTextureImage(scene.NewSolidImage("fallback", 4, 5, 6, 255))
	require.NoError(t, err)
	plain, _ := ctx.LoadModelData(triangle(), 0, 0)
	textured, _ := ctx.LoadModelData(triangle(), own, 0)
	require.NoError(t, ctx.SetDefaultTexture(fallback))
	assert.Equal(t, fallback, ctx.DefaultTexture())

	require.NoError(t, ctx.BeginFrame())
	require.NoError(t, ctx.DrawAt(plain, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))
	require.NoError(t, ctx.DrawAt(textured, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))
	require.NoError(t, ctx.DrawAt(textured, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))

	require.Len(t, dev.draws, 3)
	assert.Equal(t, []byte{4, 5, 6, 255}, dev.textures[dev.draws[0].texture].Pixels)
	assert.Equal(t, []byte{1, 2, 3, 255}, dev.textures[dev.draws[1].texture].Pixels)
	assert.Equal(t, 2, dev.count("BindTexture"), "same texture twice binds once")

	assert.ErrorIs(t, ctx.SetDefaultTexture(99), arena.ErrInvalidHandle)
	require.NoError(t, ctx.SetDefaultTexture(0))
}

func TestSetColor(t *testing.T) {
	ctx, dev, _ := newTestContext(t)
	m, _ := ctx.LoadModelData(triangle(), 0, 0)
	require.NoError(t, ctx.SetColor(m, mgl32.Vec3{1, 0.5, 0}))

	c, err := ctx.Color(m)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0}, c)

	require.NoError(t, ctx.BeginFrame())
	require.NoError(t, ctx.DrawAt(m, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))
	assert.Equal(t, mgl32.Vec3{1, 0.5, 0}, dev.uniform(dev.program, "material.color"))

	assert.ErrorIs(t, ctx.SetColor(0, mgl32.Vec3{}), arena.ErrInvalidHandle)
}

func TestLoadModelDataValidatesBeforeIssuing(t *testing.T) {
	ctx, dev, _ := newTestContext(t)

	_, err := ctx.LoadModelData(triangle(), 3, 0)
	assert.ErrorIs(t, err, arena.ErrInvalidHandle)
	_, err = ctx.LoadModelData(triangle(), 0, 3)
	assert.ErrorIs(t, err, arena.ErrInvalidHandle)
	_, err = ctx.LoadModelData(core.MeshData{Name: "empty"}, 0, 0)
	assert.Error(t, err)

	dev.uploadErr = errBoom
	_, err = ctx.LoadModelData(triangle(), 0, 0)
	assert.ErrorIs(t, err, errBoom)
	dev.uploadErr = nil

	h, err := ctx.LoadModelData(triangle(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, ModelHandle(1), h, "failed loads must not burn handles")
}

func TestBuiltinShaderCompiledOnce(t *testing.T) {
	ctx, dev, _ := newTestContext(t)
	for i := 0; i < 3; i++ {
		_, err := ctx.LoadModelData(triangle(), 0, 0)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, dev.count("CompileProgram"))
}

func TestLoadModelFromFile(t *testing.T) {
	ctx, dev, _ := newTestContext(t)
	path := filepath.Join(t.TempDir(), "quad.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n"), 0o644))

	h, err := ctx.LoadModel(path, 0, 0)
	require.NoError(t, err)
	require.NoError(t, ctx.BeginFrame())
	require.NoError(t, ctx.DrawAt(h, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))
	assert.Equal(t, int32(6), dev.draws[0].indexCount)

	_, err = ctx.LoadModel(filepath.Join(t.TempDir(), "missing.obj"), 0, 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestModelArenaGrowsFromConfiguredCapacity(t *testing.T) {
	cfg := testConfig()
	cfg.ModelCapacity = 2
	ctx := New(newFakeDevice(), newFakePlatform(), cfg)

	var got []ModelHandle
	for i := 0; i < 3; i++ {
		h, err := ctx.LoadModelData(triangle(), 0, 0)
		require.NoError(t, err)
		got = append(got, h)
	}
	assert.Equal(t, []ModelHandle{1, 2, 3}, got)
	assert.Equal(t, 4, ctx.models.Cap())

	require.NoError(t, ctx.BeginFrame())
	for _, h := range got {
		require.NoError(t, ctx.DrawAt(h, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))
	}
}

func TestTextureUploadDropsTextureMemo(t *testing.T) {
	ctx, dev, _ := newTestContext(t)
	first, err := ctx.LoadTextureImage(scene.NewSolidImage("first", 9, 9, 9, 255))
	require.NoError(t, err)
	m, err := ctx.LoadModelData(triangle(), first, 0)
	require.NoError(t, err)

	require.NoError(t, ctx.BeginFrame())
	require.NoError(t, ctx.DrawAt(m, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))
	require.NoError(t, ctx.EndFrame())

	_, err = ctx.LoadTextureImage(scene.NewSolidImage("second", 1, 1, 1, 255))
	require.NoError(t, err)
	assert.Zero(t, dev.texture, "upload leaves unit 0 unbound")

	require.NoError(t, ctx.BeginFrame())
	require.NoError(t, ctx.DrawAt(m, mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))

	require.Len(t, dev.draws, 2)
	assert.NotZero(t, dev.draws[0].texture)
	assert.Equal(t, dev.draws[0].texture, dev.draws[1].texture)
	assert.Equal(t, 2, dev.count("BindTexture"))
}
