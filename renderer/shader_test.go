package renderer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vgfx/arena"
)

func writeShaders(t *testing.T) (vertex, fragment string) {
	t.Helper()
	dir := t.TempDir()
	vertex = filepath.Join(dir, "shader.vert")
	fragment = filepath.Join(dir, "shader.frag")
	require.NoError(t, os.WriteFile(vertex, []byte(litVertexSrc), 0o644))
	require.NoError(t, os.WriteFile(fragment, []byte(litFragmentSrc), 0o644))
	return vertex, fragment
}

func TestLoadShader(t *testing.T) {
	ctx, dev, _ := newTestContext(t)
	vs, fs := writeShaders(t)

	h, err := ctx.LoadShader(vs, fs)
	require.NoError(t, err)
	assert.Equal(t, ShaderHandle(1), h)
	assert.Len(t, dev.programs, 1)

	_, err = ctx.LoadShader(filepath.Join(t.TempDir(), "nope.vert"), fs)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = ctx.LoadShader(vs, filepath.Join(t.TempDir(), "nope.frag"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompileFailureKeepsHandles(t *testing.T) {
	ctx, dev, _ := newTestContext(t)
	vs, fs := writeShaders(t)

	dev.compileErr = errBoom
	_, err := ctx.LoadShader(vs, fs)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "shader.vert")

	dev.compileErr = nil
	h, err := ctx.LoadShader(vs, fs)
	require.NoError(t, err)
	assert.Equal(t, ShaderHandle(1), h)
}

func TestBuiltinShaderFailure(t *testing.T) {
	ctx, dev, _ := newTestContext(t)
	dev.compileErr = errBoom

	_, err := ctx.LoadModelData(triangle(), 0, 0)
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, dev.meshes)

	dev.compileErr = nil
	_, err = ctx.LoadModelData(triangle(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, ShaderHandle(1), ctx.litShader)
}

func TestReloadShader(t *testing.T) {
	ctx, dev, _ := newTestContext(t)
	vs, fs := writeShaders(t)
	h, err := ctx.LoadShader(vs, fs)
	require.NoError(t, err)
	require.NoError(t, ctx.BeginFrame())
	require.NoError(t, ctx.UseShader(h))
	before := dev.program

	gotVS, gotFS, err := ctx.ShaderFiles(h)
	require.NoError(t, err)
	assert.Equal(t, vs, gotVS)
	assert.Equal(t, fs, gotFS)

	require.NoError(t, ctx.ReloadShader(h))
	assert.NotContains(t, dev.programs, before)
	assert.Len(t, dev.programs, 1)

	require.NoError(t, ctx.UseShader(h))
	assert.NotEqual(t, before, dev.program, "the active handle rebinds to the new program")
	assert.NotNil(t, dev.uniform(dev.program, "view"), "frame uniforms pushed to the new program")
}

func TestReloadShaderFailureKeepsProgram(t *testing.T) {
	ctx, dev, _ := newTestContext(t)
	vs, fs := writeShaders(t)
	h, err := ctx.LoadShader(vs, fs)
	require.NoError(t, err)
	program := dev.nextID

	dev.compileErr = errBoom
	assert.ErrorIs(t, ctx.ReloadShader(h), errBoom)
	assert.Contains(t, dev.programs, program)

	require.NoError(t, os.Remove(fs))
	dev.compileErr = nil
	assert.ErrorIs(t, ctx.ReloadShader(h), os.ErrNotExist)
	assert.Contains(t, dev.programs, program)
}

func TestReloadInMemoryShader(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	h, err := ctx.LoadShaderSource("vs", "fs")
	require.NoError(t, err)
	assert.ErrorIs(t, ctx.ReloadShader(h), ErrNoShaderFiles)
	assert.ErrorIs(t, ctx.ReloadShader(9), arena.ErrInvalidHandle)
}
