package renderer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"vgfx/core"
	"vgfx/scene"
	"vgfx/shapes"
)

type uniformRef struct {
	program uint32
	name    string
}

type drawCall struct {
	vertexArray uint32
	indexCount  int32
	program     uint32
	texture     uint32
}

type shapeCall struct {
	mode     shapes.Mode
	vertices []float32
	program  uint32
}

// fakeDevice records what the renderer asks of the GPU.
type fakeDevice struct {
	calls []string

	nextID   uint32
	nextLoc  int32
	missing  map[string]bool
	locs     map[uniformRef]int32
	locNames map[int32]uniformRef
	lookups  map[string]int

	program  uint32
	texture  uint32
	values   map[uniformRef]any
	uploads  map[string]int
	programs map[uint32]bool
	meshes   map[uint32]core.MeshData
	textures map[uint32]*scene.Image

	draws    []drawCall
	shapes   []shapeCall
	clears   []core.Color
	viewport [2]int

	compileErr error
	uploadErr  error
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		nextID:   100,
		missing:  map[string]bool{},
		locs:     map[uniformRef]int32{},
		locNames: map[int32]uniformRef{},
		lookups:  map[string]int{},
		values:   map[uniformRef]any{},
		uploads:  map[string]int{},
		programs: map[uint32]bool{},
		meshes:   map[uint32]core.MeshData{},
		textures: map[uint32]*scene.Image{},
	}
}

func (d *fakeDevice) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDevice) count(op string) int {
	n := 0
	for _, c := range d.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (d *fakeDevice) uniform(program uint32, name string) any {
	return d.values[uniformRef{program, name}]
}

func (d *fakeDevice) CompileProgram(vs, fs string) (uint32, error) {
	d.calls = append(d.calls, "CompileProgram")
	if d.compileErr != nil {
		return 0, d.compileErr
	}
	id := d.id()
	d.programs[id] = true
	return id, nil
}

func (d *fakeDevice) DeleteProgram(p uint32) {
	d.calls = append(d.calls, "DeleteProgram")
	delete(d.programs, p)
}

func (d *fakeDevice) UseProgram(p uint32) {
	d.calls = append(d.calls, "UseProgram")
	d.program = p
}

func (d *fakeDevice) UniformLocation(p uint32, name string) int32 {
	d.lookups[name]++
	if d.missing[name] {
		return -1
	}
	ref := uniformRef{p, name}
	if loc, ok := d.locs[ref]; ok {
		return loc
	}
	loc := d.nextLoc
	d.nextLoc++
	d.locs[ref] = loc
	d.locNames[loc] = ref
	return loc
}

func (d *fakeDevice) set(loc int32, v any) {
	ref, ok := d.locNames[loc]
	if !ok {
		panic(fmt.Sprintf("upload to unknown location %d", loc))
	}
	if ref.program != d.program {
		panic(fmt.Sprintf("upload of %q to program %d while %d is bound", ref.name, ref.program, d.program))
	}
	d.values[ref] = v
	d.uploads[ref.name]++
}

func (d *fakeDevice) Uniform1i(loc int32, v int32) { d.set(loc, v) }
func (d *fakeDevice) Uniform1f(loc int32, v float32) { d.set(loc, v) }
func (d *fakeDevice) Uniform3f(loc int32, v mgl32.Vec3) { d.set(loc, v) }
func (d *fakeDevice) Uniform4f(loc int32, v mgl32.Vec4) { d.set(loc, v) }
func (d *fakeDevice) UniformMatrix4(loc int32, m mgl32.Mat4) { d.set(loc, m) }

func (d *fakeDevice) UploadMesh(mesh core.MeshData) (uint32, error) {
	d.calls = append(d.calls, "UploadMesh")
	if d.uploadErr != nil {
		return 0, d.uploadErr
	}
	id := d.id()
	d.meshes[id] = mesh
	return id, nil
}

func (d *fakeDevice) DrawIndexed(vao uint32, n int32) {
	d.calls = append(d.calls, "DrawIndexed")
	d.draws = append(d.draws, drawCall{vao, n, d.program, d.texture})
}

func (d *fakeDevice) DeleteMesh(vao uint32) {
	d.calls = append(d.calls, "DeleteMesh")
	delete(d.meshes, vao)
}

func (d *fakeDevice) CreateTexture(img *scene.Image) (uint32, error) {
	d.calls = append(d.calls, "CreateTexture")
	id := d.id()
	d.textures[id] = img
	// Uploading binds the new texture and then unbinds unit 0.
	d.texture = 0
	return id, nil
}

func (d *fakeDevice) BindTexture(unit, tex uint32) {
	d.calls = append(d.calls, "BindTexture")
	d.texture = tex
}

func (d *fakeDevice) DeleteTexture(tex uint32) {
	d.calls = append(d.calls, "DeleteTexture")
	delete(d.textures, tex)
}

func (d *fakeDevice) Clear(c core.Color) {
	d.calls = append(d.calls, "Clear")
	d.clears = append(d.clears, c)
}

func (d *fakeDevice) Viewport(w, h int) {
	d.calls = append(d.calls, "Viewport")
	d.viewport = [2]int{w, h}
}

func (d *fakeDevice) DrawShape(mode shapes.Mode, vertices []float32) {
	d.calls = append(d.calls, "DrawShape")
	d.shapes = append(d.shapes, shapeCall{mode, vertices, d.program})
}

// fakePlatform is a scripted window.
type fakePlatform struct {
	calls       []string
	now         float64
	keys        map[core.Key]bool
	shouldClose bool
	width       int
	height      int
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{keys: map[core.Key]bool{}, width: 800, height: 600, now: 1}
}

func (p *fakePlatform) ResetInput() { p.calls = append(p.calls, "ResetInput") }
func (p *fakePlatform) PollEvents() { p.calls = append(p.calls, "PollEvents") }
func (p *fakePlatform) KeyDown(k core.Key) bool { return p.keys[k] }
func (p *fakePlatform) ShouldClose() bool { return p.shouldClose }
func (p *fakePlatform) SetShouldClose(v bool) { p.shouldClose = v }
func (p *fakePlatform) FramebufferSize() (int, int) { return p.width, p.height }
func (p *fakePlatform) Time() float64 { return p.now }
func (p *fakePlatform) SwapBuffers() { p.calls = append(p.calls, "SwapBuffers") }

var errBoom = errors.New("boom")

func testConfig() core.RenderConfig {
	return core.DefaultConfig().Render
}

func assertNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "expected %v, got %v", want, got)
	}
}

func newTestContext(t *testing.T) (*Context, *fakeDevice, *fakePlatform) {
	t.Helper()
	dev := newFakeDevice()
	plat := newFakePlatform()
	return New(dev, plat, testConfig()), dev, plat
}

func triangle() core.MeshData {
	return core.MeshData{
		Name: "tri",
		Vertices: []core.Vertex{
			{Position: mgl32.Vec3{0, 0, 0}},
			{Position: mgl32.Vec3{1, 0, 0}},
			{Position: mgl32.Vec3{0, 1, 0}},
		},
		Indices: []uint32{0, 1, 2},
	}
}
