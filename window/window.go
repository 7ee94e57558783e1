// Package window opens a GLFW window with an OpenGL core context and
// implements renderer.Platform on top of it.
package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"vgfx/core"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

// Window is a native window whose GL context is current on the calling
// thread.
type Window struct {
	handle *glfw.Window
	title  string
	vsync  bool

	in input
}

// Open initialises GLFW, creates the window and makes its context current.
func Open(cfg core.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(cfg.Resizable))

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()

	w := &Window{handle: handle, title: cfg.Title}
	w.SetVSync(cfg.VSync)
	w.SetCursorDisabled(cfg.CursorDisabled)

	handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		w.in.keyEvent(core.Key(key), action == glfw.Press, action == glfw.Release)
	})
	handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.in.cursorEvent(float32(x), float32(y))
	})

	fw, fh := handle.GetFramebufferSize()
	core.Logger().Info("window: opened", "title", cfg.Title,
		"width", cfg.Width, "height", cfg.Height, "framebuffer", fmt.Sprintf("%dx%d", fw, fh))
	return w, nil
}

func (w *Window) ShouldClose() bool { return w.handle.ShouldClose() }

func (w *Window) SetShouldClose(v bool) { w.handle.SetShouldClose(v) }

// PollEvents processes pending events and runs the input callbacks.
func (w *Window) PollEvents() { glfw.PollEvents() }

// ResetInput forgets last frame's key presses and mouse motion.
func (w *Window) ResetInput() { w.in.reset() }

func (w *Window) SwapBuffers() { w.handle.SwapBuffers() }

func (w *Window) FramebufferSize() (width, height int) {
	return w.handle.GetFramebufferSize()
}

// Time is seconds since GLFW was initialised.
func (w *Window) Time() float64 { return glfw.GetTime() }

// KeyDown reports whether k is held.
func (w *Window) KeyDown(k core.Key) bool { return w.in.keyDown(k) }

// KeyPressed reports whether k went down since the last ResetInput.
func (w *Window) KeyPressed(k core.Key) bool { return w.in.keyPressed(k) }

// Mouse is the cursor position in screen coordinates.
func (w *Window) Mouse() mgl32.Vec2 { return w.in.mouse }

// MouseDelta is the cursor motion since the last ResetInput.
func (w *Window) MouseDelta() mgl32.Vec2 { return w.in.mouseDelta }

func (w *Window) Title() string { return w.title }

func (w *Window) SetTitle(title string) {
	w.handle.SetTitle(title)
	w.title = title
}

func (w *Window) VSync() bool { return w.vsync }

// SetVSync sets the swap interval of the current context.
func (w *Window) SetVSync(on bool) {
	glfw.SwapInterval(boolToInt(on))
	w.vsync = on
}

// SetCursorDisabled hides and captures the cursor for mouse-look.
func (w *Window) SetCursorDisabled(disabled bool) {
	mode := glfw.CursorNormal
	if disabled {
		mode = glfw.CursorDisabled
	}
	w.handle.SetInputMode(glfw.CursorMode, mode)
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	if w.handle == nil {
		return
	}
	w.handle.Destroy()
	w.handle = nil
	glfw.Terminate()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
