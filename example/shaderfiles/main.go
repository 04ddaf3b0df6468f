// Shaderfiles loads each stage from its own source file and drives two
// uniforms through the shader wrapper: a per-draw vec4 color and a mat4
// transform that slowly spins both rectangles.
//
// Run from this directory so vertex.glsl and fragment.glsl resolve.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-gl-lab/shader"
	"github.com/go-gl-lab/shader/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "shaders from files"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	w, h := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	vertices := []float32{
		// rectangle 1 (left)
		-0.9, -0.5, 0.0,
		-0.1, -0.5, 0.0,
		-0.1, 0.5, 0.0,
		-0.9, 0.5, 0.0,

		// rectangle 2 (right)
		0.1, -0.5, 0.0,
		0.9, -0.5, 0.0,
		0.9, 0.5, 0.0,
		0.1, 0.5, 0.0,
	}
	indices := []uint32{
		0, 1, 2,
		2, 3, 0,
		4, 5, 6,
		6, 7, 4,
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	sh, err := shader.FromFiles(opengl.Device{}, "vertex.glsl", "fragment.glsl")
	if err != nil {
		return err
	}
	defer sh.Delete()

	for !window.ShouldClose() {
		gl.ClearColor(0.1, 0.15, 0.15, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		sh.Use()
		sh.SetMat4("uTransform", mgl32.HomogRotate3DZ(float32(glfw.GetTime())*0.5))

		gl.BindVertexArray(vao)

		sh.SetVec4("uColor", mgl32.Vec4{0, 0, 1, 1}) // blue
		gl.DrawElementsWithOffset(gl.TRIANGLES, 6, gl.UNSIGNED_INT, 0)

		sh.SetVec4("uColor", mgl32.Vec4{1, 0, 0, 1}) // red
		gl.DrawElementsWithOffset(gl.TRIANGLES, 6, gl.UNSIGNED_INT, 6*4)

		window.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}
