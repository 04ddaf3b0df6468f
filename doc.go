/*
Package shader loads, compiles, and links GPU shader programs and exposes
typed setters for their uniform variables.

# Overview

The package is built around two types. Source holds the text of the vertex
and fragment stages, produced either directly or by splitting a combined
file tagged with #shader markers. Shader owns one linked program object on
a Device, the narrow interface standing for the graphics API; the
backend/opengl package implements Device over an OpenGL 4.1 core context.

Compilation and linking are fallible: constructors return a *CompileError
(tagged with the failing stage and carrying the driver log) or a
*LinkError instead of producing a half-built program. A stage that fails
to compile is never attached or linked.

# Quick Start

	dev := opengl.Device{}

	sh, err := shader.FromCombined(dev, "basic.shader")
	if err != nil {
	    return err
	}
	defer sh.Delete()

	for !window.ShouldClose() {
	    gl.Clear(gl.COLOR_BUFFER_BIT)

	    sh.Use()
	    sh.SetVec4("uColor", mgl32.Vec4{1, 0, 0, 1})
	    gl.BindVertexArray(vao)
	    gl.DrawArrays(gl.TRIANGLES, 0, 3)

	    window.SwapBuffers()
	    glfw.PollEvents()
	}

# Combined source files

A combined file carries both stages, delimited by marker lines:

	#shader vertex
	#version 410 core
	layout (location = 0) in vec3 aPos;
	void main() { gl_Position = vec4(aPos, 1.0); }

	#shader fragment
	#version 410 core
	out vec4 FragColor;
	uniform vec4 uColor;
	void main() { FragColor = uColor; }

Marker lines select the current stage and contribute no text; everything
else is copied verbatim into the selected stage's block.

# Threading

A GL context is bound to one thread. Everything here — Device calls,
Shader construction, uniform writes — must stay on that thread, pinned
with runtime.LockOSThread. See the example programs.

# Uniforms

Setters resolve uniform names through the Device and memoize the location
per Shader. A name the linker discarded resolves to the -1 sentinel and
the write is a silent no-op, matching the underlying API's semantics. The
target program must be the active one (call Use first); the setters do not
re-activate it.
*/
package shader
