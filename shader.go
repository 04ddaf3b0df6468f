package shader

import "github.com/go-gl/mathgl/mgl32"

// Shader owns one linked, executable program object on a Device.
//
// A Shader is only ever constructed in a usable state: every compile or
// link failure surfaces as an error from the constructor. The zero value
// is not usable. A Shader must stay on the thread that owns its Device's
// context.
type Shader struct {
	device  Device
	id      uint32
	deleted bool
	locs    map[string]int32
}

// New compiles both stages of src and links them into a program.
//
// Stage compilation fails fast: a failed stage returns a *CompileError and
// linking is never attempted. A failed link returns a *LinkError. The
// transient stage objects are released on every path; the linked program
// keeps its own copy of the compiled code.
func New(device Device, src Source) (*Shader, error) {
	vert, err := compileStage(device, StageVertex, src.Vertex)
	if err != nil {
		return nil, err
	}
	defer device.DeleteStage(vert)

	frag, err := compileStage(device, StageFragment, src.Fragment)
	if err != nil {
		return nil, err
	}
	defer device.DeleteStage(frag)

	program := device.CreateProgram()
	device.AttachStage(program, vert)
	device.AttachStage(program, frag)
	if ok, log := device.LinkProgram(program); !ok {
		device.DeleteProgram(program)
		return nil, &LinkError{Log: log}
	}

	return &Shader{
		device: device,
		id:     program,
		locs:   make(map[string]int32),
	}, nil
}

// FromFiles builds a Shader from one complete source file per stage.
func FromFiles(device Device, vertexPath, fragmentPath string) (*Shader, error) {
	src, err := LoadFiles(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	return New(device, src)
}

// FromCombined builds a Shader from a single file tagged with #shader
// stage markers.
func FromCombined(device Device, path string) (*Shader, error) {
	src, err := LoadCombined(path)
	if err != nil {
		return nil, err
	}
	return New(device, src)
}

func compileStage(device Device, stage Stage, source string) (uint32, error) {
	id := device.CreateStage(stage)
	if ok, log := device.CompileStage(id, source); !ok {
		device.DeleteStage(id)
		return 0, &CompileError{Stage: stage, Log: log}
	}
	return id, nil
}

// Use makes the program current on the device. The uniform setters write
// into the currently active program, so Use must precede them.
func (s *Shader) Use() {
	s.device.UseProgram(s.id)
}

// ID returns the device-side program handle.
func (s *Shader) ID() uint32 { return s.id }

// Valid reports whether the Shader still owns a live program object.
func (s *Shader) Valid() bool { return !s.deleted && s.id != 0 }

// Delete releases the program object. Safe to call more than once; only
// the first call reaches the device.
func (s *Shader) Delete() {
	if s.deleted {
		return
	}
	s.deleted = true
	s.device.DeleteProgram(s.id)
	s.id = 0
}

// location resolves and memoizes a uniform location. Unknown names memoize
// the device's -1 sentinel, so writes to them stay no-ops without repeated
// lookups.
func (s *Shader) location(name string) int32 {
	if loc, ok := s.locs[name]; ok {
		return loc
	}
	loc := s.device.UniformLocation(s.id, name)
	s.locs[name] = loc
	return loc
}

// SetFloat writes a float uniform by name.
func (s *Shader) SetFloat(name string, v float32) {
	s.device.SetFloat(s.location(name), v)
}

// SetInt writes an int, sampler, or bool uniform by name.
func (s *Shader) SetInt(name string, v int32) {
	s.device.SetInt(s.location(name), v)
}

// SetVec3 writes a vec3 uniform by name.
func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	s.device.SetVec3(s.location(name), v)
}

// SetVec4 writes a vec4 uniform by name.
func (s *Shader) SetVec4(name string, v mgl32.Vec4) {
	s.device.SetVec4(s.location(name), v)
}

// SetMat4 writes a column-major mat4 uniform by name.
func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	s.device.SetMat4(s.location(name), m)
}
