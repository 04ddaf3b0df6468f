package shader

import "github.com/go-gl/mathgl/mgl32"

// Stage identifies one compilation stage of a program.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Device is the graphics API boundary this package builds programs through.
// The backend/opengl package implements it over a live GL context; tests
// implement it in memory.
//
// A Device is not safe for concurrent use. All calls must come from the
// single thread that owns the graphics context.
type Device interface {
	// CreateStage creates an empty stage object of the given kind.
	CreateStage(stage Stage) uint32
	// CompileStage uploads source to a stage object and compiles it.
	// ok reports the compile status; log carries the driver diagnostics
	// when compilation fails.
	CompileStage(id uint32, source string) (ok bool, log string)
	// DeleteStage releases a stage object.
	DeleteStage(id uint32)

	// CreateProgram creates an empty program object.
	CreateProgram() uint32
	// AttachStage attaches a compiled stage object to a program.
	AttachStage(program, stage uint32)
	// LinkProgram links the attached stages into an executable program.
	LinkProgram(program uint32) (ok bool, log string)
	// DeleteProgram releases a program object.
	DeleteProgram(program uint32)
	// UseProgram makes a program current for drawing and uniform writes.
	UseProgram(program uint32)

	// UniformLocation resolves a uniform name within a program. It returns
	// -1 when the name is absent or was optimized out; writes to location
	// -1 are silent no-ops.
	UniformLocation(program uint32, name string) int32
	SetFloat(location int32, v float32)
	SetInt(location int32, v int32)
	SetVec3(location int32, v mgl32.Vec3)
	SetVec4(location int32, v mgl32.Vec4)
	SetMat4(location int32, m mgl32.Mat4)
}
