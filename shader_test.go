package shader_test

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-gl-lab/shader"
)

// fakeDevice is an in-memory shader.Device that records every call, so the
// compile/link protocol and uniform writes can be asserted without a GL
// context.
type fakeDevice struct {
	nextID uint32

	// Failure injection.
	failCompile map[shader.Stage]string // stage -> log
	failLink    string

	stages        map[uint32]shader.Stage
	stageDeletes  map[uint32]int
	attached      map[uint32][]uint32
	linkCalls     int
	progDeletes   map[uint32]int
	activeProgram uint32

	uniforms map[string]int32 // declared uniforms, name -> location
	lookups  map[string]int

	floats map[int32]float32
	ints   map[int32]int32
	vec3s  map[int32]mgl32.Vec3
	vec4s  map[int32]mgl32.Vec4
	mat4s  map[int32]mgl32.Mat4
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		failCompile:  make(map[shader.Stage]string),
		stages:       make(map[uint32]shader.Stage),
		stageDeletes: make(map[uint32]int),
		attached:     make(map[uint32][]uint32),
		progDeletes:  make(map[uint32]int),
		uniforms:     make(map[string]int32),
		lookups:      make(map[string]int),
		floats:       make(map[int32]float32),
		ints:         make(map[int32]int32),
		vec3s:        make(map[int32]mgl32.Vec3),
		vec4s:        make(map[int32]mgl32.Vec4),
		mat4s:        make(map[int32]mgl32.Mat4),
	}
}

func (d *fakeDevice) CreateStage(stage shader.Stage) uint32 {
	d.nextID++
	d.stages[d.nextID] = stage
	return d.nextID
}

func (d *fakeDevice) CompileStage(id uint32, source string) (bool, string) {
	if log, ok := d.failCompile[d.stages[id]]; ok {
		return false, log
	}
	return true, ""
}

func (d *fakeDevice) DeleteStage(id uint32) {
	d.stageDeletes[id]++
}

func (d *fakeDevice) CreateProgram() uint32 {
	d.nextID++
	d.attached[d.nextID] = nil
	return d.nextID
}

func (d *fakeDevice) AttachStage(program, stage uint32) {
	d.attached[program] = append(d.attached[program], stage)
}

func (d *fakeDevice) LinkProgram(program uint32) (bool, string) {
	d.linkCalls++
	if d.failLink != "" {
		return false, d.failLink
	}
	return true, ""
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	d.progDeletes[program]++
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.activeProgram = program
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	d.lookups[name]++
	if loc, ok := d.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDevice) SetFloat(location int32, v float32) {
	if location < 0 {
		return
	}
	d.floats[location] = v
}

func (d *fakeDevice) SetInt(location int32, v int32) {
	if location < 0 {
		return
	}
	d.ints[location] = v
}

func (d *fakeDevice) SetVec3(location int32, v mgl32.Vec3) {
	if location < 0 {
		return
	}
	d.vec3s[location] = v
}

func (d *fakeDevice) SetVec4(location int32, v mgl32.Vec4) {
	if location < 0 {
		return
	}
	d.vec4s[location] = v
}

func (d *fakeDevice) SetMat4(location int32, m mgl32.Mat4) {
	if location < 0 {
		return
	}
	d.mat4s[location] = m
}

var minimalSrc = shader.Source{
	Vertex:   "void main() { gl_Position = vec4(0.0); }\n",
	Fragment: "void main() {}\n",
}

func TestNewLinksValidPair(t *testing.T) {
	dev := newFakeDevice()

	sh, err := shader.New(dev, minimalSrc)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if !sh.Valid() {
		t.Error("expected Valid() to be true after successful link")
	}
	if dev.linkCalls != 1 {
		t.Errorf("expected 1 link call, got %d", dev.linkCalls)
	}

	// Both transient stage objects are released after linking.
	for id, stage := range dev.stages {
		if dev.stageDeletes[id] != 1 {
			t.Errorf("%s stage object deleted %d times, want 1", stage, dev.stageDeletes[id])
		}
	}

	// The program itself stays alive, with both stages attached.
	if got := dev.progDeletes[sh.ID()]; got != 0 {
		t.Errorf("program deleted %d times before Delete()", got)
	}
	if got := len(dev.attached[sh.ID()]); got != 2 {
		t.Errorf("expected 2 attached stages, got %d", got)
	}
}

func TestNewVertexCompileFailure(t *testing.T) {
	dev := newFakeDevice()
	dev.failCompile[shader.StageVertex] = "ERROR: 0:1: syntax error"

	sh, err := shader.New(dev, minimalSrc)
	if sh != nil {
		t.Fatal("expected nil shader on compile failure")
	}

	var ce *shader.CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CompileError, got %T (%v)", err, err)
	}
	if ce.Stage != shader.StageVertex {
		t.Errorf("error tagged %s, want vertex", ce.Stage)
	}
	if ce.Log == "" {
		t.Error("expected a non-empty diagnostic log")
	}

	// Fail fast: no program created, no link attempted.
	if dev.linkCalls != 0 {
		t.Errorf("link attempted %d times after compile failure", dev.linkCalls)
	}
	if len(dev.attached) != 0 {
		t.Error("program object created after compile failure")
	}

	// The failed stage object was still released.
	for id := range dev.stages {
		if dev.stageDeletes[id] != 1 {
			t.Errorf("stage %d deleted %d times, want 1", id, dev.stageDeletes[id])
		}
	}
}

func TestNewFragmentCompileFailure(t *testing.T) {
	dev := newFakeDevice()
	dev.failCompile[shader.StageFragment] = "ERROR: 0:3: undeclared identifier"

	_, err := shader.New(dev, minimalSrc)

	var ce *shader.CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CompileError, got %T (%v)", err, err)
	}
	if ce.Stage != shader.StageFragment {
		t.Errorf("error tagged %s, want fragment", ce.Stage)
	}
	if dev.linkCalls != 0 {
		t.Error("link attempted after fragment compile failure")
	}

	// The already-compiled vertex stage must not leak.
	for id, stage := range dev.stages {
		if dev.stageDeletes[id] != 1 {
			t.Errorf("%s stage deleted %d times, want 1", stage, dev.stageDeletes[id])
		}
	}
}

func TestNewLinkFailure(t *testing.T) {
	dev := newFakeDevice()
	dev.failLink = "error: entry point mismatch"

	_, err := shader.New(dev, minimalSrc)

	var le *shader.LinkError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LinkError, got %T (%v)", err, err)
	}
	if le.Log == "" {
		t.Error("expected a non-empty link log")
	}

	// The failed program and both stage objects are released.
	for program := range dev.attached {
		if dev.progDeletes[program] != 1 {
			t.Errorf("program deleted %d times, want 1", dev.progDeletes[program])
		}
	}
	for id := range dev.stages {
		if dev.stageDeletes[id] != 1 {
			t.Errorf("stage %d deleted %d times, want 1", id, dev.stageDeletes[id])
		}
	}
}

func TestUseActivatesProgram(t *testing.T) {
	dev := newFakeDevice()

	sh, err := shader.New(dev, minimalSrc)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	sh.Use()
	if dev.activeProgram != sh.ID() {
		t.Errorf("active program = %d, want %d", dev.activeProgram, sh.ID())
	}
}

func TestSetUniforms(t *testing.T) {
	dev := newFakeDevice()
	dev.uniforms["uScale"] = 1
	dev.uniforms["uCount"] = 2
	dev.uniforms["uTint"] = 3
	dev.uniforms["uColor"] = 4
	dev.uniforms["uTransform"] = 5

	sh, err := shader.New(dev, minimalSrc)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	sh.Use()

	sh.SetFloat("uScale", 2.5)
	sh.SetInt("uCount", 7)
	sh.SetVec3("uTint", mgl32.Vec3{0.1, 0.2, 0.3})
	sh.SetVec4("uColor", mgl32.Vec4{1, 0, 0, 1})
	sh.SetMat4("uTransform", mgl32.Ident4())

	if got := dev.floats[1]; got != 2.5 {
		t.Errorf("uScale = %v, want 2.5", got)
	}
	if got := dev.ints[2]; got != 7 {
		t.Errorf("uCount = %v, want 7", got)
	}
	if got := dev.vec3s[3]; got != (mgl32.Vec3{0.1, 0.2, 0.3}) {
		t.Errorf("uTint = %v", got)
	}
	if got := dev.vec4s[4]; got != (mgl32.Vec4{1, 0, 0, 1}) {
		t.Errorf("uColor = %v", got)
	}
	if got := dev.mat4s[5]; got != mgl32.Ident4() {
		t.Errorf("uTransform = %v", got)
	}
}

func TestSetUnknownUniformIsNoOp(t *testing.T) {
	dev := newFakeDevice()
	dev.uniforms["uColor"] = 4

	sh, err := shader.New(dev, minimalSrc)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	sh.Use()

	sh.SetVec4("uColor", mgl32.Vec4{1, 1, 1, 1})
	sh.SetFloat("uMissing", 42) // absent name: silently ignored

	if len(dev.floats) != 0 {
		t.Errorf("unknown uniform wrote a value: %v", dev.floats)
	}
	if got := dev.vec4s[4]; got != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Errorf("existing uniform disturbed: %v", got)
	}
}

func TestUniformLocationCached(t *testing.T) {
	dev := newFakeDevice()
	dev.uniforms["uColor"] = 4

	sh, err := shader.New(dev, minimalSrc)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	sh.Use()

	sh.SetVec4("uColor", mgl32.Vec4{1, 0, 0, 1})
	sh.SetVec4("uColor", mgl32.Vec4{0, 1, 0, 1})
	sh.SetFloat("uMissing", 1)
	sh.SetFloat("uMissing", 2)

	if got := dev.lookups["uColor"]; got != 1 {
		t.Errorf("uColor resolved %d times, want 1", got)
	}
	if got := dev.lookups["uMissing"]; got != 1 {
		t.Errorf("uMissing resolved %d times, want 1 (absent names memoize too)", got)
	}
}

func TestDeleteReleasesExactlyOnce(t *testing.T) {
	dev := newFakeDevice()

	sh, err := shader.New(dev, minimalSrc)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	id := sh.ID()

	sh.Delete()
	sh.Delete()
	sh.Delete()

	if got := dev.progDeletes[id]; got != 1 {
		t.Errorf("program deleted %d times, want 1", got)
	}
	if sh.Valid() {
		t.Error("expected Valid() to be false after Delete()")
	}
}

func TestCompileErrorMessage(t *testing.T) {
	err := &shader.CompileError{Stage: shader.StageFragment, Log: "0:2: bad token\n\x00"}
	want := "compile fragment shader: 0:2: bad token"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestLinkErrorMessage(t *testing.T) {
	err := &shader.LinkError{Log: "no main\n"}
	want := "link shader program: no main"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
