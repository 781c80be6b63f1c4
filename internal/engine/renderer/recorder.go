package renderer

import (
	"fmt"

	"github.com/Faultbox/meshlab/internal/engine/mesh"
	"github.com/Faultbox/meshlab/pkg/math"
)

var _ Backend = (*Recorder)(nil)

// Op names a recorded backend call.
type Op string

const (
	OpCreateProgram Op = "CreateProgram"
	OpUploadMesh    Op = "UploadMesh"
	OpCreateTarget  Op = "CreateDepthTarget"
	OpBindTarget    Op = "BindTarget"
	OpViewport      Op = "Viewport"
	OpClear         Op = "Clear"
	OpCullFace      Op = "CullFace"
	OpUseProgram    Op = "UseProgram"
	OpSetMat4       Op = "SetMat4"
	OpSetMat3       Op = "SetMat3"
	OpSetVec3       Op = "SetVec3"
	OpSetFloat      Op = "SetFloat"
	OpBindTexture   Op = "BindTexture"
	OpDraw          Op = "DrawIndexed"
	OpDeleteMesh    Op = "DeleteMesh"
	OpDestroy       Op = "Destroy"
)

// Call is one recorded backend call. Only the fields relevant to Op are set.
type Call struct {
	Op      Op
	Name    string
	Program ProgramID
	Mesh    MeshHandle
	Target  TargetID
	Face    Face
	Ints    [4]int32
	Mat4    math.Mat4
	Mat3    math.Mat3
	Vec3    math.Vec3
	Float   float32
}

func (c Call) String() string {
	switch c.Op {
	case OpUseProgram:
		return fmt.Sprintf("%s(%d)", c.Op, c.Program)
	case OpDraw, OpDeleteMesh:
		return fmt.Sprintf("%s(%d)", c.Op, c.Mesh)
	case OpBindTarget:
		return fmt.Sprintf("%s(%d)", c.Op, c.Target)
	case OpCullFace:
		return fmt.Sprintf("%s(%s)", c.Op, c.Face)
	case OpSetMat4, OpSetMat3, OpSetVec3, OpSetFloat, OpBindTexture, OpCreateProgram, OpUploadMesh:
		return fmt.Sprintf("%s(%s)", c.Op, c.Name)
	default:
		return string(c.Op)
	}
}

// Recorder is a Backend that draws nothing and remembers every call.
// Failures can be injected per program name or for depth targets.
type Recorder struct {
	Calls []Call

	// FailProgram makes CreateProgram return this error for the named program.
	FailProgram map[string]error
	// FailTarget makes CreateDepthTarget return this error.
	FailTarget error

	programs   []string
	meshes     map[MeshHandle]string
	nextTarget TargetID
	destroyed  bool
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{meshes: make(map[MeshHandle]string)}
}

func (r *Recorder) record(c Call) {
	r.Calls = append(r.Calls, c)
}

// Reset forgets recorded calls but keeps created resources.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// ProgramName returns the name p was created with.
func (r *Recorder) ProgramName(p ProgramID) string {
	if p == 0 || int(p) > len(r.programs) {
		return ""
	}
	return r.programs[p-1]
}

// MeshName returns the mesh name h was uploaded from.
func (r *Recorder) MeshName(h MeshHandle) string {
	return r.meshes[h]
}

// LiveMeshes returns how many uploaded meshes have not been deleted.
func (r *Recorder) LiveMeshes() int {
	return len(r.meshes)
}

// Destroyed reports whether Destroy was called.
func (r *Recorder) Destroyed() bool {
	return r.destroyed
}

// Filter returns the recorded calls with the given ops, in order.
func (r *Recorder) Filter(ops ...Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		for _, op := range ops {
			if c.Op == op {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func (r *Recorder) CreateProgram(name, vertexSrc, fragmentSrc string) (ProgramID, error) {
	r.record(Call{Op: OpCreateProgram, Name: name})
	if err, ok := r.FailProgram[name]; ok {
		return 0, err
	}
	r.programs = append(r.programs, name)
	return ProgramID(len(r.programs)), nil
}

func (r *Recorder) UploadMesh(m *mesh.Mesh) (MeshHandle, error) {
	r.record(Call{Op: OpUploadMesh, Name: m.Name})
	if m.IndexCount() == 0 {
		return 0, fmt.Errorf("upload mesh %s: no indices", m.Name)
	}
	h := MeshHandle(len(r.meshes) + 1)
	for {
		if _, used := r.meshes[h]; !used {
			break
		}
		h++
	}
	r.meshes[h] = m.Name
	return h, nil
}

func (r *Recorder) CreateDepthTarget(size int32) (TargetID, error) {
	r.record(Call{Op: OpCreateTarget, Ints: [4]int32{size, size}})
	if r.FailTarget != nil {
		return 0, r.FailTarget
	}
	r.nextTarget++
	return r.nextTarget, nil
}

func (r *Recorder) BindTarget(target TargetID) {
	r.record(Call{Op: OpBindTarget, Target: target})
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record(Call{Op: OpViewport, Ints: [4]int32{x, y, width, height}})
}

func (r *Recorder) Clear(c Color) {
	r.record(Call{Op: OpClear})
}

func (r *Recorder) SetCullFace(face Face) {
	r.record(Call{Op: OpCullFace, Face: face})
}

func (r *Recorder) UseProgram(p ProgramID) {
	r.record(Call{Op: OpUseProgram, Program: p, Name: r.ProgramName(p)})
}

func (r *Recorder) SetMat4(name string, m math.Mat4) {
	r.record(Call{Op: OpSetMat4, Name: name, Mat4: m})
}

func (r *Recorder) SetMat3(name string, m math.Mat3) {
	r.record(Call{Op: OpSetMat3, Name: name, Mat3: m})
}

func (r *Recorder) SetVec3(name string, v math.Vec3) {
	r.record(Call{Op: OpSetVec3, Name: name, Vec3: v})
}

func (r *Recorder) SetFloat(name string, f float32) {
	r.record(Call{Op: OpSetFloat, Name: name, Float: f})
}

func (r *Recorder) BindTexture(unit int32, target TargetID, sampler string) {
	r.record(Call{Op: OpBindTexture, Name: sampler, Target: target, Ints: [4]int32{unit}})
}

func (r *Recorder) DrawIndexed(h MeshHandle) {
	r.record(Call{Op: OpDraw, Mesh: h, Name: r.meshes[h]})
}

func (r *Recorder) DeleteMesh(h MeshHandle) {
	r.record(Call{Op: OpDeleteMesh, Mesh: h})
	delete(r.meshes, h)
}

func (r *Recorder) Destroy() {
	r.record(Call{Op: OpDestroy})
	r.destroyed = true
}
