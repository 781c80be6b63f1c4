package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshlab/internal/engine/mesh"
	"github.com/Faultbox/meshlab/internal/logger"
	"github.com/Faultbox/meshlab/pkg/math"
)

var _ Backend = (*GL)(nil)

type glMesh struct {
	vao       uint32
	buffers   [4]uint32 // positions, colors, normals, indices
	count     int32
	primitive uint32
}

type glTarget struct {
	fbo          uint32
	depthTexture uint32
	size         int32
}

// GL draws through OpenGL 4.1 core. It must be created and used on the
// thread that owns the GL context.
type GL struct {
	log *zap.Logger

	programs map[ProgramID]*glProgram
	meshes   map[MeshHandle]*glMesh
	targets  map[TargetID]*glTarget

	current    *glProgram
	nextMesh   MeshHandle
	nextTarget TargetID
}

// NewGL initializes the GL function pointers and default state.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func NewGL() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	b := &GL{
		log:      logger.Named("gl"),
		programs: make(map[ProgramID]*glProgram),
		meshes:   make(map[MeshHandle]*glMesh),
		targets:  make(map[TargetID]*glTarget),
	}

	b.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearDepth(1.0)

	return b, nil
}

// CreateProgram compiles and links a program.
func (b *GL) CreateProgram(name, vertexSrc, fragmentSrc string) (ProgramID, error) {
	id, err := compileProgram(name, vertexSrc, fragmentSrc)
	if err != nil {
		return 0, err
	}
	b.programs[ProgramID(id)] = &glProgram{id: id, name: name, uniforms: make(map[string]int32)}
	b.log.Debug("program linked", zap.String("name", name), zap.Uint32("id", id))
	return ProgramID(id), nil
}

// UploadMesh creates a VAO with position, color and normal buffers and an
// element buffer. Missing colors default to mesh.ModelColor; missing or
// partial normals are zero-filled.
func (b *GL) UploadMesh(m *mesh.Mesh) (MeshHandle, error) {
	if m.IndexCount() == 0 {
		return 0, fmt.Errorf("upload mesh %s: no indices", m.Name)
	}

	n := m.VertexCount()
	colors := m.Colors
	if len(colors) != len(m.Positions) {
		colors = mesh.Colors(n, mesh.ModelColor)
	}
	normals := m.Normals
	if !m.HasNormals() {
		normals = make([]float32, len(m.Positions))
		copy(normals, m.Normals)
	}

	gm := &glMesh{count: int32(m.IndexCount()), primitive: gl.TRIANGLES}
	if m.Primitive == mesh.Lines {
		gm.primitive = gl.LINES
	}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)
	gl.GenBuffers(4, &gm.buffers[0])

	uploadAttrib(gm.buffers[0], LocCoords, m.Positions)
	uploadAttrib(gm.buffers[1], LocColor, colors)
	uploadAttrib(gm.buffers[2], LocNormal, normals)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.buffers[3])
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	b.nextMesh++
	b.meshes[b.nextMesh] = gm
	b.log.Debug("mesh uploaded",
		zap.String("name", m.Name),
		zap.Int("vertices", n),
		zap.Int("indices", m.IndexCount()),
	)
	return b.nextMesh, nil
}

func uploadAttrib(buffer, loc uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(loc, 3, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(loc)
}

// CreateDepthTarget creates a square depth-only framebuffer whose depth
// texture is sampled with hardware comparison (sampler2DShadow).
func (b *GL) CreateDepthTarget(size int32) (TargetID, error) {
	t := &glTarget{size: size}

	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)

	gl.GenTextures(1, &t.depthTexture)
	gl.BindTexture(gl.TEXTURE_2D, t.depthTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24, size, size, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Outside the light frustum counts as lit.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	borderColor := []float32{1.0, 1.0, 1.0, 1.0}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &borderColor[0])

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_COMPARE_FUNC, gl.LEQUAL)

	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, t.depthTexture, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteFramebuffers(1, &t.fbo)
		gl.DeleteTextures(1, &t.depthTexture)
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return 0, fmt.Errorf("depth target %dx%d: %w (0x%x)", size, size, ErrIncompleteFramebuffer, status)
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	b.nextTarget++
	b.targets[b.nextTarget] = t
	return b.nextTarget, nil
}

// BindTarget makes target the current framebuffer.
func (b *GL) BindTarget(target TargetID) {
	if target == DefaultTarget {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return
	}
	if t, ok := b.targets[target]; ok {
		gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	}
}

// Viewport sets the GL viewport.
func (b *GL) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

// Clear clears color and depth.
func (b *GL) Clear(c Color) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetCullFace selects the culled face.
func (b *GL) SetCullFace(face Face) {
	if face == CullFront {
		gl.CullFace(gl.FRONT)
		return
	}
	gl.CullFace(gl.BACK)
}

// UseProgram binds p for drawing and uniform updates.
func (b *GL) UseProgram(p ProgramID) {
	b.current = b.programs[p]
	if b.current != nil {
		gl.UseProgram(b.current.id)
	}
}

func (b *GL) loc(name string) int32 {
	if b.current == nil {
		return -1
	}
	return b.current.uniform(name)
}

// SetMat4 sets a mat4 uniform on the current program.
func (b *GL) SetMat4(name string, m math.Mat4) {
	if loc := b.loc(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
	}
}

// SetMat3 sets a mat3 uniform on the current program.
func (b *GL) SetMat3(name string, m math.Mat3) {
	if loc := b.loc(name); loc >= 0 {
		gl.UniformMatrix3fv(loc, 1, false, m.Ptr())
	}
}

// SetVec3 sets a vec3 uniform on the current program.
func (b *GL) SetVec3(name string, v math.Vec3) {
	if loc := b.loc(name); loc >= 0 {
		gl.Uniform3f(loc, v.X, v.Y, v.Z)
	}
}

// SetFloat sets a float uniform on the current program.
func (b *GL) SetFloat(name string, f float32) {
	if loc := b.loc(name); loc >= 0 {
		gl.Uniform1f(loc, f)
	}
}

// BindTexture binds target's depth texture to unit and points sampler at it.
func (b *GL) BindTexture(unit int32, target TargetID, sampler string) {
	t, ok := b.targets[target]
	if !ok {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, t.depthTexture)
	if loc := b.loc(sampler); loc >= 0 {
		gl.Uniform1i(loc, unit)
	}
}

// DrawIndexed draws h with its stored primitive type.
func (b *GL) DrawIndexed(h MeshHandle) {
	gm, ok := b.meshes[h]
	if !ok {
		return
	}
	gl.BindVertexArray(gm.vao)
	gl.DrawElements(gm.primitive, gm.count, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

// DeleteMesh frees h's buffers.
func (b *GL) DeleteMesh(h MeshHandle) {
	gm, ok := b.meshes[h]
	if !ok {
		return
	}
	gl.DeleteBuffers(4, &gm.buffers[0])
	gl.DeleteVertexArrays(1, &gm.vao)
	delete(b.meshes, h)
}

// Destroy releases every GL object owned by the backend.
func (b *GL) Destroy() {
	b.log.Info("closing renderer")
	for h := range b.meshes {
		b.DeleteMesh(h)
	}
	for id, t := range b.targets {
		gl.DeleteFramebuffers(1, &t.fbo)
		gl.DeleteTextures(1, &t.depthTexture)
		delete(b.targets, id)
	}
	for id, p := range b.programs {
		gl.DeleteProgram(p.id)
		delete(b.programs, id)
	}
	b.current = nil
}
