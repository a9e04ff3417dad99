package scene

import (
	"github.com/Faultbox/bodyfield/internal/engine/render"
	"github.com/Faultbox/bodyfield/internal/engine/transform"
	"github.com/Faultbox/bodyfield/pkg/math"
)

// recordingBackend remembers the latest value of every uniform.
type recordingBackend struct {
	binds, unbinds int
	vec3s          map[string]math.Vec3
	floats         map[string]float32
	mats           map[string]math.Mat4
}

func newRecordingBackend() *recordingBackend {
	return &recordingBackend{
		vec3s:  make(map[string]math.Vec3),
		floats: make(map[string]float32),
		mats:   make(map[string]math.Mat4),
	}
}

func (b *recordingBackend) Bind()                            { b.binds++ }
func (b *recordingBackend) Unbind()                          { b.unbinds++ }
func (b *recordingBackend) SetVec3(name string, v math.Vec3) { b.vec3s[name] = v }
func (b *recordingBackend) SetFloat(name string, v float32)  { b.floats[name] = v }
func (b *recordingBackend) SetMat4(name string, m math.Mat4) { b.mats[name] = m }

// drawCall is the uniform state captured when a mesh was drawn.
type drawCall struct {
	mesh       string
	modelView  math.Mat4
	normal     math.Mat4
	projection math.Mat4
	diffuse    math.Vec3
	lightPos   math.Vec3
}

// fakeMesh appends one drawCall per Draw to a shared log.
type fakeMesh struct {
	name string
	log  *[]drawCall
}

func (m *fakeMesh) Draw(b render.Backend) {
	rb := b.(*recordingBackend)
	*m.log = append(*m.log, drawCall{
		mesh:       m.name,
		modelView:  rb.mats[render.UniformModelView],
		normal:     rb.mats[render.UniformNormal],
		projection: rb.mats[render.UniformProjection],
		diffuse:    rb.vec3s[render.UniformDiffuse],
		lightPos:   rb.vec3s[render.UniformLightPos],
	})
}

type rect struct{ x, y, w, h int }

type fakeSurface struct {
	viewports []rect
	clears    []rect
	culling   bool
}

func (s *fakeSurface) SetViewport(x, y, w, h int) {
	s.viewports = append(s.viewports, rect{x, y, w, h})
}

func (s *fakeSurface) ClearRegion(x, y, w, h int) {
	s.clears = append(s.clears, rect{x, y, w, h})
}

func (s *fakeSurface) SetCulling(enabled bool) { s.culling = enabled }

// fixedCamera applies constant matrices.
type fixedCamera struct {
	projection math.Mat4
	view       math.Mat4
}

func (c *fixedCamera) ApplyProjection(p *transform.Stack, _ float32) { p.Multiply(c.projection) }
func (c *fixedCamera) ApplyView(mv *transform.Stack)                 { mv.Multiply(c.view) }
func (c *fixedCamera) ViewMatrix() math.Mat4                         { return c.view }

const eps = 1e-4
