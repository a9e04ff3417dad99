// Package render defines the contract between scene composition and the
// graphics backend: uniform upload, drawable meshes and the render surface.
package render

import "github.com/Faultbox/bodyfield/pkg/math"

// Uniform names shared by the Blinn-Phong program and the scene code.
const (
	UniformAmbient    = "ka"
	UniformDiffuse    = "kd"
	UniformSpecular   = "ks"
	UniformShininess  = "s"
	UniformModelView  = "MV"
	UniformNormal     = "IT"
	UniformProjection = "P"
	UniformLightPos   = "lightPos"
	UniformLightColor = "lightColor"
)

// Vertex attribute slots. Programs bind the names to the slots before linking
// so sources without layout qualifiers still match the vertex arrays.
const (
	AttribPosition uint32 = 0
	AttribNormal   uint32 = 1

	AttribPositionName = "aPos"
	AttribNormalName   = "aNor"
)

// Backend is a bound shading program that accepts uniform values.
type Backend interface {
	Bind()
	Unbind()
	SetVec3(name string, v math.Vec3)
	SetFloat(name string, v float32)
	SetMat4(name string, m math.Mat4)
}

// Drawable is a mesh already resident on the GPU.
// Draw issues the draw call with whatever state is bound on b.
type Drawable interface {
	Draw(b Backend)
}

// Surface is the framebuffer the composer draws into.
type Surface interface {
	// SetViewport maps normalized device coordinates to the given pixel rectangle.
	SetViewport(x, y, width, height int)
	// ClearRegion clears color and depth inside the rectangle only.
	ClearRegion(x, y, width, height int)
	SetCulling(enabled bool)
}
