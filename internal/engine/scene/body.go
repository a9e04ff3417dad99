// Package scene composes the body field, the sun, the ground and the HUD
// showcase into per-viewpoint draw calls through the transform stacks.
package scene

import (
	gomath "math"
	"math/rand/v2"

	"github.com/Faultbox/bodyfield/internal/engine/render"
	"github.com/Faultbox/bodyfield/internal/engine/transform"
	"github.com/Faultbox/bodyfield/pkg/math"
)

// Pulse amplitude as a fraction of the base scale.
const pulseAmplitude = 0.10

// Placement positions a body on the ground plane.
type Placement struct {
	Position math.Vec3
	// VerticalOffset moves the mesh pivot onto the ground. It is applied
	// after the scale, so it is not scaled itself.
	VerticalOffset float32
	Scale          float32
	Rotation       float32 // radians about +Y
}

// Body is a drawable object in the scene. The mesh is shared and never
// modified; material and placement belong to the body.
type Body struct {
	mesh      render.Drawable
	material  Material
	placement Placement

	animated bool
	phase    float64
}

// NewBody creates a body with an explicit material and placement.
func NewBody(mesh render.Drawable, mat Material, p Placement) *Body {
	return &Body{
		mesh:      mesh,
		material:  mat,
		placement: p,
	}
}

// NewStandardBody creates a field body with a random diffuse color, random
// heading and random scale in [0.5, 2.0).
func NewStandardBody(mesh render.Drawable, position math.Vec3, verticalOffset float32, rng *rand.Rand) *Body {
	mat := Material{
		Ambient:   math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
		Diffuse:   math.Vec3{X: pickColor(rng), Y: pickColor(rng), Z: pickColor(rng)},
		Specular:  white,
		Shininess: 200,
	}
	// Keep the ambient hue in line with the diffuse color.
	mat.Ambient = mat.Diffuse.Scale(1.0 / 8.0)

	return NewBody(mesh, mat, Placement{
		Position:       position,
		VerticalOffset: verticalOffset,
		Rotation:       rng.Float32() * 2 * gomath.Pi,
		Scale:          0.5 + rng.Float32()*1.5,
	})
}

// NewSunBody creates the self-lit marker drawn at the light position.
func NewSunBody(mesh render.Drawable, position math.Vec3) *Body {
	return NewBody(mesh, sunMaterial, Placement{
		Position: position,
		Scale:    2.0,
	})
}

// NewGroundBody creates the ground plane at the origin.
func NewGroundBody(mesh render.Drawable) *Body {
	return NewBody(mesh, groundMaterial, Placement{Scale: 1.0})
}

func pickColor(rng *rand.Rand) float32 {
	return float32(rng.IntN(255)) / 255.0
}

// AttachAnimation makes the body pulse with the animation clock. The phase is
// drawn from rng so bodies sharing a clock do not pulse in lockstep.
func (b *Body) AttachAnimation(rng *rand.Rand) {
	b.animated = true
	b.phase = rng.Float64() * gomath.Pi
}

// Animated reports whether AttachAnimation was called.
func (b *Body) Animated() bool { return b.animated }

// Phase returns the animation phase offset in radians.
func (b *Body) Phase() float64 { return b.phase }

// Material returns the body's material.
func (b *Body) Material() Material { return b.material }

// Placement returns the body's placement.
func (b *Body) Placement() Placement { return b.placement }

// AppliedScale returns the uniform scale used at clock value t.
func (b *Body) AppliedScale(t float64) float32 {
	s := b.placement.Scale
	if !b.animated {
		return s
	}
	return float32(gomath.Cos(t+b.phase))*s*pulseAmplitude + s
}

// Render uploads the material, composes the placement onto mv and draws the
// mesh. mv is left exactly as it was found.
func (b *Body) Render(mv *transform.Stack, t float64, backend render.Backend) {
	b.material.Upload(backend)

	restore := mv.Save()
	defer restore()

	p := b.placement
	mv.TranslateVec(p.Position)
	mv.Scale(b.AppliedScale(t))
	mv.Translate(0, p.VerticalOffset, 0)
	mv.Rotate(p.Rotation, math.YAxis)

	submitModelView(mv, backend)
	b.mesh.Draw(backend)
}

// submitModelView uploads MV and its normal matrix.
func submitModelView(mv *transform.Stack, backend render.Backend) {
	backend.SetMat4(render.UniformModelView, mv.Top())
	backend.SetMat4(render.UniformNormal, mv.NormalMatrix())
}
