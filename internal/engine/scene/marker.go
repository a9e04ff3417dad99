package scene

import (
	"github.com/Faultbox/bodyfield/internal/engine/render"
	"github.com/Faultbox/bodyfield/internal/engine/transform"
	"github.com/Faultbox/bodyfield/pkg/math"
)

// Marker is a body placed by an arbitrary matrix instead of a Placement.
// The minimap uses one to show where the main camera is and where it looks.
type Marker struct {
	mesh     render.Drawable
	material Material
}

// NewFrustumMarker creates the camera indicator.
func NewFrustumMarker(mesh render.Drawable) *Marker {
	return &Marker{mesh: mesh, material: markerMaterial}
}

// RenderAt draws the marker with model matrix m composed onto mv.
func (mk *Marker) RenderAt(mv *transform.Stack, m math.Mat4, backend render.Backend) {
	mk.material.Upload(backend)
	mv.With(func() {
		mv.Multiply(m)
		submitModelView(mv, backend)
		mk.mesh.Draw(backend)
	})
}

// Showcase is a mesh spinning in one of the HUD insets.
type Showcase struct {
	Mesh render.Drawable
	// Side is +1 for the right edge of the screen, -1 for the left.
	Side float32
	// Lift raises the mesh inside the inset, in scaled units.
	Lift float32
}
