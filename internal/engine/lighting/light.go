// Package lighting provides the scene's single light source.
package lighting

import "github.com/Faultbox/bodyfield/pkg/math"

// Light is a point light with a world position and color. Shading happens in
// camera space, so the camera-space position has to be refreshed for every
// viewpoint before anything in it is drawn.
type Light struct {
	Position math.Vec3 // World position
	Color    math.Vec3 // RGB color (0-1 range)

	posCam math.Vec4
}

// New creates a light at the given world position.
func New(position, color math.Vec3) *Light {
	return &Light{
		Position: position,
		Color:    color,
		posCam:   position.Vec4(1),
	}
}

// SetCameraSpacePosition recomputes the camera-space position as
// view × (Position, 1).
func (l *Light) SetCameraSpacePosition(view math.Mat4) {
	l.posCam = view.MulVec4(l.Position.Vec4(1))
}

// CameraSpacePosition returns the position computed by the last
// SetCameraSpacePosition call.
func (l *Light) CameraSpacePosition() math.Vec4 {
	return l.posCam
}
