// Package camera provides the first-person camera that drives the main view.
package camera

import (
	gomath "math"

	"github.com/Faultbox/bodyfield/internal/engine/transform"
	"github.com/Faultbox/bodyfield/pkg/math"
)

const (
	degrees = gomath.Pi / 180

	defaultFovy = 45 * degrees
	minFovy     = 4 * degrees
	maxFovy     = 114 * degrees
	maxPitch    = 80 * degrees
)

// FirstPerson is a free-look camera that walks on the ground plane.
type FirstPerson struct {
	Position math.Vec3
	Yaw      float32 // radians about +Y, 0 looks down -Z
	Pitch    float32 // radians, positive looks up

	Fovy      float32 // vertical field of view, radians
	Near, Far float32

	// Sensitivity
	TurnSensitivity float32 // radians per pixel
	MoveSpeed       float32 // units per key press

	mousePrevX, mousePrevY float32
	hasMousePrev           bool
}

// NewFirstPerson creates a camera at the near edge of the field, looking in.
func NewFirstPerson() *FirstPerson {
	return &FirstPerson{
		Position:        math.Vec3{X: 0, Y: 2, Z: 22},
		Fovy:            defaultFovy,
		Near:            0.1,
		Far:             1000,
		TurnSensitivity: 0.005,
		MoveSpeed:       0.1,
	}
}

// orientation is yaw about world up followed by pitch about the local X axis.
func (c *FirstPerson) orientation() math.Quat {
	yaw := math.QuatFromAxisAngle(math.YAxis, c.Yaw)
	pitch := math.QuatFromAxisAngle(math.XAxis, c.Pitch)
	return yaw.Mul(pitch)
}

// Forward returns the unit view direction.
func (c *FirstPerson) Forward() math.Vec3 {
	return c.orientation().Rotate(math.Vec3{Z: -1}).Normalize()
}

// ViewMatrix returns the world-to-camera transform.
func (c *FirstPerson) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Forward()), math.YAxis)
}

// ApplyProjection multiplies the perspective projection onto p.
func (c *FirstPerson) ApplyProjection(p *transform.Stack, aspect float32) {
	p.Multiply(math.Perspective(c.Fovy, aspect, c.Near, c.Far))
}

// ApplyView multiplies the view matrix onto mv.
func (c *FirstPerson) ApplyView(mv *transform.Stack) {
	mv.Multiply(c.ViewMatrix())
}

// SetMousePrev records the cursor position the next MouseMoved is measured from.
func (c *FirstPerson) SetMousePrev(x, y float32) {
	c.mousePrevX, c.mousePrevY = x, y
	c.hasMousePrev = true
}

// MouseMoved turns the camera by the cursor motion since the last call.
func (c *FirstPerson) MouseMoved(x, y float32) {
	if c.hasMousePrev {
		c.Turn(x-c.mousePrevX, y-c.mousePrevY)
	}
	c.SetMousePrev(x, y)
}

// Turn applies a relative mouse motion in pixels.
func (c *FirstPerson) Turn(dx, dy float32) {
	c.Yaw -= dx * c.TurnSensitivity
	c.Pitch -= dy * c.TurnSensitivity

	// Clamp pitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// AddFovy widens (positive) or narrows the field of view.
func (c *FirstPerson) AddFovy(delta float32) {
	c.Fovy += delta
	if c.Fovy < minFovy {
		c.Fovy = minFovy
	}
	if c.Fovy > maxFovy {
		c.Fovy = maxFovy
	}
}

// ForwardDirection returns the walking direction on the XZ plane.
func (c *FirstPerson) ForwardDirection() (x, z float32) {
	return float32(-gomath.Sin(float64(c.Yaw))), float32(-gomath.Cos(float64(c.Yaw)))
}

// RightDirection returns the strafing direction on the XZ plane.
func (c *FirstPerson) RightDirection() (x, z float32) {
	return float32(gomath.Cos(float64(c.Yaw))), float32(-gomath.Sin(float64(c.Yaw)))
}

// HandleMovement walks the camera. Pitch never changes the height.
func (c *FirstPerson) HandleMovement(forward, right float32) {
	fx, fz := c.ForwardDirection()
	rx, rz := c.RightDirection()
	c.Position.X += (fx*forward + rx*right) * c.MoveSpeed
	c.Position.Z += (fz*forward + rz*right) * c.MoveSpeed
}

// W, A, S and D move one step forward, left, back and right.
func (c *FirstPerson) W() { c.HandleMovement(1, 0) }
func (c *FirstPerson) A() { c.HandleMovement(0, -1) }
func (c *FirstPerson) S() { c.HandleMovement(-1, 0) }
func (c *FirstPerson) D() { c.HandleMovement(0, 1) }
