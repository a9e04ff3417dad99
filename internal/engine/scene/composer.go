package scene

import (
	gomath "math"

	"github.com/Faultbox/bodyfield/internal/engine/lighting"
	"github.com/Faultbox/bodyfield/internal/engine/render"
	"github.com/Faultbox/bodyfield/internal/engine/transform"
	"github.com/Faultbox/bodyfield/pkg/math"
)

// Viewpoint names, in the order they are drawn.
const (
	ViewHUDRight = "hud-right"
	ViewHUDLeft  = "hud-left"
	ViewMain     = "main"
	ViewMinimap  = "minimap"
)

// Minimap layout.
const (
	minimapFraction = 0.5 // side length as a fraction of the window height
	minimapExtent   = 21
	minimapNear     = 1
	minimapFar      = 51
	minimapHeight   = 50
)

// hudLightPos is the light position used by the HUD insets, already in
// camera space.
var hudLightPos = math.Vec3{X: 0, Y: 5, Z: 3}

// Camera supplies the main viewpoint.
type Camera interface {
	ApplyProjection(p *transform.Stack, aspect float32)
	ApplyView(mv *transform.Stack)
	ViewMatrix() math.Mat4
}

// Frame holds the per-frame inputs to Render.
type Frame struct {
	// Time is the animation clock in seconds.
	Time          float64
	Width, Height int
	// Animate false renders as if Time were 0.
	Animate bool
	Minimap bool
	Cull    bool
}

// Contents is everything the composer draws.
type Contents struct {
	Bodies   []*Body
	Sun      *Body
	Ground   *Body
	Frustum  *Marker
	Showcase []Showcase
	Light    *lighting.Light
}

// ViewpointRecord is what one viewpoint uploaded for P and the view, and the
// stack depths while it was active.
type ViewpointRecord struct {
	Name       string
	Projection math.Mat4
	View       math.Mat4
	PDepth     int
	MVDepth    int
}

// Composer draws a frame as a sequence of independent viewpoints sharing one
// projection stack and one modelview stack.
type Composer struct {
	backend render.Backend
	surface render.Surface
	camera  Camera
	scene   Contents

	p  *transform.Stack
	mv *transform.Stack

	last []ViewpointRecord
}

// NewComposer creates a composer with fresh identity stacks.
func NewComposer(backend render.Backend, surface render.Surface, cam Camera, c Contents) *Composer {
	return &Composer{
		backend: backend,
		surface: surface,
		camera:  cam,
		scene:   c,
		p:       transform.NewStack(),
		mv:      transform.NewStack(),
	}
}

// Stacks returns the projection and modelview stacks.
func (c *Composer) Stacks() (p, mv *transform.Stack) {
	return c.p, c.mv
}

// LastFrame returns the viewpoints drawn by the most recent Render call.
// The slice is not reused by later frames.
func (c *Composer) LastFrame() []ViewpointRecord {
	return c.last
}

// Render draws one frame. A zero-height frame is skipped.
func (c *Composer) Render(f Frame) {
	c.last = make([]ViewpointRecord, 0, 4)
	if f.Width <= 0 || f.Height <= 0 {
		return
	}

	t := f.Time
	if !f.Animate {
		t = 0
	}
	aspect := float32(f.Width) / float32(f.Height)

	c.surface.SetCulling(f.Cull)
	c.surface.SetViewport(0, 0, f.Width, f.Height)

	c.backend.Bind()
	defer c.backend.Unbind()

	for _, sc := range c.scene.Showcase {
		c.renderShowcase(sc, aspect, t)
	}
	c.renderMain(aspect, t)
	if f.Minimap {
		c.renderMinimap(f, t)
	}
}

// pass runs one viewpoint: projection, view, light, draw. Both stacks are
// restored when it returns.
func (c *Composer) pass(name string, project, view, light, draw func()) {
	restoreP := c.p.Save()
	defer restoreP()
	project()
	c.backend.SetMat4(render.UniformProjection, c.p.Top())

	restoreMV := c.mv.Save()
	defer restoreMV()
	view()

	c.last = append(c.last, ViewpointRecord{
		Name:       name,
		Projection: c.p.Top(),
		View:       c.mv.Top(),
		PDepth:     c.p.Depth(),
		MVDepth:    c.mv.Depth(),
	})

	light()
	draw()
}

// transformLight moves the scene light into the current view and uploads it.
func (c *Composer) transformLight() {
	l := c.scene.Light
	l.SetCameraSpacePosition(c.mv.Top())
	c.backend.SetVec3(render.UniformLightPos, l.CameraSpacePosition().XYZ())
	c.backend.SetVec3(render.UniformLightColor, l.Color)
}

func (c *Composer) renderShowcase(sc Showcase, aspect float32, t float64) {
	name := ViewHUDRight
	if sc.Side < 0 {
		name = ViewHUDLeft
	}

	c.pass(name,
		func() {
			c.p.Multiply(math.Ortho(-aspect, aspect, -1, 1, -10, 10))
		},
		func() {
			c.mv.Translate(sc.Side*(aspect-0.5), 0, 0)
			c.mv.Scale(0.25)
			c.mv.Translate(0, sc.Lift, 0)
			c.mv.Rotate(float32(t)*0.5, math.YAxis)
		},
		func() {
			c.backend.SetVec3(render.UniformLightPos, hudLightPos)
			c.backend.SetVec3(render.UniformLightColor, c.scene.Light.Color)
		},
		func() {
			showcaseMaterial.Upload(c.backend)
			submitModelView(c.mv, c.backend)
			sc.Mesh.Draw(c.backend)
		},
	)
}

func (c *Composer) renderMain(aspect float32, t float64) {
	c.pass(ViewMain,
		func() { c.camera.ApplyProjection(c.p, aspect) },
		func() { c.camera.ApplyView(c.mv) },
		c.transformLight,
		func() {
			for _, b := range c.scene.Bodies {
				b.Render(c.mv, t, c.backend)
			}
			c.renderIf(c.scene.Sun, t)
			c.renderIf(c.scene.Ground, t)
		},
	)
}

func (c *Composer) renderMinimap(f Frame, t float64) {
	side := int(minimapFraction * float64(f.Height))
	c.surface.SetViewport(0, 0, side, side)
	c.surface.ClearRegion(0, 0, side, side)
	defer c.surface.SetViewport(0, 0, f.Width, f.Height)

	c.pass(ViewMinimap,
		func() {
			c.p.Multiply(math.Ortho(-minimapExtent, minimapExtent, -minimapExtent, minimapExtent, minimapNear, minimapFar))
		},
		func() {
			c.mv.Rotate(gomath.Pi/2, math.XAxis)
			c.mv.Translate(0, -minimapHeight, 0)
		},
		c.transformLight,
		func() {
			for _, b := range c.scene.Bodies {
				b.Render(c.mv, t, c.backend)
			}
			c.renderIf(c.scene.Ground, t)
			c.renderIf(c.scene.Sun, t)
			if c.scene.Frustum != nil {
				c.scene.Frustum.RenderAt(c.mv, c.camera.ViewMatrix().Inverse(), c.backend)
			}
		},
	)
}

func (c *Composer) renderIf(b *Body, t float64) {
	if b != nil {
		b.Render(c.mv, t, c.backend)
	}
}
