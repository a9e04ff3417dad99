// Package renderer owns global OpenGL state: depth testing, clearing,
// viewport, scissor and face culling.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/bodyfield/internal/logger"
)

// ClearColor is the background color.
var ClearColor = [4]float32{1, 1, 1, 1}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer implements render.Surface on the current GL context.
type Renderer struct {
	config  Config
	culling bool
}

// New loads GL function pointers and sets the default state.
// Must be called after the GL context is current.
func New(cfg Config) (*Renderer, error) {
	// Load GL entry points for the current context
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	// Default state. Culling itself stays off until SetCulling.
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.CullFace(gl.BACK)
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])

	return &Renderer{config: cfg}, nil
}

// Resize records the drawable size.
func (r *Renderer) Resize(width, height int) {
	if width == r.config.Width && height == r.config.Height {
		return
	}
	r.config.Width = width
	r.config.Height = height
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the drawable size.
func (r *Renderer) Size() (width, height int) {
	return r.config.Width, r.config.Height
}

// Begin clears the whole drawable.
func (r *Renderer) Begin() {
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetViewport sets the GL viewport.
func (r *Renderer) SetViewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// ClearRegion clears color and depth inside the rectangle only.
func (r *Renderer) ClearRegion(x, y, width, height int) {
	// Scissor limits the clear to the rectangle
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(x), int32(y), int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Disable(gl.SCISSOR_TEST)
}

// SetCulling toggles back-face culling.
func (r *Renderer) SetCulling(enabled bool) {
	if enabled == r.culling {
		return
	}
	r.culling = enabled
	if enabled {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
}
