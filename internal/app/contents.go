package app

import (
	"math/rand/v2"
	"time"

	"github.com/Faultbox/bodyfield/internal/config"
	"github.com/Faultbox/bodyfield/internal/engine/lighting"
	"github.com/Faultbox/bodyfield/internal/engine/render"
	"github.com/Faultbox/bodyfield/internal/engine/scene"
	"github.com/Faultbox/bodyfield/pkg/math"
)

// Mesh file names in the resource directory.
const (
	BunnyMesh  = "bunny.obj"
	TeapotMesh = "teapot.obj"
	SphereMesh = "sphere.obj"
	GroundMesh = "ground.obj"
	ArrowMesh  = "arrow.obj"
)

// Light setup.
var (
	sunPosition = math.Vec3{X: -20, Y: 10, Z: 0}
	sunColor    = math.Vec3{X: 0.7, Y: 0.7, Z: 1.0}
)

// HUD inset placement.
const (
	bunnyLift  = 2.0
	teapotLift = 2.3
)

// Meshes are the drawables the scene is built from.
type Meshes struct {
	Bunny, Teapot, Sphere, Ground, Arrow render.Drawable
}

// newRand returns a generator for seed, or a time-seeded one for seed 0.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// BuildContents lays out the field, sun, ground, frustum marker and HUD
// showcase from cfg.
func BuildContents(cfg config.SceneConfig, m Meshes, rng *rand.Rand) scene.Contents {
	field := scene.FieldConfig{
		Rows:       cfg.Rows,
		Cols:       cfg.Cols,
		Min:        cfg.GroundMin,
		Max:        cfg.GroundMax,
		EvenOffset: cfg.BunnyOffset,
		Animate:    true,
	}

	return scene.Contents{
		Bodies:  scene.BuildField(field, m.Bunny, m.Teapot, rng),
		Sun:     scene.NewSunBody(m.Sphere, sunPosition),
		Ground:  scene.NewGroundBody(m.Ground),
		Frustum: scene.NewFrustumMarker(m.Arrow),
		Showcase: []scene.Showcase{
			{Mesh: m.Bunny, Side: 1, Lift: bunnyLift},
			{Mesh: m.Teapot, Side: -1, Lift: teapotLift},
		},
		Light: lighting.New(sunPosition, sunColor),
	}
}
