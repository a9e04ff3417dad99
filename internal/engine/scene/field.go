package scene

import (
	"math/rand/v2"

	"github.com/Faultbox/bodyfield/internal/engine/render"
	"github.com/Faultbox/bodyfield/pkg/math"
)

// FieldConfig lays bodies out on a grid over the square [Min, Max]² of the
// ground plane.
type FieldConfig struct {
	Rows, Cols int
	Min, Max   float32
	// EvenOffset is the vertical offset of bodies on even cells.
	EvenOffset float32
	// OddOffset is the vertical offset of bodies on odd cells.
	OddOffset float32
	Animate   bool
}

// DefaultFieldConfig returns an 11×11 grid over [-20, 20]².
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Rows:       11,
		Cols:       11,
		Min:        -20,
		Max:        20,
		EvenOffset: -0.333099,
		Animate:    true,
	}
}

// BuildField creates one standard body per interior grid cell. Cells whose
// coordinates sum to an even number get the even mesh, the rest the odd mesh.
// Bodies are returned in row-major cell order.
func BuildField(cfg FieldConfig, even, odd render.Drawable, rng *rand.Rand) []*Body {
	if cfg.Rows < 2 || cfg.Cols < 2 {
		return nil
	}

	cellX := (cfg.Max - cfg.Min) / float32(cfg.Rows)
	cellZ := (cfg.Max - cfg.Min) / float32(cfg.Cols)

	bodies := make([]*Body, 0, (cfg.Rows-1)*(cfg.Cols-1))
	for x := 1; x < cfg.Rows; x++ {
		for z := 1; z < cfg.Cols; z++ {
			pos := math.Vec3{
				X: cellX*float32(x) + cfg.Min,
				Z: cellZ*float32(z) + cfg.Min,
			}

			var b *Body
			if (x+z)%2 == 0 {
				b = NewStandardBody(even, pos, cfg.EvenOffset, rng)
			} else {
				b = NewStandardBody(odd, pos, cfg.OddOffset, rng)
			}
			if cfg.Animate {
				b.AttachAnimation(rng)
			}
			bodies = append(bodies, b)
		}
	}
	return bodies
}
