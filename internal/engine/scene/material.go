package scene

import (
	"github.com/Faultbox/bodyfield/internal/engine/render"
	"github.com/Faultbox/bodyfield/pkg/math"
)

// Material holds Blinn-Phong surface coefficients.
type Material struct {
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Shininess float32
}

// Upload sets ka, kd, ks and s on the backend.
func (m Material) Upload(b render.Backend) {
	b.SetVec3(render.UniformAmbient, m.Ambient)
	b.SetVec3(render.UniformDiffuse, m.Diffuse)
	b.SetVec3(render.UniformSpecular, m.Specular)
	b.SetFloat(render.UniformShininess, m.Shininess)
}

var (
	white = math.Vec3{X: 1, Y: 1, Z: 1}

	// sunMaterial is self-lit: only the ambient term contributes.
	sunMaterial = Material{
		Ambient:   white,
		Shininess: 200,
	}

	groundMaterial = Material{
		Ambient:   math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Specular:  white,
		Shininess: 200,
	}

	// showcaseMaterial is used for the HUD insets.
	showcaseMaterial = Material{
		Ambient:   math.Vec3{X: 0.1, Y: 0.1, Z: 0.1},
		Diffuse:   white,
		Specular:  white,
		Shininess: 200,
	}

	markerMaterial = Material{
		Ambient:   math.Vec3{X: 0.3, Y: 0.05, Z: 0.05},
		Diffuse:   math.Vec3{X: 0.9, Y: 0.1, Z: 0.1},
		Specular:  white,
		Shininess: 50,
	}
)
