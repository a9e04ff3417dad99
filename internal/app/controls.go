package app

import (
	"github.com/Faultbox/bodyfield/internal/config"
	"github.com/Faultbox/bodyfield/internal/engine/camera"
)

// Toggle keys. Each press flips the setting away from its configured value.
const (
	keyAnimate = ' '
	keyMinimap = 't'
	keyCull    = 'c'
	keyPointer = 'p'
)

// fovyStep is the field of view change per z/Z press, in radians.
const fovyStep = 0.1

// toggleState is the scene state the keyboard can flip.
type toggleState struct {
	Animate bool
	Minimap bool
	Cull    bool
	// PointerReleased shows the cursor and stops mouse look.
	PointerReleased bool
}

// toggles combines the configured defaults with the key toggles.
func toggles(cfg config.SceneConfig, toggled func(c byte) bool) toggleState {
	return toggleState{
		Animate:         cfg.Animate != toggled(keyAnimate),
		Minimap:         cfg.Minimap != toggled(keyMinimap),
		Cull:            cfg.Cull != toggled(keyCull),
		PointerReleased: toggled(keyPointer),
	}
}

// steer applies this frame's typed characters to the camera.
func steer(cam *camera.FirstPerson, chars []byte) {
	for _, c := range chars {
		switch c {
		case 'w':
			cam.W()
		case 'a':
			cam.A()
		case 's':
			cam.S()
		case 'd':
			cam.D()
		case 'z':
			cam.AddFovy(-fovyStep)
		case 'Z':
			cam.AddFovy(fovyStep)
		}
	}
}
