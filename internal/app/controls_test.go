package app

import (
	"testing"
	"time"

	"github.com/Faultbox/bodyfield/internal/config"
	"github.com/Faultbox/bodyfield/internal/engine/camera"
)

func pressed(keys ...byte) func(byte) bool {
	return func(c byte) bool {
		for _, k := range keys {
			if k == c {
				return true
			}
		}
		return false
	}
}

func TestTogglesFlipConfiguredDefaults(t *testing.T) {
	cfg := config.Default().Scene

	s := toggles(cfg, pressed())
	if !s.Animate || s.Minimap || s.Cull || s.PointerReleased {
		t.Errorf("untoggled state: %+v", s)
	}

	s = toggles(cfg, pressed(' ', 't', 'c', 'p'))
	if s.Animate || !s.Minimap || !s.Cull || !s.PointerReleased {
		t.Errorf("toggled state: %+v", s)
	}

	cfg.Minimap = true
	if toggles(cfg, pressed('t')).Minimap {
		t.Error("t should hide a minimap that starts visible")
	}
}

func TestSteer(t *testing.T) {
	cam := camera.NewFirstPerson()
	start := cam.Position
	fovy := cam.Fovy

	steer(cam, []byte("ww"))
	if d := start.Z - cam.Position.Z; d < 0.19 || d > 0.21 {
		t.Errorf("two w presses should move 0.2 forward, moved %v", d)
	}

	steer(cam, []byte("z"))
	if cam.Fovy >= fovy {
		t.Errorf("z should narrow fovy: %v -> %v", fovy, cam.Fovy)
	}
	steer(cam, []byte("Z"))
	if diff := cam.Fovy - fovy; diff > 1e-5 || diff < -1e-5 {
		t.Errorf("Z should undo z: %v vs %v", cam.Fovy, fovy)
	}

	before := cam.Position
	steer(cam, []byte("xq1"))
	if cam.Position != before {
		t.Error("unbound keys should not move the camera")
	}
}

func TestFPSTitle(t *testing.T) {
	tests := []struct {
		frames  int
		elapsed time.Duration
		want    string
	}{
		{60, time.Second, "bodyfield - 60 fps"},
		{90, 1500 * time.Millisecond, "bodyfield - 60 fps"},
		{1, 2 * time.Second, "bodyfield - 0 fps"},
	}
	for _, tt := range tests {
		if got := fpsTitle(tt.frames, tt.elapsed); got != tt.want {
			t.Errorf("fpsTitle(%d, %v) = %q, want %q", tt.frames, tt.elapsed, got, tt.want)
		}
	}
}
