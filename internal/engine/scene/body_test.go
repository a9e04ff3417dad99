package scene

import (
	gomath "math"
	"math/rand/v2"
	"testing"

	"github.com/Faultbox/bodyfield/internal/engine/transform"
	"github.com/Faultbox/bodyfield/pkg/math"
)

func TestBodyRenderPlacesMesh(t *testing.T) {
	var log []drawCall
	mesh := &fakeMesh{name: "bunny", log: &log}
	b := NewBody(mesh, groundMaterial, Placement{
		Position:       math.Vec3{X: 3},
		VerticalOffset: -0.333099,
		Scale:          1,
	})

	mv := transform.NewStack()
	backend := newRecordingBackend()
	b.Render(mv, 0, backend)

	if mv.Depth() != 1 {
		t.Fatalf("stack depth after render: got %d, want 1", mv.Depth())
	}
	if mv.Top() != math.Identity() {
		t.Errorf("stack top should be untouched, got %v", mv.Top())
	}
	if len(log) != 1 {
		t.Fatalf("draw calls: got %d, want 1", len(log))
	}

	got := log[0].modelView.Translation()
	want := math.Vec3{X: 3, Y: -0.333099}
	if got.Sub(want).Length() > eps {
		t.Errorf("translation: got %v, want %v", got, want)
	}
}

func TestBodyRenderCompositionOrder(t *testing.T) {
	var log []drawCall
	b := NewBody(&fakeMesh{log: &log}, groundMaterial, Placement{
		Position:       math.Vec3{X: 1, Z: -2},
		VerticalOffset: 1,
		Scale:          2,
		Rotation:       gomath.Pi / 2,
	})

	mv := transform.NewStack()
	b.Render(mv, 0, newRecordingBackend())

	want := math.Translate(1, 0, -2).
		Mul(math.Scale(2, 2, 2)).
		Mul(math.Translate(0, 1, 0)).
		Mul(math.RotateY(gomath.Pi / 2))
	if !log[0].modelView.ApproxEqual(want, eps) {
		t.Errorf("modelview:\ngot  %v\nwant %v", log[0].modelView, want)
	}

	// The offset is applied after the scale, so it is doubled in world units.
	if y := log[0].modelView.Translation().Y; gomath.Abs(float64(y-2)) > eps {
		t.Errorf("offset y: got %v, want 2", y)
	}
}

func TestBodyRenderUploadsNormalMatrix(t *testing.T) {
	var log []drawCall
	b := NewBody(&fakeMesh{log: &log}, groundMaterial, Placement{
		Position: math.Vec3{X: 5, Y: 1},
		Scale:    0.5,
		Rotation: 1.2,
	})

	mv := transform.NewStack()
	mv.Multiply(math.LookAt(math.Vec3{Z: 10}, math.Vec3{}, math.YAxis))
	b.Render(mv, 0, newRecordingBackend())

	want := log[0].modelView.InverseTranspose()
	if !log[0].normal.ApproxEqual(want, eps) {
		t.Errorf("normal matrix:\ngot  %v\nwant %v", log[0].normal, want)
	}
}

func TestBodyMaterialUpload(t *testing.T) {
	backend := newRecordingBackend()
	b := NewSunBody(&fakeMesh{log: new([]drawCall)}, math.Vec3{X: -20, Y: 10})
	b.Render(transform.NewStack(), 0, backend)

	if backend.vec3s["ka"] != white {
		t.Errorf("sun ka: got %v", backend.vec3s["ka"])
	}
	if backend.vec3s["kd"] != (math.Vec3{}) {
		t.Errorf("sun kd should be zero, got %v", backend.vec3s["kd"])
	}
	if backend.floats["s"] != 200 {
		t.Errorf("sun s: got %v", backend.floats["s"])
	}
}

func TestStandardBodyRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		b := NewStandardBody(nil, math.Vec3{}, 0, rng)
		p := b.Placement()
		if p.Scale < 0.5 || p.Scale >= 2 {
			t.Fatalf("scale out of range: %v", p.Scale)
		}
		if p.Rotation < 0 || p.Rotation >= 2*gomath.Pi {
			t.Fatalf("rotation out of range: %v", p.Rotation)
		}
		m := b.Material()
		for _, c := range []float32{m.Diffuse.X, m.Diffuse.Y, m.Diffuse.Z} {
			if c < 0 || c >= 1 {
				t.Fatalf("diffuse channel out of range: %v", c)
			}
		}
		if m.Ambient.Sub(m.Diffuse.Scale(1.0/8.0)).Length() > eps {
			t.Fatalf("ambient should be diffuse/8, got %v for %v", m.Ambient, m.Diffuse)
		}
		if m.Specular != white || m.Shininess != 200 {
			t.Fatalf("unexpected specular terms: %v %v", m.Specular, m.Shininess)
		}
	}
}

func TestAppliedScaleStatic(t *testing.T) {
	b := NewBody(nil, Material{}, Placement{Scale: 1.5})
	for _, tm := range []float64{0, 1, 100} {
		if got := b.AppliedScale(tm); got != 1.5 {
			t.Errorf("static body at t=%v: got %v, want 1.5", tm, got)
		}
	}
}

func TestAppliedScalePulseBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	b := NewBody(nil, Material{}, Placement{Scale: 2})
	b.AttachAnimation(rng)

	if p := b.Phase(); p < 0 || p >= gomath.Pi {
		t.Fatalf("phase out of range: %v", p)
	}

	lo, hi := float32(2*0.9-eps), float32(2*1.1+eps)
	for i := 0; i < 1000; i++ {
		s := b.AppliedScale(float64(i) * 0.05)
		if s < lo || s > hi {
			t.Fatalf("scale %v outside [%v, %v]", s, lo, hi)
		}
	}

	want := float32(gomath.Cos(b.Phase()))*2*0.10 + 2
	if got := b.AppliedScale(0); gomath.Abs(float64(got-want)) > eps {
		t.Errorf("scale at t=0: got %v, want %v", got, want)
	}
}

func TestAnimationPhasesDiffer(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	a := NewBody(nil, Material{}, Placement{Scale: 1})
	b := NewBody(nil, Material{}, Placement{Scale: 1})
	a.AttachAnimation(rng)
	b.AttachAnimation(rng)

	if a.Phase() == b.Phase() {
		t.Fatal("bodies sharing a generator should get different phases")
	}
	if a.AppliedScale(1) == b.AppliedScale(1) {
		t.Error("bodies with different phases should not pulse in lockstep")
	}
}
