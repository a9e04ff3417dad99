package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/bodyfield/pkg/math"
)

func TestNewStack(t *testing.T) {
	s := NewStack()
	if s.Depth() != 1 {
		t.Fatalf("new stack depth: got %d, want 1", s.Depth())
	}
	if s.Top() != math.Identity() {
		t.Errorf("new stack top should be identity, got %v", s.Top())
	}
}

func TestPushPop(t *testing.T) {
	s := NewStack()
	s.Translate(1, 2, 3)
	base := s.Top()

	s.Push()
	if s.Depth() != 2 {
		t.Fatalf("depth after push: got %d, want 2", s.Depth())
	}
	if s.Top() != base {
		t.Error("push should duplicate the top")
	}

	s.Scale(4)
	if s.Top() == base {
		t.Error("operations after push should change the top")
	}

	s.Pop()
	if s.Depth() != 1 {
		t.Fatalf("depth after pop: got %d, want 1", s.Depth())
	}
	if s.Top() != base {
		t.Error("pop should restore the previous top")
	}
}

func TestPopLastEntryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when popping the last entry")
		}
	}()
	NewStack().Pop()
}

func TestSaveRestoresDepth(t *testing.T) {
	s := NewStack()
	s.Translate(1, 2, 3)
	before := s.Top()

	restore := s.Save()
	s.Scale(4)
	if s.Depth() != 2 {
		t.Errorf("depth inside Save: got %d, want 2", s.Depth())
	}
	restore()

	if s.Depth() != 1 {
		t.Errorf("depth after restore: got %d, want 1", s.Depth())
	}
	if s.Top() != before {
		t.Errorf("restore should bring back the saved top, got %v", s.Top())
	}
}

func TestSaveUnbalancedRestorePanics(t *testing.T) {
	tests := []struct {
		name  string
		inner func(s *Stack)
	}{
		{"extra push", func(s *Stack) { s.Push(); s.Translate(9, 9, 9) }},
		{"extra pop", func(s *Stack) { s.Pop() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack()
			s.Push()
			restore := s.Save()
			tt.inner(s)

			func() {
				defer func() {
					if recover() == nil {
						t.Error("expected panic on unbalanced restore")
					}
				}()
				restore()
			}()

			if s.Depth() > 2 {
				t.Errorf("stack should be unwound to the saved depth, got %d", s.Depth())
			}
		})
	}
}

func TestSaveDoubleRestorePanics(t *testing.T) {
	s := NewStack()
	restore := s.Save()
	restore()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on second restore")
		}
	}()
	restore()
}

func TestWithPopsOnPanic(t *testing.T) {
	s := NewStack()
	func() {
		defer func() { _ = recover() }()
		s.With(func() {
			s.Translate(1, 0, 0)
			panic("draw failed")
		})
	}()

	if s.Depth() != 1 {
		t.Errorf("With should pop on panic, depth = %d", s.Depth())
	}
	if s.Top() != math.Identity() {
		t.Errorf("With should restore the top on panic, got %v", s.Top())
	}
}

func TestWithNested(t *testing.T) {
	s := NewStack()
	var inner int
	s.With(func() {
		s.With(func() {
			inner = s.Depth()
		})
	})
	if inner != 3 {
		t.Errorf("nested With depth: got %d, want 3", inner)
	}
	if s.Depth() != 1 {
		t.Errorf("depth after nested With: got %d, want 1", s.Depth())
	}
}

func TestOperationsMatchReference(t *testing.T) {
	s := NewStack()
	s.Translate(3, 0, -2)
	s.Scale(1.5)
	s.Translate(0, -0.33, 0)
	s.Rotate(0.8, math.YAxis)
	s.ScaleXYZ(1, 2, 1)
	s.Multiply(math.RotateX(0.25))

	ref := mgl32.Translate3D(3, 0, -2).
		Mul4(mgl32.Scale3D(1.5, 1.5, 1.5)).
		Mul4(mgl32.Translate3D(0, -0.33, 0)).
		Mul4(mgl32.HomogRotate3D(0.8, mgl32.Vec3{0, 1, 0})).
		Mul4(mgl32.Scale3D(1, 2, 1)).
		Mul4(mgl32.HomogRotate3DX(0.25))

	if !s.Top().ApproxEqual(math.Mat4(ref), 1e-5) {
		t.Errorf("stack top = %v\nwant %v", s.Top(), ref)
	}
}

func TestNormalMatrixMatchesReference(t *testing.T) {
	s := NewStack()
	s.Translate(1, 2, 3)
	s.Rotate(0.5, math.Vec3{X: 1, Y: 1, Z: 0})
	s.ScaleXYZ(1, 2, 1)

	ref := mgl32.Mat4(s.Top()).Inv().Transpose()
	if !s.NormalMatrix().ApproxEqual(math.Mat4(ref), 1e-5) {
		t.Errorf("normal matrix = %v\nwant %v", s.NormalMatrix(), ref)
	}
	if s.NormalMatrix().ApproxEqual(s.Top(), 1e-3) {
		t.Error("normal matrix should differ from the top under non-uniform scale")
	}
}

func TestCompositionOrderMatters(t *testing.T) {
	a := NewStack()
	a.Translate(2, 0, 0)
	a.Scale(2)

	b := NewStack()
	b.Scale(2)
	b.Translate(2, 0, 0)

	if a.Top() == b.Top() {
		t.Error("translate-then-scale should differ from scale-then-translate")
	}
	// Local-frame semantics: the later scale does not scale the earlier translation.
	if got := a.Top().Translation(); got != (math.Vec3{X: 2}) {
		t.Errorf("translation after T·S: got %v, want (2, 0, 0)", got)
	}
	if got := b.Top().Translation(); got != (math.Vec3{X: 4}) {
		t.Errorf("translation after S·T: got %v, want (4, 0, 0)", got)
	}
}
