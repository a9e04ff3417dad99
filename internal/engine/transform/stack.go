// Package transform provides the save/restore matrix stack used to compose
// nested coordinate transforms.
package transform

import (
	"fmt"

	"github.com/Faultbox/bodyfield/pkg/math"
)

// Stack is a non-empty stack of cumulative transforms. The top entry is the
// active transform; every elementary operation right-multiplies it, so the
// most recent call is applied to vertices first.
type Stack struct {
	mats []math.Mat4
}

// NewStack returns a stack holding a single identity matrix.
func NewStack() *Stack {
	s := &Stack{mats: make([]math.Mat4, 1, 8)}
	s.mats[0] = math.Identity()
	return s
}

// Depth returns the number of entries.
func (s *Stack) Depth() int {
	return len(s.mats)
}

// Top returns the active transform.
func (s *Stack) Top() math.Mat4 {
	return s.mats[len(s.mats)-1]
}

// Push duplicates the top entry.
func (s *Stack) Push() {
	if len(s.mats) == 0 {
		panic("transform: push on empty stack")
	}
	s.mats = append(s.mats, s.Top())
}

// Pop discards the top entry. Popping the last entry is a programming error.
func (s *Stack) Pop() {
	if len(s.mats) <= 1 {
		panic("transform: pop would empty the stack")
	}
	s.mats = s.mats[:len(s.mats)-1]
}

// Save pushes and returns a function that pops back to the depth the stack
// had before the push. The restore panics when the stack is not exactly one
// entry above that depth, and when it is called twice. On an unbalanced
// restore the stack is still unwound before the panic.
func (s *Stack) Save() (restore func()) {
	depth := len(s.mats)
	s.Push()
	done := false
	return func() {
		if done {
			panic("transform: restore called twice")
		}
		done = true
		if got := len(s.mats); got != depth+1 {
			s.unwind(depth)
			panic(fmt.Sprintf("transform: unbalanced restore, stack at %d, want %d", got, depth+1))
		}
		s.mats = s.mats[:depth]
	}
}

// With runs fn between a push and its matching pop. When fn panics the stack
// is unwound to its previous depth and the panic continues.
func (s *Stack) With(fn func()) {
	depth := len(s.mats)
	restore := s.Save()
	finished := false
	defer func() {
		if !finished {
			s.unwind(depth)
			return
		}
		restore()
	}()
	fn()
	finished = true
}

// unwind drops entries above depth.
func (s *Stack) unwind(depth int) {
	if len(s.mats) > depth {
		s.mats = s.mats[:depth]
	}
}

// Multiply right-multiplies the top by m.
func (s *Stack) Multiply(m math.Mat4) {
	top := &s.mats[len(s.mats)-1]
	*top = top.Mul(m)
}

// Translate applies a translation in the local frame of the top.
func (s *Stack) Translate(x, y, z float32) {
	s.Multiply(math.Translate(x, y, z))
}

// TranslateVec is Translate with a vector argument.
func (s *Stack) TranslateVec(v math.Vec3) {
	s.Multiply(math.Translate(v.X, v.Y, v.Z))
}

// Rotate applies a rotation of angle radians about axis.
func (s *Stack) Rotate(angle float32, axis math.Vec3) {
	s.Multiply(math.RotateAxis(axis, angle))
}

// Scale applies a uniform scale.
func (s *Stack) Scale(f float32) {
	s.Multiply(math.Scale(f, f, f))
}

// ScaleXYZ applies a per-axis scale.
func (s *Stack) ScaleXYZ(x, y, z float32) {
	s.Multiply(math.Scale(x, y, z))
}

// NormalMatrix returns transpose(inverse(Top())).
func (s *Stack) NormalMatrix() math.Mat4 {
	return s.Top().InverseTranspose()
}
