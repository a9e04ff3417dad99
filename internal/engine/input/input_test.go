package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func textEvent(s string) *sdl.TextInputEvent {
	e := &sdl.TextInputEvent{Type: sdl.TEXTINPUT}
	copy(e.Text[:], s)
	return e
}

func TestTogglesFlipPerPress(t *testing.T) {
	in := New()

	in.handle(textEvent(" "))
	if !in.Toggled(' ') {
		t.Fatal("space should be on after one press")
	}
	in.handle(textEvent("t"))
	in.handle(textEvent(" "))
	if in.Toggled(' ') {
		t.Error("space should be off after two presses")
	}
	if !in.Toggled('t') {
		t.Error("t should be on")
	}
	if in.Toggled('c') {
		t.Error("untouched toggles start off")
	}
	if got := string(in.Chars()); got != " t " {
		t.Errorf("chars: got %q", got)
	}

	in.reset()
	if len(in.Chars()) != 0 {
		t.Error("chars should reset per frame")
	}
	if !in.Toggled('t') {
		t.Error("toggles persist across frames")
	}
}

func TestMouseDeltaAccumulates(t *testing.T) {
	in := New()
	in.handle(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, XRel: 3, YRel: -1})
	in.handle(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, XRel: 2, YRel: 4})

	dx, dy := in.MouseDelta()
	if dx != 5 || dy != 3 {
		t.Errorf("delta: got (%v, %v), want (5, 3)", dx, dy)
	}
	in.reset()
	if dx, dy := in.MouseDelta(); dx != 0 || dy != 0 {
		t.Error("delta should reset per frame")
	}
}

func TestQuitEvents(t *testing.T) {
	in := New()
	in.handle(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_w}})
	if in.QuitRequested() {
		t.Fatal("w should not quit")
	}
	in.handle(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}})
	if !in.QuitRequested() {
		t.Error("escape should quit")
	}

	in = New()
	in.handle(&sdl.QuitEvent{Type: sdl.QUIT})
	if !in.QuitRequested() {
		t.Error("window close should quit")
	}
}

func TestResize(t *testing.T) {
	in := New()
	in.handle(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 640, Data2: 480})
	w, h, ok := in.Resized()
	if !ok || w != 640 || h != 480 {
		t.Errorf("resize: got %d x %d ok=%v", w, h, ok)
	}
}
