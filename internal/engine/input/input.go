// Package input turns SDL2 events into per-frame character presses, toggles
// and relative mouse motion.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Input collects the events of one frame.
type Input struct {
	chars   []byte
	toggles [256]bool

	mouseDX, mouseDY float32

	resized       bool
	width, height int

	quit bool
}

// New creates an input handler with every toggle off.
func New() *Input {
	return &Input{chars: make([]byte, 0, 16)}
}

// Start enables SDL text input so typed characters arrive with key repeat
// and keyboard layout applied.
func (i *Input) Start() {
	sdl.StartTextInput()
}

// Update drains the SDL queue. Returns true when the app should quit.
func (i *Input) Update() bool {
	i.reset()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.handle(event)
	}
	return i.quit
}

func (i *Input) reset() {
	i.chars = i.chars[:0]
	i.mouseDX, i.mouseDY = 0, 0
	i.resized = false
}

func (i *Input) handle(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.quit = true

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
			i.quit = true
		}

	case *sdl.TextInputEvent:
		for _, c := range []byte(e.GetText()) {
			i.chars = append(i.chars, c)
			i.toggles[c] = !i.toggles[c]
		}

	case *sdl.MouseMotionEvent:
		i.mouseDX += float32(e.XRel)
		i.mouseDY += float32(e.YRel)

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED || e.Event == sdl.WINDOWEVENT_RESIZED {
			i.resized = true
			i.width, i.height = int(e.Data1), int(e.Data2)
		}
	}
}

// Chars returns the characters typed this frame, in order.
func (i *Input) Chars() []byte {
	return i.chars
}

// Toggled reports whether c has been typed an odd number of times.
func (i *Input) Toggled(c byte) bool {
	return i.toggles[c]
}

// MouseDelta returns the relative mouse motion accumulated this frame.
func (i *Input) MouseDelta() (dx, dy float32) {
	return i.mouseDX, i.mouseDY
}

// Resized reports a window size change this frame.
func (i *Input) Resized() (width, height int, ok bool) {
	return i.width, i.height, i.resized
}

// QuitRequested reports whether quit was requested.
func (i *Input) QuitRequested() bool {
	return i.quit
}
