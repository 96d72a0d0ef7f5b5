package input

import "github.com/veandco/go-sdl2/sdl"

// Keyboard tracks which keys are held down.
type Keyboard struct {
	down map[sdl.Scancode]bool
}

// NewKeyboard creates an empty keyboard state.
func NewKeyboard() *Keyboard {
	return &Keyboard{down: make(map[sdl.Scancode]bool)}
}

// Press marks a key as held.
func (k *Keyboard) Press(sc sdl.Scancode) { k.down[sc] = true }

// Release marks a key as up.
func (k *Keyboard) Release(sc sdl.Scancode) { delete(k.down, sc) }

// Clear releases every key, e.g. when the window loses focus.
func (k *Keyboard) Clear() { clear(k.down) }

// Down reports whether a key is held.
func (k *Keyboard) Down(sc sdl.Scancode) bool { return k.down[sc] }
