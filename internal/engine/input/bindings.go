package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/engine3d/internal/engine/camera"
)

// Bindings maps held keys to camera movement intents.
type Bindings map[sdl.Scancode]camera.Direction

// DefaultBindings is WASD plus arrow keys to move and Space to jump.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.SCANCODE_W:     camera.Forward,
		sdl.SCANCODE_UP:    camera.Forward,
		sdl.SCANCODE_S:     camera.Backward,
		sdl.SCANCODE_DOWN:  camera.Backward,
		sdl.SCANCODE_A:     camera.Left,
		sdl.SCANCODE_LEFT:  camera.Left,
		sdl.SCANCODE_D:     camera.Right,
		sdl.SCANCODE_RIGHT: camera.Right,
		sdl.SCANCODE_SPACE: camera.Jump,
	}
}

// Directions returns the held directions in camera.Directions order,
// each at most once.
func (b Bindings) Directions(kb *Keyboard) []camera.Direction {
	held := make(map[camera.Direction]bool, len(camera.Directions))
	for sc, dir := range b {
		if kb.Down(sc) {
			held[dir] = true
		}
	}

	var dirs []camera.Direction
	for _, dir := range camera.Directions {
		if held[dir] {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
