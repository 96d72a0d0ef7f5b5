// Package scene holds the objects drawn each frame.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/Faultbox/engine3d/internal/engine/picking"
)

// Entity is a named object with a transform.
type Entity struct {
	ID        uuid.UUID
	Name      string
	Transform Transform
	Color     mgl32.Vec3
	Spin      mgl32.Vec3 // radians per second
}

// NewEntity creates an entity with a fresh ID.
func NewEntity(name string, t Transform) *Entity {
	return &Entity{
		ID:        uuid.New(),
		Name:      name,
		Transform: t,
		Color:     mgl32.Vec3{1, 1, 1},
	}
}

// Draw is one cube draw call.
type Draw struct {
	Model     mgl32.Mat4
	Tint      mgl32.Vec3
	Highlight bool
}

// Scene is a chunk of ground blocks plus free-standing entities.
type Scene struct {
	Chunk    *Chunk
	Entities []*Entity

	// Selected is the block the player is looking at, if any.
	Selected    [3]int
	HasSelected bool
}

// New creates the demo scene: a full chunk at the origin with a spinning cube
// floating above its center.
func New() *Scene {
	s := &Scene{Chunk: NewChunk(mgl32.Vec3{0, -ChunkHeight, 0})}

	cube := NewEntity("spinner", NewTransform(mgl32.Vec3{ChunkSize / 2, 2.5, ChunkSize / 2}))
	cube.Color = mgl32.Vec3{0.9, 0.4, 0.3}
	cube.Spin = mgl32.Vec3{mgl32.DegToRad(40), mgl32.DegToRad(40), 0}
	s.Add(cube)

	return s
}

// Add appends an entity.
func (s *Scene) Add(e *Entity) {
	s.Entities = append(s.Entities, e)
}

// Find returns the entity with the given ID.
func (s *Scene) Find(id uuid.UUID) (*Entity, bool) {
	for _, e := range s.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Update advances entity animation by dt seconds.
func (s *Scene) Update(dt float32) {
	for _, e := range s.Entities {
		e.Transform.Rotation = e.Transform.Rotation.Add(e.Spin.Mul(dt))
	}
}

// Select marks the block at (x, y, z) as the current target.
func (s *Scene) Select(x, y, z int, ok bool) {
	s.Selected = [3]int{x, y, z}
	s.HasSelected = ok
}

// DrawList returns one draw per chunk block and entity.
func (s *Scene) DrawList() []Draw {
	var draws []Draw
	if s.Chunk != nil {
		for x := 0; x < ChunkSize; x++ {
			for y := 0; y < ChunkHeight; y++ {
				for z := 0; z < ChunkSize; z++ {
					if !s.Chunk.Solid(x, y, z) {
						continue
					}
					draws = append(draws, Draw{
						Model:     NewTransform(s.Chunk.center(x, y, z)).Model(),
						Tint:      groundTint(x, z),
						Highlight: s.HasSelected && s.Selected == [3]int{x, y, z},
					})
				}
			}
		}
	}
	for _, e := range s.Entities {
		draws = append(draws, Draw{Model: e.Transform.Model(), Tint: e.Color})
	}
	return draws
}

// Bounds returns a box around the chunk and every entity. Entities are
// treated as spheres so spinning never pokes outside.
func (s *Scene) Bounds() picking.AABB {
	var box picking.AABB
	first := true
	grow := func(lo, hi mgl32.Vec3) {
		if first {
			box, first = picking.AABB{Min: lo, Max: hi}, false
			return
		}
		for i := 0; i < 3; i++ {
			box.Min[i] = min(box.Min[i], lo[i])
			box.Max[i] = max(box.Max[i], hi[i])
		}
	}

	if s.Chunk != nil {
		grow(s.Chunk.Bounds())
	}
	for _, e := range s.Entities {
		t := e.Transform
		r := t.Scale.Len() / 2
		ext := mgl32.Vec3{r, r, r}
		grow(t.Position.Sub(ext), t.Position.Add(ext))
	}
	return box
}

func groundTint(x, z int) mgl32.Vec3 {
	if (x+z)%2 == 0 {
		return mgl32.Vec3{0.45, 0.65, 0.35}
	}
	return mgl32.Vec3{0.40, 0.58, 0.30}
}
