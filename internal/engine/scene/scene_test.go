package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/engine3d/internal/engine/picking"
)

func TestTransformModel(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{1, 2, 3})
	tr.Scale = mgl32.Vec3{2, 2, 2}

	p := tr.Model().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if !p.Vec3().ApproxEqualThreshold(mgl32.Vec3{3, 2, 3}, 1e-5) {
		t.Errorf("scaled then translated point = %v, want (3, 2, 3)", p)
	}

	tr = NewTransform(mgl32.Vec3{})
	tr.Rotation = mgl32.Vec3{0, math.Pi / 2, 0}
	p = tr.Model().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if !p.Vec3().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("90 degree yaw of +X = %v, want (0, 0, -1)", p)
	}
}

func TestChunkBlocks(t *testing.T) {
	c := NewChunk(mgl32.Vec3{0, -1, 0})

	blocks := c.Blocks()
	if len(blocks) != ChunkSize*ChunkHeight*ChunkSize {
		t.Fatalf("expected %d blocks, got %d", ChunkSize*ChunkHeight*ChunkSize, len(blocks))
	}
	if blocks[0] != (mgl32.Vec3{0.5, -0.5, 0.5}) {
		t.Errorf("first block center = %v", blocks[0])
	}

	c.Set(0, 0, 0, false)
	c.Set(-1, 0, 0, true) // ignored
	if c.Solid(0, 0, 0) {
		t.Error("block should be cleared")
	}
	if c.Solid(ChunkSize, 0, 0) {
		t.Error("out of range block should read empty")
	}
	if len(c.Blocks()) != ChunkSize*ChunkHeight*ChunkSize-1 {
		t.Errorf("expected one fewer block, got %d", len(c.Blocks()))
	}
	if c.Top() != 0 {
		t.Errorf("chunk top = %f, want 0", c.Top())
	}
}

func TestChunkPick(t *testing.T) {
	c := NewChunk(mgl32.Vec3{0, -1, 0})

	// Looking straight down from above block (3, 0, 7)
	ray := picking.NewRay(mgl32.Vec3{3.5, 5, 7.5}, mgl32.Vec3{0, -1, 0})
	x, y, z, ok := c.Pick(ray, 100)
	if !ok || x != 3 || y != 0 || z != 7 {
		t.Errorf("Pick = (%d, %d, %d, %v), want (3, 0, 7, true)", x, y, z, ok)
	}

	if _, _, _, ok := c.Pick(ray, 2); ok {
		t.Error("block beyond max distance should not be picked")
	}

	c.Set(3, 0, 7, false)
	if _, _, _, ok := c.Pick(ray, 100); ok {
		t.Error("empty block should not be picked")
	}
}

func TestSceneDrawList(t *testing.T) {
	s := New()
	s.Select(2, 0, 3, true)

	draws := s.DrawList()
	want := ChunkSize*ChunkHeight*ChunkSize + len(s.Entities)
	if len(draws) != want {
		t.Fatalf("expected %d draws, got %d", want, len(draws))
	}

	highlighted := 0
	for _, d := range draws {
		if d.Highlight {
			highlighted++
		}
	}
	if highlighted != 1 {
		t.Errorf("expected exactly one highlighted block, got %d", highlighted)
	}
}

func TestSceneUpdateSpins(t *testing.T) {
	s := New()
	e := s.Entities[0]
	before := e.Transform.Rotation

	s.Update(0.5)

	if e.Transform.Rotation == before {
		t.Error("spinning entity did not rotate")
	}
	if got, ok := s.Find(e.ID); !ok || got != e {
		t.Error("Find should return the entity by ID")
	}
}

func TestSceneBounds(t *testing.T) {
	s := New()
	box := s.Bounds()

	if box.Min != (mgl32.Vec3{0, -1, 0}) {
		t.Errorf("Min = %v, want (0, -1, 0)", box.Min)
	}
	if box.Max.X() != ChunkSize || box.Max.Z() != ChunkSize {
		t.Errorf("Max = %v, want the chunk's x/z extent", box.Max)
	}
	wantTop := float32(2.5) + mgl32.Vec3{1, 1, 1}.Len()/2
	if math.Abs(float64(box.Max.Y()-wantTop)) > 1e-5 {
		t.Errorf("Max.Y = %f, want %f", box.Max.Y(), wantTop)
	}

	empty := &Scene{}
	if got := empty.Bounds(); got != (picking.AABB{}) {
		t.Errorf("empty scene bounds = %v, want zero box", got)
	}
}
