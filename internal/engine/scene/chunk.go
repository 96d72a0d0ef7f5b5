package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/engine3d/internal/engine/picking"
)

// Chunk dimensions in blocks.
const (
	ChunkSize   = 16
	ChunkHeight = 1
)

// Chunk is a fixed grid of unit blocks whose minimum corner sits at Origin.
// Block centers are at Origin + (x, y, z) + 0.5.
type Chunk struct {
	Origin mgl32.Vec3
	solid  [ChunkSize][ChunkHeight][ChunkSize]bool
}

// NewChunk returns a chunk with every block filled.
func NewChunk(origin mgl32.Vec3) *Chunk {
	c := &Chunk{Origin: origin}
	c.Fill(true)
	return c
}

// Fill sets every block.
func (c *Chunk) Fill(solid bool) {
	for x := range c.solid {
		for y := range c.solid[x] {
			for z := range c.solid[x][y] {
				c.solid[x][y][z] = solid
			}
		}
	}
}

// InBounds reports whether a block coordinate lies inside the chunk.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSize && y >= 0 && y < ChunkHeight && z >= 0 && z < ChunkSize
}

// Set marks a block solid or empty. Out-of-range coordinates are ignored.
func (c *Chunk) Set(x, y, z int, solid bool) {
	if InBounds(x, y, z) {
		c.solid[x][y][z] = solid
	}
}

// Solid reports whether a block is filled. Out-of-range blocks are empty.
func (c *Chunk) Solid(x, y, z int) bool {
	return InBounds(x, y, z) && c.solid[x][y][z]
}

// Blocks returns the world-space center of every solid block in x, y, z order.
func (c *Chunk) Blocks() []mgl32.Vec3 {
	blocks := make([]mgl32.Vec3, 0, ChunkSize*ChunkHeight*ChunkSize)
	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < ChunkHeight; y++ {
			for z := 0; z < ChunkSize; z++ {
				if c.solid[x][y][z] {
					blocks = append(blocks, c.center(x, y, z))
				}
			}
		}
	}
	return blocks
}

// Bounds returns the chunk's world-space corners.
func (c *Chunk) Bounds() (minCorner, maxCorner mgl32.Vec3) {
	return c.Origin, c.Origin.Add(mgl32.Vec3{ChunkSize, ChunkHeight, ChunkSize})
}

// Top returns the world height of the chunk surface.
func (c *Chunk) Top() float32 {
	return c.Origin.Y() + ChunkHeight
}

// Pick returns the nearest solid block hit by the ray within maxDist.
func (c *Chunk) Pick(ray picking.Ray, maxDist float32) (x, y, z int, ok bool) {
	best := maxDist
	for bx := 0; bx < ChunkSize; bx++ {
		for by := 0; by < ChunkHeight; by++ {
			for bz := 0; bz < ChunkSize; bz++ {
				if !c.solid[bx][by][bz] {
					continue
				}
				t, hit := ray.IntersectAABB(c.blockBox(bx, by, bz))
				if hit && t <= best {
					best = t
					x, y, z, ok = bx, by, bz, true
				}
			}
		}
	}
	return x, y, z, ok
}

func (c *Chunk) center(x, y, z int) mgl32.Vec3 {
	return c.Origin.Add(mgl32.Vec3{float32(x) + 0.5, float32(y) + 0.5, float32(z) + 0.5})
}

func (c *Chunk) blockBox(x, y, z int) picking.AABB {
	lo := c.Origin.Add(mgl32.Vec3{float32(x), float32(y), float32(z)})
	return picking.AABB{Min: lo, Max: lo.Add(mgl32.Vec3{1, 1, 1})}
}
