// Package picking casts rays from the camera into the scene.
package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewAABB creates a box from two opposite corners in any order.
func NewAABB(a, b mgl32.Vec3) AABB {
	var box AABB
	for i := 0; i < 3; i++ {
		box.Min[i] = min(a[i], b[i])
		box.Max[i] = max(a[i], b[i])
	}
	return box
}

// NewRay builds a ray, normalizing direction.
func NewRay(origin, direction mgl32.Vec3) Ray {
	if l := direction.Len(); l > 0 {
		direction = direction.Mul(1 / l)
	}
	return Ray{Origin: origin, Direction: direction}
}

// CenterRay is the ray through the middle of the screen for a camera at
// position looking along front.
func CenterRay(position, front mgl32.Vec3) Ray {
	return NewRay(position, front)
}

// ScreenToRay converts pixel coordinates into a world-space ray.
// invViewProj is the inverse of projection * view.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj mgl32.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // screen Y grows downward

	near := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := unproject(invViewProj, mgl32.Vec4{ndcX, ndcY, 1, 1})

	return NewRay(near, far.Sub(near))
}

func unproject(inv mgl32.Mat4, ndc mgl32.Vec4) mgl32.Vec3 {
	p := inv.Mul4x1(ndc)
	if p.W() != 0 {
		return p.Vec3().Mul(1 / p.W())
	}
	return p.Vec3()
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectPlaneY intersects the ray with the horizontal plane y = planeY.
func (r Ray) IntersectPlaneY(planeY float32) (point mgl32.Vec3, ok bool) {
	if math.Abs(float64(r.Direction.Y())) < 0.001 {
		return mgl32.Vec3{}, false
	}

	t := (planeY - r.Origin.Y()) / r.Direction.Y()
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return r.At(t), true
}

// IntersectAABB returns the distance to the box using the slab method.
// If the ray starts inside the box the exit distance is returned.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Direction[axis]
		if d == 0 {
			if o < box.Min[axis] || o > box.Max[axis] {
				return 0, false
			}
			continue
		}

		t1 := (box.Min[axis] - o) / d
		t2 := (box.Max[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
