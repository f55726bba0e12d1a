package math

import "github.com/chewxy/math32"

/**
 * @brief Creates the empty (invalid) extents: Min at +Inf and Max at -Inf.
 * Expanding the empty extents by a point yields a box around that point only.
 */
func NewExtents3DEmpty() Extents3D {
	return Extents3D{
		Min: NewVec3Scalar(math32.Inf(1)),
		Max: NewVec3Scalar(math32.Inf(-1)),
	}
}

// NewExtents3D creates extents from explicit min and max corners.
func NewExtents3D(min, max Vec3) Extents3D {
	return Extents3D{Min: min, Max: max}
}

/**
 * @brief Creates the smallest extents enclosing every given point. No points
 * yields the empty extents.
 */
func NewExtents3DFromPoints(points []Vec3) Extents3D {
	e := NewExtents3DEmpty()
	for _, p := range points {
		e = e.ExpandByPoint(p)
	}
	return e
}

// IsEmpty returns true if max < min on any axis.
func (e Extents3D) IsEmpty() bool {
	return e.Max.X < e.Min.X || e.Max.Y < e.Min.Y || e.Max.Z < e.Min.Z
}

// ExpandByPoint returns the extents grown to include p.
func (e Extents3D) ExpandByPoint(p Vec3) Extents3D {
	return Extents3D{Min: e.Min.Min(p), Max: e.Max.Max(p)}
}

// Union returns the extents enclosing both e and other.
func (e Extents3D) Union(other Extents3D) Extents3D {
	return Extents3D{Min: e.Min.Min(other.Min), Max: e.Max.Max(other.Max)}
}

// Center returns the center point of the extents.
func (e Extents3D) Center() Vec3 {
	return e.Min.Add(e.Max).MulScalar(0.5)
}

// Size returns the extent along each axis.
func (e Extents3D) Size() Vec3 {
	return e.Max.Sub(e.Min)
}

// Contains reports whether p lies inside e, boundary included.
func (e Extents3D) Contains(p Vec3) bool {
	return p.X >= e.Min.X && p.X <= e.Max.X &&
		p.Y >= e.Min.Y && p.Y <= e.Max.Y &&
		p.Z >= e.Min.Z && p.Z <= e.Max.Z
}

/**
 * @brief Transforms the extents by m and returns the axis-aligned box around
 * the eight transformed corners. The empty extents are returned unchanged,
 * since transforming infinite corners produces NaN.
 *
 * @param m The affine transform to apply.
 * @return The axis-aligned extents of the transformed box.
 */
func (e Extents3D) Transform(m Mat4) Extents3D {
	if e.IsEmpty() {
		return e
	}
	out := NewExtents3DEmpty()
	for i := 0; i < 8; i++ {
		corner := e.Min
		if i&1 != 0 {
			corner.X = e.Max.X
		}
		if i&2 != 0 {
			corner.Y = e.Max.Y
		}
		if i&4 != 0 {
			corner.Z = e.Max.Z
		}
		out = out.ExpandByPoint(corner.Transform(m))
	}
	return out
}
