package core

// SurfacePoint carries the interpolated per-hit shading attributes of a
// surface: position, normal and texture coordinate. It doubles as the
// vertex record of triangle meshes, so it supports the linear blending
// used by mesh refinement. The normal is not required to be unit length
// until shading time.
type SurfacePoint struct {
	Position Vec3
	Normal   Vec3
	UV       Vec2
}

// Add returns the componentwise sum of two surface points
func (sp SurfacePoint) Add(other SurfacePoint) SurfacePoint {
	return SurfacePoint{
		Position: sp.Position.Add(other.Position),
		Normal:   sp.Normal.Add(other.Normal),
		UV:       sp.UV.Add(other.UV),
	}
}

// Scale returns the surface point uniformly scaled by s
func (sp SurfacePoint) Scale(s float64) SurfacePoint {
	return SurfacePoint{
		Position: sp.Position.Multiply(s),
		Normal:   sp.Normal.Multiply(s),
		UV:       sp.UV.Multiply(s),
	}
}

// Midpoint returns the blend of two surface points at weight 1/2,
// used when inserting edge midpoints during subdivision.
func Midpoint(a, b SurfacePoint) SurfacePoint {
	return a.Add(b).Scale(0.5)
}

// Transform applies t to the surface point. The position is transformed
// as a point (re-homogenized), the normal as a direction. The normal is
// NOT renormalized; the caller decides when to normalize, and is also
// responsible for supplying an inverse-transpose matrix when the
// transform is not rigid.
func (sp SurfacePoint) Transform(t Transform) SurfacePoint {
	return SurfacePoint{
		Position: t.ApplyPoint(sp.Position),
		Normal:   t.ApplyDirection(sp.Normal),
		UV:       sp.UV,
	}
}
