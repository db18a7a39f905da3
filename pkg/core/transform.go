package core

import "github.com/go-gl/mathgl/mgl64"

// Transform is a 4x4 affine/projective transform used to place geometry
// in the world and to move rays back into object space.
type Transform struct {
	m mgl64.Mat4
}

// NewTransform wraps an mgl64 matrix
func NewTransform(m mgl64.Mat4) Transform {
	return Transform{m: m}
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{m: mgl64.Ident4()}
}

// Translate returns a translation transform
func Translate(v Vec3) Transform {
	return Transform{m: mgl64.Translate3D(v.X, v.Y, v.Z)}
}

// Scale returns a non-uniform scaling transform
func Scale(x, y, z float64) Transform {
	return Transform{m: mgl64.Scale3D(x, y, z)}
}

// RotateAxis returns a rotation of angle radians around the given axis
func RotateAxis(axis Vec3, angle float64) Transform {
	return Transform{m: mgl64.HomogRotate3D(angle, mgl64.Vec3{axis.X, axis.Y, axis.Z}.Normalize())}
}

// Mul composes two transforms; t is applied after other
func (t Transform) Mul(other Transform) Transform {
	return Transform{m: t.m.Mul4(other.m)}
}

// Inverse returns the inverse transform
func (t Transform) Inverse() Transform {
	return Transform{m: t.m.Inv()}
}

// ApplyPoint transforms a point and re-homogenizes the result by the
// transformed w coordinate.
func (t Transform) ApplyPoint(p Vec3) Vec3 {
	v := t.m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	w := v.W()
	if w != 1 && w != 0 {
		return Vec3{X: v.X() / w, Y: v.Y() / w, Z: v.Z() / w}
	}
	return Vec3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// ApplyDirection transforms a direction (w = 0). The result is NOT
// renormalized; callers that need a unit vector normalize themselves.
func (t Transform) ApplyDirection(d Vec3) Vec3 {
	v := t.m.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// ApplyRay transforms a ray. The direction is transformed without
// renormalization, so a point at parameter t on one side of the
// transform maps to parameter t on the other.
func (t Transform) ApplyRay(r Ray) Ray {
	return Ray{
		Origin:    t.ApplyPoint(r.Origin),
		Direction: t.ApplyDirection(r.Direction),
		TMin:      r.TMin,
		TMax:      r.TMax,
	}
}
