package scene

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/mesh"
)

// Geometry is a shape that can be intersected in its own object space.
// Implementations honor the ray's [TMin, TMax] range and report the
// interpolated surface attribute at the closest hit.
type Geometry interface {
	Intersect(ray core.Ray) (core.SurfacePoint, float64, bool)
	BoundingBox() core.AABB
}

// Sphere is an analytic unit of geometry defined by center and radius.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a sphere.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Intersect solves the quadratic for the nearest root inside the ray's
// parametric range.
func (s *Sphere) Intersect(ray core.Ray) (core.SurfacePoint, float64, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.SurfacePoint{}, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < ray.TMin || root > ray.TMax {
		root = (-halfB + sqrtD) / a
		if root < ray.TMin || root > ray.TMax {
			return core.SurfacePoint{}, 0, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1 / s.Radius)

	// Spherical texture coordinates
	theta := math.Acos(-normal.Y)
	phi := math.Atan2(-normal.Z, normal.X) + math.Pi

	return core.SurfacePoint{
		Position: point,
		Normal:   normal,
		UV:       core.NewVec2(phi/(2*math.Pi), theta/math.Pi),
	}, root, true
}

// BoundingBox returns the sphere's axis-aligned bounds.
func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// MeshGeometry adapts a triangle mesh for intersection. Attributes at a
// hit are the barycentric blend of the triangle's vertex records.
type MeshGeometry struct {
	mesh *mesh.Mesh
	bbox core.AABB
}

// NewMeshGeometry wraps a triangle mesh. Non-triangle meshes have no
// surface and never intersect.
func NewMeshGeometry(m *mesh.Mesh) *MeshGeometry {
	return &MeshGeometry{mesh: m, bbox: m.ComputeAABB()}
}

// Mesh returns the wrapped mesh.
func (g *MeshGeometry) Mesh() *mesh.Mesh {
	return g.mesh
}

// Intersect runs Möller-Trumbore over every triangle, keeping the
// closest hit.
func (g *MeshGeometry) Intersect(ray core.Ray) (core.SurfacePoint, float64, bool) {
	if g.mesh.Topology != mesh.Triangles {
		return core.SurfacePoint{}, 0, false
	}

	closestT := ray.TMax
	var closest core.SurfacePoint
	found := false

	indices := g.mesh.Indices
	for i := 0; i+2 < len(indices); i += 3 {
		v0 := g.mesh.Vertices[indices[i]]
		v1 := g.mesh.Vertices[indices[i+1]]
		v2 := g.mesh.Vertices[indices[i+2]]

		t, u, v, hit := intersectTriangle(ray, v0.Position, v1.Position, v2.Position, ray.TMin, closestT)
		if !hit {
			continue
		}

		closestT = t
		w := 1 - u - v
		closest = v0.Scale(w).Add(v1.Scale(u)).Add(v2.Scale(v))
		found = true
	}

	return closest, closestT, found
}

// BoundingBox returns the mesh bounds.
func (g *MeshGeometry) BoundingBox() core.AABB {
	return g.bbox
}

// intersectTriangle is the Möller-Trumbore ray/triangle test. It returns
// the ray parameter and the barycentric coordinates of v1 and v2.
func intersectTriangle(ray core.Ray, p0, p1, p2 core.Vec3, tMin, tMax float64) (t, u, v float64, ok bool) {
	const epsilon = 1e-9

	edge1 := p1.Subtract(p0)
	edge2 := p2.Subtract(p0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if det > -epsilon && det < epsilon {
		return 0, 0, 0, false // ray parallel to the triangle plane
	}

	inv := 1.0 / det
	s := ray.Origin.Subtract(p0)
	u = inv * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = inv * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = inv * edge2.Dot(q)
	if t < tMin || t > tMax {
		return 0, 0, 0, false
	}
	return t, u, v, true
}
