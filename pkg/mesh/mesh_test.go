package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
)

func flatTriangle() *Mesh {
	m, err := New([]core.SurfacePoint{
		{Position: core.NewVec3(0, 0, 0)},
		{Position: core.NewVec3(1, 0, 0)},
		{Position: core.NewVec3(0, 1, 0)},
	}, []int{0, 1, 2}, Triangles)
	if err != nil {
		panic(err)
	}
	return m
}

func TestNew_ValidatesIndices(t *testing.T) {
	vertices := []core.SurfacePoint{{}, {}, {}}

	if _, err := New(vertices, []int{0, 1, 3}, Triangles); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("out of range index: got %v, expected ErrInvalidArgument", err)
	}
	if _, err := New(vertices, []int{0, 1}, Triangles); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("index count not a multiple of stride: got %v", err)
	}
	if _, err := New(vertices, []int{0}, Topology(7)); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("unknown topology: got %v", err)
	}
}

func TestComputeNormals_FlatTriangle(t *testing.T) {
	m := flatTriangle()
	m.ComputeNormals()

	// Right-hand winding in the xy plane faces +z
	want := core.NewVec3(0, 0, 1)
	for i, v := range m.Vertices {
		if v.Normal.Subtract(want).Length() > 1e-12 {
			t.Errorf("vertex %d normal: got %v, expected %v", i, v.Normal, want)
		}
	}
}

func TestComputeNormals_SharedVertexAveraging(t *testing.T) {
	// Two triangles folded along the x axis; the shared edge vertices
	// should average the two face normals.
	m, err := New([]core.SurfacePoint{
		{Position: core.NewVec3(0, 0, 0)},
		{Position: core.NewVec3(1, 0, 0)},
		{Position: core.NewVec3(0, 1, 0)},
		{Position: core.NewVec3(0, 0, 1)},
	}, []int{0, 1, 2, 0, 1, 3}, Triangles)
	if err != nil {
		t.Fatal(err)
	}
	m.ComputeNormals()

	shared := m.Vertices[0].Normal
	if math.Abs(shared.Length()-1) > 1e-12 {
		t.Errorf("normals must be normalized in place, length %f", shared.Length())
	}
	if shared.Z <= 0 || shared.Y >= 0 {
		t.Errorf("shared normal should blend both faces, got %v", shared)
	}
}

func TestComputeNormals_NonTriangleNoOp(t *testing.T) {
	m, err := New([]core.SurfacePoint{
		{Position: core.NewVec3(0, 0, 0), Normal: core.NewVec3(5, 0, 0)},
		{Position: core.NewVec3(1, 0, 0), Normal: core.NewVec3(5, 0, 0)},
	}, []int{0, 1}, Lines)
	if err != nil {
		t.Fatal(err)
	}
	m.ComputeNormals()
	if m.Vertices[0].Normal != core.NewVec3(5, 0, 0) {
		t.Errorf("line mesh normals must be untouched, got %v", m.Vertices[0].Normal)
	}
}

func TestComputeAABB(t *testing.T) {
	m, err := New([]core.SurfacePoint{
		{Position: core.NewVec3(-1, 2, 0)},
		{Position: core.NewVec3(3, -4, 5)},
		{Position: core.NewVec3(0, 0, -2)},
	}, []int{0, 1, 2}, Triangles)
	if err != nil {
		t.Fatal(err)
	}

	box := m.ComputeAABB()
	if box.Minimum != core.NewVec3(-1, -4, -2) || box.Maximum != core.NewVec3(3, 2, 5) {
		t.Errorf("AABB: got %v / %v", box.Minimum, box.Maximum)
	}
}

func TestConcat_OffsetsIndices(t *testing.T) {
	a := flatTriangle()
	b := flatTriangle()

	joined, err := Concat(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if len(joined.Vertices) != 6 || len(joined.Indices) != 6 {
		t.Fatalf("concat sizes: %d vertices, %d indices", len(joined.Vertices), len(joined.Indices))
	}
	for i := 3; i < 6; i++ {
		if joined.Indices[i] != joined.Indices[i-3]+3 {
			t.Errorf("index %d: got %d, expected offset by 3", i, joined.Indices[i])
		}
	}
}

func TestConcat_TopologyMismatch(t *testing.T) {
	a := flatTriangle()
	b, _ := a.ConvertTopology(Lines)
	if _, err := Concat(a, b); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
