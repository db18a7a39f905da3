package mesh

import (
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
)

func TestWeld_MergesCellNeighbors(t *testing.T) {
	// Two triangles sharing an edge, authored with duplicated vertices
	// that are slightly apart but land in the same grid cells.
	m, err := New([]core.SurfacePoint{
		{Position: core.NewVec3(0.001, 0.001, 0)},
		{Position: core.NewVec3(1.001, 0.001, 0)},
		{Position: core.NewVec3(0.001, 1.001, 0)},
		{Position: core.NewVec3(1.002, 0.002, 0)}, // same cell as vertex 1
		{Position: core.NewVec3(0.002, 1.002, 0)}, // same cell as vertex 2
		{Position: core.NewVec3(1.002, 1.002, 0)},
	}, []int{0, 1, 2, 3, 5, 4}, Triangles)
	if err != nil {
		t.Fatal(err)
	}

	welded := m.Weld(0.01)
	if len(welded.Vertices) != 4 {
		t.Fatalf("welded vertex count: got %d, expected 4", len(welded.Vertices))
	}
	want := []int{0, 1, 2, 1, 3, 2}
	for i, idx := range welded.Indices {
		if idx != want[i] {
			t.Errorf("index %d: got %d, expected %d", i, idx, want[i])
		}
	}
	// First-seen vertex wins as cell representative
	if welded.Vertices[1].Position != core.NewVec3(1.001, 0.001, 0) {
		t.Errorf("representative vertex: got %v", welded.Vertices[1].Position)
	}
}

func TestWeld_Idempotent(t *testing.T) {
	m, err := New([]core.SurfacePoint{
		{Position: core.NewVec3(0, 0, 0)},
		{Position: core.NewVec3(1, 0, 0)},
		{Position: core.NewVec3(0.0001, 0.0001, 0)},
		{Position: core.NewVec3(0, 1, 0)},
	}, []int{0, 1, 3, 2, 1, 3}, Triangles)
	if err != nil {
		t.Fatal(err)
	}

	once := m.Weld(0.001)
	twice := once.Weld(0.001)

	if len(once.Vertices) != len(twice.Vertices) {
		t.Fatalf("vertex counts differ: %d vs %d", len(once.Vertices), len(twice.Vertices))
	}
	for i := range once.Vertices {
		if once.Vertices[i] != twice.Vertices[i] {
			t.Errorf("vertex %d differs after re-weld", i)
		}
	}
	for i := range once.Indices {
		if once.Indices[i] != twice.Indices[i] {
			t.Errorf("index %d differs after re-weld", i)
		}
	}
}

func TestWeld_KeepsDistinctCells(t *testing.T) {
	m, err := New([]core.SurfacePoint{
		{Position: core.NewVec3(0.25, 0.25, 0.25)},
		{Position: core.NewVec3(5.25, 0.25, 0.25)},
		{Position: core.NewVec3(0.25, 5.25, 0.25)},
	}, []int{0, 1, 2}, Triangles)
	if err != nil {
		t.Fatal(err)
	}

	welded := m.Weld(1.0)
	if len(welded.Vertices) != 3 {
		t.Errorf("distant vertices must survive welding, got %d", len(welded.Vertices))
	}
}
