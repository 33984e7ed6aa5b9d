package scene

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/roomview/common"
	"github.com/Carmen-Shannon/roomview/engine/model"
	"github.com/Carmen-Shannon/roomview/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

func TestRoomDrawCounts(t *testing.T) {
	s, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Count() != 68 {
		t.Fatalf("drawables = %d, want 68", s.Count())
	}

	want := map[string]int{
		MeshBrickTopBottom: 2,
		MeshBrickLeftRight: 2,
		MeshBrickCap:       2,
		MeshFloor:          1,
		MeshWall:           1,
		MeshShelfTopBottom: 16,
		MeshShelfFrontBack: 16,
		MeshShelfCap:       16,
		MeshCylinderStrip:  6,
		MeshSphereStrip:    6,
	}
	got := map[string]int{}
	for _, d := range s.Drawables() {
		if _, ok := s.Mesh(d.Mesh); !ok {
			t.Errorf("drawable %q references missing mesh %q", d.Name, d.Mesh)
		}
		if len(d.ModelData) != 64 {
			t.Errorf("drawable %q model data = %d bytes", d.Name, len(d.ModelData))
		}
		got[d.Mesh]++
	}
	for mesh, n := range want {
		if got[mesh] != n {
			t.Errorf("%s: %d drawables, want %d", mesh, got[mesh], n)
		}
	}
}

func TestRoomMeshes(t *testing.T) {
	tests := []struct {
		mesh     string
		vertices int
		indices  int
	}{
		{MeshBrickTopBottom, 4, 6},
		{MeshWall, 4, 6},
		{MeshFloor, 4, 6},
		{MeshCylinderStrip, 9, 9},
		{MeshSphereStrip, 18, 18},
	}

	s, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, tt := range tests {
		m, ok := s.Mesh(tt.mesh)
		if !ok {
			t.Errorf("%s missing", tt.mesh)
			continue
		}
		if len(m.Vertices()) != tt.vertices || m.IndexCount() != tt.indices {
			t.Errorf("%s: %d vertices / %d indices, want %d / %d",
				tt.mesh, len(m.Vertices()), m.IndexCount(), tt.vertices, tt.indices)
		}
		if m.IndexCount()%3 != 0 {
			t.Errorf("%s: index count %d is not a triangle list", tt.mesh, m.IndexCount())
		}
	}
}

func TestCompiledMatricesMatchPlacements(t *testing.T) {
	s, err := Build(WithWorkers(3))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	layout := RoomLayout()
	for i, d := range s.Drawables() {
		if d.Name != layout[i].Name {
			t.Fatalf("drawable %d = %q, want %q (draw order changed)", i, d.Name, layout[i].Name)
		}
		if d.Model != layout[i].Placement.Matrix() {
			t.Errorf("drawable %q matrix differs from its placement", d.Name)
		}
	}
}

func TestFloorAndBrick(t *testing.T) {
	s, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	byName := map[string]CompiledDrawable{}
	for _, d := range s.Drawables() {
		byName[d.Name] = d
	}

	floor := byName[MeshFloor+"[0]"]
	// The unit floor quad is laid flat and scaled to 15x15: its +Y corner ends up on +Z.
	corner := floor.Model.Mul4x1(mgl32.Vec4{0.5, 0.5, 0, 1})
	for i, want := range []float32{7.5, 0, 7.5} {
		if !common.ApproxEqual(corner[i], want, 1e-4) {
			t.Errorf("floor corner = %v, want (7.5, 0, 7.5)", corner.Vec3())
			break
		}
	}

	top := byName[MeshBrickTopBottom+"[2]"]
	origin := top.Model.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if origin.Vec3() != (mgl32.Vec3{3, 4.75, 0}) {
		t.Errorf("brick top origin = %v, want (3, 4.75, 0)", origin.Vec3())
	}
}

func TestBuildRejectsUnknownMesh(t *testing.T) {
	_, err := Build(WithLayout(Drawable{Name: "ghost", Mesh: "nope", Placement: transform.At(0, 0, 0)}))
	if !errors.Is(err, ErrUnknownMesh) {
		t.Fatalf("err = %v, want ErrUnknownMesh", err)
	}
}

func TestBuildRejectsDuplicateMesh(t *testing.T) {
	quad := model.NewModel(model.WithName("q"), model.WithQuad(1, 1, [3]float32{1, 1, 1}))
	_, err := Build(WithMeshes(quad, quad))
	if !errors.Is(err, ErrDuplicateMesh) {
		t.Fatalf("err = %v, want ErrDuplicateMesh", err)
	}
}

func TestBuildCustomTable(t *testing.T) {
	quad := model.NewModel(model.WithName("q"), model.WithQuad(1, 1, [3]float32{1, 1, 1}))
	var layout []Drawable
	for i := range 200 {
		layout = append(layout, Drawable{Name: "q", Mesh: "q", Placement: transform.At(float32(i), 0, 0)})
	}

	s, err := Build(WithMeshes(quad), WithLayout(layout...), WithWorkers(2))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i, d := range s.Drawables() {
		if d.Model.Col(3)[0] != float32(i) {
			t.Fatalf("drawable %d translated to %v", i, d.Model.Col(3))
		}
	}
}
