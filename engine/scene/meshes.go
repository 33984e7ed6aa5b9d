package scene

import "github.com/Carmen-Shannon/roomview/engine/model"

// Mesh names. Every drawable references one of these.
const (
	MeshBrickTopBottom = "brick_top_bottom"
	MeshBrickLeftRight = "brick_left_right"
	MeshBrickCap       = "brick_cap"
	MeshShelfTopBottom = "shelf_top_bottom"
	MeshShelfFrontBack = "shelf_front_back"
	MeshShelfCap       = "shelf_cap"
	MeshFloor          = "floor"
	MeshWall           = "wall"
	MeshCylinderStrip  = "cylinder_strip"
	MeshSphereStrip    = "sphere_strip"
)

var (
	tan      = [3]float32{0.82, 0.71, 0.55}
	darkTan  = [3]float32{0.79, 0.68, 0.52}
	brown    = [3]float32{0.59, 0.29, 0}
	midBrown = [3]float32{0.65, 0.35, 0}
	floorTan = [3]float32{0.49, 0.19, 0}
	teal     = [3]float32{0, 0.7, 0.7}
	black    = [3]float32{0, 0, 0}
	white    = [3]float32{1, 1, 1}
)

// cylinderStrip is one sixth of the paper roll: an end-cap wedge plus one side panel two units deep.
var cylinderStrip = []model.GPUVertex{
	{Position: [3]float32{0, 0, 0}, Color: black},
	{Position: [3]float32{0.5, 0.866, 0}, Color: white},
	{Position: [3]float32{1, 0, 0}, Color: white},
	{Position: [3]float32{0.5, 0.866, 0}, Color: white},
	{Position: [3]float32{0.5, 0.866, -2}, Color: white},
	{Position: [3]float32{1, 0, 0}, Color: white},
	{Position: [3]float32{1, 0, 0}, Color: white},
	{Position: [3]float32{1, 0, -2}, Color: white},
	{Position: [3]float32{0.5, 0.866, -2}, Color: white},
}

// sphereStrip is one face of the ball: a low hexagonal pyramid with its apex on +Z.
var sphereStrip = []model.GPUVertex{
	{Position: [3]float32{0, 0, 0.3}, Color: [3]float32{1, 0.55, 0}},
	{Position: [3]float32{1, 0, 0}, Color: [3]float32{1, 0.55, 0}},
	{Position: [3]float32{0.5, 0.866, 0}, Color: [3]float32{1, 0.6, 0}},

	{Position: [3]float32{0, 0, 0.3}, Color: [3]float32{1, 0.55, 0}},
	{Position: [3]float32{0.5, 0.866, 0}, Color: [3]float32{1, 0.65, 0}},
	{Position: [3]float32{-0.5, 0.866, 0}, Color: [3]float32{1, 0.65, 0}},

	{Position: [3]float32{0, 0, 0.3}, Color: [3]float32{1, 0.55, 0}},
	{Position: [3]float32{-0.5, 0.866, 0}, Color: [3]float32{1, 0.65, 0}},
	{Position: [3]float32{-1, 0, 0}, Color: [3]float32{1, 0.65, 0}},

	{Position: [3]float32{0, 0, 0.3}, Color: [3]float32{1, 0.62, 0}},
	{Position: [3]float32{-1, 0, 0}, Color: [3]float32{1, 0.65, 0}},
	{Position: [3]float32{-0.5, -0.866, 0}, Color: [3]float32{1, 0.65, 0}},

	{Position: [3]float32{0, 0, 0.3}, Color: [3]float32{1, 0.6, 0}},
	{Position: [3]float32{-0.5, -0.866, 0}, Color: [3]float32{1, 0.6, 0}},
	{Position: [3]float32{0.5, -0.866, 0}, Color: [3]float32{1, 0.55, 0}},

	{Position: [3]float32{0, 0, 0.3}, Color: [3]float32{1, 0.62, 0}},
	{Position: [3]float32{0.5, -0.866, 0}, Color: [3]float32{1, 0.55, 0}},
	{Position: [3]float32{1, 0, 0}, Color: [3]float32{1, 0.62, 0}},
}

// RoomMeshes returns the compiled-in meshes of the room.
//
// Returns:
//   - []model.Model: one model per mesh name
func RoomMeshes() []model.Model {
	return []model.Model{
		model.NewModel(model.WithName(MeshBrickTopBottom), model.WithQuad(1.5, 1, tan)),
		model.NewModel(model.WithName(MeshBrickLeftRight), model.WithQuad(1.5, 0.5, darkTan)),
		model.NewModel(model.WithName(MeshBrickCap), model.WithQuad(1, 0.5, darkTan)),
		model.NewModel(model.WithName(MeshShelfTopBottom), model.WithQuad(5, 1, brown)),
		model.NewModel(model.WithName(MeshShelfFrontBack), model.WithQuad(5, 0.25, midBrown)),
		model.NewModel(model.WithName(MeshShelfCap), model.WithQuad(1, 0.25, brown)),
		model.NewModel(model.WithName(MeshFloor), model.WithQuad(0.5, 0.5, floorTan)),
		model.NewModel(model.WithName(MeshWall), model.WithRect(-7.5, 0, 7.5, 15.5, -2.75, teal)),
		model.NewModel(model.WithName(MeshCylinderStrip), model.WithVertices(cylinderStrip...)),
		model.NewModel(model.WithName(MeshSphereStrip), model.WithVertices(sphereStrip...)),
	}
}
