package scene

import (
	"fmt"

	"github.com/Carmen-Shannon/roomview/common"
	"github.com/Carmen-Shannon/roomview/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
)

// Drawable is one entry of the scene table: a mesh drawn once with a placement.
type Drawable struct {
	Name      string
	Mesh      string
	Placement transform.Placement
}

// brick faces: left, right, top, bottom
var brickPlanePositions = []mgl32.Vec3{
	{4, 4.25, 0},
	{2, 4.25, 0},
	{3, 4.75, 0},
	{3, 3.75, 0},
}

var brickCapPositions = []mgl32.Vec3{
	{3, 4.25, -1.5},
	{3, 4.25, 1.5},
}

// Shelf boards come in groups of four (front, back, top, bottom) for the four boards, then
// pillars in groups of four (front, back, left, right) for the four pillars.
var shelfPlanePositions = []mgl32.Vec3{
	{0, 0.5, 1}, {0, 0.5, -1}, {0, 0.75, 0}, {0, 0.25, 0},
	{0, 3.5, 1}, {0, 3.5, -1}, {0, 3.75, 0}, {0, 3.25, 0},
	{0, 6.5, 1}, {0, 6.5, -1}, {0, 6.75, 0}, {0, 6.25, 0},
	{0, 9.5, 1}, {0, 9.5, -1}, {0, 9.75, 0}, {0, 9.25, 0},

	{-4.5, 5, 1}, {-4.5, 5, -1}, {-4.75, 5, 0}, {-4.25, 5, 0},
	{-1.5, 5, 1}, {-1.5, 5, -1}, {-1.75, 5, 0}, {-1.25, 5, 0},
	{1.5, 5, 1}, {1.5, 5, -1}, {1.75, 5, 0}, {1.25, 5, 0},
	{4.5, 5, 1}, {4.5, 5, -1}, {4.75, 5, 0}, {4.25, 5, 0},
}

var shelfPlaneRotations = []float32{
	0, 0, 90, 90,
	0, 0, 90, 90,
	0, 0, 90, 90,
	0, 0, 90, 90,

	90, 90, 90, 90,
	90, 90, 90, 90,
	90, 90, 90, 90,
	90, 90, 90, 90,
}

// Board ends (left/right of each board), then pillar ends (top/bottom of each pillar).
var shelfCapPositions = []mgl32.Vec3{
	{-5, 0.5, 0}, {5, 0.5, 0},
	{-5, 3.5, 0}, {5, 3.5, 0},
	{-5, 6.5, 0}, {5, 6.5, 0},
	{-5, 9.5, 0}, {5, 9.5, 0},

	{-4.5, 10, 0}, {-4.5, 0, 0},
	{-1.5, 10, 0}, {-1.5, 0, 0},
	{1.5, 10, 0}, {1.5, 0, 0},
	{4.5, 10, 0}, {4.5, 0, 0},
}

var cylinderPosition = mgl32.Vec3{-3, 4.65, 1}

var cylinderRotations = []float32{0, 60, 120, 180, 240, 300}

// ball faces: front, right, back, left, top, bottom
var spherePositions = []mgl32.Vec3{
	{0, 7.5, 0.5},
	{0.5, 7.5, 0},
	{0, 7.5, -0.5},
	{-0.5, 7.5, 0},
	{0, 8, 0},
	{0, 7, 0},
}

var sphereRotations = []float32{0, 90, 180, -90, -90, 90}

func at(p mgl32.Vec3) transform.Placement {
	return transform.At(p[0], p[1], p[2])
}

// RoomLayout returns every drawable of the room in draw order.
//
// Returns:
//   - []Drawable: the scene table
func RoomLayout() []Drawable {
	var d []Drawable
	add := func(mesh string, i int, p transform.Placement) {
		d = append(d, Drawable{Name: fmt.Sprintf("%s[%d]", mesh, i), Mesh: mesh, Placement: p})
	}

	for i := 2; i < 4; i++ {
		add(MeshBrickTopBottom, i, at(brickPlanePositions[i]).Rotate(90, common.AxisY).Rotate(90, common.AxisX))
	}
	for i := range 2 {
		add(MeshBrickLeftRight, i, at(brickPlanePositions[i]).Rotate(90, common.AxisY))
	}
	for i, p := range brickCapPositions {
		add(MeshBrickCap, i, at(p))
	}

	add(MeshFloor, 0, transform.Placement{}.Rotate(90, common.AxisX).Scaled(15))
	add(MeshWall, 0, transform.Placement{})

	for i, p := range shelfPlanePositions {
		if i%4 < 2 {
			continue
		}
		r := shelfPlaneRotations[i]
		if i < 16 {
			add(MeshShelfTopBottom, i, at(p).Rotate(r, common.AxisX))
		} else {
			add(MeshShelfTopBottom, i, at(p).Rotate(r, common.AxisZ).Rotate(r, common.AxisX))
		}
	}
	for i, p := range shelfPlanePositions {
		if i%4 >= 2 {
			continue
		}
		if i < 16 {
			add(MeshShelfFrontBack, i, at(p))
		} else {
			add(MeshShelfFrontBack, i, at(p).Rotate(shelfPlaneRotations[i], common.AxisZ))
		}
	}

	for i, p := range shelfCapPositions {
		if i < 8 {
			add(MeshShelfCap, i, at(p).Rotate(90, common.AxisY))
		} else {
			add(MeshShelfCap, i, at(p).Rotate(90, common.AxisY).Rotate(90, common.AxisX))
		}
	}

	for i, r := range cylinderRotations {
		add(MeshCylinderStrip, i, at(cylinderPosition).Rotate(360, common.AxisX).Rotate(r, common.AxisZ))
	}

	for i, p := range spherePositions {
		axis := common.AxisY
		if i >= 4 {
			axis = common.AxisX
		}
		add(MeshSphereStrip, i, at(p).Rotate(sphereRotations[i], axis).Scaled(0.5))
	}

	return d
}
