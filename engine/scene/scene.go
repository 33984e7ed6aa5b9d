package scene

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/roomview/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnknownMesh is returned by Build when a drawable references a mesh that is not registered.
var ErrUnknownMesh = errors.New("scene: unknown mesh")

// ErrDuplicateMesh is returned by Build when two meshes share a name.
var ErrDuplicateMesh = errors.New("scene: duplicate mesh")

// CompiledDrawable is a drawable with its model matrix composed and serialized.
type CompiledDrawable struct {
	Name      string
	Mesh      string
	Model     mgl32.Mat4
	ModelData []byte
}

// Scene is a compiled, immutable scene: the meshes to upload and the drawables to issue each frame.
type Scene interface {
	// Meshes returns the scene meshes in registration order.
	//
	// Returns:
	//   - []model.Model: the meshes
	Meshes() []model.Model

	// Mesh looks up a mesh by name.
	//
	// Parameters:
	//   - name: mesh name
	//
	// Returns:
	//   - model.Model: the mesh, or nil
	//   - bool: whether the mesh exists
	Mesh(name string) (model.Model, bool)

	// Drawables returns the compiled drawables in draw order.
	//
	// Returns:
	//   - []CompiledDrawable: the drawables
	Drawables() []CompiledDrawable

	// Count returns the number of drawables.
	//
	// Returns:
	//   - int: drawable count
	Count() int
}

type scene struct {
	meshes    []model.Model
	byName    map[string]model.Model
	drawables []CompiledDrawable

	layout  []Drawable
	workers int
}

var _ Scene = &scene{}

// Build compiles a scene table. Model matrices are composed and serialized in parallel on a
// worker pool; Build returns once every drawable is compiled.
// Without options it compiles the room.
//
// Parameters:
//   - options: functional options to override the meshes, layout or worker count
//
// Returns:
//   - Scene: the compiled scene
//   - error: ErrUnknownMesh or ErrDuplicateMesh wrapped with the offending name
func Build(options ...SceneBuilderOption) (Scene, error) {
	s := &scene{
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(s)
	}
	if s.meshes == nil {
		s.meshes = RoomMeshes()
	}
	if s.layout == nil {
		s.layout = RoomLayout()
	}

	s.byName = make(map[string]model.Model, len(s.meshes))
	for _, m := range s.meshes {
		if _, ok := s.byName[m.Name()]; ok {
			return nil, fmt.Errorf("%w %q", ErrDuplicateMesh, m.Name())
		}
		s.byName[m.Name()] = m
	}
	for _, d := range s.layout {
		if _, ok := s.byName[d.Mesh]; !ok {
			return nil, fmt.Errorf("%w %q for drawable %q", ErrUnknownMesh, d.Mesh, d.Name)
		}
	}

	s.drawables = make([]CompiledDrawable, len(s.layout))

	// Each task writes only its own slot, so the WaitGroup is the only synchronization needed.
	pool := worker.NewDynamicWorkerPool(s.workers, 256, 1*time.Second)
	var wg sync.WaitGroup
	for i, d := range s.layout {
		wg.Add(1)
		idx, dCap := i, d
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				data := model.GPUModelData{Model: dCap.Placement.Matrix()}
				s.drawables[idx] = CompiledDrawable{
					Name:      dCap.Name,
					Mesh:      dCap.Mesh,
					Model:     data.Model,
					ModelData: data.Marshal(),
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return s, nil
}

func (s *scene) Meshes() []model.Model {
	return s.meshes
}

func (s *scene) Mesh(name string) (model.Model, bool) {
	m, ok := s.byName[name]
	return m, ok
}

func (s *scene) Drawables() []CompiledDrawable {
	return s.drawables
}

func (s *scene) Count() int {
	return len(s.drawables)
}
