package scene

import "github.com/Carmen-Shannon/roomview/engine/model"

// SceneBuilderOption is a functional option for configuring a Scene build.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithMeshes replaces the room meshes.
//
// Parameters:
//   - meshes: the meshes drawables may reference
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMeshes(meshes ...model.Model) SceneBuilderOption {
	return func(s *scene) {
		s.meshes = meshes
	}
}

// WithLayout replaces the room layout.
//
// Parameters:
//   - layout: the drawables to compile, in draw order
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLayout(layout ...Drawable) SceneBuilderOption {
	return func(s *scene) {
		s.layout = layout
	}
}

// WithWorkers sets the number of worker goroutines used to compile drawables.
// Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.workers = n
	}
}
