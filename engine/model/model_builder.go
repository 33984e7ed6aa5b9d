package model

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithVertices is an option builder that sets the vertices of the Model.
//
// Parameters:
//   - vertices: the mesh vertices
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices option to a model
func WithVertices(vertices ...GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
	}
}

// WithIndices is an option builder that sets the triangle-list indices of the Model.
//
// Parameters:
//   - indices: three indices per triangle
//
// Returns:
//   - ModelBuilderOption: a function that applies the indices option to a model
func WithIndices(indices ...uint32) ModelBuilderOption {
	return func(m *model) {
		m.indices = indices
	}
}

// WithQuad is an option builder that fills the Model with an axis-aligned rectangle in the XY plane
// at depth z, centred on the origin, in a single color. Vertices are ordered bottom-left, top-left,
// bottom-right, top-right and indexed as two triangles (0,1,2) and (1,2,3).
//
// Parameters:
//   - halfWidth: half extent along X
//   - halfHeight: half extent along Y
//   - color: RGB vertex color
//
// Returns:
//   - ModelBuilderOption: a function that applies the quad geometry to a model
func WithQuad(halfWidth, halfHeight float32, color [3]float32) ModelBuilderOption {
	return WithRect(-halfWidth, -halfHeight, halfWidth, halfHeight, 0, color)
}

// WithRect is an option builder like WithQuad for an arbitrary rectangle in the plane z.
//
// Parameters:
//   - x0, y0: lower-left corner
//   - x1, y1: upper-right corner
//   - z: plane depth
//   - color: RGB vertex color
//
// Returns:
//   - ModelBuilderOption: a function that applies the rectangle geometry to a model
func WithRect(x0, y0, x1, y1, z float32, color [3]float32) ModelBuilderOption {
	return func(m *model) {
		m.vertices = []GPUVertex{
			{Position: [3]float32{x0, y0, z}, Color: color},
			{Position: [3]float32{x0, y1, z}, Color: color},
			{Position: [3]float32{x1, y0, z}, Color: color},
			{Position: [3]float32{x1, y1, z}, Color: color},
		}
		m.indices = []uint32{0, 1, 2, 1, 2, 3}
	}
}
