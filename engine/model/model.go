package model

import "github.com/go-gl/mathgl/mgl32"

// model is the implementation of the Model interface.
type model struct {
	name           string
	vertices       []GPUVertex
	indices        []uint32
	boundingRadius float32
	vertexData     []byte
	indexData      []byte
}

// Model defines the interface for a compiled-in mesh.
// A Model is an immutable, GPU-ready container holding a vertex list in the position+color layout
// and a triangle-list index buffer. Meshes are shared: many drawables reference the same Model by name.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices returns the mesh vertices.
	//
	// Returns:
	//   - []GPUVertex: the vertices, in index order
	Vertices() []GPUVertex

	// Indices returns the triangle-list indices.
	//
	// Returns:
	//   - []uint32: three indices per triangle
	Indices() []uint32

	// VertexData returns the vertices serialized for GPU upload.
	//
	// Returns:
	//   - []byte: the vertex data, GPUVertexStride bytes per vertex
	VertexData() []byte

	// IndexData returns the indices serialized for GPU upload.
	//
	// Returns:
	//   - []byte: the index data, 4 bytes per index
	IndexData() []byte

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// BoundingRadius returns the distance from the model origin to its farthest vertex.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a Model from the given options and serializes its buffers.
// When no indices are supplied every vertex is used once, in order, as a triangle list.
//
// Parameters:
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the newly created model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, option := range options {
		option(m)
	}

	if len(m.indices) == 0 {
		m.indices = make([]uint32, len(m.vertices))
		for i := range m.indices {
			m.indices[i] = uint32(i)
		}
	}

	m.vertexData = make([]byte, 0, len(m.vertices)*GPUVertexStride)
	for i := range m.vertices {
		v := m.vertices[i]
		m.vertexData = append(m.vertexData, v.Marshal()...)
		if r := mgl32.Vec3(v.Position).Len(); r > m.boundingRadius {
			m.boundingRadius = r
		}
	}
	m.indexData = MarshalIndices(m.indices)

	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) IndexData() []byte {
	return m.indexData
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}
