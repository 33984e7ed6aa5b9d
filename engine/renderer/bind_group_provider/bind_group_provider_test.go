package bind_group_provider

import "testing"

func TestNewBindGroupProvider(t *testing.T) {
	p := NewBindGroupProvider("floor", WithIndexCount(6))
	if p.Label() != "floor" {
		t.Errorf("label = %q", p.Label())
	}
	if p.IndexCount() != 6 {
		t.Errorf("index count = %d, want 6", p.IndexCount())
	}
	if p.BindGroup() != nil || p.VertexBuffer() != nil || p.IndexBuffer() != nil || p.Buffer(0) != nil {
		t.Error("fresh provider should hold no GPU resources")
	}
}

func TestReleaseWithoutResources(t *testing.T) {
	p := NewBindGroupProvider("empty")
	p.SetBuffer(0, nil)
	p.Release()
	if p.Buffer(0) != nil {
		t.Error("Release left a buffer entry behind")
	}
}
