package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("room", "// wgsl")
	if p.VertexEntryPoint() != "vs_main" || p.FragmentEntryPoint() != "fs_main" {
		t.Errorf("entry points = %q/%q", p.VertexEntryPoint(), p.FragmentEntryPoint())
	}
	if !p.DepthTestEnabled() || !p.DepthWriteEnabled() {
		t.Error("depth test and write should default on")
	}
	if p.BlendEnabled() {
		t.Error("blending should default off")
	}
	if p.Topology() != wgpu.PrimitiveTopologyTriangleList {
		t.Errorf("topology = %v", p.Topology())
	}
	if p.CullMode() != wgpu.CullModeNone {
		t.Errorf("cull mode = %v", p.CullMode())
	}
	if p.Pipeline() != nil || p.BindGroupLayout(0) != nil {
		t.Error("unregistered pipeline should hold no GPU objects")
	}
}

func TestPipelineOptions(t *testing.T) {
	layout := wgpu.VertexBufferLayout{ArrayStride: 24, StepMode: wgpu.VertexStepModeVertex}
	p := NewPipeline("lines", "// wgsl",
		WithEntryPoints("v", "f"),
		WithVertexLayouts(layout),
		WithBindGroupLayouts(wgpu.BindGroupLayoutDescriptor{Label: "g0"}, wgpu.BindGroupLayoutDescriptor{Label: "g1"}),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithCullMode(wgpu.CullModeBack),
		WithDepthWriteEnabled(false),
	)
	if p.VertexEntryPoint() != "v" || p.FragmentEntryPoint() != "f" {
		t.Errorf("entry points = %q/%q", p.VertexEntryPoint(), p.FragmentEntryPoint())
	}
	if len(p.VertexLayouts()) != 1 || p.VertexLayouts()[0].ArrayStride != 24 {
		t.Errorf("vertex layouts = %+v", p.VertexLayouts())
	}
	if len(p.BindGroupLayoutDescriptors()) != 2 {
		t.Errorf("bind group descriptors = %d, want 2", len(p.BindGroupLayoutDescriptors()))
	}
	if p.Topology() != wgpu.PrimitiveTopologyLineList || p.CullMode() != wgpu.CullModeBack || p.DepthWriteEnabled() {
		t.Error("options not applied")
	}
	if p.BindGroupLayout(-1) != nil || p.BindGroupLayout(5) != nil {
		t.Error("out of range group should return nil")
	}
}
