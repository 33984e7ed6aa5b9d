package renderer

import (
	_ "embed"
	"strings"

	"github.com/Carmen-Shannon/roomview/engine/camera"
	"github.com/Carmen-Shannon/roomview/engine/model"
	"github.com/Carmen-Shannon/roomview/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// RoomPipelineKey is the key of the single pipeline every drawable is rendered with.
const RoomPipelineKey = "room"

// Bind group indices used by the room shader.
const (
	CameraGroup = 0
	ModelGroup  = 1
)

//go:embed assets/room.wgsl
var roomShaderBody string

// RoomShaderSource is the complete WGSL module of the room pipeline: the shared struct
// definitions followed by the vertex and fragment stages.
var RoomShaderSource = strings.Join([]string{
	camera.GPUCameraUniformSource,
	model.GPUVertexSource,
	model.GPUModelDataSource,
	roomShaderBody,
}, "\n")

// roomVertexLayout describes GPUVertex: position at location 0, color at location 1.
func roomVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: model.GPUVertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
		},
	}
}

func uniformLayout(label string, size int) wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: label,
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(size),
				},
			},
		},
	}
}

// NewRoomPipeline creates the unlit, depth-tested, vertex-colored pipeline the room is drawn with.
//
// Returns:
//   - pipeline.Pipeline: the unregistered pipeline
func NewRoomPipeline() pipeline.Pipeline {
	return pipeline.NewPipeline(RoomPipelineKey, RoomShaderSource,
		pipeline.WithVertexLayouts(roomVertexLayout()),
		pipeline.WithBindGroupLayouts(
			uniformLayout("Camera Uniform Layout", (&camera.GPUCameraUniform{}).Size()),
			uniformLayout("Model Data Layout", (&model.GPUModelData{}).Size()),
		),
	)
}
