package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/roomview/engine/camera"
	"github.com/Carmen-Shannon/roomview/engine/model"
	"github.com/Carmen-Shannon/roomview/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/roomview/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrMeshNotUploaded is returned when a drawable references a mesh that was never uploaded.
	ErrMeshNotUploaded = errors.New("renderer: mesh not uploaded")

	// ErrMeshExists is returned when a mesh name is uploaded twice.
	ErrMeshExists = errors.New("renderer: mesh already uploaded")

	// ErrInvalidHandle is returned for a drawable handle the renderer did not issue.
	ErrInvalidHandle = errors.New("renderer: invalid drawable handle")

	// ErrModelDataSize is returned when per-drawable model data is not one GPUModelData.
	ErrModelDataSize = errors.New("renderer: model data size mismatch")
)

// DrawableHandle identifies a drawable registered with AddDrawable.
type DrawableHandle int

// Surface is the part of a window the renderer draws into.
type Surface interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

type drawable struct {
	mesh      bind_group_provider.BindGroupProvider
	modelData bind_group_provider.BindGroupProvider
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend
	pipeline    pipeline.Pipeline

	camera    bind_group_provider.BindGroupProvider
	meshes    map[string]bind_group_provider.BindGroupProvider
	drawables []drawable

	// queued uniform writes, flushed at BeginFrame
	pending []bind_group_provider.BufferWrite

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	clearColor           wgpu.Color
}

// Renderer draws a fixed set of meshes with per-drawable model matrices through one pipeline.
//
// Meshes are uploaded once by name. Each drawable pairs a mesh with its own model uniform and is
// identified by the handle AddDrawable returns. A frame is BeginFrame, one Draw per drawable,
// EndFrame and Present; SetCamera may be called at any point before BeginFrame.
type Renderer interface {
	// Resize reconfigures the surface for a new framebuffer size. Zero sizes (a minimized window) are ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode changes how frames are presented. Takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// UploadMesh creates the vertex and index buffers for a mesh.
	//
	// Parameters:
	//   - m: the mesh to upload
	//
	// Returns:
	//   - error: ErrMeshExists if the name is taken, or a wrapped GPU error
	UploadMesh(m model.Model) error

	// AddDrawable registers one draw of an uploaded mesh with its serialized model matrix.
	//
	// Parameters:
	//   - mesh: the uploaded mesh name
	//   - modelData: one marshaled model.GPUModelData
	//
	// Returns:
	//   - DrawableHandle: the handle to pass to Draw
	//   - error: ErrMeshNotUploaded, ErrModelDataSize, or a wrapped GPU error
	AddDrawable(mesh string, modelData []byte) (DrawableHandle, error)

	// UpdateDrawable replaces the model matrix of a drawable.
	//
	// Parameters:
	//   - h: the drawable handle
	//   - modelData: one marshaled model.GPUModelData
	//
	// Returns:
	//   - error: ErrInvalidHandle or ErrModelDataSize
	UpdateDrawable(h DrawableHandle, modelData []byte) error

	// DrawableCount returns the number of registered drawables.
	//
	// Returns:
	//   - int: the drawable count
	DrawableCount() int

	// SetCamera queues the view and projection matrices for the next frame.
	//
	// Parameters:
	//   - view: the view matrix
	//   - projection: the projection matrix, already in WebGPU clip space
	SetCamera(view, projection mgl32.Mat4)

	// BeginFrame flushes queued uniform writes and opens the frame's render pass.
	//
	// Returns:
	//   - error: an error if the surface could not be acquired
	BeginFrame() error

	// Draw records one drawable into the open render pass.
	//
	// Parameters:
	//   - h: the drawable handle
	//
	// Returns:
	//   - error: ErrInvalidHandle for an unknown handle
	Draw(h DrawableHandle) error

	// EndFrame closes the render pass and submits it.
	EndFrame()

	// Present presents the frame to the surface.
	Present()

	// Release frees every GPU resource held by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer drawing into the given surface and registers the room pipeline.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - surface: the window surface to render into
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the configured renderer
//   - error: an error if the GPU device or pipeline could not be created
func NewRenderer(backendType RendererBackendType, surface Surface, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(backendType, options...)

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		backend, err := newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter, msaa, r.clearColor)
		if err != nil {
			return nil, fmt.Errorf("renderer: %w", err)
		}
		r.backend = backend
	}

	if err := r.init(surface.Width(), surface.Height()); err != nil {
		return nil, err
	}
	return r, nil
}

func newRenderer(backendType RendererBackendType, options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		meshes:      make(map[string]bind_group_provider.BindGroupProvider),
		clearColor:  wgpu.Color{R: 0, G: 0, B: 0, A: 1},
	}
	// Options first so config flags are known before the backend requests an adapter.
	for _, opt := range options {
		opt(r)
	}
	return r
}

// init configures the surface, registers the room pipeline and allocates the camera uniform.
func (r *renderer) init(width, height int) error {
	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.ConfigureSurface(width, height)

	r.pipeline = NewRoomPipeline()
	if err := r.backend.RegisterRenderPipeline(r.pipeline); err != nil {
		return fmt.Errorf("renderer: register %s pipeline: %w", r.pipeline.PipelineKey(), err)
	}

	r.camera = bind_group_provider.NewBindGroupProvider("Camera")
	size := (&camera.GPUCameraUniform{}).Size()
	if err := r.backend.InitUniformBindGroup(r.camera, r.pipeline.BindGroupLayout(CameraGroup), uint64(size)); err != nil {
		return fmt.Errorf("renderer: camera uniform: %w", err)
	}
	r.SetCamera(mgl32.Ident4(), mgl32.Ident4())
	return nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) UploadMesh(m model.Model) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.meshes[m.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrMeshExists, m.Name())
	}
	provider := bind_group_provider.NewBindGroupProvider(m.Name())
	if err := r.backend.InitMeshBuffers(provider, m.VertexData(), m.IndexData(), m.IndexCount()); err != nil {
		provider.Release()
		return fmt.Errorf("renderer: upload mesh %q: %w", m.Name(), err)
	}
	r.meshes[m.Name()] = provider
	return nil
}

func (r *renderer) AddDrawable(mesh string, modelData []byte) (DrawableHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	meshProvider, ok := r.meshes[mesh]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrMeshNotUploaded, mesh)
	}
	size := (&model.GPUModelData{}).Size()
	if len(modelData) != size {
		return -1, fmt.Errorf("%w: got %d bytes, want %d", ErrModelDataSize, len(modelData), size)
	}

	h := DrawableHandle(len(r.drawables))
	provider := bind_group_provider.NewBindGroupProvider(fmt.Sprintf("%s Model %d", mesh, h))
	if err := r.backend.InitUniformBindGroup(provider, r.pipeline.BindGroupLayout(ModelGroup), uint64(size)); err != nil {
		provider.Release()
		return -1, fmt.Errorf("renderer: drawable %d: %w", h, err)
	}
	r.backend.WriteBuffers([]bind_group_provider.BufferWrite{{Provider: provider, Binding: 0, Data: modelData}})

	r.drawables = append(r.drawables, drawable{mesh: meshProvider, modelData: provider})
	return h, nil
}

func (r *renderer) UpdateDrawable(h DrawableHandle, modelData []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h < 0 || int(h) >= len(r.drawables) {
		return fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	if size := (&model.GPUModelData{}).Size(); len(modelData) != size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrModelDataSize, len(modelData), size)
	}
	r.pending = append(r.pending, bind_group_provider.BufferWrite{Provider: r.drawables[h].modelData, Binding: 0, Data: modelData})
	return nil
}

func (r *renderer) DrawableCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drawables)
}

func (r *renderer) SetCamera(view, projection mgl32.Mat4) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := camera.GPUCameraUniform{View: view, Projection: projection}
	r.pending = append(r.pending, bind_group_provider.BufferWrite{Provider: r.camera, Binding: 0, Data: u.Marshal()})
}

func (r *renderer) BeginFrame() error {
	r.mu.Lock()
	if len(r.pending) > 0 {
		r.backend.WriteBuffers(r.pending)
		r.pending = r.pending[:0]
	}
	r.mu.Unlock()

	return r.backend.BeginFrame()
}

func (r *renderer) Draw(h DrawableHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h < 0 || int(h) >= len(r.drawables) {
		return fmt.Errorf("%w: %d", ErrInvalidHandle, h)
	}
	d := r.drawables[h]
	r.backend.DrawCall(r.pipeline, d.mesh, []bind_group_provider.BindGroupProvider{r.camera, d.modelData})
	return nil
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.drawables {
		d.modelData.Release()
	}
	r.drawables = nil
	for name, m := range r.meshes {
		m.Release()
		delete(r.meshes, name)
	}
	if r.camera != nil {
		r.camera.Release()
	}
	r.backend.Release()
}
