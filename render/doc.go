// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the integration layer between the LDI raycast
// core and GPU frameworks.
//
// This package defines the core abstractions for device integration,
// allowing raycast.Renderer to draw into GPU surfaces provided by host
// applications (like gogpu.App or a WebXR-style per-eye canvas owner).
//
// # Key Principle
//
// The raycaster RECEIVES a GPU device from the host application; it does
// not create its own. This follows the Vello/femtovg/Skia pattern where
// the rendering library is injected with GPU resources rather than
// managing them itself.
//
// # Core Interfaces
//
//   - DeviceHandle: Provides GPU device access from the host application
//   - RenderTarget: Defines where rendering output goes (Pixmap, Texture, Surface)
//
// # RenderTarget Implementations
//
//   - PixmapTarget: CPU-backed *image.RGBA target, used by
//     raycast.SoftwareRasterizer so the raycast algorithm is testable
//     without a GPU device.
//   - TextureTarget: per-eye GPU offscreen canvas, sized by package xr
//     each time the convergence plane or viewport changes.
//   - SurfaceTarget: window-surface wrapper for a final compositor
//     surface (package host's two textured quads).
//
// # Usage
//
// GPU-backed per-eye canvas:
//
//	left, err := render.NewTextureTarget(deviceHandle, canvasW, canvasH, gputypes.TextureFormatRGBA8Unorm)
//	if err != nil {
//	    return err
//	}
//	defer left.Destroy()
//	renderer.Draw(left, renderCamL, renderCamR, t)
//
// Software rendering (used by this repository's tests):
//
//	target := render.NewPixmapTarget(800, 600)
//	rasterizer := raycast.NewSoftwareRasterizer(inputViews)
//	rasterizer.Render(target, renderCamL)
//	img := target.Image()
//
// # Architecture
//
//	                 Host Application
//	                       │
//	      ┌────────────────┼────────────────┐
//	      │                │                │
//	      ▼                ▼                ▼
//	  xr.Session      ldi.Renderer      host.Host
//	  (scheduler)      (raycast)       (scene quads)
//	      │                │                │
//	      └────────────────┼────────────────┘
//	                       │
//	                       ▼
//	               render package
//	      ┌────────────────┼────────────────┐
//	      │                │                │
//	      ▼                ▼                ▼
//	DeviceHandle     RenderTarget      backend/wgpu
//	(GPU access)    (output target)   (GPU pipelines)
//
// # Thread Safety
//
// RenderTargets are NOT thread-safe. Each target should be used from a
// single goroutine (the render thread), consistent with the rest of the
// raycast core's single-threaded cooperative scheduling model.
//
// # References
//
//   - Vello DeviceProvider pattern: https://github.com/AhornGraphics/vello
//   - femtovg Renderer trait: https://github.com/AhornGraphics/femtovg
//   - Skia GrDirectContext: https://skia.org/docs/user/api/
package render
