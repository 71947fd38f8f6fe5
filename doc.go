// Package ldi implements the Layered Depth Image (LDI) rendering core: a GPU
// raycaster that synthesizes novel views from one or two captured viewpoints,
// each carrying up to four RGBA+inverse-depth layers, and composes them for
// mono, stereo, or head-tracked VR output.
//
// # Overview
//
// A capture ("LIF", for Layered Image Format) is a binary container holding
// one or two views, each with its own camera metadata and 1-4 depth layers.
// ldi parses that container (package container), normalizes it into a typed
// tree (package capture), decodes the embedded images into GPU textures
// (package resource), and drives one of four raycast pipelines (package
// raycast) selected by how many input views and output eyes are active.
// When driven from a WebXR-style head-mounted display, package xr derives
// the convergence plane and per-eye render cameras every frame; package host
// hosts the two resulting per-eye quads in a conventional scene graph.
//
// # Quick start
//
//	data, _ := os.ReadFile("capture.lif")
//	cap, err := ldi.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, err := ldi.NewRenderer(cap)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	target := render.NewPixmapTarget(800, 600)
//	cam := capture.RenderCamera{FocalPx: cap.Views[0].FocalPx}
//	r.Draw(target, &cam, nil, t)
//
// # Renderers
//
// raycast.Renderer can run on a real GPU device (package backend/wgpu,
// WGSL fragment programs compiled through naga) or on the built-in software
// rasterizer (raycast.SoftwareRasterizer), which executes the per-pixel
// algorithm on the CPU. The software path exists for
// testability — property-based tests in this repository exercise it
// directly rather than requiring a GPU at test time.
//
// # Scope
//
// Out of scope: browser/extension plumbing, context menus, UI sliders, file
// pickers, video encoding, point-cloud/Luma loaders, the OpenXR window
// positioning bridge, and the multi-viewer weaving demo. Package transport
// implements only the narrow chunked-transport framing a host embedding ldi
// in a browser extension needs; everything above that framing is external.
package ldi
