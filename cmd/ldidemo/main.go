// Command ldidemo renders a single novel view from a Layered Depth
// Image capture file and saves it as a PNG.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/ldi"
	"github.com/gogpu/ldi/camera"
	"github.com/gogpu/ldi/capture"
	"github.com/gogpu/ldi/render"
	"github.com/gogpu/ldi/transport"
)

func main() {
	var (
		input  = flag.String("input", "capture.lif", "path to an LIF capture file")
		output = flag.String("output", "demo.png", "output PNG path")
		width  = flag.Int("width", 800, "output image width")
		height = flag.Int("height", 600, "output image height")
		posX   = flag.Float64("x", 0, "render camera X position")
		posY   = flag.Float64("y", 0, "render camera Y position")
	)
	flag.Parse()

	sessionID := transport.NewSessionID()
	log.Printf("ldidemo: session %s loading %s", sessionID, *input)

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("reading %s: %v", *input, err)
	}

	cap, err := ldi.Parse(data)
	if err != nil {
		log.Fatalf("parsing capture: %v", err)
	}

	renderer, err := ldi.NewRenderer(cap, ldi.WithBackground(ldi.Black))
	if err != nil {
		log.Fatalf("building renderer: %v", err)
	}
	defer renderer.Close()

	target := render.NewPixmapTarget(*width, *height)
	camL := defaultCamera(cap, *posX, *posY)
	if err := renderer.Draw(target, &camL, nil, 1.0); err != nil {
		log.Fatalf("drawing: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("creating %s: %v", *output, err)
	}
	defer f.Close()

	if err := png.Encode(f, target.Image()); err != nil {
		log.Fatalf("encoding PNG: %v", err)
	}

	log.Printf("ldidemo: saved %s (%dx%d)", *output, *width, *height)
}

// defaultCamera seeds a render camera from the capture's first view,
// offset by the requested position.
func defaultCamera(cap *capture.Capture, x, y float64) capture.RenderCamera {
	v := cap.Views[0]
	return capture.RenderCamera{
		Position: camera.V3(x, y, 0),
		FocalPx:  v.FocalPx,
	}
}
