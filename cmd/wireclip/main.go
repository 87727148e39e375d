// wireclip - Wireframe perspective viewer
// Draws wireframe models through a clipped perspective camera, either to the
// terminal or to a PNG/WebP image.
//
// Controls (terminal mode):
//
//	A/D         - Rotate camera left/right
//	Left/Right  - Move camera left/right
//	W/S         - Move camera forward/backward
//	Up/Down     - Same as W/S
//	V           - Toggle vertex markers
//	R           - Reset camera
//	Esc/Q       - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/taigrr/wireclip/internal/config"
	"github.com/taigrr/wireclip/pkg/models"
	"github.com/taigrr/wireclip/pkg/render"
	"github.com/taigrr/wireclip/pkg/view"
)

var (
	configPath  = flag.String("config", "", "Path to JSON config file")
	outputPath  = flag.String("o", "", "Write one frame to this file (.png or .webp) instead of the terminal")
	width       = flag.Int("width", 0, "Output image width")
	height      = flag.Int("height", 0, "Output image height")
	supersample = flag.Int("supersample", 0, "Render at N times the size and downscale")
	prpFlag     = flag.String("prp", "", "Projection reference point (x,y,z)")
	srpFlag     = flag.String("srp", "", "Scene reference point (x,y,z)")
	vupFlag     = flag.String("vup", "", "View-up vector (x,y,z)")
	clipFlag    = flag.String("clip", "", "Clip volume (umin,umax,vmin,vmax,front,back)")
	fitSize     = flag.Float64("fit", 2, "Center the model and scale it to this size (0 to disable)")
	markFlag    = flag.Bool("marks", false, "Mark segment endpoints")
	bgColor     = flag.String("bg", "30,30,40", "Background color (R,G,B)")
	targetFPS   = flag.Int("fps", 30, "Target FPS (terminal mode)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wireclip - Wireframe perspective viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: wireclip [options] [model.glb|model.gltf]\n\n")
		fmt.Fprintf(os.Stderr, "Without a model a built-in house is drawn.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  A/D         - Rotate camera\n")
		fmt.Fprintf(os.Stderr, "  Left/Right  - Move camera sideways\n")
		fmt.Fprintf(os.Stderr, "  W/S         - Move camera forward/backward\n")
		fmt.Fprintf(os.Stderr, "  V           - Toggle vertex markers\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset camera\n")
		fmt.Fprintf(os.Stderr, "  Esc/Q       - Quit\n")
	}
	flag.Parse()

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(modelPath string) error {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return err
		}
	}
	err := cfg.Resolve(config.Flags{
		PRP:         *prpFlag,
		SRP:         *srpFlag,
		VUP:         *vupFlag,
		Clip:        *clipFlag,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Output:      *outputPath,
	})
	if err != nil {
		return err
	}

	params, err := cfg.Params()
	if err != nil {
		return err
	}
	if _, err := view.Build(params); err != nil {
		return fmt.Errorf("camera: %w", err)
	}

	// Parse background color
	var bgR, bgG, bgB uint8 = 30, 30, 40
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)
	bg := render.RGB(bgR, bgG, bgB)

	mesh, err := loadModel(modelPath)
	if err != nil {
		return err
	}
	if *fitSize > 0 {
		mesh.Fit(*fitSize)
	}

	if cfg.Output != "" {
		return renderFile(cfg, params, mesh, bg)
	}

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	return runTerminal(ctx, cancel, params, mesh, bg)
}

func loadModel(path string) (*models.Mesh, error) {
	if path == "" {
		return demoHouse(), nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".glb", ".gltf":
		mesh, err := models.LoadGLB(path)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
		if mesh.EdgeCount() == 0 {
			return nil, fmt.Errorf("load model: %s has no triangle or line primitives", filepath.Base(path))
		}
		return mesh, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .glb or .gltf)", ext)
	}
}

// renderFile draws a single frame and writes it to cfg.Output.
func renderFile(cfg config.Config, params view.Params, mesh *models.Mesh, bg render.Color) error {
	scale := cfg.Supersample
	fb := render.NewFramebuffer(cfg.Width*scale, cfg.Height*scale)
	fb.Clear(bg)

	wf := render.NewWireframe(fb)
	wf.MarkVertices = *markFlag
	if err := wf.Draw(params, mesh); err != nil {
		// Failed segments are skipped; the rest of the frame is still saved
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if err := fb.Save(cfg.Output, scale); err != nil {
		return fmt.Errorf("save %s: %w", cfg.Output, err)
	}

	s := wf.Stats
	fmt.Printf("Wrote %s (%dx%d, %d segments: %d accepted, %d clipped, %d rejected, %d failed)\n",
		cfg.Output, cfg.Width, cfg.Height, s.Segments, s.Accepted, s.Clipped, s.Rejected, s.Failed)
	return nil
}
