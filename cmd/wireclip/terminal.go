package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/wireclip/pkg/models"
	"github.com/taigrr/wireclip/pkg/render"
	"github.com/taigrr/wireclip/pkg/view"
)

// runTerminal shows mesh in the terminal until ctx is cancelled or the user
// quits.
func runTerminal(ctx context.Context, cancel context.CancelFunc, params view.Params, mesh *models.Mesh, bg render.Color) error {
	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)
	wf := render.NewWireframe(fb)
	wf.MarkVertices = *markFlag

	camera := NewSmoothCamera(params, *targetFPS)

	// Events are handled on the render goroutine
	events := make(chan uv.Event, 64)
	go func() {
		for ev := range term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	ticker := time.NewTicker(time.Second / time.Duration(max(*targetFPS, 1)))
	defer ticker.Stop()

	var drawErr error
	failedFrames := 0
	dirty := true
	for {
		select {
		case <-ctx.Done():
			cleanup()
			if drawErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: %d frames had errors, last: %v\n", failedFrames, drawErr)
			}
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				fbWidth, fbHeight = termRenderer.FramebufferSize()
				fb = render.NewFramebuffer(fbWidth, fbHeight)
				marks := wf.MarkVertices
				wf = render.NewWireframe(fb)
				wf.MarkVertices = marks

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("q"), ev.MatchString("ctrl+c"):
					cancel()
				case ev.MatchString("a"):
					camera.Move(view.RotateLeft)
				case ev.MatchString("d"):
					camera.Move(view.RotateRight)
				case ev.MatchString("left"):
					camera.Move(view.MoveLeft)
				case ev.MatchString("right"):
					camera.Move(view.MoveRight)
				case ev.MatchString("w", "up"):
					camera.Move(view.MoveForward)
				case ev.MatchString("s", "down"):
					camera.Move(view.MoveBackward)
				case ev.MatchString("v"):
					wf.MarkVertices = !wf.MarkVertices
				case ev.MatchString("r"):
					camera.Target = params
					camera.Snap()
				}
			}
			dirty = true

		case <-ticker.C:
			if !dirty && camera.Settled() {
				continue
			}
			dirty = false

			fb.Clear(bg)
			wf.ResetStats()
			if err := wf.Draw(camera.Update(), mesh); err != nil {
				drawErr = err
				failedFrames++
				if errors.Is(err, view.ErrDegenerateBasis) {
					// Moves only accept targets that build, so jump to it
					// instead of easing through the degenerate camera
					camera.Snap()
				}
			}

			termRenderer.Render(fb)
			if err := termRenderer.Flush(); err != nil {
				cleanup()
				return fmt.Errorf("flush: %w", err)
			}
		}
	}
}
