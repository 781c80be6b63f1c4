package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/meshlab/internal/config"
	"github.com/Faultbox/meshlab/internal/engine/input"
	"github.com/Faultbox/meshlab/internal/engine/renderer"
	"github.com/Faultbox/meshlab/internal/engine/window"
	"github.com/Faultbox/meshlab/internal/logger"
)

// Title is the window title before the status line.
const Title = "meshlab"

// Viewer owns the window and runs the frame loop over a Session.
type Viewer struct {
	window  *window.Window
	input   *input.Input
	session *Session
	log     *zap.Logger

	// picks carries paths chosen in the native dialog to the frame loop.
	picks   chan string
	picking bool
}

// New creates the window, the GL backend and the session.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		input: input.New(),
		picks: make(chan string, 1),
		log:   logger.Named("app"),
	}

	var err error
	v.window, err = window.New(cfg.WindowConfig(Title))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The GL context must exist before the backend loads its functions.
	backend, err := renderer.NewGL()
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.session, err = NewSession(backend, cfg)
	if err != nil {
		backend.Destroy()
		v.window.Close()
		return nil, err
	}
	v.session.OnOpenRequest = v.openFileDialog

	return v, nil
}

// Run drives the frame loop until the window is closed.
func (v *Viewer) Run() error {
	frameCount := 0
	fpsTimer := time.Now()
	status := ""

	v.log.Info("starting frame loop")

	for !v.session.Quit() {
		if v.input.Update() {
			break
		}

		w, h := v.window.Size()
		for _, e := range v.input.Events() {
			v.session.HandleEvent(e, w, h)
		}

		v.takePick()

		dw, dh := v.window.DrawableSize()
		if err := v.session.RenderFrame(dw, dh); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		v.window.SwapBuffers()

		if s := v.session.Status(); s != status {
			status = s
			v.window.SetStatus(status)
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// takePick applies a dialog result, if one arrived since the last frame.
func (v *Viewer) takePick() {
	select {
	case path := <-v.picks:
		v.picking = false
		if path == "" {
			return
		}
		if err := v.session.ReplaceSelected(path); err != nil {
			v.log.Warn("replacement failed", zap.String("path", path), zap.Error(err))
		}
	default:
	}
}

// openFileDialog shows the native picker without blocking the frame loop.
// The chosen path is applied on the main thread by takePick.
func (v *Viewer) openFileDialog() {
	if v.picking {
		return
	}
	v.picking = true

	go func() {
		filename, err := dialog.File().
			Filter("OBJ models", "obj").
			Filter("All Files", "*").
			Title("Replace selected object").
			Load()
		if err != nil && !errors.Is(err, dialog.ErrCancelled) {
			v.log.Error("file dialog failed", zap.Error(err))
		}
		// An empty path still clears the picking flag.
		v.picks <- filename
	}()
}

// Close releases the session and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.session != nil {
		v.session.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
