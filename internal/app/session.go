// Package app runs the viewer: it wires the window, GL backend, scene,
// interaction controller and shadow renderer together and drives the frame
// loop.
package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/meshlab/internal/assets"
	"github.com/Faultbox/meshlab/internal/config"
	"github.com/Faultbox/meshlab/internal/engine/input"
	"github.com/Faultbox/meshlab/internal/engine/interaction"
	"github.com/Faultbox/meshlab/internal/engine/renderer"
	"github.com/Faultbox/meshlab/internal/engine/scene"
	"github.com/Faultbox/meshlab/internal/engine/shader"
	"github.com/Faultbox/meshlab/internal/engine/shadow"
	"github.com/Faultbox/meshlab/internal/logger"
)

// ErrNotOBJ is returned when a replacement file is not a Wavefront OBJ.
var ErrNotOBJ = errors.New("not an .obj file")

// Session is the viewer state that does not depend on a window: scene,
// controller and renderer over a Backend. The frame loop feeds it events
// and asks it to render.
type Session struct {
	backend    renderer.Backend
	assets     *assets.Manager
	scene      *scene.Scene
	controller *interaction.Controller
	renderer   *shadow.Renderer
	render     shadow.RenderConfig
	log        *zap.Logger

	// OnOpenRequest is called when the user asks to pick a replacement
	// model. Nil disables the request.
	OnOpenRequest func()
	quit          bool
}

// NewSession compiles the shaders, loads the configured models and builds
// the scene on backend.
func NewSession(backend renderer.Backend, cfg *config.Config) (*Session, error) {
	s := &Session{
		backend: backend,
		assets:  assets.NewManager(),
		render:  cfg.RenderConfig(),
		log:     logger.Named("app"),
	}

	for _, dir := range cfg.Scene.ModelDirs {
		if err := s.assets.AddDir(dir); err != nil {
			return nil, fmt.Errorf("model dir: %w", err)
		}
	}

	catalogue, err := shader.LoadCatalogue(backend)
	if err != nil {
		return nil, err
	}

	meshes, err := s.assets.LoadAll(cfg.Scene.Models)
	if err != nil {
		return nil, fmt.Errorf("loading models: %w", err)
	}

	s.scene, err = scene.New(backend, meshes, cfg.SceneConfig())
	if err != nil {
		return nil, err
	}

	s.renderer, err = shadow.NewRenderer(backend, catalogue, int32(cfg.Graphics.ShadowResolution))
	if err != nil {
		return nil, err
	}

	s.controller = interaction.NewController(s.scene, cfg.InputSettings())
	s.controller.SetShading(s.render.Model)
	s.controller.SetShadows(s.render.Shadows)

	s.log.Info("session ready",
		zap.Strings("models", cfg.Scene.Models),
		zap.Int("instances", s.scene.Len()),
	)
	return s, nil
}

// Scene returns the live scene.
func (s *Session) Scene() *scene.Scene {
	return s.scene
}

// Controller returns the interaction controller.
func (s *Session) Controller() *interaction.Controller {
	return s.controller
}

// Quit reports whether a quit was requested.
func (s *Session) Quit() bool {
	return s.quit
}

// Status is the one-line summary shown in the window title.
func (s *Session) Status() string {
	return s.controller.Status()
}

// HandleEvent routes one input event. width and height are the window size
// in the coordinate space of mouse events.
func (s *Session) HandleEvent(e input.Event, width, height int32) {
	c := s.controller
	switch e.Type {
	case input.EventQuit:
		s.quit = true
	case input.EventKeyDown:
		s.handleKey(e.Key)
	case input.EventMouseDown:
		if e.Button == input.ButtonLeft {
			c.Press(e.MouseX, e.MouseY)
		}
	case input.EventMouseMove:
		c.Move(e.MouseX, e.MouseY, width, height)
	case input.EventMouseUp:
		if e.Button == input.ButtonLeft {
			c.Release(e.MouseX, e.MouseY, width, height)
		}
	case input.EventMouseLeave:
		c.Leave(e.MouseX, e.MouseY, width, height)
	case input.EventDropFile:
		if err := s.ReplaceSelected(e.Path); err != nil {
			s.log.Warn("dropped file not used", zap.String("path", e.Path), zap.Error(err))
		}
	}
}

func (s *Session) handleKey(key string) {
	switch key {
	case "Escape":
		s.quit = true
		return
	case interaction.KeyReturn:
		if _, ok := s.controller.Selected(); !ok {
			s.log.Info("select an object before opening a model")
			return
		}
		if s.OnOpenRequest != nil {
			s.OnOpenRequest()
		}
		return
	}

	var selErr *interaction.SelectionError
	if err := s.controller.HandleKey(key); err != nil && !errors.As(err, &selErr) {
		s.log.Error("key handling failed", zap.String("key", key), zap.Error(err))
	}
}

// ReplaceSelected loads path and puts it in the selected slot, keeping the
// slot's transforms.
func (s *Session) ReplaceSelected(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".obj") {
		return fmt.Errorf("%s: %w", path, ErrNotOBJ)
	}
	if _, ok := s.controller.Selected(); !ok {
		return interaction.ErrNoSelection
	}

	m, err := s.assets.Load(path)
	if err != nil {
		return err
	}
	inst, err := s.scene.NewInstance(m)
	if err != nil {
		return err
	}
	return s.controller.ReplaceSelected(inst)
}

// RenderFrame snapshots the scene and draws it into a width x height
// drawable.
func (s *Session) RenderFrame(width, height int32) error {
	cfg := s.render
	cfg.Width, cfg.Height = width, height
	cfg.Shadows = s.controller.Shadows()
	cfg.Model = s.controller.Shading()
	return s.renderer.Frame(s.scene.Snapshot(), cfg)
}

// Close releases loaded meshes and every GPU resource.
func (s *Session) Close() {
	hits, misses := s.assets.Stats()
	s.log.Debug("asset cache", zap.Int("hits", hits), zap.Int("misses", misses))
	s.assets.Close()
	s.backend.Destroy()
}
