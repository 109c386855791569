// Package shell provides the top-level game loop that owns the window, the
// audio and the three screens, and forwards each frame to the active one.
package shell

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/munchkin/internal/application/input"
	"github.com/younwookim/munchkin/internal/application/scene"
	"github.com/younwookim/munchkin/internal/application/state"
	"github.com/younwookim/munchkin/internal/infrastructure/audio"
	"github.com/younwookim/munchkin/internal/infrastructure/config"
	"github.com/younwookim/munchkin/internal/infrastructure/display"
)

var (
	// ErrInvalidResolution is returned by ApplyChanges for non-positive sizes.
	ErrInvalidResolution = errors.New("shell: invalid resolution")
	// ErrUnknownState is returned for a state.ID outside the declared set.
	ErrUnknownState = errors.New("shell: unknown state")
)

// Audio is the subset of the mixer the shell drives.
type Audio interface {
	Music() audio.Channel
	Click() audio.Channel
	PlayClick() error
	Close() error
}

// Scenes holds one factory per playable state.
type Scenes struct {
	Menu    scene.Factory
	Options scene.Factory
	Playing scene.Factory
}

// Deps are the already-initialized subsystems the shell takes ownership of.
type Deps struct {
	Window display.Window
	Audio  Audio
	Font   text.Face
	Input  *input.Poller
	Clock  *display.Clock
	Logger *log.Logger
	Scenes Scenes
}

// Shell implements ebiten.Game and owns every shared resource.
type Shell struct {
	title      string
	resolution display.Resolution
	base       display.Resolution
	volume     int

	current state.ID
	entered state.ID
	// frame is the scene chosen at the start of the last Update;
	// Draw renders the same scene.
	frame scene.Scene

	surface *ebiten.Image
	window  display.Window
	audio   Audio
	font    text.Face
	input   *input.Poller
	clock   *display.Clock
	logger  *log.Logger

	menu    scene.Scene
	options scene.Scene
	playing scene.Scene
}

// New creates the shell: the window is sized and titled, the configured
// volume is applied to both audio channels, the base surface is
// allocated and the three scenes are built with a reference to the shell.
func New(cfg *config.Config, deps Deps) (*Shell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Window == nil || deps.Audio == nil || deps.Input == nil {
		return nil, errors.New("shell: window, audio and input are required")
	}
	if deps.Scenes.Menu == nil || deps.Scenes.Options == nil || deps.Scenes.Playing == nil {
		return nil, errors.New("shell: every scene factory is required")
	}

	s := &Shell{
		title:      cfg.Window.Title,
		resolution: cfg.InitialResolution(),
		base:       cfg.BaseResolution(),
		current:    state.Menu,
		entered:    state.Menu,
		window:     deps.Window,
		audio:      deps.Audio,
		font:       deps.Font,
		input:      deps.Input,
		clock:      deps.Clock,
		logger:     deps.Logger,
	}
	if s.clock == nil {
		s.clock = display.NewClock(cfg.Window.TPS)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}

	s.window.Apply(display.WindowOptions{
		Resolution: s.resolution,
		Title:      s.title,
	})
	s.setVolume(cfg.Audio.Volume)

	s.surface = ebiten.NewImage(s.base.Width, s.base.Height)

	s.menu = deps.Scenes.Menu(s)
	s.options = deps.Scenes.Options(s)
	s.playing = deps.Scenes.Playing(s)

	s.logger.Info("shell ready",
		"window", s.resolution,
		"base", s.base,
		"volume", s.volume,
		"state", s.current)

	return s, nil
}

// ApplyChanges recreates the window at res and sets the volume on both
// channels. The window is centered when it shrinks in either dimension.
// Volume is clamped to 0..100; a non-positive resolution is rejected and
// nothing changes.
func (s *Shell) ApplyChanges(res display.Resolution, volume int) error {
	if !res.Valid() {
		s.logger.Warn("rejected display changes", "resolution", res, "volume", volume)
		return fmt.Errorf("%w: %s", ErrInvalidResolution, res)
	}

	centered := res.Smaller(s.resolution)
	s.resolution = res
	s.window.Apply(display.WindowOptions{
		Resolution: res,
		Title:      s.title,
		Centered:   centered,
	})

	s.setVolume(volume)

	s.logger.Info("applied display changes",
		"resolution", s.resolution,
		"volume", s.volume,
		"centered", centered)
	return nil
}

func (s *Shell) setVolume(volume int) {
	s.volume = audio.ClampLevel(volume)
	gain := audio.Gain(s.volume)
	s.audio.Music().SetVolume(gain)
	s.audio.Click().SetVolume(gain)
}

// RequestTransition makes next the active state from the next frame on.
func (s *Shell) RequestTransition(next state.ID) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownState, int(next))
	}
	if next != s.current {
		s.logger.Debug("state transition", "from", s.current, "to", next)
	}
	s.current = next
	return nil
}

// sceneFor returns the scene bound to id. Exit has no scene.
func (s *Shell) sceneFor(id state.ID) (scene.Scene, error) {
	switch id {
	case state.Menu:
		return s.menu, nil
	case state.Options:
		return s.options, nil
	case state.Playing:
		return s.playing, nil
	case state.Exit:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, int(id))
	}
}

// Step runs one frame against the state that is current when it starts:
// events, then update. Returns ebiten.Termination once the state is Exit.
func (s *Shell) Step(events []input.Event, dt float64) error {
	active, err := s.sceneFor(s.current)
	if err != nil {
		return err
	}
	if active == nil {
		s.frame = nil
		return ebiten.Termination
	}

	if s.current != s.entered {
		s.entered = s.current
		if e, ok := active.(scene.Enterer); ok {
			e.OnEnter()
		}
	}

	s.frame = active
	if err := active.HandleEvents(events); err != nil {
		return err
	}
	return active.Update(dt)
}

// Update polls input once, measures the frame time and steps the
// active scene. Implements ebiten.Game interface.
func (s *Shell) Update() error {
	if s.current == state.Exit {
		s.frame = nil
		return ebiten.Termination
	}

	events := s.input.Poll(s.viewport())
	return s.Step(events, s.clock.Tick())
}

// Draw renders the frame's scene into the base surface, then stretches the
// base surface over the whole window. Implements ebiten.Game interface.
func (s *Shell) Draw(screen *ebiten.Image) {
	if s.frame == nil {
		return
	}

	s.surface.Clear()
	s.frame.Draw(s.surface)
	screen.DrawImage(s.surface, s.viewport().ScaleOptions())
}

// Layout returns the current window resolution, so the screen image always
// matches the real window. Implements ebiten.Game interface.
func (s *Shell) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.resolution.Width, s.resolution.Height
}

// Close shuts the audio subsystem down.
func (s *Shell) Close() error {
	s.logger.Info("shutting down")
	return s.audio.Close()
}

func (s *Shell) viewport() display.Viewport {
	return display.Viewport{Base: s.base, Target: s.resolution}
}

// Current returns the active state.
func (s *Shell) Current() state.ID { return s.current }

// Resolution returns the current window size.
func (s *Shell) Resolution() display.Resolution { return s.resolution }

// Volume returns the current 0..100 volume level.
func (s *Shell) Volume() int { return s.volume }

// BaseSize returns the logical surface size.
func (s *Shell) BaseSize() display.Resolution { return s.base }

// Cursor returns the pointer in base-surface coordinates.
func (s *Shell) Cursor() (int, int) { return s.input.Cursor(s.viewport()) }

func (s *Shell) Font() text.Face { return s.font }

// PlayClick plays the click effect. Failures are logged, never fatal.
func (s *Shell) PlayClick() {
	if err := s.audio.PlayClick(); err != nil {
		s.logger.Warn("click effect failed", "err", err)
	}
}

func (s *Shell) Logger() *log.Logger { return s.logger }

var (
	_ ebiten.Game   = (*Shell)(nil)
	_ scene.Context = (*Shell)(nil)
)
