// Package scene defines the contract between the shell and its screens.
//
// Each top-level screen (menu, options, gameplay) implements Scene. The
// shell owns every scene for the whole process and forwards the frame's
// events, delta time and draw call to whichever one is active.
package scene

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/munchkin/internal/application/input"
	"github.com/younwookim/munchkin/internal/application/state"
	"github.com/younwookim/munchkin/internal/infrastructure/display"
)

// Scene represents a top-level screen.
type Scene interface {
	// HandleEvents consumes the events polled for this frame.
	// The slice is shared and must not be modified.
	HandleEvents(events []input.Event) error

	// Update advances the scene.
	// dt is the delta time in seconds, within [0, 1/TPS].
	// Returns an error to terminate the game.
	Update(dt float64) error

	// Draw renders the scene onto the fixed-size base surface.
	Draw(surface *ebiten.Image)
}

// Enterer is implemented by scenes that refresh themselves whenever
// they become active.
type Enterer interface {
	OnEnter()
}

// Context is the scene's handle on the shell that owns it.
// All shared state changes go through these methods.
type Context interface {
	// Current returns the active state.
	Current() state.ID
	// RequestTransition makes next the active state from the next frame on.
	RequestTransition(next state.ID) error
	// ApplyChanges resizes the window and sets the volume (0..100).
	ApplyChanges(res display.Resolution, volume int) error

	Resolution() display.Resolution
	Volume() int
	// BaseSize is the size of the surface passed to Draw.
	BaseSize() display.Resolution
	// Cursor is the pointer position in base-surface coordinates.
	Cursor() (int, int)

	Font() text.Face
	PlayClick()
	Logger() *log.Logger
}

// Factory builds a scene bound to its owning shell.
type Factory func(ctx Context) Scene
