// Package input turns the engine's per-frame input state into an ordered
// list of events that a scene can consume.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/munchkin/internal/infrastructure/display"
)

// Kind classifies an Event.
type Kind int

const (
	KeyDown Kind = iota
	KeyUp
	MouseDown
	MouseUp
	// Quit is emitted when the user closes the window.
	Quit
)

// Event is a single input occurrence within a frame.
type Event struct {
	Kind   Kind
	Key    ebiten.Key
	Button ebiten.MouseButton
	// X, Y are in base-surface coordinates for mouse events
	X, Y int
}

// IsKeyDown reports whether e is a press of key.
func (e Event) IsKeyDown(key ebiten.Key) bool {
	return e.Kind == KeyDown && e.Key == key
}

// IsClick reports whether e is a left mouse button press.
func (e Event) IsClick() bool {
	return e.Kind == MouseDown && e.Button == ebiten.MouseButtonLeft
}

// Source is the raw input state for the current frame.
type Source interface {
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool
	CursorPosition() (int, int)
	IsWindowBeingClosed() bool
}

// EbitenSource reads input from the running ebiten game.
type EbitenSource struct{}

func (EbitenSource) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (EbitenSource) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

func (EbitenSource) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (EbitenSource) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(button)
}

func (EbitenSource) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (EbitenSource) IsWindowBeingClosed() bool {
	return ebiten.IsWindowBeingClosed()
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Poller collects events once per frame.
type Poller struct {
	source Source
	keys   []ebiten.Key
}

// NewPoller creates a poller reading from source.
func NewPoller(source Source) *Poller {
	return &Poller{source: source}
}

// Poll returns this frame's events in a fixed order: quit, key presses,
// key releases, mouse presses, mouse releases. Mouse positions are
// mapped through vp into base-surface coordinates.
func (p *Poller) Poll(vp display.Viewport) []Event {
	var events []Event

	if p.source.IsWindowBeingClosed() {
		events = append(events, Event{Kind: Quit})
	}

	p.keys = p.source.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		events = append(events, Event{Kind: KeyDown, Key: k})
	}

	p.keys = p.source.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		events = append(events, Event{Kind: KeyUp, Key: k})
	}

	x, y := vp.ToBase(p.source.CursorPosition())
	for _, b := range mouseButtons {
		if p.source.IsMouseButtonJustPressed(b) {
			events = append(events, Event{Kind: MouseDown, Button: b, X: x, Y: y})
		}
	}
	for _, b := range mouseButtons {
		if p.source.IsMouseButtonJustReleased(b) {
			events = append(events, Event{Kind: MouseUp, Button: b, X: x, Y: y})
		}
	}

	return events
}

// Cursor returns the current pointer position in base-surface coordinates.
func (p *Poller) Cursor(vp display.Viewport) (int, int) {
	return vp.ToBase(p.source.CursorPosition())
}
