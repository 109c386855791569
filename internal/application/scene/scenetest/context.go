// Package scenetest provides a recording scene.Context for scene tests.
package scenetest

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/munchkin/internal/application/state"
	"github.com/younwookim/munchkin/internal/infrastructure/display"
)

// Change is one recorded ApplyChanges call.
type Change struct {
	Resolution display.Resolution
	Volume     int
}

// Context is a scene.Context that records every request.
type Context struct {
	State       state.ID
	Transitions []state.ID
	Changes     []Change
	Res         display.Resolution
	Vol         int
	Base        display.Resolution
	CursorX     int
	CursorY     int
	Clicks      int
	ApplyErr    error
	log         *log.Logger
}

// NewContext returns a context in the menu state with a 1920x1080 window,
// a 1280x720 base surface and volume 50.
func NewContext() *Context {
	return &Context{
		State: state.Menu,
		Res:   display.Resolution{Width: 1920, Height: 1080},
		Vol:   50,
		Base:  display.Resolution{Width: 1280, Height: 720},
		log:   log.New(io.Discard),
	}
}

func (c *Context) Current() state.ID { return c.State }

func (c *Context) RequestTransition(next state.ID) error {
	c.Transitions = append(c.Transitions, next)
	c.State = next
	return nil
}

func (c *Context) ApplyChanges(res display.Resolution, volume int) error {
	if c.ApplyErr != nil {
		return c.ApplyErr
	}
	c.Changes = append(c.Changes, Change{Resolution: res, Volume: volume})
	c.Res = res
	c.Vol = volume
	return nil
}

func (c *Context) Resolution() display.Resolution { return c.Res }
func (c *Context) Volume() int                    { return c.Vol }
func (c *Context) BaseSize() display.Resolution   { return c.Base }
func (c *Context) Cursor() (int, int)             { return c.CursorX, c.CursorY }
func (c *Context) Font() text.Face                { return nil }
func (c *Context) PlayClick()                     { c.Clicks++ }
func (c *Context) Logger() *log.Logger            { return c.log }

// LastTransition returns the most recent requested state, or false if none.
func (c *Context) LastTransition() (state.ID, bool) {
	if len(c.Transitions) == 0 {
		return 0, false
	}
	return c.Transitions[len(c.Transitions)-1], true
}
