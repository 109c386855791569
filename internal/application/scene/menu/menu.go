// Package menu provides the title screen.
package menu

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/munchkin/internal/application/input"
	"github.com/younwookim/munchkin/internal/application/scene"
	"github.com/younwookim/munchkin/internal/application/state"
	"github.com/younwookim/munchkin/internal/application/ui"
)

// Entry is a selectable menu line.
type Entry int

const (
	EntryPlay Entry = iota
	EntryOptions
	EntryExit
)

var entries = []struct {
	label  string
	target state.ID
}{
	EntryPlay:    {"Jogar", state.Playing},
	EntryOptions: {"Opções", state.Options},
	EntryExit:    {"Sair", state.Exit},
}

const (
	buttonW   = 360
	buttonH   = 64
	buttonGap = 24
)

// Menu is the title screen scene
type Menu struct {
	ctx      scene.Context
	buttons  []ui.Button
	selected Entry
	// last pointer position seen by Update
	lastX, lastY int
}

// New creates the menu bound to ctx.
func New(ctx scene.Context) scene.Scene {
	base := ctx.BaseSize()

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.label
	}
	top := base.Height/2 - buttonH/2

	return &Menu{
		ctx:     ctx,
		buttons: ui.Column(labels, base.Width/2, top, buttonW, buttonH, buttonGap),
		lastX:   -1,
		lastY:   -1,
	}
}

// Selected returns the highlighted entry.
func (m *Menu) Selected() Entry { return m.selected }

// HandleEvents moves the highlight and activates entries.
func (m *Menu) HandleEvents(events []input.Event) error {
	for _, e := range events {
		switch {
		case e.Kind == input.Quit:
			return m.ctx.RequestTransition(state.Exit)
		case e.IsKeyDown(ebiten.KeyUp), e.IsKeyDown(ebiten.KeyW):
			m.selected = Entry(ui.Wrap(int(m.selected), -1, len(entries)))
		case e.IsKeyDown(ebiten.KeyDown), e.IsKeyDown(ebiten.KeyS):
			m.selected = Entry(ui.Wrap(int(m.selected), 1, len(entries)))
		case e.IsKeyDown(ebiten.KeyEnter), e.IsKeyDown(ebiten.KeySpace):
			return m.activate(m.selected)
		case e.IsKeyDown(ebiten.KeyEscape):
			return m.activate(EntryExit)
		case e.IsClick():
			if i := ui.Hit(m.buttons, e.X, e.Y); i >= 0 {
				m.selected = Entry(i)
				return m.activate(m.selected)
			}
		}
	}
	return nil
}

func (m *Menu) activate(entry Entry) error {
	m.ctx.PlayClick()
	return m.ctx.RequestTransition(entries[entry].target)
}

// Update highlights the entry under the pointer, but only when the pointer
// moved, so a resting cursor does not undo keyboard navigation.
func (m *Menu) Update(dt float64) error {
	x, y := m.ctx.Cursor()
	if x == m.lastX && y == m.lastY {
		return nil
	}
	m.lastX, m.lastY = x, y

	if i := ui.Hit(m.buttons, x, y); i >= 0 {
		m.selected = Entry(i)
	}
	return nil
}

// Draw renders the title and the entries.
func (m *Menu) Draw(surface *ebiten.Image) {
	surface.Fill(ui.ColorBackground)

	face := m.ctx.Font()
	if face != nil {
		base := m.ctx.BaseSize()
		ui.DrawCentered(surface, "MUNCHKIN", face, float64(base.Width)/2, float64(base.Height)/4, ui.ColorTitle)
	}

	for i, b := range m.buttons {
		b.Draw(surface, face, Entry(i) == m.selected)
	}
}

var _ scene.Scene = (*Menu)(nil)
