// Package options provides the settings screen for window size and volume.
package options

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/munchkin/internal/application/input"
	"github.com/younwookim/munchkin/internal/application/scene"
	"github.com/younwookim/munchkin/internal/application/state"
	"github.com/younwookim/munchkin/internal/application/ui"
	"github.com/younwookim/munchkin/internal/infrastructure/audio"
	"github.com/younwookim/munchkin/internal/infrastructure/display"
)

// Row is a focusable line of the options screen.
type Row int

const (
	RowResolution Row = iota
	RowVolume
	RowApply
	RowBack
	rowCount
)

const (
	buttonW   = 480
	buttonH   = 64
	buttonGap = 24
)

// Options is the settings scene. Edits stay pending until applied.
type Options struct {
	ctx         scene.Context
	resolutions []display.Resolution
	step        int

	focus    Row
	resIndex int
	volume   int
	buttons  []ui.Button
}

// NewFactory returns a factory for an options screen offering
// resolutions and changing the volume by step.
func NewFactory(resolutions []display.Resolution, step int) scene.Factory {
	return func(ctx scene.Context) scene.Scene {
		return New(ctx, resolutions, step)
	}
}

// New creates the options screen bound to ctx.
func New(ctx scene.Context, resolutions []display.Resolution, step int) *Options {
	if step <= 0 {
		step = 10
	}
	base := ctx.BaseSize()
	top := base.Height/3 - buttonH/2

	o := &Options{
		ctx:         ctx,
		resolutions: append([]display.Resolution(nil), resolutions...),
		step:        step,
		buttons:     ui.Column(make([]string, rowCount), base.Width/2, top, buttonW, buttonH, buttonGap),
	}
	o.OnEnter()
	return o
}

// OnEnter reloads the live resolution and volume from the shell.
func (o *Options) OnEnter() {
	o.focus = RowResolution
	o.volume = o.ctx.Volume()
	o.resIndex = o.indexOf(o.ctx.Resolution())
	o.relabel()
}

// indexOf finds res in the offered list, appending it when missing so the
// current size can always be reselected.
func (o *Options) indexOf(res display.Resolution) int {
	for i, r := range o.resolutions {
		if r == res {
			return i
		}
	}
	o.resolutions = append(o.resolutions, res)
	return len(o.resolutions) - 1
}

// Pending returns the resolution and volume that Apply would send.
func (o *Options) Pending() (display.Resolution, int) {
	return o.resolutions[o.resIndex], o.volume
}

// Focus returns the focused row.
func (o *Options) Focus() Row { return o.focus }

func (o *Options) relabel() {
	res, vol := o.Pending()
	o.buttons[RowResolution].Label = fmt.Sprintf("< Resolução: %s >", res)
	o.buttons[RowVolume].Label = fmt.Sprintf("< Volume: %d >", vol)
	o.buttons[RowApply].Label = "Aplicar"
	o.buttons[RowBack].Label = "Voltar"
}

// HandleEvents edits the pending values and applies or leaves.
func (o *Options) HandleEvents(events []input.Event) error {
	for _, e := range events {
		var err error
		switch {
		case e.Kind == input.Quit:
			return o.ctx.RequestTransition(state.Exit)
		case e.IsKeyDown(ebiten.KeyEscape):
			err = o.back()
		case e.IsKeyDown(ebiten.KeyUp):
			o.focus = Row(ui.Wrap(int(o.focus), -1, int(rowCount)))
		case e.IsKeyDown(ebiten.KeyDown):
			o.focus = Row(ui.Wrap(int(o.focus), 1, int(rowCount)))
		case e.IsKeyDown(ebiten.KeyLeft):
			o.adjust(o.focus, -1)
		case e.IsKeyDown(ebiten.KeyRight):
			o.adjust(o.focus, 1)
		case e.IsKeyDown(ebiten.KeyEnter):
			err = o.activate(o.focus, 1)
		case e.IsClick():
			err = o.click(e.X, e.Y)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (o *Options) click(x, y int) error {
	i := ui.Hit(o.buttons, x, y)
	if i < 0 {
		return nil
	}
	o.focus = Row(i)

	// Clicking the left half of a value row decreases it
	dir := 1
	b := o.buttons[i]
	if x < b.Rect.Min.X+b.Rect.Dx()/2 {
		dir = -1
	}
	return o.activate(o.focus, dir)
}

func (o *Options) activate(row Row, dir int) error {
	switch row {
	case RowResolution, RowVolume:
		o.adjust(row, dir)
		return nil
	case RowApply:
		return o.apply()
	case RowBack:
		return o.back()
	default:
		return nil
	}
}

func (o *Options) adjust(row Row, dir int) {
	switch row {
	case RowResolution:
		o.resIndex = ui.Wrap(o.resIndex, dir, len(o.resolutions))
	case RowVolume:
		o.volume = audio.ClampLevel(o.volume + dir*o.step)
	default:
		return
	}
	o.ctx.PlayClick()
	o.relabel()
}

func (o *Options) apply() error {
	o.ctx.PlayClick()
	res, vol := o.Pending()
	// A rejected change leaves the screen open with its pending values
	if err := o.ctx.ApplyChanges(res, vol); err != nil {
		o.ctx.Logger().Warn("options not applied", "err", err)
	}
	return nil
}

func (o *Options) back() error {
	o.ctx.PlayClick()
	return o.ctx.RequestTransition(state.Menu)
}

// Update has nothing to animate.
func (o *Options) Update(dt float64) error {
	return nil
}

// Draw renders the rows with the focused one highlighted.
func (o *Options) Draw(surface *ebiten.Image) {
	surface.Fill(ui.ColorBackground)

	face := o.ctx.Font()
	if face != nil {
		base := o.ctx.BaseSize()
		ui.DrawCentered(surface, "Opções", face, float64(base.Width)/2, float64(base.Height)/8, ui.ColorTitle)
	}

	for i, b := range o.buttons {
		b.Draw(surface, face, Row(i) == o.focus)
	}
}

var (
	_ scene.Scene   = (*Options)(nil)
	_ scene.Enterer = (*Options)(nil)
)
