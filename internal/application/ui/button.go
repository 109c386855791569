// Package ui holds the small widgets shared by the menu and options screens.
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	ColorBackground = color.RGBA{24, 18, 12, 255}
	ColorButton     = color.RGBA{92, 60, 32, 255}
	ColorSelected   = color.RGBA{196, 140, 52, 255}
	ColorText       = color.RGBA{245, 230, 200, 255}
	ColorTitle      = color.RGBA{230, 190, 90, 255}
)

// Button is a labelled rectangle in base-surface coordinates.
type Button struct {
	Label string
	Rect  image.Rectangle
}

// Contains reports whether (x, y) lies inside the button.
func (b Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw paints the button and centers its label. face may be nil, in which
// case only the box is drawn.
func (b Button) Draw(dst *ebiten.Image, face text.Face, selected bool) {
	fill := ColorButton
	if selected {
		fill = ColorSelected
	}

	r := b.Rect
	vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), fill, false)

	if face == nil {
		return
	}
	cx := float64(r.Min.X) + float64(r.Dx())/2
	cy := float64(r.Min.Y) + float64(r.Dy())/2
	DrawCentered(dst, b.Label, face, cx, cy, ColorText)
}

// DrawCentered draws s centered on (cx, cy). Multi-line strings are
// spaced by the face's line height.
func DrawCentered(dst *ebiten.Image, s string, face text.Face, cx, cy float64, clr color.Color) {
	text.Draw(dst, s, face, centeredOptions(face, cx, cy, clr))
}

func centeredOptions(face text.Face, cx, cy float64, clr color.Color) *text.DrawOptions {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = LineHeight(face)
	return op
}

// LineHeight is the distance between two baselines of face.
func LineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Column lays labels out top to bottom, each w by h, horizontally centered
// on centerX and separated by gap.
func Column(labels []string, centerX, top, w, h, gap int) []Button {
	buttons := make([]Button, len(labels))
	x := centerX - w/2
	for i, label := range labels {
		y := top + i*(h+gap)
		buttons[i] = Button{
			Label: label,
			Rect:  image.Rect(x, y, x+w, y+h),
		}
	}
	return buttons
}

// Hit returns the index of the first button containing (x, y), or -1.
func Hit(buttons []Button, x, y int) int {
	for i, b := range buttons {
		if b.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Wrap moves index by delta inside [0, n), wrapping around both ends.
func Wrap(index, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((index+delta)%n + n) % n
}
