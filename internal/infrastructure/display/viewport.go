package display

import "github.com/hajimehoshi/ebiten/v2"

// Viewport maps the fixed base surface onto the real window.
type Viewport struct {
	Base   Resolution
	Target Resolution
}

// Scale returns the horizontal and vertical scale factors from base to target.
func (v Viewport) Scale() (float64, float64) {
	if !v.Base.Valid() {
		return 1, 1
	}
	return float64(v.Target.Width) / float64(v.Base.Width),
		float64(v.Target.Height) / float64(v.Base.Height)
}

// ScaleOptions returns draw options that stretch the base surface to
// exactly fill the target, drawn at the origin.
func (v Viewport) ScaleOptions() *ebiten.DrawImageOptions {
	sx, sy := v.Scale()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.Filter = ebiten.FilterLinear
	return op
}

// ToBase converts a window-space point into base-surface coordinates.
func (v Viewport) ToBase(x, y int) (int, int) {
	sx, sy := v.Scale()
	if sx == 0 || sy == 0 {
		return x, y
	}
	return int(float64(x) / sx), int(float64(y) / sy)
}
