package display

import "github.com/hajimehoshi/ebiten/v2"

// WindowOptions describes how the window should look after (re)creation.
type WindowOptions struct {
	Resolution Resolution
	Title      string
	// Centered moves the window to the middle of the current monitor.
	Centered bool
}

// Window is the real, user-visible window.
type Window interface {
	Apply(opts WindowOptions)
}

// EbitenWindow drives the ebiten desktop window.
type EbitenWindow struct{}

// NewEbitenWindow creates a window bound to the ebiten run loop.
// The window is not shown until ebiten.RunGame starts.
func NewEbitenWindow() *EbitenWindow {
	return &EbitenWindow{}
}

// Apply resizes the window and reapplies its title.
func (w *EbitenWindow) Apply(opts WindowOptions) {
	ebiten.SetWindowSize(opts.Resolution.Width, opts.Resolution.Height)
	ebiten.SetWindowTitle(opts.Title)

	if opts.Centered {
		mw, mh := ebiten.Monitor().Size()
		x, y := CenterOn(Resolution{Width: mw, Height: mh}, opts.Resolution)
		ebiten.SetWindowPosition(x, y)
	}
}

// CenterOn returns the top-left position that centers win on monitor.
// Windows larger than the monitor are pinned to the origin.
func CenterOn(monitor, win Resolution) (int, int) {
	x := (monitor.Width - win.Width) / 2
	y := (monitor.Height - win.Height) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
