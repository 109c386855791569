// Package display owns the real window and the mapping between the fixed
// logical surface and whatever size that window currently has.
package display

import "fmt"

// Resolution is a width/height pair in pixels.
type Resolution struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Valid reports whether both dimensions are positive.
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// Smaller reports whether r is narrower or shorter than other.
// Shrinking in either dimension counts.
func (r Resolution) Smaller(other Resolution) bool {
	return r.Width < other.Width || r.Height < other.Height
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}
