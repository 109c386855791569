// Package assets loads fonts for the scenes.
package assets

import (
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// LoadFace reads a TrueType/OpenType font from fsys at the given size.
func LoadFace(fsys fs.FS, name string, size float64) (text.Face, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", name, err)
	}

	return ParseFace(data, size)
}

// ParseFace builds a face from raw font bytes.
func ParseFace(data []byte, size float64) (text.Face, error) {
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	return text.NewGoXFace(face), nil
}
