package ui

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/munchkin/internal/infrastructure/assets"
)

func TestColumn(t *testing.T) {
	buttons := Column([]string{"Jogar", "Opções", "Sair"}, 640, 300, 320, 60, 20)
	require.Len(t, buttons, 3)

	assert.Equal(t, image.Rect(480, 300, 800, 360), buttons[0].Rect)
	assert.Equal(t, image.Rect(480, 380, 800, 440), buttons[1].Rect)
	assert.Equal(t, image.Rect(480, 460, 800, 520), buttons[2].Rect)
	assert.Equal(t, "Sair", buttons[2].Label)
}

func TestButton_Contains(t *testing.T) {
	b := Button{Rect: image.Rect(10, 10, 20, 20)}

	assert.True(t, b.Contains(10, 10))
	assert.True(t, b.Contains(19, 19))
	// Max edge is exclusive
	assert.False(t, b.Contains(20, 20))
	assert.False(t, b.Contains(5, 15))
}

func TestHit(t *testing.T) {
	buttons := Column([]string{"a", "b"}, 100, 0, 100, 50, 10)

	assert.Equal(t, 0, Hit(buttons, 100, 25))
	assert.Equal(t, 1, Hit(buttons, 100, 70))
	assert.Equal(t, -1, Hit(buttons, 100, 55))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, 1, Wrap(0, 1, 3))
	assert.Equal(t, 0, Wrap(2, 1, 3))
	assert.Equal(t, 2, Wrap(0, -1, 3))
	assert.Equal(t, 0, Wrap(5, 1, 0))
}

func TestCenteredOptions_SpacesLines(t *testing.T) {
	face, err := assets.ParseFace(goregular.TTF, 40)
	require.NoError(t, err)

	op := centeredOptions(face, 100, 50, ColorText)

	m := face.Metrics()
	assert.Greater(t, op.LineSpacing, 0.0)
	assert.InDelta(t, m.HAscent+m.HDescent+m.HLineGap, op.LineSpacing, 1e-9)
	assert.Equal(t, op.LineSpacing, LineHeight(face))
	assert.Equal(t, 100.0, op.GeoM.Element(0, 2))
	assert.Equal(t, 50.0, op.GeoM.Element(1, 2))
}

func TestButton_Draw(t *testing.T) {
	face, err := assets.ParseFace(goregular.TTF, 24)
	require.NoError(t, err)

	dst := ebiten.NewImage(200, 100)
	b := Button{Label: "Door\n12", Rect: image.Rect(10, 10, 190, 90)}

	assert.NotPanics(t, func() {
		b.Draw(dst, face, true)
		b.Draw(dst, nil, false)
	})
}
