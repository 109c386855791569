// Package gameplay provides the card table scene.
package gameplay

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/munchkin/internal/application/input"
	"github.com/younwookim/munchkin/internal/application/scene"
	"github.com/younwookim/munchkin/internal/application/state"
	"github.com/younwookim/munchkin/internal/application/ui"
	"github.com/younwookim/munchkin/internal/domain/card"
)

// MaxHand is the number of cards a player may hold.
const MaxHand = 8

const (
	cardW   = 140
	cardH   = 200
	cardGap = 12
	margin  = 40
)

// Colors for rendering
var (
	colorTable    = color.RGBA{20, 70, 40, 255}
	colorDoor     = color.RGBA{120, 40, 30, 255}
	colorTreasure = color.RGBA{170, 130, 40, 255}
	colorEmpty    = color.RGBA{40, 40, 40, 255}
	colorHover    = color.RGBA{255, 255, 255, 60}
)

// Gameplay is the card table scene
type Gameplay struct {
	ctx      scene.Context
	doors    *card.Deck
	treasure *card.Deck
	hand     []card.Card
	hover    int
}

// NewFactory returns a factory whose decks are shuffled from seed.
func NewFactory(seed int64) scene.Factory {
	return func(ctx scene.Context) scene.Scene {
		return New(ctx, rand.New(rand.NewSource(seed)))
	}
}

// New creates the table with freshly shuffled decks.
func New(ctx scene.Context, rng *rand.Rand) *Gameplay {
	return &Gameplay{
		ctx:      ctx,
		doors:    card.NewDoorDeck(rng),
		treasure: card.NewTreasureDeck(rng),
		hover:    -1,
	}
}

// Hand returns the cards currently held.
func (g *Gameplay) Hand() []card.Card { return g.hand }

// HandleEvents draws, discards and leaves the table.
func (g *Gameplay) HandleEvents(events []input.Event) error {
	for _, e := range events {
		switch {
		case e.Kind == input.Quit:
			return g.ctx.RequestTransition(state.Exit)
		case e.IsKeyDown(ebiten.KeyEscape):
			g.ctx.PlayClick()
			return g.ctx.RequestTransition(state.Menu)
		case e.IsKeyDown(ebiten.KeyD):
			g.draw(g.doors)
		case e.IsKeyDown(ebiten.KeyT):
			g.draw(g.treasure)
		case e.IsClick():
			g.click(e.X, e.Y)
		}
	}
	return nil
}

func (g *Gameplay) click(x, y int) {
	pt := image.Pt(x, y)
	switch {
	case pt.In(g.pileRect(card.Door)):
		g.draw(g.doors)
	case pt.In(g.pileRect(card.Treasure)):
		g.draw(g.treasure)
	default:
		if i := g.handIndexAt(x, y); i >= 0 {
			g.discard(i)
		}
	}
}

func (g *Gameplay) deck(kind card.Kind) *card.Deck {
	if kind == card.Treasure {
		return g.treasure
	}
	return g.doors
}

func (g *Gameplay) draw(d *card.Deck) {
	if len(g.hand) >= MaxHand {
		g.ctx.Logger().Debug("hand is full", "size", len(g.hand))
		return
	}
	c, ok := d.Draw()
	if !ok {
		return
	}
	g.ctx.PlayClick()
	g.hand = append(g.hand, c)
	g.ctx.Logger().Debug("drew card", "card", c)
}

func (g *Gameplay) discard(i int) {
	c := g.hand[i]
	g.hand = append(g.hand[:i], g.hand[i+1:]...)
	g.deck(c.Kind).Discard(c)
	g.ctx.PlayClick()
	g.ctx.Logger().Debug("discarded card", "card", c)
}

// Update tracks which hand card is under the pointer.
func (g *Gameplay) Update(dt float64) error {
	g.hover = g.handIndexAt(g.ctx.Cursor())
	return nil
}

func (g *Gameplay) pileRect(kind card.Kind) image.Rectangle {
	x := margin
	if kind == card.Treasure {
		x += cardW + cardGap
	}
	return image.Rect(x, margin, x+cardW, margin+cardH)
}

func (g *Gameplay) handRect(i int) image.Rectangle {
	base := g.ctx.BaseSize()
	x := margin + i*(cardW+cardGap)
	y := base.Height - margin - cardH
	return image.Rect(x, y, x+cardW, y+cardH)
}

func (g *Gameplay) handIndexAt(x, y int) int {
	pt := image.Pt(x, y)
	for i := range g.hand {
		if pt.In(g.handRect(i)) {
			return i
		}
	}
	return -1
}

// Draw renders both piles and the hand.
func (g *Gameplay) Draw(surface *ebiten.Image) {
	surface.Fill(colorTable)
	face := g.ctx.Font()

	for _, d := range []*card.Deck{g.doors, g.treasure} {
		r := g.pileRect(d.Kind())
		fill := kindColor(d.Kind())
		if d.Len() == 0 {
			fill = colorEmpty
		}
		fillRect(surface, r, fill)
		if face != nil {
			cx, cy := center(r)
			ui.DrawCentered(surface, fmt.Sprintf("%s\n%d", d.Kind(), d.Len()), face, cx, cy, ui.ColorText)
		}
	}

	for i, c := range g.hand {
		r := g.handRect(i)
		fillRect(surface, r, kindColor(c.Kind))
		if i == g.hover {
			fillRect(surface, r, colorHover)
		}
		if face != nil {
			cx, cy := center(r)
			ui.DrawCentered(surface, c.Name, face, cx, cy, ui.ColorText)
		}
	}
}

func kindColor(k card.Kind) color.Color {
	if k == card.Treasure {
		return colorTreasure
	}
	return colorDoor
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func center(r image.Rectangle) (float64, float64) {
	return float64(r.Min.X) + float64(r.Dx())/2, float64(r.Min.Y) + float64(r.Dy())/2
}

var _ scene.Scene = (*Gameplay)(nil)
