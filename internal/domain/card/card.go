// Package card models the two Munchkin decks dealt on the table.
package card

import "math/rand"

// Kind is the deck a card belongs to.
type Kind int

const (
	Door Kind = iota
	Treasure
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case Door:
		return "Door"
	case Treasure:
		return "Treasure"
	default:
		return "Unknown"
	}
}

// Card is a single playing card.
type Card struct {
	Kind Kind
	Name string
}

func (c Card) String() string {
	return c.Kind.String() + ": " + c.Name
}

var doorNames = []string{
	"Plutonium Dragon", "Net Troll", "Potted Plant", "Lame Goblin",
	"Curse! Duck of Doom", "Curse! Lose Your Armor", "Elf", "Dwarf",
	"Wizard", "Cleric", "Halfling", "Floating Nose", "Gelatinous Octahedron",
	"Wandering Monster", "Divine Intervention", "Mr. Bones",
}

var treasureNames = []string{
	"Boots of Butt-Kicking", "Cloak of Obscurity", "Sneaky Bastard Sword",
	"Helm of Courage", "Potion of General Studliness", "Staff of Napalm",
	"Mithril Armor", "Limburger and Anchovy Sandwich", "Bad-Ass Bandanna",
	"Eleven-Foot Pole", "Go Up a Level", "Flaming Armor",
}

// Deck is a draw pile plus its discard pile.
type Deck struct {
	kind    Kind
	cards   []Card
	discard []Card
	rng     *rand.Rand
}

// NewDeck builds an unshuffled deck of kind from names.
func NewDeck(kind Kind, names []string, rng *rand.Rand) *Deck {
	cards := make([]Card, 0, len(names))
	for _, n := range names {
		cards = append(cards, Card{Kind: kind, Name: n})
	}
	return &Deck{kind: kind, cards: cards, rng: rng}
}

// NewDoorDeck returns the shuffled door deck.
func NewDoorDeck(rng *rand.Rand) *Deck {
	d := NewDeck(Door, doorNames, rng)
	d.Shuffle()
	return d
}

// NewTreasureDeck returns the shuffled treasure deck.
func NewTreasureDeck(rng *rand.Rand) *Deck {
	d := NewDeck(Treasure, treasureNames, rng)
	d.Shuffle()
	return d
}

// Kind returns the deck kind.
func (d *Deck) Kind() Kind { return d.kind }

// Len is the number of cards left to draw.
func (d *Deck) Len() int { return len(d.cards) }

// Discarded is the number of cards in the discard pile.
func (d *Deck) Discarded() int { return len(d.discard) }

// Shuffle randomizes the draw pile.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw takes the top card. When the draw pile is empty the discard pile is
// shuffled back in first; ok is false only when both piles are empty.
func (d *Deck) Draw() (c Card, ok bool) {
	if len(d.cards) == 0 {
		if len(d.discard) == 0 {
			return Card{}, false
		}
		d.cards, d.discard = d.discard, nil
		d.Shuffle()
	}

	last := len(d.cards) - 1
	c = d.cards[last]
	d.cards = d.cards[:last]
	return c, true
}

// Discard puts c on the discard pile.
func (d *Deck) Discard(c Card) {
	d.discard = append(d.discard, c)
}
