package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"fourseatpoker/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are not enough cards left
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return &Deck{Cards: cards}
}

// Shuffle performs a Fisher-Yates shuffle using the supplied generator.
// Every permutation is equally likely provided the generator is uniform.
func (d *Deck) Shuffle(g rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Clone returns a deck holding the same remaining cards.
// The cards themselves are shared; they are immutable values.
func (d *Deck) Clone() *Deck {
	cards := make([]*Card, len(d.Cards))
	copy(cards, d.Cards)
	return &Deck{Cards: cards}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DrawCount draws count cards from the top of the deck.
// If fewer than count cards remain, an ErrEndOfDeck is returned and the deck is unchanged.
func (d *Deck) DrawCount(count int) ([]*Card, error) {
	if !d.CanDraw(count) {
		return nil, ErrEndOfDeck
	}

	cards := d.Cards[0:count]
	d.Cards = d.Cards[count:]

	return cards, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
