package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	assert.Equal(t, "A♠", (&Card{Rank: Ace, Suit: Spades}).String())
	assert.Equal(t, "10♡", (&Card{Rank: 10, Suit: Hearts}).String())
	assert.Equal(t, "2♣", (&Card{Rank: 2, Suit: Clubs}).String())
	assert.Equal(t, "Q♢", (&Card{Rank: Queen, Suit: Diamonds}).String())
}

func TestCard_Name(t *testing.T) {
	assert.Equal(t, "A", (&Card{Rank: Ace, Suit: Spades}).Name())
	assert.Equal(t, "J", RankName(Jack))
	assert.Equal(t, "10", RankName(10))
	assert.Equal(t, "5", RankName(5))
}

func TestCardFromString(t *testing.T) {
	card := CardFromString("14s")
	assert.Equal(t, Ace, card.Rank)
	assert.Equal(t, Spades, card.Suit)

	card = CardFromString("2c")
	assert.Equal(t, 2, card.Rank)
	assert.Equal(t, Clubs, card.Suit)

	assert.Nil(t, CardFromString(""))

	assert.PanicsWithValue(t, "could not parse card: 15s", func() {
		CardFromString("15s")
	})
}

func TestCardsFromString(t *testing.T) {
	cards := CardsFromString("2c,13h,14d")
	assert.Equal(t, 3, len(cards))
	assert.Equal(t, King, cards[1].Rank)
	assert.Equal(t, Hearts, cards[1].Suit)

	assert.Equal(t, "2c,13h,14d", CardsToString(cards))
	assert.Equal(t, 0, len(CardsFromString("")))
}

func TestCard_Equal(t *testing.T) {
	assert.True(t, CardFromString("5d").Equal(CardFromString("5d")))
	assert.False(t, CardFromString("5d").Equal(CardFromString("5c")))
	assert.False(t, CardFromString("5d").Equal(CardFromString("6d")))
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, CardFromString("14s").AceLowRank())
	assert.Equal(t, 13, CardFromString("13s").AceLowRank())
}
