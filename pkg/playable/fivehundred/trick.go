package fivehundred

import (
	"fivehundred-server/pkg/deck"
)

// Trick is one round of play: every seat plays exactly one card, in seat
// order starting with the leader
type Trick struct {
	Trump deck.Suit    `json:"trump"`
	Cards []*deck.Card `json:"cards"`
}

// NewTrick returns an empty trick for the given trump suit
func NewTrick(trump deck.Suit) *Trick {
	return &Trick{
		Trump: trump,
		Cards: make([]*deck.Card, 0),
	}
}

// Add appends a played card. Play order is insertion order.
func (t *Trick) Add(card *deck.Card) {
	t.Cards = append(t.Cards, card)
}

// Len returns the number of cards played to the trick
func (t *Trick) Len() int {
	return len(t.Cards)
}

// Clone returns a copy of the trick
func (t *Trick) Clone() *Trick {
	cards := make([]*deck.Card, len(t.Cards))
	copy(cards, t.Cards)

	return &Trick{
		Trump: t.Trump,
		Cards: cards,
	}
}

// card precedence groups, low to high
const (
	groupOffSuit = iota
	groupLedSuit
	groupTrump
	groupLeftBower
	groupRightBower
	groupJoker
)

// WinningCard resolves the trick per five hundred precedence: the joker beats
// everything, then the right bower (jack of trump), then the left bower (jack
// of the suit sharing trump's color), then plain trump, then the led suit, by
// canonical rank within a group. A no-trump round has no bowers.
func (t *Trick) WinningCard() (*deck.Card, error) {
	if len(t.Cards) == 0 {
		return nil, ErrEmptyTrick
	}

	led := t.Cards[0]

	best := t.Cards[0]
	bestKey := t.priority(best, led)
	for _, card := range t.Cards[1:] {
		if key := t.priority(card, led); key > bestKey {
			best = card
			bestKey = key
		}
	}

	return best, nil
}

// WinningIndex returns the play-order position of the winning card
func (t *Trick) WinningIndex() (int, error) {
	winner, err := t.WinningCard()
	if err != nil {
		return 0, err
	}

	for i, card := range t.Cards {
		if card.Equal(winner) {
			return i, nil
		}
	}

	// unreachable: WinningCard picks from t.Cards
	return 0, ErrEmptyTrick
}

// priority assigns a card its composite sort key for this trick. The group
// dominates; rank breaks ties within a group. Groups are singletons for the
// joker and the bowers, and a single deck never holds two cards of equal rank
// and suit, so two cards never share a key.
func (t *Trick) priority(card, led *deck.Card) int {
	opposite := deck.NoSuit
	if t.Trump != deck.NoTrump && t.Trump != deck.NoSuit {
		opposite = t.Trump.Opposite()
	}

	var group int
	switch {
	case card.IsJoker():
		group = groupJoker
	case card.Rank == deck.Jack && card.Suit == t.Trump:
		group = groupRightBower
	case card.Rank == deck.Jack && card.Suit == opposite:
		group = groupLeftBower
	case card.Suit == t.Trump:
		group = groupTrump
	case card.Suit == led.Suit:
		group = groupLedSuit
	default:
		group = groupOffSuit
	}

	return group*(deck.JokerRank+1) + card.Rank
}
