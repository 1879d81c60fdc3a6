package fivehundred

import (
	"fivehundred-server/pkg/deck"
)

// bidSuitOrder fixes the suit precedence used for bid scoring, lowest first
var bidSuitOrder = []deck.Suit{deck.Spades, deck.Clubs, deck.Diamonds, deck.Hearts, deck.NoTrump}

// bidSuitIndex returns the 0-based precedence index of the suit, or -1 if the
// suit cannot be bid
func bidSuitIndex(suit deck.Suit) int {
	for i, s := range bidSuitOrder {
		if s == suit {
			return i
		}
	}

	return -1
}

// bid number bounds
const (
	minBidNumber = 6
	maxBidNumber = 10
)

// Action is a player-submitted command. Actions carry data only; applying them
// is the owning phase's business.
type Action interface {
	// Actor returns the seat the action was submitted by
	Actor() int
}

// Caller is implemented by the actions that can hold the round's contract.
// Play and KittyDiscard are not comparable and must never hold it.
type Caller interface {
	Action

	// Score returns the point value of the contract. A higher score outbids
	// a lower one.
	Score() int
}

// Bid pledges to win a number of tricks with the chosen trump suit
type Bid struct {
	Seat   int       `json:"seat"`
	Number int       `json:"number"`
	Suit   deck.Suit `json:"suit"`
}

// Actor returns the bidding seat
func (b Bid) Actor() int {
	return b.Seat
}

// Score returns the bid's point value: each pledged trick over six is worth
// 100, and the trump suit adds its precedence on a 40–120 scale
func (b Bid) Score() int {
	return (b.Number-minBidNumber)*100 + bidSuitIndex(b.Suit)*20 + 40
}

// valid returns true if the bid pledges a legal number of tricks of a known suit
func (b Bid) valid() bool {
	return b.Number >= minBidNumber && b.Number <= maxBidNumber && bidSuitIndex(b.Suit) >= 0
}

// Pass declines to bid. It also serves as the null contract at the start of
// each round, held by the dealer.
type Pass struct {
	Seat int `json:"seat"`
}

// Actor returns the passing seat
func (p Pass) Actor() int {
	return p.Seat
}

// Score returns 0, strictly below the lowest possible bid (six spades, 40)
func (p Pass) Score() int {
	return 0
}

// Play puts a card from the actor's hand on the current trick
type Play struct {
	Seat int
	Card *deck.Card
}

// Actor returns the playing seat
func (p Play) Actor() int {
	return p.Seat
}

// KittyDiscard returns exactly three cards from the actor's hand to the kitty
type KittyDiscard struct {
	Seat  int
	Cards []*deck.Card
}

// Actor returns the discarding seat
func (k KittyDiscard) Actor() int {
	return k.Seat
}
