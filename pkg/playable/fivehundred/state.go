package fivehundred

import (
	"fivehundred-server/pkg/deck"
)

// handSize is the number of cards dealt to each seat; the remainder of the
// deck forms the kitty
const handSize = 10

// kittySize is the number of cards set aside each round for the bid winner
const kittySize = 3

// State is a snapshot of all mutable game data. Update operations return a new
// State and never touch the receiver, so a caller can validate an action
// against one snapshot and install the next one only once everything checked
// out. Discarding the new value aborts the action with nothing mutated.
type State struct {
	players    []*Player
	dealer     int
	priority   int
	bid        Caller
	bidsPlaced int
	hands      map[int]deck.Hand
	kitty      deck.Hand
	trick      *Trick
	tricksWon  map[int]int
	scores     map[int]int
}

// newState seats the players and zeroes every team score
func newState(players []*Player) State {
	scores := make(map[int]int)
	for team := 0; team < teamCount(len(players)); team++ {
		scores[team] = 0
	}

	return State{
		players:   players,
		hands:     make(map[int]deck.Hand),
		tricksWon: make(map[int]int),
		scores:    scores,
	}
}

// clone deep-copies the snapshot. Players are immutable seat identities and
// are shared.
func (s State) clone() State {
	next := s

	next.hands = make(map[int]deck.Hand, len(s.hands))
	for seat, hand := range s.hands {
		next.hands[seat] = hand.Clone()
	}

	next.kitty = s.kitty.Clone()

	next.tricksWon = make(map[int]int, len(s.tricksWon))
	for seat, won := range s.tricksWon {
		next.tricksWon[seat] = won
	}

	next.scores = make(map[int]int, len(s.scores))
	for team, score := range s.scores {
		next.scores[team] = score
	}

	if s.trick != nil {
		next.trick = s.trick.Clone()
	}

	return next
}

// playerCount returns the number of seats at the table
func (s State) playerCount() int {
	return len(s.players)
}

// seatAfter returns the seat n positions clockwise of the given seat
func (s State) seatAfter(seat, n int) int {
	return (seat + n) % len(s.players)
}

// nextSeat returns the next seat clockwise
func (s State) nextSeat(seat int) int {
	return s.seatAfter(seat, 1)
}

// withDeal deals a fresh hand to every seat and sets the remainder aside as
// the kitty. The deck must hold exactly handSize per player plus kittySize;
// deck construction guarantees that for 3–6 players.
func (s State) withDeal(d *deck.Deck) State {
	next := s.clone()

	for i := 0; i < handSize; i++ {
		for seat := range next.players {
			card, err := d.Draw()
			if err != nil {
				panic(err)
			}

			hand := next.hands[seat]
			hand.AddCard(card)
			next.hands[seat] = hand
		}
	}

	kitty := make(deck.Hand, 0, kittySize)
	for d.CardsLeft() > 0 {
		card, err := d.Draw()
		if err != nil {
			panic(err)
		}

		kitty.AddCard(card)
	}

	next.kitty = kitty
	return next
}

// withDealer seats the deal at the given position
func (s State) withDealer(seat int) State {
	next := s.clone()
	next.dealer = seat
	return next
}

// withDealerAdvanced moves the deal one seat clockwise
func (s State) withDealerAdvanced() State {
	next := s.clone()
	next.dealer = next.nextSeat(next.dealer)
	return next
}

// withPriority hands priority to the given seat
func (s State) withPriority(seat int) State {
	next := s.clone()
	next.priority = seat
	return next
}

// withBid installs a new contract and counts the bidding action
func (s State) withBid(bid Caller) State {
	next := s.clone()
	next.bid = bid
	next.bidsPlaced++
	return next
}

// withBidsCounted counts a bidding action that left the contract unchanged
func (s State) withBidsCounted() State {
	next := s.clone()
	next.bidsPlaced++
	return next
}

// withKittyInHand merges the kitty into the seat's hand
func (s State) withKittyInHand(seat int) State {
	next := s.clone()

	hand := next.hands[seat]
	for _, card := range next.kitty {
		hand.AddCard(card)
	}

	next.hands[seat] = hand
	next.kitty = make(deck.Hand, 0, kittySize)
	return next
}

// withDiscards moves the named cards from the seat's hand into the kitty.
// The caller must have verified the cards are present.
func (s State) withDiscards(seat int, cards []*deck.Card) State {
	next := s.clone()

	hand := next.hands[seat]
	for _, card := range cards {
		if !hand.Discard(card) {
			panic("discard not in hand")
		}

		next.kitty.AddCard(card)
	}

	next.hands[seat] = hand
	return next
}

// withNewTrick starts an empty trick under the current contract's trump
func (s State) withNewTrick() State {
	next := s.clone()

	trump := deck.NoTrump
	if bid, ok := next.bid.(Bid); ok {
		trump = bid.Suit
	}

	next.trick = NewTrick(trump)
	return next
}

// withCardPlayed moves a card from the seat's hand onto the trick and passes
// priority clockwise
func (s State) withCardPlayed(seat int, card *deck.Card) State {
	next := s.clone()

	hand := next.hands[seat]
	if !hand.Discard(card) {
		panic("played card not in hand")
	}

	next.hands[seat] = hand
	next.trick.Add(card)
	next.priority = next.nextSeat(seat)
	return next
}

// withTrickWon credits the seat with the finished trick and gives it the lead
func (s State) withTrickWon(seat int) State {
	next := s.clone()
	next.tricksWon[seat]++
	next.priority = seat
	return next
}

// withScores applies per-team score deltas
func (s State) withScores(deltas map[int]int) State {
	next := s.clone()
	for team, delta := range deltas {
		next.scores[team] += delta
	}

	return next
}

// withTricksCleared zeroes every seat's trick counter
func (s State) withTricksCleared() State {
	next := s.clone()
	next.tricksWon = make(map[int]int, len(next.players))
	return next
}

// withRoundReset clears the round-scoped fields for a new deal: the contract
// returns to a pass held by the dealer, priority returns to the dealer, and
// the previous trick is dropped
func (s State) withRoundReset() State {
	next := s.clone()
	next.bid = Pass{Seat: next.dealer}
	next.bidsPlaced = 0
	next.priority = next.dealer
	next.trick = nil
	next.hands = make(map[int]deck.Hand)
	next.kitty = nil
	return next
}

// teamTricks sums the tricks won by every seat on the given team
func (s State) teamTricks(team int) int {
	total := 0
	for seat, won := range s.tricksWon {
		if teamForSeat(seat, len(s.players)) == team {
			total += won
		}
	}

	return total
}
