package fivehundred

import (
	"testing"

	"fivehundred-server/pkg/deck"
	"fivehundred-server/pkg/playable"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestGame(t *testing.T, playerCount int, opts Options) *Game {
	t.Helper()

	playerIDs := make([]int64, playerCount)
	for i := range playerIDs {
		playerIDs[i] = int64(101 + i)
	}

	g, err := NewGame(logrus.StandardLogger(), playerIDs, opts)
	assert.NoError(t, err)
	return g
}

// winBid has the priority seat take the contract at six spades and everyone
// else pass, then buries the kitty, leaving the game in the trick phase
func winBid(t *testing.T, g *Game) int {
	t.Helper()

	bidder := g.Priority()
	assert.NoError(t, g.Apply(Bid{Seat: bidder, Number: 6, Suit: deck.Spades}))
	for g.Phase() == PhaseBidding {
		assert.NoError(t, g.Apply(Pass{Seat: g.Priority()}))
	}

	assert.Equal(t, PhaseKitty, g.Phase())
	assert.Equal(t, bidder, g.Priority())

	hand := g.HandOf(bidder)
	assert.NoError(t, g.Apply(KittyDiscard{Seat: bidder, Cards: hand[:kittySize]}))
	assert.Equal(t, PhaseTrick, g.Phase())

	return bidder
}

func playAllTricks(t *testing.T, g *Game) {
	t.Helper()

	for g.Phase() == PhaseTrick {
		seat := g.Priority()
		assert.NoError(t, g.Apply(Play{Seat: seat, Card: g.HandOf(seat).FirstCard()}))
	}
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, 4, DefaultOptions())

	// setup and the first deal run during construction; the game is waiting
	// on the opening bid
	assert.Equal(t, PhaseBidding, g.Phase())
	assert.Equal(t, 1, g.Round())
	assert.Equal(t, 0, g.Dealer())
	assert.Equal(t, 0, g.Priority())
	assert.Equal(t, Pass{Seat: 0}, g.CurrentBid())

	for seat := 0; seat < 4; seat++ {
		assert.Equal(t, handSize, g.HandOf(seat).Len())
		assert.Equal(t, 0, g.TricksWon(seat))
	}
	assert.Equal(t, kittySize, g.Kitty().Len())
	assert.Equal(t, map[int]int{0: 0, 1: 0}, g.Scores())
}

func TestNewGame_playerCount(t *testing.T) {
	for _, count := range []int{0, 1, 2, 7} {
		ids := make([]int64, count)
		g, err := NewGame(logrus.StandardLogger(), ids, DefaultOptions())
		assert.Nil(t, g)
		assert.EqualError(t, err, deck.InvalidPlayerCountError(count).Error())
	}

	for count := 3; count <= 6; count++ {
		g := newTestGame(t, count, DefaultOptions())
		assert.Equal(t, PhaseBidding, g.Phase())
	}
}

func TestGame_turnOrder(t *testing.T) {
	g := newTestGame(t, 4, DefaultOptions())

	// an action from any seat but priority is rejected with no state change
	assert.Equal(t, ErrIsNotPlayersTurn, g.Apply(Pass{Seat: 1}))
	assert.Equal(t, ErrIsNotPlayersTurn, g.Apply(Bid{Seat: 2, Number: 8, Suit: deck.Hearts}))
	assert.Equal(t, 0, g.Priority())
	assert.Equal(t, Pass{Seat: 0}, g.CurrentBid())

	// play and discard don't belong to the bidding phase
	assert.Equal(t, ErrWrongPhase, g.Apply(Play{Seat: 0, Card: g.HandOf(0).FirstCard()}))
	assert.Equal(t, ErrWrongPhase, g.Apply(KittyDiscard{Seat: 0, Cards: g.HandOf(0)[:3]}))
}

func TestGame_bidding(t *testing.T) {
	g := newTestGame(t, 4, DefaultOptions())

	assert.Equal(t, ErrInvalidBid, g.Apply(Bid{Seat: 0, Number: 5, Suit: deck.Hearts}))
	assert.Equal(t, ErrInvalidBid, g.Apply(Bid{Seat: 0, Number: 11, Suit: deck.Hearts}))
	assert.Equal(t, ErrInvalidBid, g.Apply(Bid{Seat: 0, Number: 7, Suit: deck.NoSuit}))

	assert.NoError(t, g.Apply(Bid{Seat: 0, Number: 6, Suit: deck.Hearts}))
	assert.Equal(t, Bid{Seat: 0, Number: 6, Suit: deck.Hearts}, g.CurrentBid())
	assert.Equal(t, 1, g.Priority())

	// a bid that doesn't beat the standing contract counts as a pass
	assert.NoError(t, g.Apply(Bid{Seat: 1, Number: 6, Suit: deck.Spades}))
	assert.Equal(t, Bid{Seat: 0, Number: 6, Suit: deck.Hearts}, g.CurrentBid())
	assert.Equal(t, 2, g.Priority())

	// a higher bid takes the contract
	assert.NoError(t, g.Apply(Bid{Seat: 2, Number: 7, Suit: deck.Spades}))
	assert.Equal(t, Bid{Seat: 2, Number: 7, Suit: deck.Spades}, g.CurrentBid())

	// bidding stays open until priority returns to the contract holder
	assert.NoError(t, g.Apply(Pass{Seat: 3}))
	assert.NoError(t, g.Apply(Pass{Seat: 0}))
	assert.Equal(t, PhaseBidding, g.Phase())
	assert.NoError(t, g.Apply(Pass{Seat: 1}))

	assert.Equal(t, PhaseKitty, g.Phase())
	assert.Equal(t, 2, g.Priority())
	assert.Equal(t, handSize+kittySize, g.HandOf(2).Len())
	assert.Equal(t, 0, g.Kitty().Len())

	// no more bids once the contract is settled
	assert.Equal(t, ErrWrongPhase, g.Apply(Pass{Seat: 2}))
}

func TestGame_allPass(t *testing.T) {
	g := newTestGame(t, 4, DefaultOptions())

	for seat := 0; seat < 4; seat++ {
		assert.NoError(t, g.Apply(Pass{Seat: seat}))
	}

	// the null contract belongs to the dealer, who takes the kitty and plays
	// the round at no trump for no score
	assert.Equal(t, PhaseKitty, g.Phase())
	assert.Equal(t, 0, g.Priority())

	hand := g.HandOf(0)
	assert.NoError(t, g.Apply(KittyDiscard{Seat: 0, Cards: hand[:kittySize]}))
	assert.Equal(t, PhaseTrick, g.Phase())
	assert.Equal(t, deck.NoTrump, g.CurrentTrick().Trump)

	playAllTricks(t, g)

	assert.Equal(t, 2, g.Round())
	assert.Equal(t, 0, g.Scores()[0])
}

func TestGame_kittyValidation(t *testing.T) {
	g := newTestGame(t, 4, DefaultOptions())

	assert.NoError(t, g.Apply(Bid{Seat: 0, Number: 6, Suit: deck.Hearts}))
	assert.NoError(t, g.Apply(Pass{Seat: 1}))
	assert.NoError(t, g.Apply(Pass{Seat: 2}))
	assert.NoError(t, g.Apply(Pass{Seat: 3}))
	assert.Equal(t, PhaseKitty, g.Phase())

	hand := g.HandOf(0)
	other := g.HandOf(1)

	assert.Equal(t, ErrIsNotPlayersTurn, g.Apply(KittyDiscard{Seat: 1, Cards: other[:3]}))
	assert.Equal(t, ErrKittyCardCount, g.Apply(KittyDiscard{Seat: 0, Cards: hand[:2]}))
	assert.Equal(t, ErrKittyCardCount, g.Apply(KittyDiscard{Seat: 0, Cards: hand[:4]}))
	assert.Equal(t, ErrCardNotInPlayersHand, g.Apply(KittyDiscard{Seat: 0, Cards: []*deck.Card{hand[0], hand[1], other[0]}}))
	assert.Equal(t, ErrDuplicateDiscard, g.Apply(KittyDiscard{Seat: 0, Cards: []*deck.Card{hand[0], hand[0], hand[1]}}))

	// nothing mutated along the way
	assert.Equal(t, handSize+kittySize, g.HandOf(0).Len())
	assert.Equal(t, PhaseKitty, g.Phase())

	assert.NoError(t, g.Apply(KittyDiscard{Seat: 0, Cards: hand[:3]}))
	assert.Equal(t, PhaseTrick, g.Phase())
	assert.Equal(t, handSize, g.HandOf(0).Len())
	assert.Equal(t, kittySize, g.Kitty().Len())
}

func TestGame_trickPlay(t *testing.T) {
	g := newTestGame(t, 4, DefaultOptions())
	bidder := winBid(t, g)
	assert.Equal(t, 0, bidder)

	// contract holder leads the first trick
	assert.Equal(t, bidder, g.Priority())

	played := g.HandOf(0).FirstCard()
	assert.Equal(t, ErrIsNotPlayersTurn, g.Apply(Play{Seat: 1, Card: g.HandOf(1).FirstCard()}))
	assert.Equal(t, ErrCardNotInPlayersHand, g.Apply(Play{Seat: 0, Card: g.HandOf(1).FirstCard()}))
	assert.NoError(t, g.Apply(Play{Seat: 0, Card: played}))

	assert.Equal(t, 1, g.CurrentTrick().Len())
	assert.Equal(t, 1, g.Priority())
	assert.False(t, g.HandOf(0).HasCard(played))

	// a played card cannot be played again
	assert.Equal(t, ErrIsNotPlayersTurn, g.Apply(Play{Seat: 0, Card: played}))

	for seat := 1; seat <= 3; seat++ {
		assert.NoError(t, g.Apply(Play{Seat: seat, Card: g.HandOf(seat).FirstCard()}))
	}

	// trick resolved: a new empty trick, led by the winner, one trick counted
	assert.Equal(t, PhaseTrick, g.Phase())
	assert.Equal(t, 0, g.CurrentTrick().Len())

	winner := g.Priority()
	assert.Equal(t, 1, g.TricksWon(winner))

	total := 0
	for seat := 0; seat < 4; seat++ {
		total += g.TricksWon(seat)
		assert.Equal(t, handSize-1, g.HandOf(seat).Len())
	}
	assert.Equal(t, 1, total)
}

func TestGame_fullRound(t *testing.T) {
	g := newTestGame(t, 4, DefaultOptions())
	bidder := winBid(t, g)
	playAllTricks(t, g)

	// the round scored and the next one dealt
	assert.Equal(t, PhaseBidding, g.Phase())
	assert.Equal(t, 2, g.Round())
	assert.Equal(t, 1, g.Dealer())
	assert.Equal(t, 1, g.Priority())
	assert.Equal(t, Pass{Seat: 1}, g.CurrentBid())

	// trick counters reset on the way out of scoring
	for seat := 0; seat < 4; seat++ {
		assert.Equal(t, 0, g.TricksWon(seat))
		assert.Equal(t, handSize, g.HandOf(seat).Len())
	}

	// six spades is worth 40: made or set, the contract team moved by 40 and
	// the defenders took 10 per trick
	scores := g.Scores()
	bidTeam := teamForSeat(bidder, 4)
	assert.Contains(t, []int{40, -40}, scores[bidTeam])
	defenders := scores[1-bidTeam]
	assert.GreaterOrEqual(t, defenders, 0)
	assert.LessOrEqual(t, defenders, 100)
	assert.Equal(t, 0, defenders%10)
}

func TestGame_completion(t *testing.T) {
	g := newTestGame(t, 4, Options{WinScore: 0, LoseScore: 0})

	details, over := g.GetEndOfGameDetails()
	assert.Nil(t, details)
	assert.False(t, over)

	winBid(t, g)
	playAllTricks(t, g)

	// any nonzero score ends a zero-bounded game
	assert.Equal(t, PhaseCompleted, g.Phase())
	assert.Equal(t, ErrGameIsOver, g.Apply(Pass{Seat: 0}))

	details, over = g.GetEndOfGameDetails()
	assert.True(t, over)
	assert.Len(t, details.ScoreAdjustments, 4)

	scores := g.Scores()
	for seat := 0; seat < 4; seat++ {
		playerID := int64(101 + seat)
		assert.Equal(t, scores[teamForSeat(seat, 4)], details.ScoreAdjustments[playerID])
	}
}

func TestGame_cutthroatRound(t *testing.T) {
	g := newTestGame(t, 5, DefaultOptions())
	assert.Equal(t, 5, len(g.Scores()))

	bidder := winBid(t, g)
	playAllTricks(t, g)

	assert.Equal(t, 2, g.Round())
	scores := g.Scores()
	assert.Contains(t, []int{40, -40}, scores[bidder])
}

func TestGame_seededDeal(t *testing.T) {
	a := newTestGame(t, 4, Options{WinScore: 500, LoseScore: -500, Seed: 42})
	b := newTestGame(t, 4, Options{WinScore: 500, LoseScore: -500, Seed: 42})
	c := newTestGame(t, 4, DefaultOptions())

	for seat := 0; seat < 4; seat++ {
		assert.Equal(t, a.HandOf(seat).String(), b.HandOf(seat).String())
	}

	assert.NotEqual(t, a.HandOf(0).String(), c.HandOf(0).String())
}

func TestGame_playableAction(t *testing.T) {
	g := newTestGame(t, 4, DefaultOptions())
	assert.Equal(t, "five-hundred", g.Name())
	assert.NotNil(t, g.LogChan())

	resp, update, err := g.Action(101, &playable.PayloadIn{
		Action: "bid",
		AdditionalData: playable.AdditionalData{
			"number": float64(7),
			"suit":   "hearts",
		},
	})
	assert.NoError(t, err)
	assert.True(t, update)
	assert.Equal(t, "OK", resp.Value)
	assert.Equal(t, Bid{Seat: 0, Number: 7, Suit: deck.Hearts}, g.CurrentBid())

	_, _, err = g.Action(999, &playable.PayloadIn{Action: "pass"})
	assert.Equal(t, ErrUnknownPlayer, err)

	_, _, err = g.Action(102, &playable.PayloadIn{Action: "shoot-the-moon"})
	assert.EqualError(t, err, "unknown action: shoot-the-moon")

	for _, pid := range []int64{102, 103, 104} {
		_, _, err := g.Action(pid, &playable.PayloadIn{Action: "pass"})
		assert.NoError(t, err)
	}

	assert.Equal(t, PhaseKitty, g.Phase())

	hand := g.HandOf(0)
	_, _, err = g.Action(101, &playable.PayloadIn{Action: "discard", Cards: hand[:3]})
	assert.NoError(t, err)
	assert.Equal(t, PhaseTrick, g.Phase())

	_, _, err = g.Action(101, &playable.PayloadIn{Action: "play"})
	assert.EqualError(t, err, "expected to get 1 card, got 0")

	_, _, err = g.Action(101, &playable.PayloadIn{Action: "play", Cards: g.HandOf(0)[:1]})
	assert.NoError(t, err)
	assert.Equal(t, 1, g.CurrentTrick().Len())
}

func TestGame_getPlayerState(t *testing.T) {
	g := newTestGame(t, 4, DefaultOptions())

	resp, err := g.GetPlayerState(101)
	assert.NoError(t, err)
	assert.Equal(t, "game", resp.Key)
	assert.Equal(t, "five-hundred", resp.Value)

	data, ok := resp.Data.(*Response)
	assert.True(t, ok)
	assert.Equal(t, handSize, data.Hand.Len())
	assert.Nil(t, data.Kitty)

	gs := data.GameState
	assert.Equal(t, PhaseBidding, gs.Phase)
	assert.Equal(t, int64(101), gs.Dealer)
	assert.Equal(t, int64(101), gs.Priority)
	assert.True(t, gs.Bid.Passed)
	assert.Equal(t, kittySize, gs.KittySize)
	assert.Len(t, gs.Players, 4)
	assert.Equal(t, 1, gs.Players[1].Team)

	// an observer gets the public state and no hand
	resp, err = g.GetPlayerState(999)
	assert.NoError(t, err)
	data = resp.Data.(*Response)
	assert.Equal(t, 0, data.Hand.Len())
}
