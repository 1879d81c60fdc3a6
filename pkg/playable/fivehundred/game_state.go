package fivehundred

import (
	"fivehundred-server/pkg/deck"
	"fivehundred-server/pkg/playable"
)

// GameState is the overall game state
// This is safe for all players to see
type GameState struct {
	Phase     Phase              `json:"phase"`
	Round     int                `json:"round"`
	Players   []*GameStatePlayer `json:"players"`
	Dealer    int64              `json:"dealer"`
	Priority  int64              `json:"priority"`
	Bid       *BidState          `json:"bid"`
	Trick     *Trick             `json:"trick"`
	KittySize int                `json:"kittySize"`
	Scores    map[int]int        `json:"scores"`
}

// GameStatePlayer is the state of an individual player
// This is safe for all players to see
type GameStatePlayer struct {
	PlayerID    int64 `json:"playerId"`
	Seat        int   `json:"seat"`
	Team        int   `json:"team"`
	CardsInHand int   `json:"cardsInHand"`
	TricksWon   int   `json:"tricksWon"`
}

// BidState describes the current contract. Passed is true while the null
// contract stands (no one has bid yet, or no one did at all).
type BidState struct {
	Seat   int64     `json:"seat"`
	Number int       `json:"number"`
	Suit   deck.Suit `json:"suit"`
	Score  int       `json:"score"`
	Passed bool      `json:"passed"`
}

// Response is the response format for this game
type Response struct {
	GameState *GameState `json:"gameState"`
	// Data below is player specific, and must only be shown to the intended player
	Hand  deck.Hand `json:"hand"`
	Kitty deck.Hand `json:"kitty,omitempty"`
}

func (g *Game) getGameState() *GameState {
	players := make([]*GameStatePlayer, g.state.playerCount())
	for seat, player := range g.state.players {
		players[seat] = &GameStatePlayer{
			PlayerID:    player.PlayerID,
			Seat:        seat,
			Team:        teamForSeat(seat, g.state.playerCount()),
			CardsInHand: g.state.hands[seat].Len(),
			TricksWon:   g.state.tricksWon[seat],
		}
	}

	bidState := &BidState{
		Seat:  g.state.players[g.state.bid.Actor()].PlayerID,
		Score: g.state.bid.Score(),
	}
	if bid, ok := g.state.bid.(Bid); ok {
		bidState.Number = bid.Number
		bidState.Suit = bid.Suit
	} else {
		bidState.Passed = true
	}

	var trick *Trick
	if g.state.trick != nil {
		trick = g.state.trick.Clone()
	}

	scores := make(map[int]int, len(g.state.scores))
	for team, score := range g.state.scores {
		scores[team] = score
	}

	return &GameState{
		Phase:     g.phase,
		Round:     g.round,
		Players:   players,
		Dealer:    g.state.players[g.state.dealer].PlayerID,
		Priority:  g.state.players[g.state.priority].PlayerID,
		Bid:       bidState,
		Trick:     trick,
		KittySize: len(g.state.kitty),
		Scores:    scores,
	}
}

// GetPlayerState returns the state for the given player
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	var hand deck.Hand
	var kitty deck.Hand
	if player, ok := g.idToPlayer[playerID]; ok {
		hand = g.state.hands[player.Seat].Clone()

		// the buried kitty is only the contract holder's business
		if player.Seat == g.state.bid.Actor() && (g.phase == PhaseKitty || g.phase == PhaseTrick) {
			kitty = g.state.kitty.Clone()
		}
	}

	return &playable.Response{
		Key:   "game",
		Value: g.Name(),
		Data: &Response{
			GameState: g.getGameState(),
			Hand:      hand,
			Kitty:     kitty,
		},
	}, nil
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Round returns the current round number, starting at 1
func (g *Game) Round() int {
	return g.round
}

// Dealer returns the seat currently holding the deal
func (g *Game) Dealer() int {
	return g.state.dealer
}

// Priority returns the seat whose action is valid next
func (g *Game) Priority() int {
	return g.state.priority
}

// CurrentBid returns the standing contract; a Pass means no one has outbid
// the null contract yet
func (g *Game) CurrentBid() Caller {
	return g.state.bid
}

// HandOf returns a copy of the seat's hand
func (g *Game) HandOf(seat int) deck.Hand {
	return g.state.hands[seat].Clone()
}

// Kitty returns a copy of the kitty
func (g *Game) Kitty() deck.Hand {
	return g.state.kitty.Clone()
}

// CurrentTrick returns a copy of the trick in play, or nil outside the trick
// phase
func (g *Game) CurrentTrick() *Trick {
	if g.state.trick == nil {
		return nil
	}

	return g.state.trick.Clone()
}

// TricksWon returns the number of tricks the seat has taken this round
func (g *Game) TricksWon(seat int) int {
	return g.state.tricksWon[seat]
}

// Scores returns a copy of the team scores
func (g *Game) Scores() map[int]int {
	scores := make(map[int]int, len(g.state.scores))
	for team, score := range g.state.scores {
		scores[team] = score
	}

	return scores
}
