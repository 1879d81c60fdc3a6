package fivehundred

import (
	"fmt"

	"fivehundred-server/pkg/deck"
	"fivehundred-server/pkg/playable"

	"github.com/sirupsen/logrus"
)

// Game is a game of five hundred
type Game struct {
	options    Options
	logger     logrus.FieldLogger
	idToPlayer map[int64]*Player

	state State
	phase Phase
	round int

	logChan chan []*playable.LogMessage
}

// NewGame returns a new five hundred game for 3–6 players.
// players should be in table order; any rotation must happen beforehand.
// The returned game has already run its setup and first deal and is waiting
// on the opening bid.
func NewGame(logger logrus.FieldLogger, playerIDs []int64, opts Options) (*Game, error) {
	if len(playerIDs) < 3 || len(playerIDs) > 6 {
		return nil, deck.InvalidPlayerCountError(len(playerIDs))
	}

	players := make([]*Player, len(playerIDs))
	idToPlayer := make(map[int64]*Player)
	for seat, pid := range playerIDs {
		players[seat] = &Player{PlayerID: pid, Seat: seat}
		idToPlayer[pid] = players[seat]
	}

	g := &Game{
		options:    opts,
		logger:     logger,
		idToPlayer: idToPlayer,
		state:      newState(players),
		phase:      PhaseSetup,
		logChan:    make(chan []*playable.LogMessage, 256),
	}

	g.enterPhase(PhaseSetup)
	g.advance()

	return g, nil
}

// Name returns "five-hundred"
func (g *Game) Name() string {
	return "five-hundred"
}

// LogChan returns a channel for sending log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Apply is the sole mutating entry point. The action is validated against the
// current snapshot; only a fully valid action replaces it, so a rejection
// leaves the game exactly where it was. A single accepted action may carry the
// game across several phase boundaries.
func (g *Game) Apply(action Action) error {
	if g.phase == PhaseCompleted {
		return ErrGameIsOver
	}

	next, err := g.applyToPhase(action)
	if err != nil {
		return err
	}

	g.state = next
	g.advance()
	return nil
}

func (g *Game) applyToPhase(action Action) (State, error) {
	switch g.phase {
	case PhaseBidding:
		return g.applyBidding(action)
	case PhaseKitty:
		return g.applyKitty(action)
	case PhaseTrick:
		return g.applyTrick(action)
	}

	return State{}, ErrWrongPhase
}

func (g *Game) applyBidding(action Action) (State, error) {
	caller, ok := action.(Caller)
	if !ok {
		return State{}, ErrWrongPhase
	}

	if caller.Actor() != g.state.priority {
		return State{}, ErrIsNotPlayersTurn
	}

	next := g.state.nextSeat(caller.Actor())

	if bid, ok := caller.(Bid); ok {
		if !bid.valid() {
			return State{}, ErrInvalidBid
		}

		if bid.Score() > g.state.bid.Score() {
			g.sendLogMessages(g.logMessage(bid.Actor(), "{} bid %d %s", bid.Number, bid.Suit))
			return g.state.withBid(bid).withPriority(next), nil
		}
	}

	g.sendLogMessages(g.logMessage(caller.Actor(), "{} passed"))
	return g.state.withBidsCounted().withPriority(next), nil
}

func (g *Game) applyKitty(action Action) (State, error) {
	discard, ok := action.(KittyDiscard)
	if !ok {
		return State{}, ErrWrongPhase
	}

	if discard.Actor() != g.state.priority {
		return State{}, ErrIsNotPlayersTurn
	}

	if len(discard.Cards) != kittySize {
		return State{}, ErrKittyCardCount
	}

	hand := g.state.hands[discard.Actor()]
	seen := make(map[deck.Card]bool)
	for _, card := range discard.Cards {
		if card == nil || !hand.HasCard(card) {
			return State{}, ErrCardNotInPlayersHand
		}

		if seen[*card] {
			return State{}, ErrDuplicateDiscard
		}

		seen[*card] = true
	}

	g.sendLogMessages(g.logMessage(discard.Actor(), "{} buried the kitty"))
	return g.state.withDiscards(discard.Actor(), discard.Cards), nil
}

func (g *Game) applyTrick(action Action) (State, error) {
	play, ok := action.(Play)
	if !ok {
		return State{}, ErrWrongPhase
	}

	if play.Actor() != g.state.priority {
		return State{}, ErrIsNotPlayersTurn
	}

	if play.Card == nil || !g.state.hands[play.Actor()].HasCard(play.Card) {
		return State{}, ErrCardNotInPlayersHand
	}

	msg := g.logMessage(play.Actor(), "{} played a card")
	msg.Cards = []*deck.Card{play.Card}
	g.sendLogMessages(msg)

	return g.state.withCardPlayed(play.Actor(), play.Card), nil
}

// advance runs the state machine until it settles on a phase waiting for a
// player action (or on completion). Exit and enter hooks fire in order on
// every boundary crossed, including a trick re-entering itself.
func (g *Game) advance() {
	for {
		next, ok := g.transition()
		if !ok {
			return
		}

		g.exitPhase(g.phase)
		g.phase = next
		g.enterPhase(next)
	}
}

func (g *Game) transition() (Phase, bool) {
	switch g.phase {
	case PhaseSetup:
		return PhaseNewRound, true
	case PhaseNewRound:
		return PhaseBidding, true
	case PhaseBidding:
		// bidding closes when priority comes back around to the contract
		// holder with no one left willing to outbid
		if g.state.bidsPlaced > 0 && g.state.priority == g.state.bid.Actor() {
			return PhaseKitty, true
		}
	case PhaseKitty:
		if len(g.state.kitty) == kittySize {
			return PhaseTrick, true
		}
	case PhaseTrick:
		if g.state.trick != nil && g.state.trick.Len() == g.state.playerCount() {
			if g.handsEmpty() {
				return PhaseScoring, true
			}

			return PhaseTrick, true
		}
	case PhaseScoring:
		if isGameOver(g.state, g.options) {
			return PhaseCompleted, true
		}

		return PhaseNewRound, true
	}

	return 0, false
}

func (g *Game) enterPhase(phase Phase) {
	switch phase {
	case PhaseSetup:
		// seat the first deal one short of the start of the table so the
		// new-round advance lands it on seat 0
		g.state = g.state.withDealer(g.state.playerCount() - 1)
	case PhaseNewRound:
		g.round++
		g.state = g.state.withDealerAdvanced().withRoundReset().withDeal(g.buildDeck())
		g.sendLogMessages(g.logMessage(g.state.dealer, "{} dealt round %d", g.round))
	case PhaseKitty:
		g.state = g.state.withKittyInHand(g.state.bid.Actor())
		g.sendLogMessages(g.logMessage(g.state.bid.Actor(), "{} picked up the kitty"))
	case PhaseTrick:
		g.state = g.state.withNewTrick()
	case PhaseScoring:
		g.state = g.state.withScores(scoreDeltas(g.state))
		g.sendLogMessages(g.logMessage(-1, "round %d scored", g.round))
	case PhaseCompleted:
		g.sendLogMessages(g.logMessage(-1, "the game is over"))
	}
}

func (g *Game) exitPhase(phase Phase) {
	switch phase {
	case PhaseTrick:
		g.finishTrick()
	case PhaseScoring:
		g.state = g.state.withTricksCleared()
	}
}

// finishTrick resolves the completed trick. With every seat having played,
// priority has come back around to the trick's leader, so the winner's seat is
// the leader offset by the winning card's play position.
func (g *Game) finishTrick() {
	index, err := g.state.trick.WinningIndex()
	if err != nil {
		panic(err)
	}

	winner := g.state.seatAfter(g.state.priority, index)
	g.state = g.state.withTrickWon(winner)
	g.sendLogMessages(g.logMessage(winner, "{} won the trick"))
}

func (g *Game) handsEmpty() bool {
	for _, hand := range g.state.hands {
		if hand.Len() > 0 {
			return false
		}
	}

	return true
}

func (g *Game) buildDeck() *deck.Deck {
	d, err := deck.New(g.state.playerCount())
	if err != nil {
		// the player count was validated in NewGame
		panic(err)
	}

	if g.options.Seed != 0 {
		d.SetSeed(g.options.Seed + int64(g.round))
		d.Shuffle()
	}

	return d
}

// Action performs an action from a wire payload
func (g *Game) Action(playerID int64, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	player, ok := g.idToPlayer[playerID]
	if !ok {
		return nil, false, ErrUnknownPlayer
	}

	log := g.logger.WithField("playerID", playerID)

	switch message.Action {
	case "bid":
		number, _ := message.AdditionalData.GetInt("number")
		suit, _ := message.AdditionalData.GetString("suit")

		log.WithField("number", number).WithField("suit", suit).Debug("player bids")
		if err := g.Apply(Bid{Seat: player.Seat, Number: number, Suit: deck.Suit(suit)}); err != nil {
			return nil, false, err
		}
	case "pass":
		log.Debug("player passes")
		if err := g.Apply(Pass{Seat: player.Seat}); err != nil {
			return nil, false, err
		}
	case "play":
		if len(message.Cards) != 1 {
			return nil, false, fmt.Errorf("expected to get 1 card, got %d", len(message.Cards))
		}

		log.WithField("card", message.Cards[0]).Debug("player plays a card")
		if err := g.Apply(Play{Seat: player.Seat, Card: message.Cards[0]}); err != nil {
			return nil, false, err
		}
	case "discard":
		log.WithField("cards", message.Cards).Debug("player discards to the kitty")
		if err := g.Apply(KittyDiscard{Seat: player.Seat, Cards: message.Cards}); err != nil {
			return nil, false, err
		}
	default:
		return nil, false, fmt.Errorf("unknown action: %s", message.Action)
	}

	return playable.OK(message.Context), true, nil
}

// GetEndOfGameDetails returns details at the end of the game
func (g *Game) GetEndOfGameDetails() (gameOverDetails *playable.GameOverDetails, isGameOver bool) {
	if g.phase != PhaseCompleted {
		return nil, false
	}

	adjustments := make(map[int64]int)
	for _, player := range g.idToPlayer {
		adjustments[player.PlayerID] = g.state.scores[teamForSeat(player.Seat, g.state.playerCount())]
	}

	return &playable.GameOverDetails{
		ScoreAdjustments: adjustments,
		Log:              g.getGameState(),
	}, true
}

func (g *Game) logMessage(seat int, format string, a ...interface{}) *playable.LogMessage {
	var playerID int64
	if seat >= 0 && seat < g.state.playerCount() {
		playerID = g.state.players[seat].PlayerID
	}

	return playable.SimpleLogMessage(playerID, format, a...)
}

func (g *Game) sendLogMessages(msg ...*playable.LogMessage) {
	if g.logChan != nil {
		select {
		case g.logChan <- msg:
		default:
		}
	}
}
