package fivehundred

import (
	"errors"
)

// ErrIsNotPlayersTurn is returned when the acting player does not hold priority
var ErrIsNotPlayersTurn = errors.New("not player's turn")

// ErrCardNotInPlayersHand happens when the player tries to play a card they don't have
var ErrCardNotInPlayersHand = errors.New("card is not in player's hand")

// ErrWrongPhase is an error when an action is submitted outside its phase
var ErrWrongPhase = errors.New("action is not valid in the current phase")

// ErrInvalidBid is an error for a bid outside 6–10 tricks or with an unknown suit
var ErrInvalidBid = errors.New("bid must pledge 6–10 tricks of a known suit or no-trump")

// ErrKittyCardCount is an error when a kitty discard doesn't name exactly three cards
var ErrKittyCardCount = errors.New("must discard exactly three cards to the kitty")

// ErrDuplicateDiscard is an error when the same card appears twice in a kitty discard
var ErrDuplicateDiscard = errors.New("cannot discard the same card twice")

// ErrEmptyTrick is an error when a winner is requested for a trick with no cards
var ErrEmptyTrick = errors.New("cannot resolve the winner of an empty trick")

// ErrGameIsOver is an error when an action is attempted on a completed game
var ErrGameIsOver = errors.New("game is over")

// ErrUnknownPlayer is returned when an action arrives for a player not seated at the game
var ErrUnknownPlayer = errors.New("player is not seated at this game")
