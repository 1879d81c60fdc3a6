package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
// NoSuit is the joker's suit. NoTrump is not a card suit; it only appears as
// the trump designation of a no-trump round.
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
	NoSuit   Suit = "none"
	NoTrump  Suit = "no-trump"
)

// Color represents a suit color
type Color string

// color constants
const (
	Red   Color = "red"
	Black Color = "black"
)

var suitColors = map[Suit]Color{
	Hearts:   Red,
	Diamonds: Red,
	Clubs:    Black,
	Spades:   Black,
}

// oppositeSuits maps each suit to the other suit of the same color.
// The jack of the suit opposite trump is the left bower.
var oppositeSuits = map[Suit]Suit{
	Hearts:   Diamonds,
	Diamonds: Hearts,
	Clubs:    Spades,
	Spades:   Clubs,
}

// Color returns the color of the suit, or "" for NoSuit and NoTrump
func (s Suit) Color() Color {
	return suitColors[s]
}

// Opposite returns the same-colored partner suit, or NoSuit if there isn't one
func (s Suit) Opposite() Suit {
	if opp, ok := oppositeSuits[s]; ok {
		return opp
	}

	return NoSuit
}

// face cards
// Numeric ranks keep their face value. The six-handed deck plays with elevens,
// twelves, and red thirteens, so the court cards sit above 13 rather than on it.
const (
	Jack      = 14
	Queen     = 15
	King      = 16
	Ace       = 17
	JokerRank = 18
)

// faceRanks are part of every deck configuration regardless of player count
var faceRanks = []int{Jack, Queen, King, Ace}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// Joker returns the joker
func Joker() *Card {
	return &Card{Rank: JokerRank, Suit: NoSuit}
}

// IsJoker returns true if the card is the joker
func (c *Card) IsJoker() bool {
	return c.Rank == JokerRank
}

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	case JokerRank:
		return "Jo"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-8])([cdhsn])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 18
// and suit in [cdhsn]. The joker is "18n".
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	case "n":
		suit = NoSuit
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (17c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	case NoSuit:
		suit = "n"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
