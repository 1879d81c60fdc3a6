package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// InvalidPlayerCountError is an error for a player count the game cannot be played with
type InvalidPlayerCountError int

func (i InvalidPlayerCountError) Error() string {
	return fmt.Sprintf("five hundred requires 3–6 players, got %d", int(i))
}

// rankRange is the numeric rank span for one color. The face ranks and the ace
// are always added on top.
type rankRange struct {
	low, high int
}

// deckSpecs keys the numeric rank ranges by player count.
// Every configuration also contains exactly one joker.
var deckSpecs = map[int]map[Color]rankRange{
	3: {Red: {7, 10}, Black: {7, 10}},
	4: {Red: {4, 10}, Black: {5, 10}},
	5: {Red: {2, 10}, Black: {2, 10}},
	6: {Red: {2, 13}, Black: {2, 12}},
}

// suitsByColor lists the two suits of each color in build order
var suitsByColor = map[Color][]Suit{
	Red:   {Diamonds, Hearts},
	Black: {Clubs, Spades},
}

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a new Five Hundred deck for the given player count.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(playerCount int) (*Deck, error) {
	cards, err := buildCards(playerCount)
	if err != nil {
		return nil, err
	}

	return &Deck{
		Cards: cards,
		seed:  -1,
	}, nil
}

func buildCards(playerCount int) ([]*Card, error) {
	spec, ok := deckSpecs[playerCount]
	if !ok {
		return nil, InvalidPlayerCountError(playerCount)
	}

	cards := []*Card{Joker()}
	for _, color := range []Color{Black, Red} {
		ranks := spec[color]
		for _, suit := range suitsByColor[color] {
			for rank := ranks.low; rank <= ranks.high; rank++ {
				cards = append(cards, &Card{Rank: rank, Suit: suit})
			}

			for _, rank := range faceRanks {
				cards = append(cards, &Card{Rank: rank, Suit: suit})
			}
		}
	}

	return cards, nil
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed)) // nolint:gosec
}

// Shuffle will shuffle the deck of cards
// If a seed hasn't been set yet, one is taken from the wall clock.
func (d *Deck) Shuffle() {
	if d.rng == nil {
		d.SetSeed(time.Now().UnixNano())
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Seed returns the seed used to shuffle the deck, or -1 if the deck is unshuffled
func (d *Deck) Seed() int64 {
	return d.seed
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

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
