package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	sizes := map[int]int{
		3: 33,
		4: 43,
		5: 53,
		6: 63,
	}

	for playerCount, size := range sizes {
		d, err := New(playerCount)
		assert.NoError(t, err)
		assert.Equal(t, size, d.CardsLeft(), "player count %d", playerCount)

		jokers := 0
		for _, card := range d.Cards {
			if card.IsJoker() {
				jokers++
			}
		}
		assert.Equal(t, 1, jokers)
	}

	for _, playerCount := range []int{0, 1, 2, 7, -1} {
		d, err := New(playerCount)
		assert.Nil(t, d)
		assert.EqualError(t, err, InvalidPlayerCountError(playerCount).Error())
	}
}

func TestNew_composition(t *testing.T) {
	d, err := New(4)
	assert.NoError(t, err)

	counts := make(map[Suit]int)
	for _, card := range d.Cards {
		counts[card.Suit]++
	}

	// red suits carry 4–10, black suits 5–10, plus J, Q, K, A each
	assert.Equal(t, 11, counts[Hearts])
	assert.Equal(t, 11, counts[Diamonds])
	assert.Equal(t, 10, counts[Clubs])
	assert.Equal(t, 10, counts[Spades])
	assert.Equal(t, 1, counts[NoSuit])

	assert.True(t, d.Cards[0].IsJoker())

	// six-handed deck has red thirteens but no black ones
	d6, err := New(6)
	assert.NoError(t, err)

	thirteens := make(map[Suit]bool)
	for _, card := range d6.Cards {
		if card.Rank == 13 {
			thirteens[card.Suit] = true
		}
	}

	assert.True(t, thirteens[Hearts])
	assert.True(t, thirteens[Diamonds])
	assert.False(t, thirteens[Clubs])
	assert.False(t, thirteens[Spades])
}

func TestNew_deterministic(t *testing.T) {
	a, err := New(5)
	assert.NoError(t, err)

	b, err := New(5)
	assert.NoError(t, err)

	assert.Equal(t, a.HashCode(), b.HashCode())
	assert.Equal(t, int64(-1), a.Seed())
}

func TestDeck_Shuffle(t *testing.T) {
	d, err := New(4)
	assert.NoError(t, err)

	unshuffled := d.HashCode()

	d.SetSeed(1)
	d.Shuffle()
	assert.NotEqual(t, unshuffled, d.HashCode())
	assert.Equal(t, int64(1), d.Seed())

	d2, err := New(4)
	assert.NoError(t, err)
	d2.SetSeed(1)
	d2.Shuffle()

	assert.Equal(t, d.HashCode(), d2.HashCode())
}

func TestDeck_Draw(t *testing.T) {
	d, err := New(3)
	assert.NoError(t, err)

	card, err := d.Draw()
	assert.NoError(t, err)
	assert.True(t, card.IsJoker())
	assert.Equal(t, 32, d.CardsLeft())
	assert.True(t, d.CanDraw(32))
	assert.False(t, d.CanDraw(33))

	for d.CardsLeft() > 0 {
		_, err := d.Draw()
		assert.NoError(t, err)
	}

	card, err = d.Draw()
	assert.Nil(t, card)
	assert.Equal(t, ErrEndOfDeck, err)
}
