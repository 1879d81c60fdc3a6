package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand(t *testing.T) {
	hand := Hand(CardsFromString("5c,14d,2h"))
	assert.Equal(t, 3, hand.Len())

	hand.AddCard(CardFromString("17s"))
	assert.Equal(t, 4, hand.Len())

	assert.True(t, hand.HasCard(CardFromString("14d")))
	assert.False(t, hand.HasCard(CardFromString("13d")))

	assert.True(t, hand.Discard(CardFromString("14d")))
	assert.False(t, hand.Discard(CardFromString("14d")))
	assert.Equal(t, 3, hand.Len())

	assert.Equal(t, "5c,2h,17s", hand.String())
	assert.Equal(t, Card{Rank: 5, Suit: Clubs}, *hand.FirstCard())

	clone := hand.Clone()
	assert.True(t, clone.Discard(CardFromString("5c")))
	assert.Equal(t, 3, hand.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestHand_HasCard_nonAddressable(t *testing.T) {
	hands := map[int]Hand{
		0: CardsFromString("5c,14d"),
	}

	// HasCard must work on values that cannot take an address
	assert.True(t, hands[0].HasCard(CardFromString("14d")))
	assert.False(t, hands[0].HasCard(CardFromString("2h")))
	assert.True(t, hands[0].Clone().HasCard(CardFromString("5c")))
}

func TestHand_sort(t *testing.T) {
	hand := Hand(CardsFromString("14s,2h,5c,3c"))
	sort.Sort(hand)
	assert.Equal(t, "3c,5c,2h,14s", hand.String())
}

func TestHand_empty(t *testing.T) {
	var hand Hand
	assert.Nil(t, hand.FirstCard())
	assert.Equal(t, 0, hand.Len())
}
