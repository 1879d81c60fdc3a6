package util

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"Lucky", "Bold", "Sly", "Daring", "Quiet", "Clever", "Brave", "Swift", "Sneaky", "Cheerful",
	"Crafty", "Steady", "Wild", "Gentle", "Fearless", "Patient", "Cunning", "Sharp", "Merry", "Stubborn",
	"Dashing", "Noble", "Reckless", "Shrewd", "Spirited",
}

var nouns = []string{
	"Joker", "Bower", "Dealer", "Bidder", "Ace", "Knave", "Queen", "King", "Duck", "Misere",
	"Trump", "Kitty", "Spade", "Club", "Diamond", "Heart", "Trick", "Caller", "Defender", "Partner",
}

// GetRandomName returns a random name by combining an adjective with a card term
func GetRandomName() string {
	adjectivesIndex := rand.Intn(len(adjectives))
	nounsIndex := rand.Intn(len(nouns))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], nouns[nounsIndex])
}
