package fivehundred

// Player is a seat at the table
type Player struct {
	PlayerID int64 `json:"playerId"`
	Seat     int   `json:"seat"`
}

// teamForSeat maps a seat to its team index.
// Even tables pair alternating seats into two teams; odd tables play
// cutthroat, every seat scoring on its own.
func teamForSeat(seat, playerCount int) int {
	if playerCount%2 == 0 {
		return seat % 2
	}

	return seat
}

// teamCount returns the number of scoring teams at the table
func teamCount(playerCount int) int {
	if playerCount%2 == 0 {
		return 2
	}

	return playerCount
}
