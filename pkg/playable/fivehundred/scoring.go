package fivehundred

// trickValue is what each trick is worth to the teams defending the contract
const trickValue = 10

// scoreDeltas resolves the round for every team. The contract team gains the
// bid score if it took at least the pledged number of tricks, and loses it
// otherwise; every other team gains trickValue per trick it took. The null
// contract (everyone passed) scores zero either way since Pass is worth
// nothing.
func scoreDeltas(s State) map[int]int {
	bidTeam := teamForSeat(s.bid.Actor(), s.playerCount())

	pledged := 0
	if bid, ok := s.bid.(Bid); ok {
		pledged = bid.Number
	}

	deltas := make(map[int]int)
	for team := 0; team < teamCount(s.playerCount()); team++ {
		if team == bidTeam {
			if s.teamTricks(team) >= pledged {
				deltas[team] = s.bid.Score()
			} else {
				deltas[team] = -s.bid.Score()
			}

			continue
		}

		deltas[team] = trickValue * s.teamTricks(team)
	}

	return deltas
}

// isGameOver reports whether any team's score has left the playable band
func isGameOver(s State, opts Options) bool {
	for _, score := range s.scores {
		if score > opts.WinScore || score < opts.LoseScore {
			return true
		}
	}

	return false
}
