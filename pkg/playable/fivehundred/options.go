package fivehundred

// Options are options for creating a new five hundred game
type Options struct {
	// WinScore and LoseScore bound the game. A team score above WinScore or
	// below LoseScore after a scoring phase completes the game.
	WinScore  int
	LoseScore int

	// Seed shuffles each round's deck. Zero leaves the deck in build order,
	// which is only useful for tests; the engine itself never picks a seed.
	Seed int64
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		WinScore:  500,
		LoseScore: -500,
	}
}
