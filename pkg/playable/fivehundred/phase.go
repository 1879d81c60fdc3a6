package fivehundred

import (
	"encoding/json"
)

// Phase represents the state of the round state machine
type Phase int

// constants for Phase
const (
	PhaseSetup Phase = iota
	PhaseNewRound
	PhaseBidding
	PhaseKitty
	PhaseTrick
	PhaseScoring
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseNewRound:
		return "new-round"
	case PhaseBidding:
		return "bidding"
	case PhaseKitty:
		return "kitty"
	case PhaseTrick:
		return "trick"
	case PhaseScoring:
		return "scoring"
	case PhaseCompleted:
		return "completed"
	}

	return ""
}

// MarshalJSON encodes JSON
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}
