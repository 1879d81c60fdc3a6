package room

import (
	"fivehundred-server/pkg/model"
	"fivehundred-server/pkg/playable"
)

type clientStateSeat struct {
	*model.Seat
	IsConnected bool `json:"isConnected"`
	IsSeated    bool `json:"isSeated"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
