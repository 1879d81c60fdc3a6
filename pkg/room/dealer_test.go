package room

import (
	"testing"
	"time"

	"fivehundred-server/pkg/model"
	"fivehundred-server/pkg/playable"

	"github.com/stretchr/testify/assert"
)

type stubGame struct {
	logChan chan []*playable.LogMessage
}

func (s *stubGame) Action(playerID int64, message *playable.PayloadIn) (*playable.Response, bool, error) {
	return nil, false, nil
}

func (s *stubGame) GetPlayerState(playerID int64) (*playable.Response, error) {
	return playable.OK(), nil
}

func (s *stubGame) GetEndOfGameDetails() (*playable.GameOverDetails, bool) {
	return nil, false
}

func (s *stubGame) Name() string {
	return "stub"
}

func (s *stubGame) LogChan() <-chan []*playable.LogMessage {
	return s.logChan
}

func TestDealer_AddClient(t *testing.T) {
	d := NewDealer(&Host{}, &model.Table{})
	c := NewClient(nil, nil, nil)
	c2 := NewClient(nil, nil, nil)

	d.AddClient(c)
	d.AddClient(c2)

	assert.False(t, d.RemoveClient(c))
	assert.True(t, d.RemoveClient(c2))
}

func TestDealer_forwardLogMessages_stopsOnDetach(t *testing.T) {
	d := NewDealer(&Host{}, &model.Table{})
	game := &stubGame{logChan: make(chan []*playable.LogMessage)}

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		d.forwardLogMessages(game, done)
		close(finished)
	}()

	close(done)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("log forwarding did not stop after the game was detached")
	}
}

func TestDealer_forwardLogMessages_stopsOnEndShift(t *testing.T) {
	d := NewDealer(&Host{}, &model.Table{})
	game := &stubGame{logChan: make(chan []*playable.LogMessage)}

	finished := make(chan struct{})
	go func() {
		d.forwardLogMessages(game, make(chan struct{}))
		close(finished)
	}()

	d.EndShift()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("log forwarding did not stop after the dealer shut down")
	}
}

func TestDealer_detachGame(t *testing.T) {
	d := NewDealer(&Host{}, &model.Table{})
	game := &stubGame{logChan: make(chan []*playable.LogMessage)}

	done := make(chan struct{})
	d.game = game
	d.gameDone = done

	d.detachGame()
	assert.Nil(t, d.game)
	assert.Nil(t, d.gameDone)

	select {
	case <-done:
	default:
		t.Fatal("expected the done channel to be closed")
	}

	// detaching again must not panic on a nil channel
	d.detachGame()
}
