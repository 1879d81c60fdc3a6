package room

import (
	"context"
	"errors"
	"sync"
	"time"

	"fivehundred-server/internal/rng"
	"fivehundred-server/pkg/model"
	"fivehundred-server/pkg/playable"
	"fivehundred-server/pkg/playable/fivehundred"

	"github.com/sirupsen/logrus"
)

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
	stateGameEnded
)

// Dealer is responsible for controlling play at a single table
type Dealer struct {
	host    *Host
	table   *model.Table
	clients map[*Client]bool
	lock    sync.RWMutex
	game    playable.Playable
	// gameDone is closed when the current game is detached so the goroutines
	// serving it can stop
	gameDone chan struct{}
	seeder   rng.Generator

	logMessages []*playable.LogMessage

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(host *Host, table *model.Table) *Dealer {
	return &Dealer{
		host:          host,
		table:         table,
		clients:       make(map[*Client]bool),
		seeder:        rng.Crypto{},
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
		game:          nil,
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	log := logrus.WithFields(logrus.Fields{
		"uuid": d.table.UUID,
		"name": d.table.Name,
	})

	log.Debug("creating dealer run loop")
	for {
		select {
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent:
				d.sendClientState()
			case stateGameEvent:
				d.sendGameData()
			case stateGameEnded:
				d.sendGameEnded()
				d.sendClientState()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			log.Debug("terminating dealer run loop")
			return
		}
	}
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.stateChanged <- stateClientEvent
	d.execInRunLoop <- func() {
		if d.game == nil {
			return
		}

		gs, err := d.game.GetPlayerState(client.player.ID)
		if err != nil {
			logrus.WithError(err).Error("could not get player state")
			return
		}

		client.Send <- gs
	}
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients > 0 {
		d.stateChanged <- stateClientEvent
		return false
	}

	return true
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameEnded() {
	for _, client := range d.Clients() {
		client.Send <- &playable.Response{
			Key: "gameEnded",
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	if d.game == nil {
		// should not happen
		logrus.Error("game state changed, but there's no active game")
		return
	}

	for _, client := range d.Clients() {
		data, err := d.game.GetPlayerState(client.player.ID)
		if err != nil {
			logrus.WithError(err).Error("could not get player state")
			continue
		}

		client.Send <- data
	}
}

func (d *Dealer) sendClientState() {
	seats, err := d.table.GetSeats(context.Background())
	if err != nil {
		logrus.WithField("uuid", d.table.UUID).WithError(err).Error("could not get seats")
		return
	}

	connectedClients := make(map[int64]*model.Player)
	for _, client := range d.Clients() {
		connectedClients[client.player.ID] = client.player
	}

	csSeats := make(map[int64]*clientStateSeat)
	for _, seat := range seats {
		_, isConnected := connectedClients[seat.PlayerID]
		delete(connectedClients, seat.PlayerID)
		csSeats[seat.PlayerID] = &clientStateSeat{
			Seat:        seat,
			IsConnected: isConnected,
			IsSeated:    true,
		}
	}

	for _, player := range connectedClients {
		csSeats[player.ID] = &clientStateSeat{
			Seat: &model.Seat{
				Player:    player,
				PlayerID:  player.ID,
				TableUUID: d.table.UUID,
			},
			IsConnected: true,
			IsSeated:    false,
		}
	}

	for _, client := range d.Clients() {
		client.Send <- &playable.Response{
			Key:  "clientState",
			Data: csSeats,
		}
	}
}

// canAdminTable will send an error message to the client if they are not a table admin or site admin
// If they are an appropriate admin, true is returned, otherwise false is returned
func canAdminTable(ctx string, c *Client) bool {
	if c.player.IsSiteAdmin {
		return true
	}

	seat, err := c.player.GetSeat(context.Background(), c.table)
	if err != nil {
		c.Send <- newErrorResponse(ctx, err)
		return false
	}

	if !seat.IsTableAdmin {
		c.Send <- newErrorResponse(ctx, errors.New("you do not have the appropriate permission"))
		return false
	}

	return true
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	switch msg.Action {
	case "createGame":
		if !canAdminTable(msg.Context, c) {
			return
		}

		d.execInRunLoop <- func() {
			if err := d.createGame(msg.AdditionalData); err != nil {
				c.Send <- newErrorResponse(msg.Context, err)
				return
			}

			c.Send <- playable.OK(msg.Context)
		}
	case "terminateGame":
		if !canAdminTable(msg.Context, c) {
			return
		}

		d.execInRunLoop <- func() {
			d.detachGame()
			d.stateChanged <- stateGameEnded
		}

		c.Send <- playable.OK(msg.Context)
	case "tableAdmin":
		d.execInRunLoop <- func() {
			if !canAdminTable(msg.Context, c) {
				return
			}

			isTableAdmin, ok := msg.AdditionalData["isTableAdmin"].(bool)
			if !ok {
				c.Send <- newErrorResponse(msg.Context, errors.New("isTableAdmin is not boolean"))
				return
			}

			playerID, ok := msg.AdditionalData.GetInt("playerId")
			if !ok {
				c.Send <- newErrorResponse(msg.Context, errors.New("could not obtain playerId"))
				return
			}

			player, err := model.GetPlayerByID(context.Background(), int64(playerID))
			if err != nil {
				c.Send <- newErrorResponse(msg.Context, err)
				return
			}

			seat, err := player.GetSeat(context.Background(), c.table)
			if err != nil {
				c.Send <- newErrorResponse(msg.Context, err)
				return
			}

			seat.IsTableAdmin = isTableAdmin
			if err := seat.Save(context.Background()); err != nil {
				c.Send <- newErrorResponse(msg.Context, err)
				return
			}

			c.Send <- playable.OK(msg.Context)
			d.stateChanged <- stateClientEvent
		}
	case "playerStatus":
		d.execInRunLoop <- func() {
			var seat *model.Seat
			var err error

			// set status for other player, requires table admin
			playerID, ok := msg.AdditionalData.GetInt("playerId")
			if ok {
				if !canAdminTable(msg.Context, c) {
					return
				}

				var player *model.Player
				player, err = model.GetPlayerByID(context.Background(), int64(playerID))
				if err != nil {
					c.Send <- newErrorResponse(msg.Context, err)
					return
				}

				seat, err = player.GetSeat(context.Background(), c.table)
			} else {
				// set status for self
				seat, err = c.player.GetSeat(context.Background(), c.table)
			}

			if err != nil {
				c.Send <- newErrorResponse(msg.Context, err)
				return
			}

			isActive, ok := msg.AdditionalData["active"].(bool)
			if !ok {
				c.Send <- newErrorResponse(msg.Context, errors.New("active is not boolean"))
				return
			}

			if err := seat.SetActive(context.Background(), isActive); err != nil {
				c.Send <- newErrorResponse(msg.Context, err)
				return
			}

			c.Send <- playable.OK(msg.Context)
			d.stateChanged <- stateClientEvent
		}
	default:
		d.execInRunLoop <- func() {
			game := d.game
			if game == nil {
				logrus.WithField("msg", msg).Warn("unknown message")
				return
			}

			action, updateState, err := game.Action(c.player.ID, msg)
			if err != nil {
				logrus.WithError(err).WithField("client", c.String()).Error("could not perform action")
				c.Send <- newErrorResponse(msg.Context, err)
				return
			}

			if action != nil {
				action.Context = msg.Context
				c.Send <- action
			}

			if updateState {
				d.stateChanged <- stateGameEvent
			}

			if details, isOver := game.GetEndOfGameDetails(); isOver {
				record, err := d.table.CreateGame(context.Background(), game.Name())
				if err != nil {
					logrus.WithError(err).Error("could not create game")
					c.Send <- newErrorResponse(msg.Context, err)
					return
				}

				if err := record.EndGame(context.Background(), details.Log, details.ScoreAdjustments); err != nil {
					logrus.WithError(err).Error("could not save game")
					c.Send <- newErrorResponse(msg.Context, err)
					return
				}

				d.detachGame()
				d.stateChanged <- stateGameEnded
			}
		}
	}
}

// detachGame drops the current game and releases its goroutines
// NOTE: must only be called from the run loop
func (d *Dealer) detachGame() {
	if d.gameDone != nil {
		close(d.gameDone)
		d.gameDone = nil
	}

	d.game = nil
}

// NOTE: must only be called from the run loop
func (d *Dealer) createGame(additionalData playable.AdditionalData) error {
	if d.game != nil {
		return errors.New("a game is already in progress")
	}

	seats, err := d.table.GetActiveSeats(context.Background())
	if err != nil {
		return err
	}

	playerIDs := make([]int64, 0, len(seats))
	for _, seat := range seats {
		playerIDs = append(playerIDs, seat.PlayerID)
	}

	opts := fivehundred.DefaultOptions()
	opts.Seed = d.seeder.Seed()

	if winScore, ok := additionalData.GetInt("winScore"); ok {
		opts.WinScore = winScore
		opts.LoseScore = -winScore
	}

	game, err := fivehundred.NewGame(logrus.StandardLogger(), playerIDs, opts)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	d.game = game
	d.gameDone = done
	go d.forwardLogMessages(game, done)
	d.startTicker(game, done)
	d.stateChanged <- stateGameEvent

	return nil
}

// forwardLogMessages relays game log messages to the connected clients until
// the game is detached or the dealer shuts down
func (d *Dealer) forwardLogMessages(game playable.Playable, done <-chan struct{}) {
	logChan := game.LogChan()
	for {
		select {
		case messages := <-logChan:
			d.execInRunLoop <- func() {
				d.addLogMessages(messages)
				for _, client := range d.Clients() {
					client.Send <- &playable.Response{
						Key:  "logs",
						Data: messages,
					}
				}
			}
		case <-done:
			return
		case <-d.close:
			return
		}
	}
}

// startTicker drives games that advance on a timer
func (d *Dealer) startTicker(game playable.Playable, done <-chan struct{}) {
	tickable, ok := game.(playable.Tickable)
	if !ok {
		return
	}

	ticker := time.NewTicker(tickable.Interval())
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				d.execInRunLoop <- func() {
					if d.game != game {
						return
					}

					update, err := tickable.Tick()
					if err != nil {
						logrus.WithError(err).Error("tick failed")
						return
					}

					if update {
						d.stateChanged <- stateGameEvent
					}
				}
			case <-done:
				return
			case <-d.close:
				return
			}
		}
	}()
}
