package room

import (
	"github.com/sirupsen/logrus"
)

// Host is responsible for dispatching players to tables
type Host struct {
	dealers    map[string]*Dealer
	connect    chan *Client
	disconnect chan *Client
}

// NewHost returns a new dispatch object
func NewHost() *Host {
	return &Host{
		dealers:    make(map[string]*Dealer),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// Open starts the Host run loop
func (h *Host) Open() {
	go h.runLoop()
}

func (h *Host) runLoop() {
	for {
		select {
		case client := <-h.connect:
			logrus.WithField("player", client.String()).Debug("client connected")
			dealer, found := h.dealers[client.table.UUID]
			if !found {
				dealer = NewDealer(h, client.table)
				dealer.StartShift()
				h.dealers[client.table.UUID] = dealer
			}

			dealer.AddClient(client)
		case client := <-h.disconnect:
			logrus.WithField("player", client.String()).Debug("client disconnected")
			dealer, found := h.dealers[client.table.UUID]
			if !found {
				logrus.WithField("uuid", client.table.UUID).WithField("type", "exception").Error("table not found")
				continue
			}

			if dealer.RemoveClient(client) {
				dealer.EndShift()
				delete(h.dealers, client.table.UUID)
			}
		}
	}
}

// ClientConnected is called when a client connects to the server
func (h *Host) ClientConnected(client *Client) {
	h.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (h *Host) ClientDisconnected(client *Client) {
	h.disconnect <- client
}
