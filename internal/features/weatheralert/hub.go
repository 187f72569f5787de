package weatheralert

import (
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// AlertHub fans newly published alerts out to connected websocket clients.
// All subscription state is owned by the run loop, so handlers only ever
// touch the channels.
type AlertHub struct {
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan *WeatherAlert
	done       chan struct{}
	logger     *zap.Logger
}

func NewAlertHub(logger *zap.Logger) *AlertHub {
	return &AlertHub{
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan *WeatherAlert, 16),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run owns the client set until Stop is called.
func (h *AlertHub) Run() {
	clients := make(map[*websocket.Conn]bool)

	for {
		select {
		case conn := <-h.register:
			clients[conn] = true
		case conn := <-h.unregister:
			if clients[conn] {
				delete(clients, conn)
				conn.Close()
			}
		case alert := <-h.broadcast:
			payload, err := json.Marshal(alert)
			if err != nil {
				h.logger.Error("marshal alert for broadcast", zap.Error(err))
				continue
			}
			for conn := range clients {
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					delete(clients, conn)
					conn.Close()
				}
			}
		case <-h.done:
			for conn := range clients {
				conn.Close()
			}
			return
		}
	}
}

func (h *AlertHub) Stop() {
	close(h.done)
}

// Broadcast queues an alert for delivery. Drops the message if the hub is
// backed up rather than blocking the publisher.
func (h *AlertHub) Broadcast(alert *WeatherAlert) {
	select {
	case h.broadcast <- alert:
	default:
		h.logger.Warn("alert broadcast queue full, dropping message")
	}
}

// HandleConnection blocks until the client disconnects. Inbound messages are
// read and discarded; the feed is one-way.
func (h *AlertHub) HandleConnection(c *websocket.Conn) {
	h.register <- c
	defer func() { h.unregister <- c }()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
