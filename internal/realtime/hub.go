package realtime

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"
)

// Message is the envelope fanned out to connected clients.
type Message struct {
	Channel string `json:"channel"`
	Payload any    `json:"payload"`
}

// Hub fans out change notifications to connected websocket clients.
// Broadcast is fire-and-forget: there is no delivery guarantee and a slow
// client's message is dropped rather than blocking the sender.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]chan Message
	log     zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]chan Message),
		log:     log,
	}
}

func (h *Hub) Broadcast(channel string, payload any) {
	msg := Message{Channel: channel, Payload: payload}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.clients {
		select {
		case ch <- msg:
		default:
			// client is not keeping up
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(c *websocket.Conn) chan Message {
	ch := make(chan Message, 16)
	h.mu.Lock()
	h.clients[c] = ch
	h.mu.Unlock()
	return ch
}

func (h *Hub) unregister(c *websocket.Conn) {
	h.mu.Lock()
	if ch, ok := h.clients[c]; ok {
		close(ch)
		delete(h.clients, c)
	}
	h.mu.Unlock()
}

// Upgrade rejects plain HTTP requests on the websocket route.
func Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler serves one client connection: a writer loop drains the client's
// queue while reads are discarded until the peer closes.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		ch := h.register(c)
		defer h.unregister(c)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := c.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if err := c.WriteJSON(msg); err != nil {
					h.log.Warn().Err(err).Msg("websocket write failed")
					return
				}
			case <-done:
				return
			}
		}
	})
}
