package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Dosada05/tournament-draws/engine"
	"github.com/gorilla/websocket"
)

type Client struct {
	Hub      *Hub
	Conn     *websocket.Conn
	Send     chan []byte
	Room     string
	IsClosed bool
	Mu       sync.Mutex
}

type WebSocketMessage struct {
	Type    string      `json:"type"`             // notification topic, e.g. "modifyMatchUp"
	Payload interface{} `json:"payload"`          // the changed matchUps or draw
	RoomID  string      `json:"roomId,omitempty"` // "draw_" + drawId
	At      time.Time   `json:"at"`
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 256
)

// RoomForDraw names the room that receives a draw's notifications.
func RoomForDraw(drawID string) string {
	return "draw_" + drawID
}

// Hub fans notifications out to websocket clients grouped in rooms.
type Hub struct {
	rooms  map[string]map[*Client]bool
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewHub returns an empty hub. A nil logger falls back to slog.Default.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		rooms:  make(map[string]map[*Client]bool),
		logger: logger,
	}
}

func (h *Hub) Logger() *slog.Logger {
	return h.logger
}

// NewClient creates a client for room with a buffered send channel. Conn may
// be nil for clients that are only read through Send.
func (h *Hub) NewClient(conn *websocket.Conn, room string) *Client {
	return &Client{Hub: h, Conn: conn, Send: make(chan []byte, sendBuffer), Room: room}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[client.Room]; !ok {
		h.rooms[client.Room] = make(map[*Client]bool)
	}
	h.rooms[client.Room][client] = true
	h.logger.Debug("websocket client registered", slog.String("room", client.Room), slog.Int("clients", len(h.rooms[client.Room])))
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	roomClients, ok := h.rooms[client.Room]
	if !ok || !roomClients[client] {
		return
	}
	client.Mu.Lock()
	if !client.IsClosed {
		close(client.Send)
		client.IsClosed = true
	}
	client.Mu.Unlock()
	delete(roomClients, client)
	if len(roomClients) == 0 {
		delete(h.rooms, client.Room)
		h.logger.Debug("websocket room closed", slog.String("room", client.Room))
	}
}

func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// BroadcastToRoom sends message to every open client in roomID. Clients whose
// buffer is full miss the message.
func (h *Hub) BroadcastToRoom(roomID string, message interface{}) error {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal message for room %s: %w", roomID, err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[roomID] {
		client.Mu.Lock()
		if client.IsClosed {
			client.Mu.Unlock()
			continue
		}
		select {
		case client.Send <- messageBytes:
		default:
			h.logger.Warn("websocket send buffer full, message dropped", slog.String("room", roomID))
		}
		client.Mu.Unlock()
	}
	return nil
}

// Notify implements engine.Notifier by broadcasting to the draw's room.
func (h *Hub) Notify(_ context.Context, n engine.Notification) error {
	room := RoomForDraw(n.DrawID)
	return h.BroadcastToRoom(room, WebSocketMessage{
		Type:    n.Topic,
		Payload: n.Payload,
		RoomID:  room,
		At:      n.At,
	})
}

func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister(c)
		c.Conn.Close()
		c.Hub.logger.Debug("websocket read pump closed", slog.String("room", c.Room))
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("websocket closed unexpectedly", slog.String("room", c.Room), slog.Any("error", err))
			}
			break
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				c.Hub.logger.Error("failed to get websocket writer", slog.String("room", c.Room), slog.Any("error", err))
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				c.Hub.logger.Error("failed to close websocket writer", slog.String("room", c.Room), slog.Any("error", err))
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Hub.logger.Warn("failed to ping websocket client", slog.String("room", c.Room), slog.Any("error", err))
				return
			}
		}
	}
}
