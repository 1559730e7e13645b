package realtime

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 64 * 1024 // 64 KB
)

// Client - посредник между websocket-соединением и хабом
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID *uuid.UUID
	send   chan Message

	pingInterval time.Duration
}

// NewClient создает клиента. userID может быть nil для анонимного соединения.
func NewClient(hub *Hub, conn *websocket.Conn, userID *uuid.UUID, pingInterval time.Duration) *Client {
	return &Client{
		hub:          hub,
		conn:         conn,
		userID:       userID,
		send:         make(chan Message, 256),
		pingInterval: pingInterval,
	}
}

// UserID возвращает идентификатор пользователя соединения (nil для анонимных)
func (c *Client) UserID() *uuid.UUID {
	return c.userID
}

// enqueue кладет сообщение в очередь отправки. Переполненная очередь
// означает мертвое или безнадежно медленное соединение - сообщение
// отбрасывается, гарантий доставки нет.
func (c *Client) enqueue(msg Message) {
	select {
	case c.send <- msg:
	default:
	}
}

// pongWait - сколько ждем ответа на ping, прежде чем считать соединение мертвым
func (c *Client) pongWait() time.Duration {
	return c.pingInterval * 2
}

// readPump читает из соединения. Входящие сообщения клиентского протокола
// не предусмотрены, чтение нужно для обработки pong и закрытия.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(c.pongWait())); err != nil {
		c.hub.logger.WithError(err).Error("Failed to set websocket read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.pongWait()))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.hub.logger.WithError(err).Warn("Unexpected websocket close")
			}
			return
		}
	}
}

// writePump пишет сообщения из очереди в соединение и шлет периодические ping.
// Соединение, не ответившее на предыдущий ping, закрывается по дедлайну чтения.
func (c *Client) writePump() {
	ticker := time.NewTicker(c.pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.hub.logger.WithError(err).Error("Failed to set websocket write deadline")
				return
			}
			if !ok {
				// Хаб закрыл канал
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.hub.logger.WithError(err).Warn("Failed to write websocket message")
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Start запускает горутины чтения и записи клиента
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}
