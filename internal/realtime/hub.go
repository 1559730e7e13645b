package realtime

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Message - сообщение, отправляемое websocket-клиенту
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub владеет реестром открытых соединений. Реестр никогда не является
// глобальным состоянием: хаб создается в main и передается по ссылке.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	byUser  map[uuid.UUID]map[*Client]bool
	logger  *logrus.Logger
}

// NewHub создает новый хаб с пустым реестром соединений
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
		byUser:  make(map[uuid.UUID]map[*Client]bool),
		logger:  logger,
	}
}

// Register добавляет соединение в реестр. Аутентифицированные
// соединения дополнительно индексируются по идентификатору пользователя.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	if c.userID != nil {
		set, ok := h.byUser[*c.userID]
		if !ok {
			set = make(map[*Client]bool)
			h.byUser[*c.userID] = set
		}
		set[c] = true
	}
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.WithField("total_clients", total).Info("Websocket client connected")
}

// Unregister удаляет соединение из реестра и закрывает его канал отправки
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	if c.userID != nil {
		if set, ok := h.byUser[*c.userID]; ok {
			delete(set, c)
			if len(set) == 0 {
				delete(h.byUser, *c.userID)
			}
		}
	}
	close(c.send)
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.WithField("total_clients", total).Info("Websocket client disconnected")
}

// Broadcast отправляет сообщение всем открытым соединениям
func (h *Hub) Broadcast(eventType string, data any) {
	msg := Message{Type: eventType, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.enqueue(msg)
	}
}

// SendToUser отправляет сообщение всем соединениям одного пользователя
func (h *Hub) SendToUser(userID uuid.UUID, eventType string, data any) {
	h.SendToUsers([]uuid.UUID{userID}, eventType, data)
}

// SendToUsers отправляет сообщение соединениям перечисленных пользователей
func (h *Hub) SendToUsers(userIDs []uuid.UUID, eventType string, data any) {
	msg := Message{Type: eventType, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, userID := range userIDs {
		for c := range h.byUser[userID] {
			c.enqueue(msg)
		}
	}
}

// Close закрывает все открытые соединения
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
		if c.conn != nil {
			c.conn.Close()
		}
	}
	h.byUser = make(map[uuid.UUID]map[*Client]bool)
}
