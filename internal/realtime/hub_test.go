package realtime

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHub создает хаб с отключенным выводом логов
func newTestHub() *Hub {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewHub(logger)
}

// newTestClient создает клиента без реального соединения: сообщения
// читаются напрямую из канала отправки
func newTestClient(hub *Hub, userID *uuid.UUID) *Client {
	return NewClient(hub, nil, userID, 30*time.Second)
}

// receive читает одно сообщение из очереди клиента без блокировки
func receive(t *testing.T, c *Client) (Message, bool) {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		return msg, ok
	default:
		return Message{}, false
	}
}

func TestHub_Broadcast_AllClients(t *testing.T) {
	// Подготовка
	hub := newTestHub()
	userID := uuid.New()
	anonymous := newTestClient(hub, nil)
	authenticated := newTestClient(hub, &userID)
	hub.Register(anonymous)
	hub.Register(authenticated)

	// Действие
	hub.Broadcast("NEW_CAT", map[string]string{"catId": "abc"})

	// Проверки
	// Рассылка доходит и до анонимных, и до аутентифицированных
	msg, ok := receive(t, anonymous)
	require.True(t, ok)
	assert.Equal(t, "NEW_CAT", msg.Type)

	msg, ok = receive(t, authenticated)
	require.True(t, ok)
	assert.Equal(t, "NEW_CAT", msg.Type)
}

func TestHub_SendToUser_OnlyTargetReceives(t *testing.T) {
	// Подготовка
	hub := newTestHub()
	targetID := uuid.New()
	otherID := uuid.New()
	target := newTestClient(hub, &targetID)
	other := newTestClient(hub, &otherID)
	anonymous := newTestClient(hub, nil)
	hub.Register(target)
	hub.Register(other)
	hub.Register(anonymous)

	// Действие
	hub.SendToUser(targetID, "NEW_REPORT", nil)

	// Проверки
	msg, ok := receive(t, target)
	require.True(t, ok)
	assert.Equal(t, "NEW_REPORT", msg.Type)

	_, ok = receive(t, other)
	assert.False(t, ok)
	_, ok = receive(t, anonymous)
	assert.False(t, ok)
}

func TestHub_SendToUser_AllConnectionsOfUser(t *testing.T) {
	// Подготовка
	hub := newTestHub()
	userID := uuid.New()
	// Один пользователь, два устройства
	first := newTestClient(hub, &userID)
	second := newTestClient(hub, &userID)
	hub.Register(first)
	hub.Register(second)

	// Действие
	hub.SendToUser(userID, "NEW_REPORT", nil)

	// Проверки
	_, ok := receive(t, first)
	assert.True(t, ok)
	_, ok = receive(t, second)
	assert.True(t, ok)
}

func TestHub_SendToUsers_MultipleTargets(t *testing.T) {
	// Подготовка
	hub := newTestHub()
	firstID := uuid.New()
	secondID := uuid.New()
	thirdID := uuid.New()
	first := newTestClient(hub, &firstID)
	second := newTestClient(hub, &secondID)
	third := newTestClient(hub, &thirdID)
	hub.Register(first)
	hub.Register(second)
	hub.Register(third)

	// Действие
	hub.SendToUsers([]uuid.UUID{firstID, secondID}, "CAT_UPDATED", nil)

	// Проверки
	_, ok := receive(t, first)
	assert.True(t, ok)
	_, ok = receive(t, second)
	assert.True(t, ok)
	_, ok = receive(t, third)
	assert.False(t, ok)
}

func TestHub_Unregister_StopsDelivery(t *testing.T) {
	// Подготовка
	hub := newTestHub()
	userID := uuid.New()
	client := newTestClient(hub, &userID)
	hub.Register(client)

	// Действие
	hub.Unregister(client)
	hub.Broadcast("NEW_CAT", nil)
	hub.SendToUser(userID, "NEW_REPORT", nil)

	// Проверки
	// Канал закрыт, сообщений в нем нет
	msg, ok := <-client.send
	assert.False(t, ok)
	assert.Empty(t, msg.Type)
}

func TestHub_Unregister_Twice(t *testing.T) {
	// Подготовка
	hub := newTestHub()
	client := newTestClient(hub, nil)
	hub.Register(client)

	// Действие: повторный Unregister не должен паниковать на закрытом канале
	hub.Unregister(client)
	hub.Unregister(client)
}

func TestHub_EnqueueDropsWhenFull(t *testing.T) {
	// Подготовка
	hub := newTestHub()
	client := newTestClient(hub, nil)
	hub.Register(client)

	// Действие
	// Переполняем очередь: лишние сообщения молча отбрасываются
	for i := 0; i < cap(client.send)+10; i++ {
		hub.Broadcast("NEW_CAT", nil)
	}

	// Проверки
	assert.Len(t, client.send, cap(client.send))
}

func TestHub_Close_ClosesAllClients(t *testing.T) {
	// Подготовка
	hub := newTestHub()
	userID := uuid.New()
	first := newTestClient(hub, nil)
	second := newTestClient(hub, &userID)
	hub.Register(first)
	hub.Register(second)

	// Действие
	hub.Close()

	// Проверки
	_, ok := <-first.send
	assert.False(t, ok)
	_, ok = <-second.send
	assert.False(t, ok)
}
