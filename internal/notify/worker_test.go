package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/cat_finder_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBroadcaster запоминает доставленные события вместо реальной рассылки
type recordingBroadcaster struct {
	broadcasts []string
	targeted   map[string][]uuid.UUID
}

func newRecordingBroadcaster() *recordingBroadcaster {
	return &recordingBroadcaster{targeted: make(map[string][]uuid.UUID)}
}

func (b *recordingBroadcaster) Broadcast(eventType string, data any) {
	b.broadcasts = append(b.broadcasts, eventType)
}

func (b *recordingBroadcaster) SendToUsers(userIDs []uuid.UUID, eventType string, data any) {
	b.targeted[eventType] = append(b.targeted[eventType], userIDs...)
}

// newTestWorker создает воркер без подключения к Redis: deliver
// тестируется напрямую
func newTestWorker(cfg *config.Config) (*Worker, *recordingBroadcaster) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	broadcaster := newRecordingBroadcaster()
	return NewWorker(nil, broadcaster, logger, cfg), broadcaster
}

func TestDeliver_BroadcastEvent(t *testing.T) {
	// Подготовка
	worker, broadcaster := newTestWorker(&config.Config{})
	event := Event{Type: EventNewCat, Data: EventData{CatID: "abc"}}

	// Действие
	worker.deliver(context.Background(), event, `{}`)

	// Проверки
	assert.Equal(t, []string{EventNewCat}, broadcaster.broadcasts)
	assert.Empty(t, broadcaster.targeted)
}

func TestDeliver_TargetedEvent(t *testing.T) {
	// Подготовка
	worker, broadcaster := newTestWorker(&config.Config{})
	ownerID := uuid.New()
	event := Event{
		Type:    EventNewReport,
		Data:    EventData{CatID: "abc"},
		Targets: []uuid.UUID{ownerID},
	}

	// Действие
	worker.deliver(context.Background(), event, `{}`)

	// Проверки
	assert.Empty(t, broadcaster.broadcasts)
	assert.Equal(t, []uuid.UUID{ownerID}, broadcaster.targeted[EventNewReport])
}

func TestDeliver_WebhookSignedPayload(t *testing.T) {
	// Подготовка
	payload := `{"type":"NEW_CAT"}`
	secret := "webhook-secret"
	var received atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, payload, string(body))

		// Подпись должна совпадать с HMAC-SHA256 от тела
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write([]byte(payload))
		expected := hex.EncodeToString(mac.Sum(nil))
		assert.Equal(t, expected, r.Header.Get("X-Webhook-Signature"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     secret,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  10 * time.Millisecond,
	}
	worker, _ := newTestWorker(cfg)
	event := Event{Type: EventNewCat, Data: EventData{CatID: "abc"}}

	// Действие
	worker.deliver(context.Background(), event, payload)

	// Проверки
	assert.Equal(t, int64(1), received.Load())
}

func TestDeliver_WebhookRetriesOnFailure(t *testing.T) {
	// Подготовка
	var attempts atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker, _ := newTestWorker(cfg)

	// Действие
	worker.deliver(context.Background(), Event{Type: EventCatUpdated}, `{}`)

	// Проверки
	assert.Equal(t, int64(3), attempts.Load())
}

func TestDeliver_TargetedEventSkipsWebhook(t *testing.T) {
	// Подготовка
	var received atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker, broadcaster := newTestWorker(cfg)
	event := Event{
		Type:    EventNewReport,
		Targets: []uuid.UUID{uuid.New()},
	}

	// Действие
	worker.deliver(context.Background(), event, `{}`)

	// Проверки
	// Адресные уведомления на внешний вебхук не дублируются
	assert.Equal(t, int64(0), received.Load())
	require.NotEmpty(t, broadcaster.targeted[EventNewReport])
}
