package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Event - realtime-событие, полученное по websocket
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// EventHandler вызывается для каждого полученного события после
// инвалидации кэша
type EventHandler func(Event)

// Listen подключается к websocket-эндпоинту и сбрасывает кэш при каждом
// событии о котах: следующий запрос прочитает свежие данные с сервера.
// Соединение переустанавливается с растущей задержкой до отмены контекста.
// handler может быть nil.
func (c *Client) Listen(ctx context.Context, handler EventHandler) error {
	wsURL, err := c.websocketURL()
	if err != nil {
		return err
	}

	delay := time.Second
	for {
		err := c.listenOnce(ctx, wsURL, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if c.logger != nil {
			c.logger.WithError(err).Warn("Websocket connection lost, reconnecting")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		if delay < 30*time.Second {
			delay *= 2
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, wsURL string, handler EventHandler) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("failed to dial websocket: %w", err)
	}
	defer conn.Close()

	// Закрытие по отмене контекста: ReadMessage вернет ошибку
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var event Event
		if err := json.Unmarshal(payload, &event); err != nil {
			if c.logger != nil {
				c.logger.WithError(err).Warn("Failed to decode realtime event")
			}
			continue
		}

		c.applyEvent(event)
		if handler != nil {
			handler(event)
		}
	}
}

// applyEvent инвалидирует кэш по типу события
func (c *Client) applyEvent(event Event) {
	switch event.Type {
	case "NEW_CAT", "CAT_UPDATED", "NEW_REPORT":
		var data struct {
			CatID string `json:"catId"`
		}
		if err := json.Unmarshal(event.Data, &data); err == nil && data.CatID != "" {
			c.cache.invalidate("/cats/" + data.CatID)
		}
		// Страницы списка в любом случае могли измениться
		c.cache.invalidatePrefix("/cats?")
		c.cache.invalidate("/cats")
	}
}

// websocketURL строит адрес websocket-эндпоинта из базового адреса API,
// добавляя токен текущей сессии, если он установлен
func (c *Client) websocketURL() (string, error) {
	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base url: %w", err)
	}
	switch {
	case strings.EqualFold(parsed.Scheme, "https"):
		parsed.Scheme = "wss"
	default:
		parsed.Scheme = "ws"
	}
	parsed.Path = "/ws"
	if c.token != "" {
		query := parsed.Query()
		query.Set("token", c.token)
		parsed.RawQuery = query.Encode()
	}
	return parsed.String(), nil
}
