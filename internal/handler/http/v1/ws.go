package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/cat_finder_system/internal/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Соединения принимаются с любого origin: канал только раздает
	// публичные события и не принимает команд
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Websocket endpoint
// @Description Upgrade to websocket; an optional token query parameter binds the connection to a user
// @Tags Realtime
// @Param token query string false "Bearer token"
// @Success 101 "Switching Protocols"
// @Router /ws [get]
func (h *Handler) serveWS(c *gin.Context) {
	log := h.logger.WithField("method", "serveWS")

	// Токен опционален: невалидный токен не мешает анонимному подключению
	var userID *uuid.UUID
	if tokenString := c.Query("token"); tokenString != "" {
		claims, err := h.tokens.Validate(tokenString)
		if err != nil {
			log.WithError(err).Warn("Websocket connect with invalid token, keeping connection anonymous")
		} else {
			userID = &claims.UserID
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Error("Failed to upgrade websocket connection")
		return
	}

	client := realtime.NewClient(h.hub, conn, userID, h.cfg.WSPingInterval)
	h.hub.Register(client)
	client.Start()
}
