package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/cat_finder_system/pkg/token"
	"github.com/sirupsen/logrus"
)

const userIDKey = "user_id"

// bearerToken извлекает токен из заголовка Authorization
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// JWTAuthMiddleware - middleware для обязательной аутентификации по JWT
func JWTAuthMiddleware(tokens *token.Manager, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			log.Warn("Bearer token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			log.WithError(err).Warn("Invalid bearer token provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalJWTAuthMiddleware - вариант аутентификации для публичных маршрутов:
// валидный токен привязывает пользователя, отсутствие или невалидность
// токена не прерывает запрос
func OptionalJWTAuthMiddleware(tokens *token.Manager, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString != "" {
			claims, err := tokens.Validate(tokenString)
			if err != nil {
				log.WithError(err).Debug("Ignoring invalid bearer token on public route")
			} else {
				c.Set(userIDKey, claims.UserID)
			}
		}
		c.Next()
	}
}

// authenticatedUserID возвращает идентификатор пользователя запроса
func authenticatedUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// optionalUserID возвращает указатель на идентификатор пользователя или nil
func optionalUserID(c *gin.Context) *uuid.UUID {
	if userID, ok := authenticatedUserID(c); ok {
		return &userID
	}
	return nil
}
