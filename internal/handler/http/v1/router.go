package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	requireAuth := JWTAuthMiddleware(h.tokens, h.logger)
	optionalAuth := OptionalJWTAuthMiddleware(h.tokens, h.logger)

	// Маршруты аутентификации и профиля
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/profile", requireAuth, h.getProfile)
		auth.PATCH("/profile", requireAuth, h.updateProfile)
	}

	// Маршруты котов и репортов
	cats := api.Group("/cats")
	{
		cats.GET("", h.listCats)
		cats.GET("/:id", h.getCat)
		cats.POST("", optionalAuth, h.createCat)
		cats.POST("/:id/reports", optionalAuth, h.addReport)
		cats.PATCH("/:id/status", requireAuth, h.updateCatStatus)
		cats.DELETE("/:id", requireAuth, h.deleteCat)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

// RegisterWS регистрирует websocket-маршрут вне группы /api/v1
func (h *Handler) RegisterWS(router *gin.Engine) {
	router.GET("/ws", h.serveWS)
}
