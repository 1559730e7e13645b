package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/cat_finder_system/internal/config"
	"github.com/shenikar/cat_finder_system/internal/realtime"
	"github.com/shenikar/cat_finder_system/internal/service"
	"github.com/shenikar/cat_finder_system/pkg/token"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	authService service.AuthService
	catService  service.CatService
	hub         *realtime.Hub
	tokens      *token.Manager
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(authService service.AuthService, catService service.CatService, hub *realtime.Hub, tokens *token.Manager, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		authService: authService,
		catService:  catService,
		hub:         hub,
		tokens:      tokens,
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
