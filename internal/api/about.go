package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/portfolio/backend/internal/models"
	"github.com/pageza/portfolio/backend/internal/service"
	"github.com/pageza/portfolio/backend/internal/types"
)

type AboutHandler struct {
	singletonHandler[models.About, types.UpdateAboutRequest]
}

func NewAboutHandler(svc service.SingletonService[models.About]) *AboutHandler {
	return &AboutHandler{singletonHandler[models.About, types.UpdateAboutRequest]{svc: svc}}
}

func (h *AboutHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/about", h.get)
	router.PUT("/about", h.update)
}

type SettingsHandler struct {
	singletonHandler[models.Settings, types.UpdateSettingsRequest]
}

func NewSettingsHandler(svc service.SingletonService[models.Settings]) *SettingsHandler {
	return &SettingsHandler{singletonHandler[models.Settings, types.UpdateSettingsRequest]{svc: svc}}
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/settings", h.get)
	router.PUT("/settings", h.update)
}
