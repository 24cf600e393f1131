package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/portfolio/backend/internal/models"
	"github.com/pageza/portfolio/backend/internal/service"
	"github.com/pageza/portfolio/backend/internal/types"
)

type ProfileHandler struct {
	singletonHandler[models.Profile, types.UpdateProfileRequest]
	images *service.ImageService
}

// NewProfileHandler creates a profile handler. images may be nil, in which
// case the upload route is not registered.
func NewProfileHandler(svc service.SingletonService[models.Profile], images *service.ImageService) *ProfileHandler {
	return &ProfileHandler{
		singletonHandler: singletonHandler[models.Profile, types.UpdateProfileRequest]{svc: svc},
		images:           images,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile", h.get)
	router.PUT("/profile", h.update)
	if h.images != nil {
		router.POST("/profile/image", h.UploadImage)
	}
}
