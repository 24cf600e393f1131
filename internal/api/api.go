package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/portfolio/backend/internal/middleware"
	"github.com/pageza/portfolio/backend/internal/service"
)

// Handlers groups every resource handler under /api.
type Handlers struct {
	Profile  *ProfileHandler
	Projects *ProjectHandler
	Skills   *SkillHandler
	About    *AboutHandler
	Contacts *ContactHandler
	Settings *SettingsHandler
}

// NewHandlers builds the handlers. images and limiter are optional.
func NewHandlers(svc *service.Services, images *service.ImageService, limiter *middleware.RateLimiter) *Handlers {
	useJSONFieldNames()
	return &Handlers{
		Profile:  NewProfileHandler(svc.Profile, images),
		Projects: NewProjectHandler(svc.Projects),
		Skills:   NewSkillHandler(svc.Skills),
		About:    NewAboutHandler(svc.About),
		Contacts: NewContactHandler(svc.Contacts, limiter),
		Settings: NewSettingsHandler(svc.Settings),
	}
}

// RegisterRoutes registers all API routes
func (h *Handlers) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", Root)
	h.Profile.RegisterRoutes(router)
	h.Projects.RegisterRoutes(router)
	h.Skills.RegisterRoutes(router)
	h.About.RegisterRoutes(router)
	h.Contacts.RegisterRoutes(router)
	h.Settings.RegisterRoutes(router)
}
