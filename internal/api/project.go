package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pageza/portfolio/backend/internal/models"
	"github.com/pageza/portfolio/backend/internal/service"
	"github.com/pageza/portfolio/backend/internal/store"
	"github.com/pageza/portfolio/backend/internal/types"
)

type ProjectHandler struct {
	collectionHandler[models.Project, types.UpdateProjectRequest]
}

func NewProjectHandler(svc service.CollectionService[models.Project]) *ProjectHandler {
	return &ProjectHandler{collectionHandler[models.Project, types.UpdateProjectRequest]{name: "Project", svc: svc}}
}

func (h *ProjectHandler) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.GET("/:id", h.get)
		projects.PUT("/:id", h.update)
		projects.DELETE("/:id", h.delete)
	}
}

// ListProjects lists projects by order, optionally only featured ones.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	opts := service.ListOptions{}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, service.NewValidationError("featured", "must be a boolean"))
			return
		}
		opts.Filter = store.Fields{"featured": featured}
	}

	limit, err := parseLimit(c)
	if err != nil {
		respondError(c, err)
		return
	}
	opts.Limit = limit

	h.list(c, opts)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req types.CreateProjectRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	h.create(c, req.Project())
}
