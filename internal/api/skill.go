package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/portfolio/backend/internal/models"
	"github.com/pageza/portfolio/backend/internal/service"
	"github.com/pageza/portfolio/backend/internal/types"
)

type SkillHandler struct {
	collectionHandler[models.Skill, types.UpdateSkillRequest]
}

func NewSkillHandler(svc service.CollectionService[models.Skill]) *SkillHandler {
	return &SkillHandler{collectionHandler[models.Skill, types.UpdateSkillRequest]{name: "Skill", svc: svc}}
}

func (h *SkillHandler) RegisterRoutes(router *gin.RouterGroup) {
	skills := router.Group("/skills")
	{
		skills.GET("", h.ListSkills)
		skills.POST("", h.CreateSkill)
		skills.GET("/:id", h.get)
		skills.PUT("/:id", h.update)
		skills.DELETE("/:id", h.delete)
	}
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		respondError(c, err)
		return
	}
	h.list(c, service.ListOptions{Limit: limit})
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req types.CreateSkillRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	h.create(c, req.Skill())
}
