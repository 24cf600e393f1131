package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/portfolio/backend/internal/middleware"
	"github.com/pageza/portfolio/backend/internal/models"
	"github.com/pageza/portfolio/backend/internal/service"
	"github.com/pageza/portfolio/backend/internal/store"
	"github.com/pageza/portfolio/backend/internal/types"
)

type ContactHandler struct {
	collectionHandler[models.Contact, types.UpdateContactRequest]
	limiter *middleware.RateLimiter
}

// NewContactHandler creates a contact handler. A nil limiter leaves
// submissions unlimited.
func NewContactHandler(svc service.CollectionService[models.Contact], limiter *middleware.RateLimiter) *ContactHandler {
	return &ContactHandler{
		collectionHandler: collectionHandler[models.Contact, types.UpdateContactRequest]{name: "Contact", svc: svc},
		limiter:           limiter,
	}
}

func (h *ContactHandler) RegisterRoutes(router *gin.RouterGroup) {
	contact := router.Group("/contact")
	{
		contact.POST("", h.limiter.RateLimitMiddleware(), h.CreateContact)
		contact.GET("", h.ListContacts)
		contact.PUT("/:id", h.update)
	}
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req types.CreateContactRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	h.create(c, req.Contact())
}

// ListContacts lists messages newest first, optionally by status.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	opts := service.ListOptions{}
	if status := c.Query("status"); status != "" {
		switch status {
		case models.ContactStatusNew, models.ContactStatusRead, models.ContactStatusReplied:
			opts.Filter = store.Fields{"status": status}
		default:
			respondError(c, service.NewValidationError("status", "must be one of: new, read, replied"))
			return
		}
	}

	limit, err := parseLimit(c)
	if err != nil {
		respondError(c, err)
		return
	}
	opts.Limit = limit

	h.list(c, opts)
}
