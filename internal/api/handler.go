// Package api holds the gin handlers for the portfolio API.
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pageza/portfolio/backend/internal/service"
)

// singletonHandler serves GET and PUT for a resource with one document.
// U is the update request type.
type singletonHandler[T any, U any] struct {
	svc service.SingletonService[T]
}

func (h singletonHandler[T, U]) get(c *gin.Context) {
	doc, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h singletonHandler[T, U]) update(c *gin.Context) {
	var req U
	patch, err := bindPatch(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	doc, err := h.svc.Update(c.Request.Context(), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// collectionHandler serves get, update and delete by id. Create and list
// differ per resource and live on the concrete handlers.
type collectionHandler[T any, U any] struct {
	name string
	svc  service.CollectionService[T]
}

func (h collectionHandler[T, U]) get(c *gin.Context) {
	doc, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h collectionHandler[T, U]) update(c *gin.Context) {
	var req U
	patch, err := bindPatch(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	doc, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h collectionHandler[T, U]) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.name + " deleted successfully"})
}

func (h collectionHandler[T, U]) create(c *gin.Context, doc *T) {
	created, err := h.svc.Create(c.Request.Context(), doc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h collectionHandler[T, U]) list(c *gin.Context, opts service.ListOptions) {
	docs, err := h.svc.List(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// parseLimit reads the optional limit query parameter. Zero means no limit.
func parseLimit(c *gin.Context) (int, error) {
	raw, ok := c.GetQuery("limit")
	if !ok || raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, service.NewValidationError("limit", "must be a non-negative integer")
	}
	return limit, nil
}
