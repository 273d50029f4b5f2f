package api

import (
	"errors"
	"net/http"

	"alcyxob/adaptive-coach/internal/catalog"
	"alcyxob/adaptive-coach/internal/engine"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only exercise library and template listing.
type CatalogHandler struct {
	cat       catalog.Catalog
	templates *engine.TemplateRepository
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cat catalog.Catalog, templates *engine.TemplateRepository) *CatalogHandler {
	return &CatalogHandler{cat: cat, templates: templates}
}

// ListExercises returns the whole exercise library.
func (h *CatalogHandler) ListExercises(c *gin.Context) {
	c.JSON(http.StatusOK, h.cat.All())
}

// GetExercise returns one exercise by id.
func (h *CatalogHandler) GetExercise(c *gin.Context) {
	ex, err := h.cat.Get(c.Param("exerciseId"))
	if err != nil {
		if errors.Is(err, catalog.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load exercise")
		return
	}
	c.JSON(http.StatusOK, ex)
}

// ListTemplates returns the training templates available for selection.
func (h *CatalogHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.templates.All())
}
