package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhanu2006-24/imdb-analysis/internal/dataset"
	"github.com/bhanu2006-24/imdb-analysis/internal/engine"
)

// CorrelationHandler serves the correlation-heatmap tab.
type CorrelationHandler struct {
	catalog *dataset.Catalog
}

func NewCorrelationHandler(cat *dataset.Catalog) *CorrelationHandler {
	return &CorrelationHandler{catalog: cat}
}

// GetCorrelation returns the Pearson matrix over duration, year, and
// metadata of the filtered movies.
func (h *CorrelationHandler) GetCorrelation(c *gin.Context) {
	spec := parseFilterSpec(c, h.catalog)
	view := engine.Apply(h.catalog, spec)

	c.JSON(http.StatusOK, gin.H{
		"title":       "Correlation heatmap",
		"correlation": view.CorrelationMatrix(),
	})
}
