package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhanu2006-24/imdb-analysis/internal/dataset"
	"github.com/bhanu2006-24/imdb-analysis/internal/engine"
)

// ScatterHandler serves the movie-level scatter plots.
type ScatterHandler struct {
	catalog *dataset.Catalog
}

func NewScatterHandler(cat *dataset.Catalog) *ScatterHandler {
	return &ScatterHandler{catalog: cat}
}

// GetScatter returns the three pairwise point clouds, each colored by the
// remaining numeric field.
func (h *ScatterHandler) GetScatter(c *gin.Context) {
	spec := parseFilterSpec(c, h.catalog)
	view := engine.Apply(h.catalog, spec)

	c.JSON(http.StatusOK, gin.H{
		"metadata_vs_duration": view.Scatter("Metadata vs Duration", "duration", "metadata", "year"),
		"metadata_vs_year":     view.Scatter("Metadata vs Year", "year", "metadata", "duration"),
		"duration_vs_year":     view.Scatter("Duration vs Year", "year", "duration", "metadata"),
	})
}
