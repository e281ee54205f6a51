package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhanu2006-24/imdb-analysis/internal/dataset"
)

// FilterHandler serves the sidebar options: the distinct filter values and
// the observed ranges the sliders start from.
type FilterHandler struct {
	catalog *dataset.Catalog
}

func NewFilterHandler(cat *dataset.Catalog) *FilterHandler {
	return &FilterHandler{catalog: cat}
}

// GetFilters returns everything the filter UI needs to build its controls.
func (h *FilterHandler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"genres": h.catalog.GenreValues,
		"cast":   h.catalog.ActorValues,
		"year_range": gin.H{
			"min": h.catalog.YearMin,
			"max": h.catalog.YearMax,
		},
		"score_range": gin.H{
			"min": h.catalog.ScoreMin,
			"max": h.catalog.ScoreMax,
		},
	})
}
