package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhanu2006-24/imdb-analysis/internal/dataset"
	"github.com/bhanu2006-24/imdb-analysis/internal/engine"
)

// OverviewHandler serves the KPI strip and the top genre/actor charts.
type OverviewHandler struct {
	catalog *dataset.Catalog
}

func NewOverviewHandler(cat *dataset.Catalog) *OverviewHandler {
	return &OverviewHandler{catalog: cat}
}

// GetOverview recomputes the overview tab for the current filters.
func (h *OverviewHandler) GetOverview(c *gin.Context) {
	spec := parseFilterSpec(c, h.catalog)
	view := engine.Apply(h.catalog, spec)

	topGenres := view.GenreCounts(15)
	topActors := view.ActorCounts(15)

	c.JSON(http.StatusOK, gin.H{
		"filtered_movies": len(view.Movies),
		"kpis":            view.KPIs(),
		"charts": gin.H{
			"top_genres":         engine.BarChart("Top genres (filtered)", "Genre", "Count", engine.CountPoints(topGenres)),
			"genre_distribution": engine.PieChart("Genre distribution", engine.CountPoints(topGenres)),
			"top_actors":         engine.BarChart("Top actors (filtered)", "Actor", "Count", engine.CountPoints(topActors)),
			"cast_distribution":  engine.PieChart("Cast distribution", engine.CountPoints(topActors)),
		},
	})
}
