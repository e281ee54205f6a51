package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhanu2006-24/imdb-analysis/internal/dataset"
	"github.com/bhanu2006-24/imdb-analysis/internal/engine"
)

// YearlyHandler serves the yearly-trends tab.
type YearlyHandler struct {
	catalog *dataset.Catalog
}

func NewYearlyHandler(cat *dataset.Catalog) *YearlyHandler {
	return &YearlyHandler{catalog: cat}
}

// GetYearlyTrends returns the movie-level per-year trend lines and the
// full genre×year heatmap.
func (h *YearlyHandler) GetYearlyTrends(c *gin.Context) {
	spec := parseFilterSpec(c, h.catalog)
	view := engine.Apply(h.catalog, spec)

	c.JSON(http.StatusOK, gin.H{
		"movies_per_year": engine.LineChart("Movies per year", "Year", "Count",
			[]engine.ChartSeries{{Name: "Count", Data: engine.YearCountPoints(view.MoviesPerYear())}}),
		"mean_duration": engine.LineChart("Average duration per year", "Year", "Duration",
			[]engine.ChartSeries{{Name: "Duration", Data: engine.YearStatPoints(view.MeanDurationByYear())}}),
		"mean_metadata": engine.LineChart("Average metadata per year", "Year", "Metadata",
			[]engine.ChartSeries{{Name: "Metadata", Data: engine.YearStatPoints(view.MeanMetadataByYear())}}),
		"heatmap": view.GenreYearHeatmap(0),
	})
}
