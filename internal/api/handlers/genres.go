package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhanu2006-24/imdb-analysis/internal/dataset"
	"github.com/bhanu2006-24/imdb-analysis/internal/engine"
)

// GenreHandler serves the genre-analysis tab.
type GenreHandler struct {
	catalog *dataset.Catalog
}

func NewGenreHandler(cat *dataset.Catalog) *GenreHandler {
	return &GenreHandler{catalog: cat}
}

// GetGenreAnalysis returns counts, score means, box summaries, and the
// genre×year heatmap over the filtered genre table.
func (h *GenreHandler) GetGenreAnalysis(c *gin.Context) {
	spec := parseFilterSpec(c, h.catalog)
	view := engine.Apply(h.catalog, spec)

	c.JSON(http.StatusOK, gin.H{
		"counts": engine.BarChart("Top genres by count", "Genre", "Count",
			engine.CountPoints(view.GenreCounts(20))),
		"mean_metadata": engine.BarChart("Average metadata by genre (top 20)", "Genre", "Average",
			engine.StatPoints(view.MeanMetadataByGenre(20))),
		"duration_box": engine.BoxPlot{
			Title:  "Duration distribution by genre (top 12)",
			XAxis:  "Genre",
			YAxis:  "Duration",
			Groups: view.BoxDurationByGenre(12),
		},
		"metadata_box": engine.BoxPlot{
			Title:  "Metadata distribution by genre (top 12)",
			XAxis:  "Genre",
			YAxis:  "Metadata",
			Groups: view.BoxMetadataByGenre(12),
		},
		"heatmap": view.GenreYearHeatmap(12),
	})
}
