package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhanu2006-24/imdb-analysis/internal/dataset"
	"github.com/bhanu2006-24/imdb-analysis/internal/engine"
)

// CastHandler serves the cast-analysis tab.
type CastHandler struct {
	catalog *dataset.Catalog
}

func NewCastHandler(cat *dataset.Catalog) *CastHandler {
	return &CastHandler{catalog: cat}
}

// GetCastAnalysis returns counts, score means, box summaries, and the
// per-actor appearance trend over the filtered cast table.
func (h *CastHandler) GetCastAnalysis(c *gin.Context) {
	spec := parseFilterSpec(c, h.catalog)
	view := engine.Apply(h.catalog, spec)

	series := make([]engine.ChartSeries, 0, 15)
	for _, s := range view.ActorAppearances(15) {
		series = append(series, engine.ChartSeries{
			Name: s.Actor,
			Data: engine.YearCountPoints(s.Points),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"counts": engine.BarChart("Top actors by count", "Actor", "Count",
			engine.CountPoints(view.ActorCounts(20))),
		"mean_metadata": engine.BarChart("Average metadata by actor (top 20)", "Actor", "Average",
			engine.StatPoints(view.MeanMetadataByActor(20))),
		"metadata_box": engine.BoxPlot{
			Title:  "Metadata distribution by actor (top 15)",
			XAxis:  "Actor",
			YAxis:  "Metadata",
			Groups: view.BoxMetadataByActor(15),
		},
		"appearances": engine.LineChart("Actor appearances over years (top 15)", "Year", "Appearances", series),
	})
}
