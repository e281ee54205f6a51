package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bhanu2006-24/imdb-analysis/internal/dataset"
	"github.com/bhanu2006-24/imdb-analysis/internal/engine"
)

// MovieHandler serves the raw-data tab and the CSV download.
type MovieHandler struct {
	catalog *dataset.Catalog
}

func NewMovieHandler(cat *dataset.Catalog) *MovieHandler {
	return &MovieHandler{catalog: cat}
}

// GetMovies returns a paginated slice of the filtered movie table.
func (h *MovieHandler) GetMovies(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if limit > 200 {
		limit = 200 // Hard cap to protect the server
	}
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	spec := parseFilterSpec(c, h.catalog)
	view := engine.Apply(h.catalog, spec)

	total := len(view.Movies)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"movies": view.Movies[offset:end],
	})
}

// ExportMovies streams the filtered movie table as a CSV attachment.
func (h *MovieHandler) ExportMovies(c *gin.Context) {
	spec := parseFilterSpec(c, h.catalog)
	view := engine.Apply(h.catalog, spec)

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="imdb_filtered.csv"`)
	c.Status(http.StatusOK)

	if err := engine.ExportMovies(c.Writer, view.Movies); err != nil {
		// Headers are gone already; just record it
		log.Printf("⚠️ CSV export aborted: %v", err)
		c.Error(err)
	}
}
