package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bhanu2006-24/imdb-analysis/internal/dataset"
	"github.com/bhanu2006-24/imdb-analysis/internal/engine"
)

// parseFilterSpec rebuilds the FilterSpec from query parameters on every
// request. Absent range bounds default to the observed min/max of the
// unfiltered dataset; absent selections mean "no restriction".
func parseFilterSpec(c *gin.Context, cat *dataset.Catalog) engine.FilterSpec {
	spec := engine.DefaultSpec(cat)

	spec.Genres = multiValues(c, "genre")
	spec.Cast = multiValues(c, "cast")

	if v, err := strconv.Atoi(c.Query("year_min")); err == nil {
		spec.YearMin = v
	}
	if v, err := strconv.Atoi(c.Query("year_max")); err == nil {
		spec.YearMax = v
	}
	if v, err := strconv.ParseFloat(c.Query("score_min"), 64); err == nil {
		spec.ScoreMin = v
	}
	if v, err := strconv.ParseFloat(c.Query("score_max"), 64); err == nil {
		spec.ScoreMax = v
	}

	return spec
}

// multiValues collects a repeatable query parameter, also accepting
// comma-separated values within a single occurrence.
func multiValues(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
