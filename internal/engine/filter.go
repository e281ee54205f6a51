package engine

import (
	"strings"

	"github.com/bhanu2006-24/imdb-analysis/internal/dataset"
	"github.com/bhanu2006-24/imdb-analysis/internal/models"
)

// FilterSpec is the transient description of the active sidebar filters.
// It is rebuilt from request parameters on every interaction and never stored.
type FilterSpec struct {
	Genres   []string `json:"genres"`
	Cast     []string `json:"cast"`
	YearMin  int      `json:"year_min"`
	YearMax  int      `json:"year_max"`
	ScoreMin float64  `json:"score_min"`
	ScoreMax float64  `json:"score_max"`
}

// DefaultSpec returns a FilterSpec that passes everything: no selections,
// ranges set to the observed min/max of the unfiltered movie table.
func DefaultSpec(c *dataset.Catalog) FilterSpec {
	return FilterSpec{
		YearMin:  c.YearMin,
		YearMax:  c.YearMax,
		ScoreMin: c.ScoreMin,
		ScoreMax: c.ScoreMax,
	}
}

// View is the filtered slice of the catalog every aggregate is computed from.
type View struct {
	Movies []models.Movie
	Cast   []models.CastCredit
	Genres []models.GenreTag
}

// Apply filters the catalog down to a View.
//
// An empty genre or cast selection means "no restriction", never "exclude
// all" — the whole dashboard inverts if that rule changes. Selections within
// a control are OR-combined; the controls and the two ranges AND together.
// A movie passes a selection if at least one of its exploded rows matches.
func Apply(c *dataset.Catalog, spec FilterSpec) *View {
	genreSet := toLowerSet(spec.Genres)
	castSet := toLowerSet(spec.Cast)

	// Resolve selections to movie-id sets via the exploded tables
	var genreIDs, castIDs map[string]bool
	if len(genreSet) > 0 {
		genreIDs = make(map[string]bool)
		for _, gt := range c.Genres {
			if genreSet[strings.ToLower(gt.Genre)] {
				genreIDs[gt.MovieID] = true
			}
		}
	}
	if len(castSet) > 0 {
		castIDs = make(map[string]bool)
		for _, cc := range c.Cast {
			if castSet[strings.ToLower(cc.Actor)] {
				castIDs[cc.MovieID] = true
			}
		}
	}

	// Single pass over the movie table
	kept := make(map[string]bool, len(c.Movies))
	v := &View{Movies: make([]models.Movie, 0, len(c.Movies))}
	for _, m := range c.Movies {
		if m.Year < spec.YearMin || m.Year > spec.YearMax {
			continue
		}
		if m.Metadata < spec.ScoreMin || m.Metadata > spec.ScoreMax {
			continue
		}
		if genreIDs != nil && !genreIDs[m.ID] {
			continue
		}
		if castIDs != nil && !castIDs[m.ID] {
			continue
		}
		v.Movies = append(v.Movies, m)
		kept[m.ID] = true
	}

	// Restrict the exploded tables to the retained movies
	v.Cast = make([]models.CastCredit, 0, len(c.Cast))
	for _, cc := range c.Cast {
		if kept[cc.MovieID] {
			v.Cast = append(v.Cast, cc)
		}
	}
	v.Genres = make([]models.GenreTag, 0, len(c.Genres))
	for _, gt := range c.Genres {
		if kept[gt.MovieID] {
			v.Genres = append(v.Genres, gt)
		}
	}

	return v
}

// toLowerSet converts a selection to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			set[strings.ToLower(item)] = true
		}
	}
	return set
}
