package dataset

import (
	"log"
	"sort"

	"github.com/bhanu2006-24/imdb-analysis/internal/models"
)

// Catalog holds the three loaded tables as process-wide read-only state,
// plus everything the sidebar needs: distinct filter values and the
// observed year/score ranges of the unfiltered movie table.
type Catalog struct {
	Movies []models.Movie
	Cast   []models.CastCredit
	Genres []models.GenreTag

	YearMin, YearMax   int
	ScoreMin, ScoreMax float64

	GenreValues []string // distinct, sorted
	ActorValues []string // distinct, sorted

	byID map[string]int
}

// NewCatalog validates referential integrity, backfills inherited numeric
// fields on exploded rows from their movie, and computes observed ranges.
// Exploded rows referencing an unknown movie are dropped (and counted) so
// the invariant "every exploded row has a movie" holds downstream.
func NewCatalog(movies []models.Movie, cast []models.CastCredit, genres []models.GenreTag) *Catalog {
	c := &Catalog{
		Movies: movies,
		byID:   make(map[string]int, len(movies)),
	}
	for i, m := range movies {
		if _, dup := c.byID[m.ID]; !dup {
			c.byID[m.ID] = i
		}
	}

	droppedCast := 0
	c.Cast = make([]models.CastCredit, 0, len(cast))
	for _, cc := range cast {
		i, ok := c.byID[cc.MovieID]
		if !ok {
			droppedCast++
			continue
		}
		backfillCredit(&cc, movies[i])
		c.Cast = append(c.Cast, cc)
	}

	droppedGenres := 0
	c.Genres = make([]models.GenreTag, 0, len(genres))
	for _, gt := range genres {
		i, ok := c.byID[gt.MovieID]
		if !ok {
			droppedGenres++
			continue
		}
		backfillTag(&gt, movies[i])
		c.Genres = append(c.Genres, gt)
	}

	if droppedCast > 0 || droppedGenres > 0 {
		log.Printf("⚠️ Dropped orphan exploded rows: %d cast, %d genre (no matching movie)",
			droppedCast, droppedGenres)
	}

	c.computeRanges()
	c.GenreValues = distinctGenres(c.Genres)
	c.ActorValues = distinctActors(c.Cast)
	return c
}

// MovieByID looks up a movie by its identifier.
func (c *Catalog) MovieByID(id string) (models.Movie, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Movie{}, false
	}
	return c.Movies[i], true
}

func (c *Catalog) computeRanges() {
	for i, m := range c.Movies {
		if i == 0 {
			c.YearMin, c.YearMax = m.Year, m.Year
			c.ScoreMin, c.ScoreMax = m.Metadata, m.Metadata
			continue
		}
		if m.Year < c.YearMin {
			c.YearMin = m.Year
		}
		if m.Year > c.YearMax {
			c.YearMax = m.Year
		}
		if m.Metadata < c.ScoreMin {
			c.ScoreMin = m.Metadata
		}
		if m.Metadata > c.ScoreMax {
			c.ScoreMax = m.Metadata
		}
	}
}

func distinctGenres(tags []models.GenreTag) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range tags {
		if t.Genre != "" && !seen[t.Genre] {
			seen[t.Genre] = true
			out = append(out, t.Genre)
		}
	}
	sort.Strings(out)
	return out
}

func distinctActors(credits []models.CastCredit) []string {
	seen := make(map[string]bool)
	var out []string
	for _, cc := range credits {
		if cc.Actor != "" && !seen[cc.Actor] {
			seen[cc.Actor] = true
			out = append(out, cc.Actor)
		}
	}
	sort.Strings(out)
	return out
}

// backfillCredit fills inherited fields the export did not carry.
func backfillCredit(cc *models.CastCredit, m models.Movie) {
	if cc.Title == "" {
		cc.Title = m.Title
	}
	if cc.Year == 0 {
		cc.Year = m.Year
	}
	if cc.Duration == 0 {
		cc.Duration = m.Duration
	}
	if cc.Metadata == 0 {
		cc.Metadata = m.Metadata
	}
}

func backfillTag(gt *models.GenreTag, m models.Movie) {
	if gt.Title == "" {
		gt.Title = m.Title
	}
	if gt.Year == 0 {
		gt.Year = m.Year
	}
	if gt.Duration == 0 {
		gt.Duration = m.Duration
	}
	if gt.Metadata == 0 {
		gt.Metadata = m.Metadata
	}
}
