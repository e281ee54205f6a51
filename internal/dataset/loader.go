package dataset

import (
	"fmt"
	"io"
	"strings"

	"github.com/bhanu2006-24/imdb-analysis/internal/config"
	"github.com/bhanu2006-24/imdb-analysis/internal/models"
	"github.com/bhanu2006-24/imdb-analysis/internal/storage"
)

// Load reads the three exports through the storage provider and builds the
// process-wide catalog. Any missing or malformed file is an error; the
// caller treats it as fatal and never starts serving.
func Load(p storage.Provider, cfg *config.Config) (*Catalog, error) {
	movies, err := loadWith(p, cfg.Data.MoviesFile, ParseMovies)
	if err != nil {
		return nil, fmt.Errorf("movie export: %w", err)
	}
	cast, err := loadWith(p, cfg.Data.CastFile, ParseCast)
	if err != nil {
		return nil, fmt.Errorf("cast export: %w", err)
	}
	genres, err := loadWith(p, cfg.Data.GenreFile, ParseGenres)
	if err != nil {
		return nil, fmt.Errorf("genre export: %w", err)
	}

	return NewCatalog(movies, cast, genres), nil
}

func loadWith[T any](p storage.Provider, name string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	rc, err := p.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return parse(rc)
}

// ParseMovies parses the movie-level export.
// Genres are split from the comma-encoded genre column; metadata, duration
// and year are coerced to numbers with median imputation.
func ParseMovies(r io.Reader) ([]models.Movie, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if !t.has("title") {
		return nil, fmt.Errorf("missing required column %q", "title")
	}

	genreCol := ""
	for _, c := range []string{"genre", "genres"} {
		if t.has(c) {
			genreCol = c
			break
		}
	}

	durations := t.numericColumn("duration")
	years := t.numericColumn("year")
	scores := t.numericColumn("metadata")

	movies := make([]models.Movie, 0, len(t.rows))
	for i := range t.rows {
		m := models.Movie{
			ID:       movieID(t, i),
			Title:    t.cell(i, "title"),
			Duration: int(durations[i]),
			Year:     int(years[i]),
			Metadata: scores[i],
		}
		if genreCol != "" {
			m.Genres = splitGenres(t.cell(i, genreCol))
		}
		movies = append(movies, m)
	}
	return movies, nil
}

// ParseCast parses the cast-exploded export: one row per (movie, actor).
func ParseCast(r io.Reader) ([]models.CastCredit, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if !t.has("cast") {
		return nil, fmt.Errorf("missing required column %q", "cast")
	}
	if !t.has("title") && !t.has("id") {
		return nil, fmt.Errorf("missing movie reference column (%q or %q)", "id", "title")
	}

	durations := t.numericColumn("duration")
	years := t.numericColumn("year")
	scores := t.numericColumn("metadata")

	credits := make([]models.CastCredit, 0, len(t.rows))
	for i := range t.rows {
		credits = append(credits, models.CastCredit{
			MovieID:  movieID(t, i),
			Title:    t.cell(i, "title"),
			Actor:    t.cell(i, "cast"),
			Duration: int(durations[i]),
			Year:     int(years[i]),
			Metadata: scores[i],
		})
	}
	return credits, nil
}

// ParseGenres parses the genre-exploded export: one row per (movie, genre).
func ParseGenres(r io.Reader) ([]models.GenreTag, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if !t.has("genre") {
		return nil, fmt.Errorf("missing required column %q", "genre")
	}
	if !t.has("title") && !t.has("id") {
		return nil, fmt.Errorf("missing movie reference column (%q or %q)", "id", "title")
	}

	durations := t.numericColumn("duration")
	years := t.numericColumn("year")
	scores := t.numericColumn("metadata")

	tags := make([]models.GenreTag, 0, len(t.rows))
	for i := range t.rows {
		tags = append(tags, models.GenreTag{
			MovieID:  movieID(t, i),
			Title:    t.cell(i, "title"),
			Genre:    t.cell(i, "genre"),
			Duration: int(durations[i]),
			Year:     int(years[i]),
			Metadata: scores[i],
		})
	}
	return tags, nil
}

// movieID prefers an explicit id column; older exports only carry the title,
// which the original dashboard used as the join key.
func movieID(t *rawTable, row int) string {
	if id := t.cell(row, "id"); id != "" {
		return id
	}
	return t.cell(row, "title")
}

func splitGenres(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}
