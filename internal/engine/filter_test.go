package engine

import (
	"testing"

	"github.com/bhanu2006-24/imdb-analysis/internal/dataset"
	"github.com/bhanu2006-24/imdb-analysis/internal/models"
)

// testCatalog builds the 3-movie fixture used across the engine tests:
// years 2000/2010/2020, scores 50/70/90.
func testCatalog() *dataset.Catalog {
	movies := []models.Movie{
		{ID: "M1", Title: "M1", Genres: []string{"Drama"}, Duration: 90, Year: 2000, Metadata: 50},
		{ID: "M2", Title: "M2", Genres: []string{"Action"}, Duration: 120, Year: 2010, Metadata: 70},
		{ID: "M3", Title: "M3", Genres: []string{"Action", "Sci-Fi"}, Duration: 150, Year: 2020, Metadata: 90},
	}
	cast := []models.CastCredit{
		{MovieID: "M1", Actor: "Alice"},
		{MovieID: "M2", Actor: "Alice"},
		{MovieID: "M2", Actor: "Bob"},
		{MovieID: "M3", Actor: "Carol"},
	}
	genres := []models.GenreTag{
		{MovieID: "M1", Genre: "Drama"},
		{MovieID: "M2", Genre: "Action"},
		{MovieID: "M3", Genre: "Action"},
		{MovieID: "M3", Genre: "Sci-Fi"},
	}
	return dataset.NewCatalog(movies, cast, genres)
}

func movieIDs(v *View) []string {
	ids := make([]string, len(v.Movies))
	for i, m := range v.Movies {
		ids[i] = m.ID
	}
	return ids
}

func TestApplyEmptySelectionsPassThrough(t *testing.T) {
	cat := testCatalog()
	view := Apply(cat, DefaultSpec(cat))

	if len(view.Movies) != 3 {
		t.Errorf("filtered movies = %v; want all 3", movieIDs(view))
	}
	if len(view.Cast) != 4 {
		t.Errorf("filtered cast rows = %d; want 4", len(view.Cast))
	}
	if len(view.Genres) != 4 {
		t.Errorf("filtered genre rows = %d; want 4", len(view.Genres))
	}
}

func TestApplyYearRangeScenario(t *testing.T) {
	cat := testCatalog()
	spec := DefaultSpec(cat)
	spec.YearMin, spec.YearMax = 2005, 2020

	view := Apply(cat, spec)

	if got := movieIDs(view); len(got) != 2 || got[0] != "M2" || got[1] != "M3" {
		t.Fatalf("filtered movies = %v; want [M2 M3]", got)
	}
	if mean := view.KPIs().AvgMetadata; !mean.Valid() || mean.Value != 80 {
		t.Errorf("mean score = %+v; want 80", mean)
	}
}

func TestApplyScoreRange(t *testing.T) {
	cat := testCatalog()
	spec := DefaultSpec(cat)
	spec.ScoreMin = 60

	view := Apply(cat, spec)
	if got := movieIDs(view); len(got) != 2 || got[0] != "M2" || got[1] != "M3" {
		t.Errorf("filtered movies = %v; want [M2 M3]", got)
	}
}

func TestApplyGenreSelectionIsCaseInsensitive(t *testing.T) {
	cat := testCatalog()
	spec := DefaultSpec(cat)
	spec.Genres = []string{"action"}

	view := Apply(cat, spec)
	if got := movieIDs(view); len(got) != 2 || got[0] != "M2" || got[1] != "M3" {
		t.Errorf("filtered movies = %v; want [M2 M3]", got)
	}
}

func TestApplyCastSelection(t *testing.T) {
	cat := testCatalog()
	spec := DefaultSpec(cat)
	spec.Cast = []string{"Alice"}

	view := Apply(cat, spec)
	if got := movieIDs(view); len(got) != 2 || got[0] != "M1" || got[1] != "M2" {
		t.Errorf("filtered movies = %v; want [M1 M2]", got)
	}
}

func TestApplySelectionsCombineWithAnd(t *testing.T) {
	cat := testCatalog()
	spec := DefaultSpec(cat)
	spec.Genres = []string{"Action"}
	spec.Cast = []string{"Alice"}

	view := Apply(cat, spec)
	if got := movieIDs(view); len(got) != 1 || got[0] != "M2" {
		t.Errorf("filtered movies = %v; want [M2]", got)
	}
}

func TestApplyUnknownActorYieldsEmptyNoData(t *testing.T) {
	cat := testCatalog()
	spec := DefaultSpec(cat)
	spec.Cast = []string{"Nobody"}

	view := Apply(cat, spec)

	if len(view.Movies) != 0 || len(view.Cast) != 0 || len(view.Genres) != 0 {
		t.Fatalf("expected empty view, got %d/%d/%d rows",
			len(view.Movies), len(view.Cast), len(view.Genres))
	}

	kpis := view.KPIs()
	if kpis.TotalMovies != 0 || kpis.AvgMetadata.Valid() || kpis.AvgDuration.Valid() {
		t.Errorf("KPIs over empty view = %+v; want zero counts and no-data means", kpis)
	}
	if counts := view.GenreCounts(0); len(counts) != 0 {
		t.Errorf("GenreCounts = %v; want empty", counts)
	}
	for _, row := range view.CorrelationMatrix().Values {
		for _, cell := range row {
			if cell != nil {
				t.Fatal("correlation over empty view must be all null")
			}
		}
	}
	if hm := view.GenreYearHeatmap(0); len(hm.YLabels) != 0 {
		t.Errorf("heatmap rows = %v; want none", hm.YLabels)
	}
}

func TestApplyReferentialConsistency(t *testing.T) {
	cat := testCatalog()
	spec := DefaultSpec(cat)
	spec.Genres = []string{"Action"}

	view := Apply(cat, spec)

	kept := make(map[string]bool)
	for _, m := range view.Movies {
		kept[m.ID] = true
	}

	for _, cc := range view.Cast {
		if !kept[cc.MovieID] {
			t.Errorf("cast row for %q not in filtered movies", cc.MovieID)
		}
	}
	for _, gt := range view.Genres {
		if !kept[gt.MovieID] {
			t.Errorf("genre row for %q not in filtered movies", gt.MovieID)
		}
	}

	// With a genre filter applied, every retained movie must have at least
	// one matching genre row
	matched := make(map[string]bool)
	for _, gt := range view.Genres {
		if gt.Genre == "Action" {
			matched[gt.MovieID] = true
		}
	}
	for _, m := range view.Movies {
		if !matched[m.ID] {
			t.Errorf("movie %q retained without a matching genre row", m.ID)
		}
	}
}
