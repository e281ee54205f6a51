package engine

import (
	"encoding/json"
	"testing"
)

func TestMeanOfEmptyIsNoData(t *testing.T) {
	s := MeanOf(nil)
	if s.Valid() {
		t.Fatal("mean over empty set must be invalid")
	}

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `{"value":null,"n":0}` {
		t.Errorf("Marshal() = %s; want null value, never NaN", b)
	}
}

func TestStatMarshalRounds(t *testing.T) {
	b, err := json.Marshal(Stat{Value: 80.666, N: 3})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `{"value":80.67,"n":3}` {
		t.Errorf("Marshal() = %s; want rounded value with n", b)
	}
}

func TestCountsSumToExplodedSizes(t *testing.T) {
	cat := testCatalog()
	view := Apply(cat, DefaultSpec(cat))

	sum := 0
	for _, c := range view.GenreCounts(0) {
		sum += c.Count
	}
	if sum != len(view.Genres) {
		t.Errorf("genre counts sum = %d; want %d", sum, len(view.Genres))
	}

	sum = 0
	for _, c := range view.ActorCounts(0) {
		sum += c.Count
	}
	if sum != len(view.Cast) {
		t.Errorf("actor counts sum = %d; want %d", sum, len(view.Cast))
	}
}

func TestGenreCountsOrderAndLimit(t *testing.T) {
	cat := testCatalog()
	view := Apply(cat, DefaultSpec(cat))

	counts := view.GenreCounts(0)
	// Action appears twice, Drama and Sci-Fi once each (ties break by name)
	want := []Count{{"Action", 2}, {"Drama", 1}, {"Sci-Fi", 1}}
	if len(counts) != len(want) {
		t.Fatalf("GenreCounts = %v; want %v", counts, want)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("GenreCounts[%d] = %v; want %v", i, counts[i], want[i])
		}
	}

	if limited := view.GenreCounts(1); len(limited) != 1 || limited[0].Key != "Action" {
		t.Errorf("GenreCounts(1) = %v; want just Action", limited)
	}
}

func TestMeanMetadataByGenre(t *testing.T) {
	cat := testCatalog()
	view := Apply(cat, DefaultSpec(cat))

	stats := view.MeanMetadataByGenre(0)
	byKey := make(map[string]Stat, len(stats))
	for _, s := range stats {
		byKey[s.Key] = s.Mean
	}

	// Action rows inherit M2 (70) and M3 (90)
	if got := byKey["Action"]; !got.Valid() || got.Value != 80 {
		t.Errorf("mean metadata for Action = %+v; want 80", got)
	}
	if got := byKey["Drama"]; !got.Valid() || got.Value != 50 {
		t.Errorf("mean metadata for Drama = %+v; want 50", got)
	}
}

func TestYearlyAggregates(t *testing.T) {
	cat := testCatalog()
	view := Apply(cat, DefaultSpec(cat))

	perYear := view.MoviesPerYear()
	if len(perYear) != 3 || perYear[0].Year != 2000 || perYear[2].Year != 2020 {
		t.Fatalf("MoviesPerYear = %v; want ascending years 2000..2020", perYear)
	}
	for _, yc := range perYear {
		if yc.Count != 1 {
			t.Errorf("count for %d = %d; want 1", yc.Year, yc.Count)
		}
	}

	durations := view.MeanDurationByYear()
	if durations[1].Year != 2010 || durations[1].Mean.Value != 120 {
		t.Errorf("mean duration 2010 = %+v; want 120", durations[1])
	}
}

func TestGenreYearHeatmap(t *testing.T) {
	cat := testCatalog()
	view := Apply(cat, DefaultSpec(cat))

	hm := view.GenreYearHeatmap(0)

	if len(hm.YLabels) != 3 || hm.YLabels[0] != "Action" {
		t.Fatalf("heatmap genres = %v; want Action first", hm.YLabels)
	}
	if len(hm.XLabels) != 3 || hm.XLabels[0] != "2000" {
		t.Fatalf("heatmap years = %v; want [2000 2010 2020]", hm.XLabels)
	}

	// Action row: 0 in 2000, 1 in 2010, 1 in 2020
	if hm.Values[0][0] != 0 || hm.Values[0][1] != 1 || hm.Values[0][2] != 1 {
		t.Errorf("Action row = %v; want [0 1 1]", hm.Values[0])
	}
}

func TestActorAppearances(t *testing.T) {
	cat := testCatalog()
	view := Apply(cat, DefaultSpec(cat))

	series := view.ActorAppearances(15)
	if len(series) != 3 || series[0].Actor != "Alice" {
		t.Fatalf("ActorAppearances = %+v; want Alice first (2 credits)", series)
	}
	if len(series[0].Points) != 2 {
		t.Errorf("Alice points = %v; want one per year (2000, 2010)", series[0].Points)
	}
}

func TestCorrelationPerfectlyLinear(t *testing.T) {
	// The fixture's duration, year, and metadata are all linear in each
	// other, so every defined coefficient is exactly 1.
	cat := testCatalog()
	view := Apply(cat, DefaultSpec(cat))

	corr := view.CorrelationMatrix()
	if len(corr.Labels) != 3 {
		t.Fatalf("labels = %v; want 3 fields", corr.Labels)
	}
	for i, row := range corr.Values {
		for j, cell := range row {
			if cell == nil {
				t.Fatalf("corr[%d][%d] undefined; want 1", i, j)
			}
			if *cell != 1 {
				t.Errorf("corr[%d][%d] = %v; want 1", i, j, *cell)
			}
		}
	}
}

func TestCorrelationUndefinedOnSingleMovie(t *testing.T) {
	cat := testCatalog()
	spec := DefaultSpec(cat)
	spec.YearMin, spec.YearMax = 2010, 2010

	corr := Apply(cat, spec).CorrelationMatrix()
	for _, row := range corr.Values {
		for _, cell := range row {
			if cell != nil {
				t.Fatal("correlation of a single movie must be null, not NaN")
			}
		}
	}
}

func TestBoxStatsQuartiles(t *testing.T) {
	box := NewBoxStats([]float64{1, 2, 3, 4})

	if box.Min != 1 || box.Max != 4 || box.N != 4 {
		t.Errorf("box = %+v; want min 1, max 4, n 4", box)
	}
	if box.Median != 2.5 {
		t.Errorf("median = %v; want 2.5", box.Median)
	}
	if box.Q1 != 1.75 || box.Q3 != 3.25 {
		t.Errorf("quartiles = %v/%v; want 1.75/3.25", box.Q1, box.Q3)
	}
}

func TestBoxStatsEmpty(t *testing.T) {
	if box := NewBoxStats(nil); box.N != 0 {
		t.Errorf("empty box = %+v; want n 0", box)
	}
}

func TestStatPointsSkipNoData(t *testing.T) {
	points := StatPoints([]KeyStat{
		{Key: "A", Mean: Stat{Value: 5, N: 1}},
		{Key: "B", Mean: Stat{}},
	})
	if len(points) != 1 || points[0].Label != "A" {
		t.Errorf("StatPoints = %v; want only the valid entry", points)
	}
}
