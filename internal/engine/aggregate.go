package engine

import "sort"

// Count is a (key, count) pair for bar and pie charts.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// KeyStat is a (key, mean) pair; the mean carries its own "no data" state.
type KeyStat struct {
	Key  string `json:"key"`
	Mean Stat   `json:"mean"`
}

// YearCount is a per-year count for trend lines.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// YearStat is a per-year mean for trend lines.
type YearStat struct {
	Year int  `json:"year"`
	Mean Stat `json:"mean"`
}

// Overview holds the KPI strip of the overview tab.
type Overview struct {
	TotalMovies   int  `json:"total_movies"`
	AvgDuration   Stat `json:"avg_duration"`
	AvgMetadata   Stat `json:"avg_metadata"`
	GenresCovered int  `json:"genres_covered"`
}

// KPIs computes the overview key metrics from the filtered view.
func (v *View) KPIs() Overview {
	durations := make([]float64, len(v.Movies))
	scores := make([]float64, len(v.Movies))
	for i, m := range v.Movies {
		durations[i] = float64(m.Duration)
		scores[i] = m.Metadata
	}

	covered := make(map[string]bool)
	for _, gt := range v.Genres {
		covered[gt.Genre] = true
	}

	return Overview{
		TotalMovies:   len(v.Movies),
		AvgDuration:   MeanOf(durations),
		AvgMetadata:   MeanOf(scores),
		GenresCovered: len(covered),
	}
}

// GenreCounts counts exploded genre rows per genre, most frequent first.
// Without a limit the counts sum to the size of the filtered genre table.
func (v *View) GenreCounts(limit int) []Count {
	counts := make(map[string]int)
	for _, gt := range v.Genres {
		counts[gt.Genre]++
	}
	return sortedCounts(counts, limit)
}

// ActorCounts counts exploded cast rows per actor, most frequent first.
func (v *View) ActorCounts(limit int) []Count {
	counts := make(map[string]int)
	for _, cc := range v.Cast {
		counts[cc.Actor]++
	}
	return sortedCounts(counts, limit)
}

// MeanMetadataByGenre averages the metadata score per genre, highest first.
func (v *View) MeanMetadataByGenre(limit int) []KeyStat {
	byKey := make(map[string][]float64)
	for _, gt := range v.Genres {
		byKey[gt.Genre] = append(byKey[gt.Genre], gt.Metadata)
	}
	return sortedMeans(byKey, limit)
}

// MeanMetadataByActor averages the metadata score per actor, highest first.
func (v *View) MeanMetadataByActor(limit int) []KeyStat {
	byKey := make(map[string][]float64)
	for _, cc := range v.Cast {
		byKey[cc.Actor] = append(byKey[cc.Actor], cc.Metadata)
	}
	return sortedMeans(byKey, limit)
}

// MoviesPerYear counts filtered movies per release year, in year order.
func (v *View) MoviesPerYear() []YearCount {
	counts := make(map[int]int)
	for _, m := range v.Movies {
		counts[m.Year]++
	}

	years := sortedYears(counts)
	out := make([]YearCount, 0, len(years))
	for _, y := range years {
		out = append(out, YearCount{Year: y, Count: counts[y]})
	}
	return out
}

// MeanDurationByYear averages movie duration per year, in year order.
func (v *View) MeanDurationByYear() []YearStat {
	byYear := make(map[int][]float64)
	for _, m := range v.Movies {
		byYear[m.Year] = append(byYear[m.Year], float64(m.Duration))
	}
	return yearMeans(byYear)
}

// MeanMetadataByYear averages the metadata score per year, in year order.
func (v *View) MeanMetadataByYear() []YearStat {
	byYear := make(map[int][]float64)
	for _, m := range v.Movies {
		byYear[m.Year] = append(byYear[m.Year], m.Metadata)
	}
	return yearMeans(byYear)
}

// GenreYearHeatmap builds the genre×year contingency count table.
// Rows are the topGenres most frequent genres (all when topGenres <= 0),
// columns are the distinct years of the filtered genre table, ascending.
func (v *View) GenreYearHeatmap(topGenres int) *Heatmap {
	top := v.GenreCounts(topGenres)
	genres := make([]string, len(top))
	genreRow := make(map[string]int, len(top))
	for i, c := range top {
		genres[i] = c.Key
		genreRow[c.Key] = i
	}

	yearSet := make(map[int]int)
	for _, gt := range v.Genres {
		if _, ok := genreRow[gt.Genre]; ok {
			yearSet[gt.Year] = 0
		}
	}
	years := sortedYears(yearSet)
	yearCol := make(map[int]int, len(years))
	for i, y := range years {
		yearCol[y] = i
	}

	values := make([][]float64, len(genres))
	for i := range values {
		values[i] = make([]float64, len(years))
	}
	for _, gt := range v.Genres {
		row, ok := genreRow[gt.Genre]
		if !ok {
			continue
		}
		values[row][yearCol[gt.Year]]++
	}

	return &Heatmap{
		Title:   "Genre popularity over years (count)",
		XLabels: yearLabels(years),
		YLabels: genres,
		Values:  values,
	}
}

// ActorYearSeries is one actor's appearance counts over the years.
type ActorYearSeries struct {
	Actor  string      `json:"actor"`
	Points []YearCount `json:"points"`
}

// ActorAppearances counts appearances per (year, actor) for the topActors
// most frequent actors in the filtered cast table.
func (v *View) ActorAppearances(topActors int) []ActorYearSeries {
	top := v.ActorCounts(topActors)
	wanted := make(map[string]bool, len(top))
	for _, c := range top {
		wanted[c.Key] = true
	}

	perActor := make(map[string]map[int]int)
	for _, cc := range v.Cast {
		if !wanted[cc.Actor] {
			continue
		}
		if perActor[cc.Actor] == nil {
			perActor[cc.Actor] = make(map[int]int)
		}
		perActor[cc.Actor][cc.Year]++
	}

	out := make([]ActorYearSeries, 0, len(top))
	for _, c := range top {
		byYear := perActor[c.Key]
		years := sortedYears(byYear)
		points := make([]YearCount, 0, len(years))
		for _, y := range years {
			points = append(points, YearCount{Year: y, Count: byYear[y]})
		}
		out = append(out, ActorYearSeries{Actor: c.Key, Points: points})
	}
	return out
}

// correlationFields fixes the label order of the correlation matrix.
var correlationFields = []string{"metadata", "duration", "year"}

// CorrelationMatrix computes the Pearson correlation matrix over the
// numeric movie fields. Undefined coefficients (empty view, single movie,
// zero variance) are nil — rendered as "no data", never NaN.
func (v *View) CorrelationMatrix() *Correlation {
	series := map[string][]float64{
		"metadata": make([]float64, len(v.Movies)),
		"duration": make([]float64, len(v.Movies)),
		"year":     make([]float64, len(v.Movies)),
	}
	for i, m := range v.Movies {
		series["metadata"][i] = m.Metadata
		series["duration"][i] = float64(m.Duration)
		series["year"][i] = float64(m.Year)
	}

	values := make([][]*float64, len(correlationFields))
	for i, a := range correlationFields {
		values[i] = make([]*float64, len(correlationFields))
		for j, b := range correlationFields {
			if r, ok := pearson(series[a], series[b]); ok {
				rounded := RoundTo2(r)
				values[i][j] = &rounded
			}
		}
	}

	return &Correlation{Labels: correlationFields, Values: values}
}

// BoxDurationByGenre summarizes duration per genre for the topN most
// frequent genres.
func (v *View) BoxDurationByGenre(topN int) []BoxGroup {
	return v.boxByGenre(topN, func(gt int) float64 { return float64(v.Genres[gt].Duration) })
}

// BoxMetadataByGenre summarizes the metadata score per genre for the topN
// most frequent genres.
func (v *View) BoxMetadataByGenre(topN int) []BoxGroup {
	return v.boxByGenre(topN, func(gt int) float64 { return v.Genres[gt].Metadata })
}

func (v *View) boxByGenre(topN int, value func(row int) float64) []BoxGroup {
	top := v.GenreCounts(topN)
	wanted := make(map[string]bool, len(top))
	for _, c := range top {
		wanted[c.Key] = true
	}

	byKey := make(map[string][]float64)
	for i, gt := range v.Genres {
		if wanted[gt.Genre] {
			byKey[gt.Genre] = append(byKey[gt.Genre], value(i))
		}
	}

	out := make([]BoxGroup, 0, len(top))
	for _, c := range top {
		out = append(out, BoxGroup{Key: c.Key, Box: NewBoxStats(byKey[c.Key])})
	}
	return out
}

// BoxMetadataByActor summarizes the metadata score per actor for the topN
// most frequent actors.
func (v *View) BoxMetadataByActor(topN int) []BoxGroup {
	top := v.ActorCounts(topN)
	wanted := make(map[string]bool, len(top))
	for _, c := range top {
		wanted[c.Key] = true
	}

	byKey := make(map[string][]float64)
	for _, cc := range v.Cast {
		if wanted[cc.Actor] {
			byKey[cc.Actor] = append(byKey[cc.Actor], cc.Metadata)
		}
	}

	out := make([]BoxGroup, 0, len(top))
	for _, c := range top {
		out = append(out, BoxGroup{Key: c.Key, Box: NewBoxStats(byKey[c.Key])})
	}
	return out
}

// ── sorting helpers ─────────────────────────────────────────────────────

// sortedCounts orders by count desc, key asc for determinism, then limits.
func sortedCounts(counts map[string]int, limit int) []Count {
	out := make([]Count, 0, len(counts))
	for k, n := range counts {
		out = append(out, Count{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sortedMeans(byKey map[string][]float64, limit int) []KeyStat {
	out := make([]KeyStat, 0, len(byKey))
	for k, vals := range byKey {
		out = append(out, KeyStat{Key: k, Mean: MeanOf(vals)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mean.Value != out[j].Mean.Value {
			return out[i].Mean.Value > out[j].Mean.Value
		}
		return out[i].Key < out[j].Key
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func yearMeans(byYear map[int][]float64) []YearStat {
	years := sortedYears(byYear)
	out := make([]YearStat, 0, len(years))
	for _, y := range years {
		out = append(out, YearStat{Year: y, Mean: MeanOf(byYear[y])})
	}
	return out
}

func sortedYears[V any](m map[int]V) []int {
	years := make([]int, 0, len(m))
	for y := range m {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
