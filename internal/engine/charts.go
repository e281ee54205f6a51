package engine

import "strconv"

// Render-ready chart payloads. The frontend draws these without touching
// the raw tables again.

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// ChartConfig defines how to render a bar, pie, or line chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Heatmap is a labelled matrix (genre×year contingency counts).
type Heatmap struct {
	Title   string      `json:"title"`
	XLabels []string    `json:"xLabels"`
	YLabels []string    `json:"yLabels"`
	Values  [][]float64 `json:"values"`
}

// Correlation is an annotated correlation matrix. Undefined coefficients
// are null so the renderer shows "no data" instead of NaN.
type Correlation struct {
	Labels []string     `json:"labels"`
	Values [][]*float64 `json:"values"`
}

// BoxGroup is one labelled box in a box plot.
type BoxGroup struct {
	Key string   `json:"key"`
	Box BoxStats `json:"box"`
}

// BoxPlot is a set of five-number summaries sharing an axis.
type BoxPlot struct {
	Title  string     `json:"title"`
	XAxis  string     `json:"xAxis"`
	YAxis  string     `json:"yAxis"`
	Groups []BoxGroup `json:"groups"`
}

// ScatterPoint is one movie in a scatter plot; Color carries the third
// numeric dimension.
type ScatterPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color float64 `json:"color"`
	Label string  `json:"label"`
}

// ScatterPlot is a render-ready point cloud over the filtered movies.
type ScatterPlot struct {
	Title     string         `json:"title"`
	XAxis     string         `json:"xAxis"`
	YAxis     string         `json:"yAxis"`
	ColorAxis string         `json:"colorAxis"`
	Points    []ScatterPoint `json:"points"`
}

// BarChart builds a single-series bar chart.
func BarChart(title, xAxis, yAxis string, points []ChartPoint) *ChartConfig {
	return &ChartConfig{
		ChartType:  "bar",
		Title:      title,
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     []ChartSeries{{Name: yAxis, Data: points}},
		Colors:     assignColors(1),
		ShowLegend: true,
		ShowGrid:   true,
	}
}

// PieChart builds a pie chart from labelled values.
func PieChart(title string, points []ChartPoint) *ChartConfig {
	return &ChartConfig{
		ChartType:  "pie",
		Title:      title,
		Series:     []ChartSeries{{Name: title, Data: points}},
		Colors:     assignColors(len(points)),
		ShowLegend: true,
	}
}

// LineChart builds a multi-series line chart.
func LineChart(title, xAxis, yAxis string, series []ChartSeries) *ChartConfig {
	for i := range series {
		series[i].Color = defaultColors[i%len(defaultColors)]
	}
	return &ChartConfig{
		ChartType:  "line",
		Title:      title,
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
		Colors:     assignColors(len(series)),
		ShowLegend: true,
		ShowGrid:   true,
	}
}

// CountPoints converts counts to chart points.
func CountPoints(counts []Count) []ChartPoint {
	points := make([]ChartPoint, 0, len(counts))
	for _, c := range counts {
		points = append(points, ChartPoint{Label: c.Key, Value: float64(c.Count)})
	}
	return points
}

// StatPoints converts key means to chart points, skipping "no data" entries.
func StatPoints(stats []KeyStat) []ChartPoint {
	points := make([]ChartPoint, 0, len(stats))
	for _, s := range stats {
		if s.Mean.Valid() {
			points = append(points, ChartPoint{Label: s.Key, Value: RoundTo2(s.Mean.Value)})
		}
	}
	return points
}

// YearCountPoints converts per-year counts to chart points.
func YearCountPoints(counts []YearCount) []ChartPoint {
	points := make([]ChartPoint, 0, len(counts))
	for _, c := range counts {
		points = append(points, ChartPoint{Label: strconv.Itoa(c.Year), Value: float64(c.Count)})
	}
	return points
}

// YearStatPoints converts per-year means to chart points.
func YearStatPoints(stats []YearStat) []ChartPoint {
	points := make([]ChartPoint, 0, len(stats))
	for _, s := range stats {
		if s.Mean.Valid() {
			points = append(points, ChartPoint{Label: strconv.Itoa(s.Year), Value: RoundTo2(s.Mean.Value)})
		}
	}
	return points
}

// Scatter builds a point cloud from the filtered movies. x, y, and color
// name movie fields: "duration", "year", or "metadata".
func (v *View) Scatter(title, x, y, color string) *ScatterPlot {
	points := make([]ScatterPoint, 0, len(v.Movies))
	for _, m := range v.Movies {
		fields := map[string]float64{
			"duration": float64(m.Duration),
			"year":     float64(m.Year),
			"metadata": m.Metadata,
		}
		points = append(points, ScatterPoint{
			X:     fields[x],
			Y:     fields[y],
			Color: fields[color],
			Label: m.Title,
		})
	}
	return &ScatterPlot{Title: title, XAxis: x, YAxis: y, ColorAxis: color, Points: points}
}

func yearLabels(years []int) []string {
	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = strconv.Itoa(y)
	}
	return labels
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
