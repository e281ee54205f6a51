package models

// Movie represents one row of the movie-level export.
// Loaded once at startup and never mutated afterwards.
type Movie struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Genres   []string `json:"genres"`   // split from the comma-encoded genre column
	Duration int      `json:"duration"` // minutes
	Year     int      `json:"year"`
	Metadata float64  `json:"metadata"` // quality score, 0-100
}

// CastCredit is one row of the cast-exploded export: one (movie, actor) pair.
// Year/duration/metadata are inherited from the movie so joined queries
// never have to touch the movie table.
type CastCredit struct {
	MovieID  string  `json:"movie_id"`
	Title    string  `json:"title"`
	Actor    string  `json:"actor"`
	Year     int     `json:"year"`
	Duration int     `json:"duration"`
	Metadata float64 `json:"metadata"`
}

// GenreTag is one row of the genre-exploded export: one (movie, genre) pair.
type GenreTag struct {
	MovieID  string  `json:"movie_id"`
	Title    string  `json:"title"`
	Genre    string  `json:"genre"`
	Year     int     `json:"year"`
	Duration int     `json:"duration"`
	Metadata float64 `json:"metadata"`
}
