package engine

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/bhanu2006-24/imdb-analysis/internal/models"
)

// exportHeader is the verbatim Movie column set, matching the input exports
// so a downloaded file re-parses to the same table.
var exportHeader = []string{"id", "title", "genre", "duration", "year", "metadata"}

// ExportMovies serializes a filtered movie table to CSV. Pure
// serialization: no filtering, no side effects beyond the write.
func ExportMovies(w io.Writer, movies []models.Movie) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, m := range movies {
		row := []string{
			m.ID,
			m.Title,
			strings.Join(m.Genres, ", "),
			strconv.Itoa(m.Duration),
			strconv.Itoa(m.Year),
			strconv.FormatFloat(m.Metadata, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
