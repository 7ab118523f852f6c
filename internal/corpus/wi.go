package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rgilks/speako/internal/cefr"
)

// WIColumns names the required columns of a written-corpus table.
type WIColumns struct {
	Text  string
	Level string
}

// WIStats counts the rows a written-corpus parse skipped, by reason.
type WIStats struct {
	Rows          int
	Records       int
	BadRows       int
	EmptyText     int
	UnmappedLevel int
}

// Skipped returns the total number of rows that produced no record.
func (s WIStats) Skipped() int {
	return s.BadRows + s.EmptyText + s.UnmappedLevel
}

// ParseWI extracts labeled records from a tab-separated essay corpus.
//
// The first row is a header naming at least the text and level columns.
// Level values may carry "+" or "-" modifier suffixes. Each essay is
// passed through ChunkText and one record is emitted per chunk, all
// sharing the row's label. Rows with missing fields, blank text, or an
// unmapped level are counted and dropped; only an unreadable header is
// an error, in which case the caller skips the whole source.
func ParseWI(r io.Reader, cols WIColumns, bounds ChunkBounds) ([]Record, WIStats, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, WIStats{}, fmt.Errorf("read corpus header: %w", err)
	}
	textIdx, levelIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case cols.Text:
			textIdx = i
		case cols.Level:
			levelIdx = i
		}
	}
	if textIdx < 0 {
		return nil, WIStats{}, fmt.Errorf("corpus is missing column %q", cols.Text)
	}
	if levelIdx < 0 {
		return nil, WIStats{}, fmt.Errorf("corpus is missing column %q", cols.Level)
	}

	records := make([]Record, 0)
	var stats WIStats
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed rows are tolerated, matching the majority
			// behavior across the source variants.
			stats.Rows++
			stats.BadRows++
			continue
		}
		stats.Rows++

		if textIdx >= len(row) || levelIdx >= len(row) {
			stats.BadRows++
			continue
		}
		text := strings.TrimSpace(row[textIdx])
		if text == "" {
			stats.EmptyText++
			continue
		}
		label, ok := cefr.LevelToID(row[levelIdx])
		if !ok {
			stats.UnmappedLevel++
			continue
		}

		for _, chunk := range ChunkText(text, bounds) {
			records = append(records, Record{Text: chunk, Label: label, Source: SourceWI})
		}
	}

	stats.Records = len(records)
	return records, stats, nil
}
