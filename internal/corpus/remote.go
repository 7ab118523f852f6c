package corpus

import (
	"strconv"
	"strings"

	"github.com/gobwas/glob"

	"github.com/rgilks/speako/internal/cefr"
	"github.com/rgilks/speako/internal/log"
)

// Row is one row of an externally hosted dataset, keyed by column name.
// The adapter is agnostic to how rows were fetched.
type Row map[string]string

// RemoteStats counts the rows a dataset adaptation skipped, by reason.
type RemoteStats struct {
	Rows          int
	Records       int
	WrongLanguage int
	EmptyText     int
	BadLevel      int
	TooShort      int
}

// Skipped returns the total number of rows that produced no record.
func (s RemoteStats) Skipped() int {
	return s.WrongLanguage + s.EmptyText + s.BadLevel + s.TooShort
}

// AdaptDataset normalizes the rows of one remote dataset into records
// tagged with the dataset's name.
//
// Levels are accepted either as small integers addressing the
// vocabulary directly or as level strings with optional modifier
// suffixes; out-of-range integers and unmapped strings are counted and
// dropped. When the spec names a language column, rows carrying a
// different language tag are dropped. Text shorter than the chunk
// minimum is dropped, text longer than the maximum is chunked, and
// anything in between is kept as a single record.
func AdaptDataset(spec DatasetSpec, rows []Row, bounds ChunkBounds) ([]Record, RemoteStats) {
	records := make([]Record, 0, len(rows))
	var stats RemoteStats

	for _, row := range rows {
		stats.Rows++

		if spec.LanguageColumn != "" {
			if lang, ok := row[spec.LanguageColumn]; ok && lang != spec.Language {
				stats.WrongLanguage++
				continue
			}
		}

		text := strings.TrimSpace(row[spec.TextColumn])
		if text == "" {
			stats.EmptyText++
			continue
		}
		label, ok := parseLevelValue(row[spec.LevelColumn])
		if !ok {
			stats.BadLevel++
			continue
		}

		words := countWords(text)
		switch {
		case words < bounds.MinWords:
			stats.TooShort++
		case words > bounds.MaxWords:
			for _, chunk := range ChunkText(text, bounds) {
				records = append(records, Record{Text: chunk, Label: label, Source: spec.Name})
			}
		default:
			records = append(records, Record{Text: text, Label: label, Source: spec.Name})
		}
	}

	stats.Records = len(records)
	return records, stats
}

// parseLevelValue handles both numeric and string level encodings.
func parseLevelValue(raw string) (int, bool) {
	value := strings.TrimSpace(raw)
	if id, err := strconv.Atoi(value); err == nil {
		if id < 0 || id >= cefr.NumLevels {
			return 0, false
		}
		return id, true
	}
	return cefr.LevelToID(value)
}

// CollectRemote loads and adapts every admitted remote dataset. Each
// dataset is attempted independently: a failing source is logged and
// skipped so the others still contribute.
func CollectRemote(cfg RemoteConfig, bounds ChunkBounds, logger *log.Logger) ([]Record, map[string]RemoteStats, []string) {
	admit, err := compileAllowPatterns(cfg.Allow)
	if err != nil {
		logger.Printf("remote: invalid allow pattern: %v", err)
		return nil, nil, nil
	}

	records := make([]Record, 0)
	statsByName := make(map[string]RemoteStats, len(cfg.Datasets))
	failed := make([]string, 0)

	for _, spec := range cfg.Datasets {
		if !admit(spec.Name) {
			logger.Printf("remote: dataset %s not allowlisted, skipping", spec.Name)
			continue
		}
		rows, err := ReadRows(spec.Path)
		if err != nil {
			logger.Printf("remote: dataset %s unavailable: %v", spec.Name, err)
			failed = append(failed, spec.Name)
			continue
		}
		adapted, stats := AdaptDataset(spec, rows, bounds)
		logger.Printf("remote: dataset %s yielded %d records (%d rows skipped)", spec.Name, stats.Records, stats.Skipped())
		records = append(records, adapted...)
		statsByName[spec.Name] = stats
	}
	return records, statsByName, failed
}

// compileAllowPatterns builds a matcher over dataset names. An empty
// pattern list admits everything.
func compileAllowPatterns(patterns []string) (func(string) bool, error) {
	if len(patterns) == 0 {
		return func(string) bool { return true }, nil
	}
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, g)
	}
	return func(name string) bool {
		for _, g := range compiled {
			if g.Match(name) {
				return true
			}
		}
		return false
	}, nil
}
