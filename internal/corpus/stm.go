package corpus

import (
	"regexp"
	"strings"

	"github.com/rgilks/speako/internal/cefr"
)

// metadataGroup matches the first bracketed metadata group on an STM
// line, e.g. "<o,Q4,B2,P1>".
var metadataGroup = regexp.MustCompile(`<[^>]+>`)

// STMStats counts the lines an STM parse skipped, by reason. Malformed
// and unlabeled lines are expected in real transcript files.
type STMStats struct {
	Lines      int
	Records    int
	Comments   int
	NoMetadata int
	NoText     int
	NoLabel    int
}

// Skipped returns the total number of non-comment lines that produced
// no record.
func (s STMStats) Skipped() int {
	return s.NoMetadata + s.NoText + s.NoLabel
}

// ParseSTM extracts labeled records from the content of a speech
// transcript file.
//
// Each non-blank line that does not start with ";;" is expected to
// carry a bracketed, comma-separated metadata group followed by the
// transcript text. One of the metadata fields is the CEFR level; its
// position is not fixed, so every field is scanned and the first
// recognized level token wins. Lines that cannot be labeled are
// counted and dropped, never raised.
func ParseSTM(content string) ([]Record, STMStats) {
	records := make([]Record, 0)
	var stats STMStats

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		stats.Lines++
		if strings.HasPrefix(line, ";;") {
			stats.Comments++
			continue
		}

		loc := metadataGroup.FindStringIndex(line)
		if loc == nil {
			stats.NoMetadata++
			continue
		}

		// Everything after the first group is transcript text, kept
		// verbatim even if it contains further < > characters.
		text := strings.TrimSpace(line[loc[1]:])
		if text == "" {
			stats.NoText++
			continue
		}

		label, ok := scanLevelField(line[loc[0]+1 : loc[1]-1])
		if !ok {
			stats.NoLabel++
			continue
		}

		records = append(records, Record{Text: text, Label: label, Source: SourceSTM})
	}

	stats.Records = len(records)
	return records, stats
}

// scanLevelField returns the class id of the first comma-separated
// field that is a recognized level token, including the legacy "C".
func scanLevelField(interior string) (int, bool) {
	for _, field := range strings.Split(interior, ",") {
		if id, ok := cefr.LevelToID(field); ok {
			return id, true
		}
	}
	return 0, false
}
