package corpus

import (
	"github.com/rgilks/speako/internal/cefr"
)

// NewReport summarizes an assembled corpus: per-label and per-source
// counts over the training set, word-length distribution, and the skip
// counters accumulated while loading sources.
func NewReport(cfg BuildConfig, asm Assembly, stats LoadStats) Report {
	labelCounts := make(map[string]int, cefr.NumLevels)
	sourceCounts := make(map[string]int)
	var words WordStats

	for i, record := range asm.Train {
		if level, ok := cefr.IDToLevel(record.Label); ok {
			labelCounts[string(level)]++
		}
		sourceCounts[record.Source]++

		n := countWords(record.Text)
		if i == 0 || n < words.MinWords {
			words.MinWords = n
		}
		if n > words.MaxWords {
			words.MaxWords = n
		}
		words.AvgWords += float64(n)
	}
	if len(asm.Train) > 0 {
		words.AvgWords /= float64(len(asm.Train))
	}

	return Report{
		DatasetVersion:  cfg.DatasetVersion,
		Seed:            cfg.Seed,
		TrainRecords:    len(asm.Train),
		EvalRecords:     len(asm.Eval),
		LabelCounts:     labelCounts,
		SourceCounts:    sourceCounts,
		Words:           words,
		SkippedBySource: stats.SkippedBySource,
		FailedSources:   stats.FailedSources,
	}
}

// CompareReports diffs two corpus reports so dataset versions can be
// compared between training runs.
func CompareReports(baseline Report, candidate Report) DriftReport {
	return DriftReport{
		BaselineVersion:  baseline.DatasetVersion,
		CandidateVersion: candidate.DatasetVersion,
		TrainDelta:       candidate.TrainRecords - baseline.TrainRecords,
		EvalDelta:        candidate.EvalRecords - baseline.EvalRecords,
		LabelDeltas:      countDeltas(baseline.LabelCounts, candidate.LabelCounts),
		SourceDeltas:     countDeltas(baseline.SourceCounts, candidate.SourceCounts),
	}
}

func countDeltas(baseline map[string]int, candidate map[string]int) map[string]int {
	deltas := make(map[string]int)
	for key, count := range baseline {
		deltas[key] = -count
	}
	for key, count := range candidate {
		deltas[key] += count
	}
	for key, delta := range deltas {
		if delta == 0 {
			delete(deltas, key)
		}
	}
	return deltas
}
