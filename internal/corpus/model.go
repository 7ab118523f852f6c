// Package corpus normalizes heterogeneous CEFR-labeled text sources into
// one training-ready collection. Parsers turn raw speech transcripts,
// essay tables, and remote dataset rows into Records; the assembler
// balances, augments, and shuffles them for the external trainer.
package corpus

// Source tags for the two local record sources. Remote datasets are
// tagged with their configured dataset name.
const (
	SourceSTM = "stm"
	SourceWI  = "wi"
)

// Record is one labeled training example. Records are never mutated
// after creation; transformations produce new records.
type Record struct {
	Text   string `json:"text"`
	Label  int    `json:"label"`
	Source string `json:"source"`
}

// ChunkBounds holds the word-count limits for text chunking.
type ChunkBounds struct {
	MinWords int `yaml:"min_words" json:"min_words"`
	MaxWords int `yaml:"max_words" json:"max_words"`
}

// Sources holds the parsed records per origin before assembly. STMEval
// is the held-out validation portion and is never touched by training
// transforms.
type Sources struct {
	STMTrain []Record
	STMEval  []Record
	WI       []Record
	Remote   []Record
}

// LoadStats aggregates per-source skip counters and source-level
// failures for observability. Skips are counted, never raised.
type LoadStats struct {
	SkippedBySource map[string]int
	FailedSources   []string
}

// Assembly is the output of the assembler: the training corpus plus the
// untouched held-out evaluation set.
type Assembly struct {
	Train []Record
	Eval  []Record
}

// WordStats summarizes the word-count distribution of a record set.
type WordStats struct {
	MinWords int     `json:"min_words"`
	MaxWords int     `json:"max_words"`
	AvgWords float64 `json:"avg_words"`
}

// Report captures the shape of one assembled corpus so dataset versions
// can be compared between training runs.
type Report struct {
	DatasetVersion  string         `json:"dataset_version"`
	Seed            int64          `json:"seed"`
	TrainRecords    int            `json:"train_records"`
	EvalRecords     int            `json:"eval_records"`
	LabelCounts     map[string]int `json:"label_counts"`
	SourceCounts    map[string]int `json:"source_counts"`
	Words           WordStats      `json:"words"`
	SkippedBySource map[string]int `json:"skipped_by_source,omitempty"`
	FailedSources   []string       `json:"failed_sources,omitempty"`
}

// DriftReport summarizes corpus drift between two build reports.
type DriftReport struct {
	BaselineVersion  string         `json:"baseline_version"`
	CandidateVersion string         `json:"candidate_version"`
	TrainDelta       int            `json:"train_delta"`
	EvalDelta        int            `json:"eval_delta"`
	LabelDeltas      map[string]int `json:"label_deltas"`
	SourceDeltas     map[string]int `json:"source_deltas"`
}
