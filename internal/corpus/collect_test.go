package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const stmTrainContent = `;; training split
<o,Q1,A2,P1> i like to play football with my friends
<o,Q2,B1,P1> yesterday i went to the market and bought some fruit
<o,Q3,X9,P1> this line has no usable level
`

const stmEvalContent = `<o,Q4,B2,P1> the economic situation has improved considerably this year
`

func writeSTMFixture(t *testing.T, root string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(root, "stms"), 0o755); err != nil {
		t.Fatalf("mkdir stms: %v", err)
	}
	writeFile(t, filepath.Join(root, "stms", "train-asr.stm"), stmTrainContent)
	writeFile(t, filepath.Join(root, "stms", "eval-asr.stm"), stmEvalContent)
}

func TestLoadSources_AllSources(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSTMFixture(t, root)

	wiPath := filepath.Join(root, "wi.tsv")
	writeFile(t, wiPath, "text\tautomarker_cefr_level\n"+
		"one two three four five six seven eight\tB1+\n"+
		"this row carries a level outside the vocabulary\tZ9\n")

	remotePath := filepath.Join(root, "uni.jsonl")
	writeFile(t, remotePath, `{"text": "one two three four five six", "cefr_level": 4, "language": "en"}`+"\n"+
		`{"text": "uno dos tres cuatro cinco seis", "cefr_level": 4, "language": "es"}`+"\n")

	cfg := BuildConfig{
		Seed:  42,
		Chunk: ChunkBounds{MinWords: 5, MaxWords: 50},
		STM: STMConfig{
			Enabled:       true,
			Root:          root,
			TrainPatterns: []string{"**/train-asr.stm"},
			EvalPatterns:  []string{"**/eval-asr.stm"},
			Oversample:    1,
		},
		WI: WIConfig{
			Enabled:     true,
			Path:        wiPath,
			TextColumn:  "text",
			LevelColumn: "automarker_cefr_level",
		},
		Remote: RemoteConfig{
			Enabled: true,
			Datasets: []DatasetSpec{{
				Name:           "uni",
				Path:           remotePath,
				TextColumn:     "text",
				LevelColumn:    "cefr_level",
				LanguageColumn: "language",
				Language:       "en",
			}},
		},
	}

	src, stats := LoadSources(cfg, nil)
	if len(src.STMTrain) != 2 {
		t.Fatalf("STMTrain = %d, want 2", len(src.STMTrain))
	}
	if len(src.STMEval) != 1 {
		t.Fatalf("STMEval = %d, want 1", len(src.STMEval))
	}
	if len(src.WI) != 1 {
		t.Fatalf("WI = %d, want 1 (unmapped level dropped)", len(src.WI))
	}
	if len(src.Remote) != 1 {
		t.Fatalf("Remote = %d, want 1 (spanish row dropped)", len(src.Remote))
	}
	if stats.SkippedBySource[SourceSTM] != 1 {
		t.Fatalf("stm skips = %d, want 1", stats.SkippedBySource[SourceSTM])
	}
	if stats.SkippedBySource[SourceWI] != 1 {
		t.Fatalf("wi skips = %d, want 1", stats.SkippedBySource[SourceWI])
	}
	if stats.SkippedBySource["uni"] != 1 {
		t.Fatalf("uni skips = %d, want 1", stats.SkippedBySource["uni"])
	}
	if len(stats.FailedSources) != 0 {
		t.Fatalf("FailedSources = %v, want none", stats.FailedSources)
	}
}

func TestLoadSources_MissingSourcesAreNotFatal(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cfg := BuildConfig{
		Chunk: ChunkBounds{MinWords: 5, MaxWords: 50},
		STM: STMConfig{
			Enabled:       true,
			Root:          filepath.Join(root, "absent"),
			TrainPatterns: []string{"**/train-asr.stm"},
			EvalPatterns:  []string{"**/eval-asr.stm"},
			Oversample:    1,
		},
		WI: WIConfig{
			Enabled:     true,
			Path:        filepath.Join(root, "absent.tsv"),
			TextColumn:  "text",
			LevelColumn: "automarker_cefr_level",
		},
	}

	src, stats := LoadSources(cfg, nil)
	if len(src.STMTrain) != 0 || len(src.WI) != 0 {
		t.Fatal("expected zero records from missing sources")
	}
	if len(stats.FailedSources) != 2 {
		t.Fatalf("FailedSources = %v, want stm and wi", stats.FailedSources)
	}
	if !strings.Contains(strings.Join(stats.FailedSources, ","), SourceSTM) {
		t.Fatalf("FailedSources = %v, want to include stm", stats.FailedSources)
	}
}
