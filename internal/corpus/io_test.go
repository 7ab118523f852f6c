package corpus

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDataset_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "train.jsonl")
	records := []Record{
		{Text: "hello there", Label: 0, Source: SourceSTM},
		{Text: "general essay", Label: 5, Source: SourceWI},
	}
	if err := WriteDataset(path, records); err != nil {
		t.Fatalf("WriteDataset: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open dataset: %v", err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	got := make([]Record, 0, len(records))
	for scanner.Scan() {
		var record Record
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			t.Fatalf("parse row: %v", err)
		}
		got = append(got, record)
	}
	if len(got) != len(records) {
		t.Fatalf("rows = %d, want %d", len(got), len(records))
	}
	for i := range records {
		if got[i] != records[i] {
			t.Fatalf("row %d = %+v, want %+v", i, got[i], records[i])
		}
	}
}

func TestReadRows_StringifiesScalars(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rows.jsonl")
	content := `{"text": "hello", "cefr_level": 3, "flag": true}` + "\n" +
		"\n" +
		`{"text": "world", "cefr_level": "B2"}` + "\n"
	writeFile(t, path, content)

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (blank line skipped)", len(rows))
	}
	if rows[0]["cefr_level"] != "3" {
		t.Fatalf("numeric level = %q, want \"3\"", rows[0]["cefr_level"])
	}
	if rows[0]["flag"] != "true" {
		t.Fatalf("bool = %q, want \"true\"", rows[0]["flag"])
	}
	if rows[1]["cefr_level"] != "B2" {
		t.Fatalf("string level = %q, want B2", rows[1]["cefr_level"])
	}
}

func TestReadRows_MalformedLineFailsDataset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rows.jsonl")
	writeFile(t, path, `{"text": "ok"}`+"\nnot json\n")

	if _, err := ReadRows(path); err == nil {
		t.Fatal("expected error for malformed row")
	}
}

func TestReadReport_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.json")
	report := Report{
		DatasetVersion: "v1",
		Seed:           42,
		TrainRecords:   10,
		EvalRecords:    2,
		LabelCounts:    map[string]int{"B1": 10},
		SourceCounts:   map[string]int{SourceSTM: 10},
	}
	if err := WriteJSON(path, report); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadReport(path)
	if err != nil {
		t.Fatalf("ReadReport: %v", err)
	}
	if got.DatasetVersion != "v1" || got.TrainRecords != 10 || got.LabelCounts["B1"] != 10 {
		t.Fatalf("report = %+v, want round-tripped values", got)
	}
}
