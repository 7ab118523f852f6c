// Package train defines the boundary to the external model trainer.
// Everything downstream of the assembled corpus (tokenization, model
// fitting, metric export) lives behind the Trainer interface and is out
// of scope for this repository.
package train

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rgilks/speako/internal/corpus"
)

// Metrics is the evaluation result an external trainer returns.
type Metrics struct {
	Accuracy  float64 `json:"accuracy"`
	F1        float64 `json:"f1"`
	OutputDir string  `json:"output_dir,omitempty"`
}

// Trainer consumes an assembled corpus and returns evaluation metrics
// plus the location of the produced model artifact.
type Trainer interface {
	Train(ctx context.Context, asm corpus.Assembly) (Metrics, error)
}

// Handoff exports an assembled corpus to the directory layout external
// trainers expect: train.jsonl and eval.jsonl of (text, label, source)
// rows. A trainer that runs out of process reads these files and may
// leave a metrics.json behind.
type Handoff struct {
	Dir string
}

// Export writes the dataset files and returns their paths.
func (h Handoff) Export(asm corpus.Assembly) (trainPath string, evalPath string, err error) {
	trainPath = filepath.Join(h.Dir, "train.jsonl")
	evalPath = filepath.Join(h.Dir, "eval.jsonl")

	if err := corpus.WriteDataset(trainPath, asm.Train); err != nil {
		return "", "", fmt.Errorf("export training set: %w", err)
	}
	if err := corpus.WriteDataset(evalPath, asm.Eval); err != nil {
		return "", "", fmt.Errorf("export eval set: %w", err)
	}
	return trainPath, evalPath, nil
}

// ReadMetrics reads a metrics.json left by an out-of-process trainer.
func ReadMetrics(path string) (Metrics, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Metrics{}, fmt.Errorf("read metrics: %w", err)
	}
	var metrics Metrics
	if err := json.Unmarshal(content, &metrics); err != nil {
		return Metrics{}, fmt.Errorf("parse metrics json: %w", err)
	}
	return metrics, nil
}
