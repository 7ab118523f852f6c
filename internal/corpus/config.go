package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultSeed       = 42
	defaultMinWords   = 5
	defaultMaxWords   = 50
	defaultOversample = 4
	defaultNoiseRate  = 0.2
)

var defaultSTMTrainPatterns = []string{"**/train-asr.stm", "**/dev-asr.stm"}

var defaultSTMEvalPatterns = []string{"**/eval-asr.stm"}

// STMConfig configures the speech-transcript source. Train and eval
// patterns are doublestar globs resolved under Root; eval files are the
// held-out validation split.
type STMConfig struct {
	Enabled       bool     `yaml:"enabled"`
	Root          string   `yaml:"root"`
	TrainPatterns []string `yaml:"train_patterns"`
	EvalPatterns  []string `yaml:"eval_patterns"`
	Oversample    int      `yaml:"oversample"`
}

// WIConfig configures the written-essay corpus source. ValidationOnly
// keeps the source out of training data entirely, for sources whose
// license does not extend to redistributed models.
type WIConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Path           string `yaml:"path"`
	TextColumn     string `yaml:"text_column"`
	LevelColumn    string `yaml:"level_column"`
	ValidationOnly bool   `yaml:"validation_only"`
}

// DatasetSpec describes one externally hosted labeled dataset. Rows are
// loaded from Path as JSONL; column names map the dataset's own schema
// onto text, level, and optional language fields.
type DatasetSpec struct {
	Name           string `yaml:"name"`
	Path           string `yaml:"path"`
	TextColumn     string `yaml:"text_column"`
	LevelColumn    string `yaml:"level_column"`
	LanguageColumn string `yaml:"language_column"`
	Language       string `yaml:"language"`
}

// RemoteConfig configures the remote-dataset source. Allow holds glob
// patterns matched against dataset names; empty means all configured
// datasets are admitted.
type RemoteConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Allow    []string      `yaml:"allow"`
	Datasets []DatasetSpec `yaml:"datasets"`
}

// NoiseConfig controls the ASR-noise augmentation pass over training
// records. Rate is the per-record probability that augmentation runs.
type NoiseConfig struct {
	Enabled bool    `yaml:"enabled"`
	Rate    float64 `yaml:"rate"`
}

// BuildConfig controls the corpus assembly pipeline.
type BuildConfig struct {
	DatasetVersion string       `yaml:"dataset_version"`
	Seed           int64        `yaml:"seed"`
	Chunk          ChunkBounds  `yaml:"chunk"`
	MaxSamples     int          `yaml:"max_samples"`
	Noise          NoiseConfig  `yaml:"noise"`
	STM            STMConfig    `yaml:"stm"`
	WI             WIConfig     `yaml:"wi"`
	Remote         RemoteConfig `yaml:"remote"`
}

// LoadConfig loads a build config from YAML and validates it.
func LoadConfig(path string) (BuildConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return BuildConfig{}, fmt.Errorf("read config: %w", err)
	}

	var cfg BuildConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return BuildConfig{}, fmt.Errorf("parse config yaml: %w", err)
	}

	cfg.applyDefaults(filepath.Dir(path))
	if err := cfg.validate(); err != nil {
		return BuildConfig{}, err
	}
	return cfg, nil
}

func (cfg *BuildConfig) applyDefaults(configDir string) {
	if cfg.DatasetVersion == "" {
		cfg.DatasetVersion = "v0"
	}
	if cfg.Seed == 0 {
		cfg.Seed = defaultSeed
	}
	if cfg.Chunk.MinWords == 0 {
		cfg.Chunk.MinWords = defaultMinWords
	}
	if cfg.Chunk.MaxWords == 0 {
		cfg.Chunk.MaxWords = defaultMaxWords
	}
	if cfg.Noise.Enabled && cfg.Noise.Rate == 0 {
		cfg.Noise.Rate = defaultNoiseRate
	}

	if cfg.STM.Root == "" {
		cfg.STM.Root = "."
	}
	if !filepath.IsAbs(cfg.STM.Root) {
		cfg.STM.Root = filepath.Join(configDir, cfg.STM.Root)
	}
	if len(cfg.STM.TrainPatterns) == 0 {
		cfg.STM.TrainPatterns = defaultSTMTrainPatterns
	}
	if len(cfg.STM.EvalPatterns) == 0 {
		cfg.STM.EvalPatterns = defaultSTMEvalPatterns
	}
	if cfg.STM.Oversample == 0 {
		cfg.STM.Oversample = defaultOversample
	}

	if cfg.WI.Path != "" && !filepath.IsAbs(cfg.WI.Path) {
		cfg.WI.Path = filepath.Join(configDir, cfg.WI.Path)
	}
	if cfg.WI.TextColumn == "" {
		cfg.WI.TextColumn = "text"
	}
	if cfg.WI.LevelColumn == "" {
		cfg.WI.LevelColumn = "automarker_cefr_level"
	}

	for i := range cfg.Remote.Datasets {
		ds := &cfg.Remote.Datasets[i]
		if ds.Path != "" && !filepath.IsAbs(ds.Path) {
			ds.Path = filepath.Join(configDir, ds.Path)
		}
		if ds.TextColumn == "" {
			ds.TextColumn = "text"
		}
		if ds.LevelColumn == "" {
			ds.LevelColumn = "cefr_level"
		}
	}
}

func (cfg BuildConfig) validate() error {
	if cfg.Chunk.MinWords < 1 {
		return fmt.Errorf("chunk min_words must be >= 1")
	}
	if cfg.Chunk.MaxWords < cfg.Chunk.MinWords {
		return fmt.Errorf("chunk max_words must be >= min_words")
	}
	if cfg.MaxSamples < 0 {
		return fmt.Errorf("max_samples cannot be negative")
	}
	if cfg.Noise.Rate < 0 || cfg.Noise.Rate > 1 {
		return fmt.Errorf("noise rate must be between 0 and 1")
	}
	if cfg.STM.Enabled && cfg.STM.Oversample < 1 {
		return fmt.Errorf("stm oversample must be >= 1")
	}
	if cfg.WI.Enabled && cfg.WI.Path == "" {
		return fmt.Errorf("wi path is required when wi is enabled")
	}

	seen := make(map[string]bool, len(cfg.Remote.Datasets))
	for _, ds := range cfg.Remote.Datasets {
		if ds.Name == "" {
			return fmt.Errorf("remote dataset name is required")
		}
		if seen[ds.Name] {
			return fmt.Errorf("duplicate remote dataset name: %s", ds.Name)
		}
		seen[ds.Name] = true
		if cfg.Remote.Enabled && ds.Path == "" {
			return fmt.Errorf("remote dataset %s path is required", ds.Name)
		}
	}
	return nil
}
