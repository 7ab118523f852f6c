package corpus

import (
	"os"
	"path/filepath"

	"github.com/rgilks/speako/internal/log"
)

// LoadSources parses every enabled source into records. Failures are
// local: an unreadable file or unavailable dataset is logged and
// contributes zero records, and processing continues with the rest.
// Only the assembler decides whether an empty result is fatal.
func LoadSources(cfg BuildConfig, logger *log.Logger) (Sources, LoadStats) {
	var src Sources
	stats := LoadStats{SkippedBySource: make(map[string]int)}

	if cfg.STM.Enabled {
		src.STMTrain = loadSTMSplit(cfg.STM.Root, cfg.STM.TrainPatterns, "train", &stats, logger)
		src.STMEval = loadSTMSplit(cfg.STM.Root, cfg.STM.EvalPatterns, "eval", &stats, logger)
		if len(src.STMTrain) == 0 && len(src.STMEval) == 0 {
			stats.FailedSources = append(stats.FailedSources, SourceSTM)
		}
	}

	if cfg.WI.Enabled {
		records, ok := loadWI(cfg, &stats, logger)
		if ok {
			src.WI = records
		} else {
			stats.FailedSources = append(stats.FailedSources, SourceWI)
		}
	}

	if cfg.Remote.Enabled {
		records, remoteStats, failed := CollectRemote(cfg.Remote, cfg.Chunk, logger)
		src.Remote = records
		for name, ds := range remoteStats {
			stats.SkippedBySource[name] += ds.Skipped()
		}
		stats.FailedSources = append(stats.FailedSources, failed...)
	}

	return src, stats
}

func loadSTMSplit(root string, patterns []string, split string, stats *LoadStats, logger *log.Logger) []Record {
	files, err := DiscoverFiles(root, patterns)
	if err != nil {
		logger.Printf("stm: %s discovery failed: %v", split, err)
		return nil
	}
	if len(files) == 0 {
		logger.Printf("stm: no %s files under %s", split, root)
		return nil
	}

	records := make([]Record, 0)
	for _, rel := range files {
		path := filepath.Join(root, rel)
		content, err := os.ReadFile(path)
		if err != nil {
			logger.Printf("stm: skipping %s: %v", path, err)
			continue
		}
		parsed, fileStats := ParseSTM(string(content))
		logger.Printf("stm: %s: %d records (%d lines skipped)", rel, fileStats.Records, fileStats.Skipped())
		records = append(records, parsed...)
		stats.SkippedBySource[SourceSTM] += fileStats.Skipped()
	}
	return records
}

func loadWI(cfg BuildConfig, stats *LoadStats, logger *log.Logger) ([]Record, bool) {
	file, err := os.Open(cfg.WI.Path)
	if err != nil {
		logger.Printf("wi: corpus unavailable: %v", err)
		return nil, false
	}
	defer func() { _ = file.Close() }()

	cols := WIColumns{Text: cfg.WI.TextColumn, Level: cfg.WI.LevelColumn}
	records, wiStats, err := ParseWI(file, cols, cfg.Chunk)
	if err != nil {
		logger.Printf("wi: skipping corpus: %v", err)
		return nil, false
	}
	logger.Printf("wi: %d records from %d rows (%d skipped)", wiStats.Records, wiStats.Rows, wiStats.Skipped())
	stats.SkippedBySource[SourceWI] += wiStats.Skipped()
	return records, true
}
