package corpus

import (
	"errors"
	"math/rand"

	"github.com/rgilks/speako/internal/log"
)

// ErrNoTrainingData is the one fatal pipeline condition: every enabled
// source came up empty, so training would silently run on nothing.
var ErrNoTrainingData = errors.New("no training data: all enabled sources were empty")

// Assemble combines the parsed sources into one shuffled training
// corpus plus the untouched STM evaluation holdout.
//
// Speech-transcript records are replicated by the configured integer
// oversampling factor to counteract the much larger written corpus.
// Training text then passes through noise augmentation, the combined
// corpus is shuffled with the configured seed, and an optional
// max-samples cap truncates the result. The eval holdout is never
// oversampled, augmented, or shuffled.
func Assemble(cfg BuildConfig, src Sources, logger *log.Logger) (Assembly, error) {
	train := concatTraining(cfg, src, logger)
	if len(train) == 0 {
		return Assembly{}, ErrNoTrainingData
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	if cfg.Noise.Enabled {
		train = augmentRecords(train, NewAugmenter(rng, cfg.Noise.Rate))
	}

	rng.Shuffle(len(train), func(i, j int) {
		train[i], train[j] = train[j], train[i]
	})

	if cfg.MaxSamples > 0 && len(train) > cfg.MaxSamples {
		logger.Printf("assemble: capping %d training records at %d", len(train), cfg.MaxSamples)
		train = train[:cfg.MaxSamples]
	}

	eval := make([]Record, len(src.STMEval))
	copy(eval, src.STMEval)

	logger.Printf("assemble: %d training records, %d eval records", len(train), len(eval))
	return Assembly{Train: train, Eval: eval}, nil
}

// concatTraining concatenates the enabled sources in a fixed order,
// applying oversampling and the written-corpus license gate. The
// result is deterministic and unshuffled.
func concatTraining(cfg BuildConfig, src Sources, logger *log.Logger) []Record {
	train := make([]Record, 0, len(src.STMTrain)*cfg.STM.Oversample+len(src.WI)+len(src.Remote))

	if cfg.STM.Enabled && len(src.STMTrain) > 0 {
		factor := cfg.STM.Oversample
		if factor < 1 {
			factor = 1
		}
		for i := 0; i < factor; i++ {
			train = append(train, src.STMTrain...)
		}
		logger.Printf("assemble: stm %d records oversampled x%d", len(src.STMTrain), factor)
	}

	if cfg.WI.Enabled && len(src.WI) > 0 {
		if cfg.WI.ValidationOnly {
			// License gate: the corpus may be used for local evaluation
			// but must stay out of any redistributed model's training set.
			logger.Printf("assemble: wi marked validation-only, excluding %d records from training", len(src.WI))
		} else {
			train = append(train, src.WI...)
		}
	}

	if cfg.Remote.Enabled {
		train = append(train, src.Remote...)
	}

	return train
}

// augmentRecords produces noisy copies of training records. Input
// records are never mutated.
func augmentRecords(records []Record, aug *Augmenter) []Record {
	out := make([]Record, len(records))
	for i, record := range records {
		out[i] = Record{
			Text:   aug.Augment(record.Text),
			Label:  record.Label,
			Source: record.Source,
		}
	}
	return out
}
