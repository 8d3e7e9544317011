package dataset

import (
	"context"

	"go.uber.org/zap"

	"github.com/goliatone/go-animalgen/pkg/animal"
)

// Records loads and decodes an animal dataset. Missing files, transport
// failures, and malformed JSON are recovered here: the diagnostic is logged
// and an empty slice is returned so the pipeline continues with no data
// rather than aborting.
func Records(ctx context.Context, loader Loader, src Source, logger *zap.Logger) []animal.Record {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loader == nil || src == nil {
		logger.Warn("dataset: loader or source missing, treating as empty dataset")
		return nil
	}

	data, err := loader.Load(ctx, src)
	if err != nil {
		logger.Warn("dataset: load failed, treating as empty dataset",
			zap.String("source", src.Location()),
			zap.Error(err))
		return nil
	}

	records, err := animal.Decode(data)
	if err != nil {
		logger.Warn("dataset: decode failed, treating as empty dataset",
			zap.String("source", src.Location()),
			zap.Error(err))
		return nil
	}
	return records
}

// Template loads template text. Failures degrade to an empty string with a
// logged diagnostic; the compositor reports the missing placeholder
// downstream.
func Template(ctx context.Context, loader Loader, src Source, logger *zap.Logger) string {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loader == nil || src == nil {
		logger.Warn("dataset: loader or source missing, treating as empty template")
		return ""
	}

	data, err := loader.Load(ctx, src)
	if err != nil {
		logger.Warn("dataset: template load failed",
			zap.String("source", src.Location()),
			zap.Error(err))
		return ""
	}
	return string(data)
}
