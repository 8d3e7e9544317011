package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/goliatone/go-animalgen/internal/animalapi"
	"github.com/goliatone/go-animalgen/internal/config"
	"github.com/goliatone/go-animalgen/pkg/dataset"
	"github.com/goliatone/go-animalgen/pkg/orchestrator"
	"github.com/goliatone/go-animalgen/pkg/selection"
)

// configPathEnv points at an alternate config file; there are no flags. The
// local/remote choice lives in the config, not on the command line.
const (
	configPathEnv     = "ANIMALGEN_CONFIG"
	defaultConfigPath = "animalgen.yaml"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "animalgen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	configPath := os.Getenv(configPathEnv)
	if configPath == "" {
		configPath = defaultConfigPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx := context.Background()

	gen := orchestrator.New(
		orchestrator.WithLogger(logger),
		orchestrator.WithRemoteSource(animalapi.New(animalapi.Config{
			BaseURL:    cfg.API.URL,
			QueryParam: cfg.API.QueryParam,
			APIKey:     cfg.API.Key,
		}, logger)),
	)

	switch cfg.Mode {
	case config.ModeRemote:
		return gen.RunRemote(ctx, orchestrator.RemoteRequest{
			TemplateSource: dataset.SourceFromFile(cfg.Template),
			Attribute:      cfg.Attribute,
			SubAttribute:   cfg.SubAttribute,
			Output:         cfg.Output,
			Renderer:       cfg.Renderer,
		})
	default:
		err := gen.RunLocal(ctx, orchestrator.LocalRequest{
			DatasetSource:  dataset.SourceFromFile(cfg.Dataset),
			TemplateSource: dataset.SourceFromFile(cfg.Template),
			Attribute:      cfg.Attribute,
			SubAttribute:   cfg.SubAttribute,
			Output:         cfg.Output,
			Renderer:       cfg.Renderer,
		})
		if errors.Is(err, selection.ErrNoChoices) {
			// Nothing to render is an outcome, not a crash.
			return nil
		}
		return err
	}
}
