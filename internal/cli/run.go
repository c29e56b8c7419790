package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mulholio/reason-relay/pkg/config"
	"github.com/mulholio/reason-relay/pkg/flowast"
	"github.com/mulholio/reason-relay/pkg/generator"
)

// FallbackParams carries the flag values used when no config file is given.
type FallbackParams struct {
	ArtifactsDir string
	OutDir       string
	Suffix       string
}

// RunGenerateParams bundles the inputs of the generate command.
type RunGenerateParams struct {
	ConfigPath string
	Fallback   FallbackParams
}

// RunValidate parses one compiler artifact and reports its parse errors, if
// any. It does not run extraction.
func RunValidate(input string) error {
	content, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	file := flowast.Parse(string(content))
	if len(file.Errors) > 0 {
		for _, pe := range file.Errors {
			log.Error().Str("artifact", input).Msg(pe.Error())
		}
		return &generator.ParseFailedError{Errors: file.Errors}
	}
	log.Info().Str("artifact", input).Int("aliases", len(file.Aliases)).Msg("artifact parsed cleanly")
	return nil
}

// RunGenerate walks the configured artifacts directory and prints one
// ReasonML source file per compiler artifact.
func RunGenerate(p RunGenerateParams) error {
	var cfg *config.Config
	if p.ConfigPath == "" {
		if p.Fallback.ArtifactsDir == "" {
			return errors.New("either --config or --artifacts must be provided")
		}
		suffix := p.Fallback.Suffix
		if suffix == "" {
			suffix = "_graphql.js"
		}
		cfg = &config.Config{
			ArtifactsDir: absPath(p.Fallback.ArtifactsDir),
			Suffix:       suffix,
		}
		if p.Fallback.OutDir != "" {
			cfg.OutDir = absPath(p.Fallback.OutDir)
		}
	} else {
		var err error
		cfg, err = config.Load(p.ConfigPath)
		if err != nil {
			return err
		}
	}
	return generateFromConfig(cfg)
}

func generateFromConfig(cfg *config.Config) error {
	artifacts, err := findArtifacts(cfg.ArtifactsDir, cfg.Suffix)
	if err != nil {
		return err
	}
	if len(artifacts) == 0 {
		log.Warn().Str("dir", cfg.ArtifactsDir).Str("suffix", cfg.Suffix).Msg("no artifacts found")
		return nil
	}

	service := generator.NewService()
	generated := 0
	for _, artifact := range artifacts {
		content, err := os.ReadFile(artifact)
		if err != nil {
			return err
		}
		op := inferOperation(operationName(artifact, cfg.Suffix), string(content))

		out, err := service.PrintArtifact("reason", string(content), op, cfg.Print)
		if err != nil {
			var parseErr *generator.ParseFailedError
			if errors.As(err, &parseErr) || errors.Is(err, generator.ErrNoExtractableOperations) {
				log.Warn().Str("artifact", artifact).Err(err).Msg("skipping artifact")
				continue
			}
			return fmt.Errorf("printing %s: %w", artifact, err)
		}

		target := outputPath(cfg, artifact)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, []byte(out), 0o644); err != nil {
			return err
		}
		generated++
		log.Info().Str("operation", op.Name).Str("output", target).Msg("generated")
	}

	log.Info().Int("artifacts", len(artifacts)).Int("generated", generated).Msg("done")
	return nil
}
