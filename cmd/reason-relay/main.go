package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	cli "github.com/mulholio/reason-relay/internal/cli"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := &cobra.Command{
		Use:   "reason-relay",
		Short: "Generate ReasonML sources from Relay compiler artifacts",
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newValidateCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var configPath string
	var artifactsDir string
	var outDir string
	var suffix string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate ReasonML sources for every artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunGenerate(cli.RunGenerateParams{
				ConfigPath: configPath,
				Fallback: cli.FallbackParams{
					ArtifactsDir: artifactsDir,
					OutDir:       outDir,
					Suffix:       suffix,
				},
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to reasonrelay.yaml config")
	// Fallback flags when no config file is provided
	cmd.Flags().StringVar(&artifactsDir, "artifacts", "", "Directory holding Relay compiler artifacts")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (defaults to each artifact's directory)")
	cmd.Flags().StringVar(&suffix, "suffix", "", "Artifact filename suffix (defaults to _graphql.js)")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that an artifact parses cleanly",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(input)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Relay compiler artifact file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
