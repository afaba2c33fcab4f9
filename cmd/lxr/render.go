package main

import (
	"encoding/json"
	"fmt"

	"github.com/rgonek/lexical-renderer/htmlrender"
	"github.com/rgonek/lexical-renderer/internal/logging"
	"github.com/rgonek/lexical-renderer/richtext"
	"github.com/spf13/cobra"
)

const (
	outputHTML = "html"
	outputJSON = "json"
)

func newRenderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <input-file|->",
		Short: "Render a rich-text JSON document",
		Long:  "Render a rich-text JSON document to HTML, or to the normalized output tree as JSON. Diagnostics are logged to stderr.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.preset, "preset", "", "Preset: balanced|strict|legacy")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&flags.profile, "profile", "", "Text format profile: lexical|legacy")
	cmd.Flags().StringVar(&flags.mediaBaseURL, "media-base-url", "", "Base URL for relative media sources")
	cmd.Flags().StringVar(&flags.source, "source", "", "Source path reported to logs and hooks (defaults to the input file)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", outputHTML, "Output format: html|json")

	return cmd
}

func runRender(cmd *cobra.Command, input string, flags renderFlags) error {
	logger := logging.GetLogger("render")
	defer logging.LogOperationStart(logger, "render")()

	if flags.output != outputHTML && flags.output != outputJSON {
		return fmt.Errorf("unknown output format %q (allowed: html, json)", flags.output)
	}

	cfg, htmlOptions, err := resolveConfig(flags)
	if err != nil {
		return err
	}
	cfg.Logger = &logger

	renderer, err := richtext.New(cfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	data, err := readInput(cmd, input)
	if err != nil {
		return err
	}
	doc, err := richtext.ParseDocument(data)
	if err != nil {
		return err
	}

	source := flags.source
	if source == "" && input != "-" {
		source = input
	}
	result := renderer.RenderResult(cmd.Context(), doc, richtext.RenderOptions{SourcePath: source})
	logger.Info().Int("warnings", len(result.Warnings)).Int("nodes", result.Tree.Count()).Msg("Document rendered")

	out := cmd.OutOrStdout()
	if flags.output == outputJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to write output tree: %w", err)
		}
		return nil
	}

	if err := htmlrender.New(htmlOptions).Render(out, result.Tree); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}
