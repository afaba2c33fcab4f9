package main

import (
	"encoding/json"
	"fmt"

	"github.com/rgonek/lexical-renderer/internal/logging"
	"github.com/rgonek/lexical-renderer/mdimport"
	"github.com/rgonek/lexical-renderer/richtext"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var (
		profile       string
		headingOffset int
	)

	cmd := &cobra.Command{
		Use:   "import <markdown-file|->",
		Short: "Convert markdown to a rich-text JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("import")
			defer logging.LogOperationStart(logger, "import")()

			importer, err := mdimport.New(mdimport.Config{
				FormatProfile: richtext.ProfileName(profile),
				HeadingOffset: headingOffset,
				Logger:        &logger,
			})
			if err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := importer.Import(string(data))
			if err != nil {
				return fmt.Errorf("failed to import markdown: %w", err)
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(result.Document); err != nil {
				return fmt.Errorf("failed to write document: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Text format profile: lexical|legacy")
	cmd.Flags().IntVar(&headingOffset, "heading-offset", 0, "Shift heading levels down by this amount")

	return cmd
}
