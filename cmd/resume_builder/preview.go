package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/validation"
)

func newPreviewCmd(global *globalOptions) *cobra.Command {
	var inFile string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the boxed preview of a snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := global.load(cmd)
			if err != nil {
				return err
			}

			doc, err := loadSnapshot(inFile)
			if err != nil {
				return err
			}

			printer := observability.NewPrinter(cmd.OutOrStdout())
			printer.PrintPreview(rendering.BuildPreview(doc))
			if cfg.Verbose {
				printer.PrintViolations(validation.Check(doc))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inFile, "in", "i", "", "Snapshot JSON file (required)")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
