package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
)

type exportOptions struct {
	inFile string
	outDir string
	stdout bool
}

func newExportCmd(global *globalOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a snapshot as a plain-text resume",
		Long:  "Writes <name>_Resume_<suffix>.txt into the output directory, or prints the text with --stdout.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inFile, "in", "i", "", "Snapshot JSON file (required)")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", "", "Directory for the exported file (overrides config)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Print the export instead of writing a file")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func runExport(cmd *cobra.Command, global *globalOptions, opts *exportOptions) error {
	cfg, log, err := global.load(cmd)
	if err != nil {
		return err
	}

	doc, err := loadSnapshot(opts.inFile)
	if err != nil {
		return err
	}

	export := rendering.ExportDocument(doc, cfg.ExportSuffix)
	if opts.stdout {
		if _, err := cmd.OutOrStdout().Write(export.Content); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		return nil
	}

	outDir := cfg.OutputDir
	if opts.outDir != "" {
		outDir = opts.outDir
	}

	path, err := rendering.WriteExport(outDir, export)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Int("bytes", len(export.Content)).Msg("export written")
	observability.NewPrinter(cmd.OutOrStdout()).PrintExported(path)
	return nil
}
