package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/builder"
	"github.com/jonathan/resume-builder/internal/ids"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

// newPromptDriver is replaced in tests with a scripted driver
var newPromptDriver = session.NewSurveyDriver

type editOptions struct {
	inFile       string
	outDir       string
	snapshotFile string
	section      string
}

func newEditCmd(global *globalOptions) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a resume interactively",
		Long:  "Opens the section menu. Every change re-renders the preview; Export writes the plain-text resume.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEdit(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inFile, "in", "i", "", "Snapshot JSON to start from (default: empty resume)")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", "", "Directory for exported files (overrides config)")
	cmd.Flags().StringVarP(&opts.snapshotFile, "snapshot", "s", "", "Save the final document as snapshot JSON")
	cmd.Flags().StringVar(&opts.section, "section", "", "Section selected when the menu opens (header, summary, skills, experience, ...)")

	return cmd
}

func runEdit(cmd *cobra.Command, global *globalOptions, opts *editOptions) error {
	cfg, log, err := global.load(cmd)
	if err != nil {
		return err
	}

	doc := types.DefaultDocument()
	if opts.inFile != "" {
		if doc, err = loadSnapshot(opts.inFile); err != nil {
			return err
		}
	}

	gen, err := ids.New(cfg.IDStrategy)
	if err != nil {
		return fmt.Errorf("failed to create id generator: %w", err)
	}

	outDir := cfg.OutputDir
	if opts.outDir != "" {
		outDir = opts.outDir
	}

	b := builder.New(builder.WithDocument(doc), builder.WithIDs(gen), builder.WithLogger(log))
	if opts.section != "" {
		sec, err := types.ParseSection(opts.section)
		if err != nil {
			return fmt.Errorf("invalid --section: %w", err)
		}
		b.Select(sec)
	}
	s := session.New(b, newPromptDriver(), cmd.OutOrStdout(),
		session.WithLogger(log),
		session.WithExportSuffix(cfg.ExportSuffix),
		session.WithOutputDir(outDir),
		session.WithVerbose(cfg.Verbose),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runErr := s.Run(ctx)
	if errors.Is(runErr, session.ErrAborted) {
		log.Warn().Msg("session aborted")
		runErr = nil
	}

	// Save what was edited even when the session was aborted
	if opts.snapshotFile != "" {
		if err := writeSnapshot(opts.snapshotFile, b.Document()); err != nil {
			return err
		}
		log.Info().Str("path", opts.snapshotFile).Msg("snapshot written")
	}

	return runErr
}
