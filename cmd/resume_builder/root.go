package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	configPath string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "resume_builder",
		Short:         "Resume Builder for AI research roles",
		Long:          "Resume Builder edits a structured resume section by section, previews it live and exports it as plain text.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to JSON or YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print the completeness check with every preview")

	rootCmd.AddCommand(
		newEditCmd(opts),
		newPreviewCmd(opts),
		newExportCmd(opts),
		newCheckCmd(opts),
		newTemplateCmd(opts),
	)
	return rootCmd
}

// load resolves the effective configuration (file, then environment, then
// flags) and builds the logger writing to the command's stderr.
func (o *globalOptions) load(cmd *cobra.Command) (config.Config, zerolog.Logger, error) {
	var cfg config.Config
	if o.configPath != "" {
		loaded, err := config.LoadConfig(o.configPath)
		if err != nil {
			return config.Config{}, zerolog.Nop(), fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	cfg.ApplyEnv(nil)
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	cfg = cfg.MergeWithDefaults(config.Defaults())

	log := logging.New(cfg.Logging(), cmd.ErrOrStderr())
	log.Debug().
		Str("output_dir", cfg.OutputDir).
		Str("export_suffix", cfg.ExportSuffix).
		Str("id_strategy", cfg.IDStrategy).
		Msg("configuration loaded")
	return cfg, log, nil
}

// loadSnapshot reads a Document snapshot, checking it against the schema first
func loadSnapshot(path string) (types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	doc, err := schemas.DecodeDocument(data)
	if err != nil {
		return types.Document{}, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}
	return doc, nil
}

// writeSnapshot saves doc as indented JSON
func writeSnapshot(path string, doc types.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	return nil
}
