package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/validation"
)

func newCheckCmd(global *globalOptions) *cobra.Command {
	var (
		inFile string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report missing required fields and malformed values",
		Long:  "Lists advisory completeness problems. The report never fails the command; export works regardless.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, _, err := global.load(cmd); err != nil {
				return err
			}

			doc, err := loadSnapshot(inFile)
			if err != nil {
				return err
			}

			violations := validation.Check(doc)
			if asJSON {
				data, err := json.MarshalIndent(violations, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal violations: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}

			observability.NewPrinter(cmd.OutOrStdout()).PrintViolations(violations)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inFile, "in", "i", "", "Snapshot JSON file (required)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
