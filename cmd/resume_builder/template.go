package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/types"
)

func newTemplateCmd(global *globalOptions) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print an empty snapshot to start from",
		Long:  "Prints the default document (default skills, everything else empty) as snapshot JSON.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, _, err := global.load(cmd); err != nil {
				return err
			}

			doc := types.DefaultDocument()
			if outFile != "" {
				return writeSnapshot(outFile, doc)
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal template: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the template to a file instead of stdout")

	return cmd
}
